package main

import (
	"context"
	"flag"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, status, create")
		name    = flag.String("name", "", "Name for 'create' command")
	)
	flag.Parse()

	loadEnvFiles()
	dir := migrationsDir()

	if *command == "create" {
		if *name == "" {
			log.Fatal("name is required for 'create' command")
		}
		if err := goose.Create(nil, dir, *name, "sql"); err != nil {
			log.Fatalf("create migration: %v", err)
		}
		log.Printf("migration created name=%s dir=%s", *name, dir)
		return
	}

	pool, err := pgxpool.New(context.Background(), databaseDSN())
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("set dialect: %v", err)
	}

	switch *command {
	case "up":
		err = goose.Up(db, dir)
	case "down":
		err = goose.Down(db, dir)
	case "status":
		err = goose.Status(db, dir)
	default:
		log.Fatalf("unknown command %q, use: up, down, status, create", *command)
	}
	if err != nil {
		log.Fatalf("migrate %s: %v", *command, err)
	}
	log.Printf("migrate %s done dir=%s", *command, dir)
}
