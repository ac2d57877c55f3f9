package httpx

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"bookshelf/internal/rating"

	"github.com/go-playground/validator/v10"
)

var (
	validate = newValidator()
	isbn10   = regexp.MustCompile(`^\d{9}[\dX]$`)
	isbn13   = regexp.MustCompile(`^\d{13}$`)
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		switch name {
		case "-":
			return ""
		case "":
			return f.Name
		}
		return name
	})
	mustRegister(v, "isbn", func(fl validator.FieldLevel) bool {
		return ValidISBN(fl.Field().String())
	})
	mustRegister(v, "rating", func(fl validator.FieldLevel) bool {
		return rating.Valid(int(fl.Field().Int()))
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("httpx: register %q validation: %v", tag, err))
	}
}

// ValidISBN accepts ISBN-10 and ISBN-13, ignoring hyphens and spaces.
func ValidISBN(isbn string) bool {
	isbn = strings.NewReplacer("-", "", " ", "").Replace(isbn)
	switch len(isbn) {
	case 10:
		return isbn10.MatchString(isbn)
	case 13:
		return isbn13.MatchString(isbn)
	}
	return false
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateStruct returns one entry per failed field, or nil when s is valid.
func ValidateStruct(s any) []ValidationError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []ValidationError{{Field: "", Message: err.Error()}}
	}

	out := make([]ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := fe.Field()
		var message string
		switch fe.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		case "isbn":
			message = fmt.Sprintf("%s must be a valid ISBN (10 or 13 digits)", field)
		case "rating":
			message = fmt.Sprintf("%s must be between %d and %d", field, rating.MinRating, rating.MaxRating)
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}
		out = append(out, ValidationError{
			Field:   strings.ToLower(field[:1]) + field[1:],
			Message: message,
		})
	}
	return out
}
