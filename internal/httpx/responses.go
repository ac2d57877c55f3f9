package httpx

import (
	"encoding/json"
	"net/http"
)

type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
	Meta    any  `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Success bool              `json:"success"`
	Error   ErrorResponseBody `json:"error"`
	Meta    any               `json:"meta,omitempty"`
}

type ErrorResponseBody struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details []ValidationError `json:"details,omitempty"`
}

func requestMeta(r *http.Request, extra map[string]any) map[string]any {
	requestID := RequestIDFrom(r)
	if requestID == "" && len(extra) == 0 {
		return nil
	}
	meta := make(map[string]any, len(extra)+1)
	for k, v := range extra {
		meta[k] = v
	}
	if requestID != "" {
		meta["request_id"] = requestID
	}
	return meta
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// JSONSuccess writes a 200 envelope around data.
func JSONSuccess(w http.ResponseWriter, r *http.Request, data any, extra map[string]any) {
	writeJSON(w, http.StatusOK, SuccessResponse{
		Success: true,
		Data:    data,
		Meta:    requestMeta(r, extra),
	})
}

// JSONCreated writes a 201 envelope around data.
func JSONCreated(w http.ResponseWriter, r *http.Request, data any) {
	writeJSON(w, http.StatusCreated, SuccessResponse{
		Success: true,
		Data:    data,
		Meta:    requestMeta(r, nil),
	})
}

// JSONError writes an error envelope with the given status.
func JSONError(w http.ResponseWriter, r *http.Request, statusCode int, code, message string, details []ValidationError) {
	writeJSON(w, statusCode, ErrorResponse{
		Success: false,
		Error: ErrorResponseBody{
			Code:    code,
			Message: message,
			Details: details,
		},
		Meta: requestMeta(r, nil),
	})
}
