package devserver

import (
	"encoding/json"
	"net/http"
)

// Error bodies come in the shapes the client understands:
//
//	{"details":[{"type":"email","message":"..."}]}
//	{"error":{"type":"email","message":"..."}}
//	{"error":"..."}
//	{"message":"..."}

type fieldError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetails(w http.ResponseWriter, status int, details []fieldError) {
	writeJSON(w, status, map[string]any{"details": details})
}

func writeFieldError(w http.ResponseWriter, status int, field, msg string) {
	writeJSON(w, status, map[string]any{"error": fieldError{Type: field, Message: msg}})
}

func writeErrorString(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"error": msg})
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"message": msg})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	return dec.Decode(v)
}
