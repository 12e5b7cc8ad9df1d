package main

import (
	"encoding/json"
	"net/http"
)

// APIError is the data model sent when an error occurred during request processing.
// The error message is propagated as-is to the client.
type APIError struct {
	Error string `json:"error"`
}

// APIMessage is the data model sent when an operation only needs
// to acknowledge its outcome.
type APIMessage struct {
	Message string `json:"message"`
}

// BookSavedResponse is the data model sent after a successful book creation.
type BookSavedResponse struct {
	Message   string `json:"message"`
	SavedBook Book   `json:"savedBook"`
}

// BookUpdatedResponse is the data model sent after a successful book update.
type BookUpdatedResponse struct {
	Message     string `json:"message"`
	UpdatedBook Book   `json:"updatedBook"`
}

// WriteJSONResponse sends any payload to the client with a given status code.
func WriteJSONResponse(w http.ResponseWriter, status int, payload interface{}) error {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(payload)
}

// WriteErrorResponse sends an error response to the client.
func WriteErrorResponse(w http.ResponseWriter, status int, message string) error {
	return WriteJSONResponse(w, status, &APIError{Error: message})
}

// WriteMessageResponse sends an acknowledgment response to the client.
func WriteMessageResponse(w http.ResponseWriter, status int, message string) error {
	return WriteJSONResponse(w, status, &APIMessage{Message: message})
}
