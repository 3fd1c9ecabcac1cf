package errors

import (
	"encoding/json"
	"net/http"
)

// Fixed messages returned with each failure code. Clients match on these
// strings, so they are part of the API contract.
const (
	MsgBadRequest    = "Bad request."
	MsgNotFound      = "Resource not found."
	MsgUnprocessable = "Request was unprocessable."
)

// Response is the standardized failure body: {success, error, message}.
type Response struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// Respond writes a failure body with the given status code and message.
func Respond(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Response{
		Success: false,
		Error:   status,
		Message: message,
	})
}

// RespondBadRequest writes the 400 failure body.
func RespondBadRequest(w http.ResponseWriter) {
	Respond(w, http.StatusBadRequest, MsgBadRequest)
}

// RespondNotFound writes the 404 failure body.
func RespondNotFound(w http.ResponseWriter) {
	Respond(w, http.StatusNotFound, MsgNotFound)
}

// RespondUnprocessable writes the 422 failure body.
func RespondUnprocessable(w http.ResponseWriter) {
	Respond(w, http.StatusUnprocessableEntity, MsgUnprocessable)
}
