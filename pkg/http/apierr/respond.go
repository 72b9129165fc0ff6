package apierr

import (
	"encoding/json"
	"net/http"
)

// failureEnvelope is the error half of the response contract shared by every
// endpoint: {"success": false, "error": <code>, "message": <message>}.
type failureEnvelope struct {
	Success bool   `json:"success"`
	Code    int    `json:"error"`
	Message string `json:"message"`
}

// Respond writes the failure envelope for err, with the HTTP status equal to
// the embedded code.
func Respond(w http.ResponseWriter, err error) {
	apiErr := From(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apiErr.Code)
	_ = json.NewEncoder(w).Encode(failureEnvelope{
		Success: false,
		Code:    apiErr.Code,
		Message: apiErr.Message,
	})
}

// RespondOK writes payload as JSON with a 200 status. The payload type is
// expected to carry its own `success` field.
func RespondOK(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(payload)
}
