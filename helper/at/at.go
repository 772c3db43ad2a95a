package at

import (
	"encoding/json"
	"net/http"
)

// WriteJSON serialises content into the response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, content interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(content)
}

// GetLoginFromHeader returns the token the frontend sends in the Login header.
func GetLoginFromHeader(req *http.Request) string {
	return req.Header.Get("Login")
}
