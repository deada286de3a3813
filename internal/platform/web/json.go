package web

import (
	"encoding/json"
	"net/http"
)

// errorResponse es el formato único de error de la API: { "message": "..." }.
type errorResponse struct {
	Message string `json:"message"`
}

// WriteJSON serializa v con el status dado.
// Antes cada módulo duplicaba su propio writeJSON; al crecer a cinco
// dominios se extrajo aquí.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError responde { "message": msg } con el status dado.
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, errorResponse{Message: msg})
}

// DecodeJSON decodifica el body a dst. Devuelve false (y responde 400)
// si el JSON es inválido.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}
