// Package respond serializa el sobre JSON {data, message, isValid} que espera
// el frontend original del sistema.
package respond

import (
	"encoding/json"
	"net/http"
)

type envelope struct {
	Data    any    `json:"data"`
	Message string `json:"message"`
	IsValid bool   `json:"isValid"`
}

// JSON escribe una respuesta exitosa con el sobre estándar.
func JSON(w http.ResponseWriter, status int, message string, data any) {
	write(w, status, envelope{Data: data, Message: message, IsValid: true})
}

// Error escribe una respuesta de error con el sobre estándar (data null).
func Error(w http.ResponseWriter, status int, message string) {
	write(w, status, envelope{Data: nil, Message: message, IsValid: false})
}

// Raw escribe el valor tal cual, sin sobre. Los listados y detalles del
// contrato original devuelven filas crudas.
func Raw(w http.ResponseWriter, status int, v any) {
	write(w, status, v)
}

func write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
