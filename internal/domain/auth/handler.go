package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"gym-management/internal/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/login", loginHandler(svc))
}

type loginRequest struct {
	Email    string `json:"correoElectronico"`
	Password string `json:"contrasena"`
}

type loginData struct {
	ID         int64   `json:"idUsuario"`
	FullName   string  `json:"nombreCompleto"`
	Email      string  `json:"correoElectronico"`
	Phone      string  `json:"telefono"`
	Membership *string `json:"tipoMembresia"`
	Token      string  `json:"token"`
}

func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "JSON inválido.")
			return
		}

		session, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				respond.Error(w, http.StatusBadRequest, "Correo electrónico y contraseña son obligatorios.")
			case errors.Is(err, ErrInvalidCredentials):
				// mensaje único: no se revela cuál de los dos campos falló
				respond.Error(w, http.StatusUnauthorized, "Correo electrónico o contraseña incorrectos.")
			default:
				respond.Error(w, http.StatusInternalServerError, "Error interno del servidor.")
			}
			return
		}

		respond.JSON(w, http.StatusOK, "Inicio de sesión exitoso.", loginData{
			ID:         session.PersonID,
			FullName:   session.FullName,
			Email:      session.Email,
			Phone:      session.Phone,
			Membership: session.Membership,
			Token:      session.Token,
		})
	}
}
