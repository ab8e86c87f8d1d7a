package clients

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"gym-management/internal/domain/persons"
	"gym-management/internal/respond"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta las rutas de clientes del contrato original.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/crear-cliente", createClientHandler(svc))
	r.Post("/actualizar-cliente", updateClientHandler(svc))
	r.Get("/clientes", listClientsHandler(svc))
	r.Get("/detalle_cliente/{id}", getClientHandler(svc))
	r.Get("/eliminar_cliente/{id}", deleteClientHandler(svc))
}

type createClientRequest struct {
	FullName   string `json:"nombreCompleto"`
	Email      string `json:"correoElectronico"`
	Password   string `json:"contrasena"`
	Phone      string `json:"telefono"`
	BirthDate  string `json:"fechaNacimiento"`
	Address    string `json:"direccion"`
	Membership string `json:"tipoMembresia"`
	Dynamic    string `json:"tipoDinamica"`
	StartsAt   string `json:"fechaInicioMembresia"`
}

type createClientData struct {
	ID         int64   `json:"usuarioId"`
	FullName   string  `json:"nombreCompleto"`
	Email      string  `json:"correoElectronico"`
	Membership string  `json:"tipoMembresia"`
	StartsAt   string  `json:"fechaInicioMembresia"`
	EndsAt     *string `json:"fechaFinMembresia"`
}

type updateClientRequest struct {
	ID         int64  `json:"id"`
	FullName   string `json:"nombre_completo"`
	Email      string `json:"correo_electronico"`
	Password   string `json:"contrasena"`
	Phone      string `json:"telefono"`
	BirthDate  string `json:"fecha_nacimiento"`
	Address    string `json:"direccion"`
	Membership string `json:"tipo_membresia"`
	Dynamic    string `json:"tipo_dinamica"`
	StartsAt   string `json:"fecha_inicio_membresia"`
}

type updateClientData struct {
	ID         int64   `json:"id"`
	FullName   string  `json:"nombre_completo"`
	Email      string  `json:"correo_electronico"`
	Membership string  `json:"tipo_membresia"`
	StartsAt   string  `json:"fecha_inicio_membresia"`
	EndsAt     *string `json:"fecha_fin_membresia"`
}

// clientRow es la fila del join usuarios ⋈ clientes. Dynamic solo aparece en
// el detalle, igual que en el contrato original. Sin contraseña en lecturas.
type clientRow struct {
	ID         int64   `json:"id"`
	FullName   string  `json:"nombre_completo"`
	Email      string  `json:"correo_electronico"`
	Phone      string  `json:"telefono"`
	BirthDate  string  `json:"fecha_nacimiento"`
	Address    string  `json:"direccion"`
	Membership string  `json:"tipo_membresia"`
	StartsAt   string  `json:"fecha_inicio_membresia"`
	EndsAt     *string `json:"fecha_fin_membresia"`
	Dynamic    string  `json:"tipo_dinamica,omitempty"`
}

func createClientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createClientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "JSON inválido.")
			return
		}

		birthDate, okBirth := parseDate(req.BirthDate)
		startsAt, okStart := parseDate(req.StartsAt)
		if req.BirthDate != "" && !okBirth || req.StartsAt != "" && !okStart {
			respond.Error(w, http.StatusBadRequest, "Formato de fecha inválido.")
			return
		}

		c, err := svc.Create(r.Context(), CreateInput{
			FullName:   req.FullName,
			Email:      req.Email,
			Password:   req.Password,
			Phone:      req.Phone,
			BirthDate:  birthDate,
			Address:    req.Address,
			Membership: req.Membership,
			Dynamic:    req.Dynamic,
			StartsAt:   startsAt,
		})
		if err != nil {
			writeClientError(w, err)
			return
		}

		respond.JSON(w, http.StatusCreated, "Cliente creado con éxito.", createClientData{
			ID:         c.ID,
			FullName:   c.FullName,
			Email:      c.Email,
			Membership: string(c.Membership),
			StartsAt:   formatTimestamp(c.StartsAt),
			EndsAt:     formatTimestampPtr(c.EndsAt),
		})
	}
}

func updateClientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateClientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "JSON inválido.")
			return
		}

		birthDate, okBirth := parseDate(req.BirthDate)
		startsAt, okStart := parseDate(req.StartsAt)
		if req.BirthDate != "" && !okBirth || req.StartsAt != "" && !okStart {
			respond.Error(w, http.StatusBadRequest, "Formato de fecha inválido.")
			return
		}

		c, err := svc.Update(r.Context(), UpdateInput{
			ID:         req.ID,
			FullName:   req.FullName,
			Email:      req.Email,
			Password:   req.Password,
			Phone:      req.Phone,
			BirthDate:  birthDate,
			Address:    req.Address,
			Membership: req.Membership,
			Dynamic:    req.Dynamic,
			StartsAt:   startsAt,
		})
		if err != nil {
			writeClientError(w, err)
			return
		}

		respond.JSON(w, http.StatusOK, "Cliente actualizado con éxito.", updateClientData{
			ID:         c.ID,
			FullName:   c.FullName,
			Email:      c.Email,
			Membership: string(c.Membership),
			StartsAt:   formatTimestamp(c.StartsAt),
			EndsAt:     formatTimestampPtr(c.EndsAt),
		})
	}
}

func listClientsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			respond.Raw(w, http.StatusInternalServerError, []clientRow{})
			return
		}

		out := make([]clientRow, 0, len(items))
		for _, c := range items {
			row := toClientRow(c)
			row.Dynamic = "" // el listado original no incluye tipo_dinamica
			out = append(out, row)
		}
		respond.Raw(w, http.StatusOK, out)
	}
}

func getClientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "Identificador inválido.")
			return
		}

		c, err := svc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, persons.ErrNotFound) {
				respond.Error(w, http.StatusNotFound, "No se encontró un cliente con el ID "+raw+".")
				return
			}
			respond.Error(w, http.StatusInternalServerError, "Error interno del servidor.")
			return
		}

		respond.Raw(w, http.StatusOK, toClientRow(c))
	}
}

func deleteClientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "Identificador inválido.")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			if errors.Is(err, persons.ErrNotFound) {
				respond.Error(w, http.StatusNotFound, "No se encontró un cliente con el ID "+raw+".")
				return
			}
			respond.Error(w, http.StatusInternalServerError, "Error interno del servidor al eliminar el cliente.")
			return
		}

		respond.JSON(w, http.StatusOK, "Cliente con ID "+raw+" eliminado con éxito.", nil)
	}
}

func writeClientError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(w, http.StatusBadRequest, "Todos los campos son obligatorios.")
	case errors.Is(err, ErrInvalidMembershipType):
		respond.Error(w, http.StatusBadRequest, "Tipo de membresía no válido.")
	case errors.Is(err, persons.ErrDuplicateEmail):
		respond.Error(w, http.StatusBadRequest, "El correo electrónico ya está en uso.")
	case errors.Is(err, persons.ErrNotFound):
		respond.Error(w, http.StatusNotFound, "Cliente no encontrado.")
	default:
		respond.Error(w, http.StatusInternalServerError, "Error interno del servidor.")
	}
}

func toClientRow(c Client) clientRow {
	return clientRow{
		ID:         c.ID,
		FullName:   c.FullName,
		Email:      c.Email,
		Phone:      c.Phone,
		BirthDate:  c.BirthDate.Format("2006-01-02"),
		Address:    c.Address,
		Membership: string(c.Membership),
		StartsAt:   formatTimestamp(c.StartsAt),
		EndsAt:     formatTimestampPtr(c.EndsAt),
		Dynamic:    c.Dynamic,
	}
}

// parseDate acepta YYYY-MM-DD o RFC3339; las fechas de membresía suelen llegar
// como timestamp completo desde el frontend.
func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatTimestampPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTimestamp(*t)
	return &s
}
