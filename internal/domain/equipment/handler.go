package equipment

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"gym-management/internal/respond"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta las rutas de inventario del contrato original
// (actualizar_productos / eliminar_productos incluidos).
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/crear-equipos", createEquipmentHandler(svc))
	r.Get("/equipos", listEquipmentHandler(svc))
	r.Get("/obtener_detalle_equipos/{id}", getEquipmentHandler(svc))
	r.Post("/actualizar_productos", updateEquipmentHandler(svc))
	r.Get("/eliminar_productos/{id}", deleteEquipmentHandler(svc))
}

type createEquipmentRequest struct {
	Name        string  `json:"nombre"`
	Model       string  `json:"modelo"`
	Description string  `json:"descripcion"`
	Status      string  `json:"estado"`
	Weight      float64 `json:"peso"`
}

type updateEquipmentRequest struct {
	ID           int64   `json:"id"`
	Name         string  `json:"nombre"`
	Model        string  `json:"modelo"`
	Description  string  `json:"descripcion"`
	RegisteredAt string  `json:"fecha_registro"`
	Status       string  `json:"estado"`
	Weight       float64 `json:"peso"`
}

type equipmentRow struct {
	ID           int64   `json:"id"`
	Name         string  `json:"nombre"`
	Model        string  `json:"modelo"`
	Description  *string `json:"descripcion"`
	RegisteredAt string  `json:"fecha_registro"`
	Status       string  `json:"estado"`
	Weight       float64 `json:"peso"`
}

func createEquipmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createEquipmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "JSON inválido.")
			return
		}

		e, err := svc.Create(r.Context(), CreateInput{
			Name:        req.Name,
			Model:       req.Model,
			Description: req.Description,
			Status:      req.Status,
			Weight:      req.Weight,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				respond.Error(w, http.StatusBadRequest, "Los campos nombre, modelo, estado y peso son obligatorios.")
				return
			}
			respond.Error(w, http.StatusInternalServerError, "Error interno del servidor.")
			return
		}

		respond.JSON(w, http.StatusCreated, "Equipo creado con éxito.", toEquipmentRow(e))
	}
}

func listEquipmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			respond.Error(w, http.StatusInternalServerError, "Error interno del servidor.")
			return
		}

		out := make([]equipmentRow, 0, len(items))
		for _, e := range items {
			out = append(out, toEquipmentRow(e))
		}
		respond.Raw(w, http.StatusOK, out)
	}
}

func getEquipmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "Identificador inválido.")
			return
		}

		e, err := svc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				respond.Error(w, http.StatusNotFound, "No se encontró el equipo con ID: "+raw)
				return
			}
			respond.Error(w, http.StatusInternalServerError, "Error interno del servidor.")
			return
		}

		respond.Raw(w, http.StatusOK, toEquipmentRow(e))
	}
}

func updateEquipmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateEquipmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "JSON inválido.")
			return
		}

		registeredAt, ok := parseTimestamp(req.RegisteredAt)
		if req.RegisteredAt != "" && !ok {
			respond.Error(w, http.StatusBadRequest, "Formato de fecha inválido.")
			return
		}

		e, err := svc.Update(r.Context(), UpdateInput{
			ID:           req.ID,
			Name:         req.Name,
			Model:        req.Model,
			Description:  req.Description,
			RegisteredAt: registeredAt,
			Status:       req.Status,
			Weight:       req.Weight,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				respond.Error(w, http.StatusBadRequest, "Todos los campos son obligatorios.")
			case errors.Is(err, ErrNotFound):
				respond.Error(w, http.StatusNotFound, "No se encontró un equipo con el ID "+strconv.FormatInt(req.ID, 10)+".")
			default:
				respond.Error(w, http.StatusInternalServerError, "Error interno del servidor.")
			}
			return
		}

		respond.JSON(w, http.StatusOK, "Equipo actualizado con éxito.", toEquipmentRow(e))
	}
}

func deleteEquipmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "Identificador inválido.")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			if errors.Is(err, ErrNotFound) {
				respond.Error(w, http.StatusNotFound, "No se encontró un producto con el ID "+raw+".")
				return
			}
			respond.Error(w, http.StatusInternalServerError, "Error interno del servidor.")
			return
		}

		respond.JSON(w, http.StatusOK, "Producto con ID "+raw+" eliminado con éxito.", nil)
	}
}

func toEquipmentRow(e Equipment) equipmentRow {
	return equipmentRow{
		ID:           e.ID,
		Name:         e.Name,
		Model:        e.Model,
		Description:  e.Description,
		RegisteredAt: e.RegisteredAt.UTC().Format(time.RFC3339),
		Status:       e.Status,
		Weight:       e.Weight,
	}
}

func parseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
