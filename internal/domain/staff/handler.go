package staff

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

// RegisterRoutes monta las rutas de empleados. Paths y nombres de campo
// replican el contrato del frontend existente (incluido el typo histórico
// de obtener_detelle_empleado).
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/crear-empleado", createEmployeeHandler(svc))
	r.Post("/actualizar_empleado", updateEmployeeHandler(svc))
	r.Get("/usuarios-empleados", listEmployeesHandler(svc))
	r.Get("/obtener_detelle_empleado/{id}", getEmployeeHandler(svc))
	r.Get("/eliminar_empleado/{id}", deleteEmployeeHandler(svc))
}

type createEmployeeRequest struct {
	FullName    string  `json:"nombreCompleto"`
	Email       string  `json:"correoElectronico"`
	Password    string  `json:"contrasena"`
	Phone       string  `json:"telefono"`
	BirthDate   string  `json:"fechaNacimiento"`
	Address     string  `json:"direccion"`
	CompanyRole string  `json:"rol_empresa"`
	Salary      float64 `json:"salario"`
	HiredAt     string  `json:"fecha_ingreso"`
}

type createEmployeeData struct {
	ID          int64   `json:"usuarioId"`
	FullName    string  `json:"nombreCompleto"`
	Email       string  `json:"correoElectronico"`
	CompanyRole string  `json:"rol_empresa"`
	Salary      float64 `json:"salario"`
	HiredAt     string  `json:"fecha_ingreso"`
}

type updateEmployeeRequest struct {
	ID          int64   `json:"id"`
	FullName    string  `json:"nombre_completo"`
	Email       string  `json:"correo_electronico"`
	Password    string  `json:"contrasena"`
	Phone       string  `json:"telefono"`
	BirthDate   string  `json:"fecha_nacimiento"`
	Address     string  `json:"direccion"`
	CompanyRole string  `json:"rol_empresa"`
	Salary      float64 `json:"salario"`
	HiredAt     string  `json:"fecha_ingreso"`
}

type updateEmployeeData struct {
	ID          int64   `json:"id"`
	FullName    string  `json:"nombre_completo"`
	Email       string  `json:"correo_electronico"`
	CompanyRole string  `json:"rol_empresa"`
	Salary      float64 `json:"salario"`
	HiredAt     string  `json:"fecha_ingreso"`
}

// employeeRow es la fila del join usuarios ⋈ empleados para listado/detalle.
// La contraseña nunca se expone: con hash en storage el campo dejó de tener
// sentido en las respuestas de lectura.
type employeeRow struct {
	ID          int64   `json:"id"`
	FullName    string  `json:"nombre_completo"`
	Email       string  `json:"correo_electronico"`
	Phone       string  `json:"telefono"`
	BirthDate   string  `json:"fecha_nacimiento"`
	Address     string  `json:"direccion"`
	Kind        string  `json:"tipo_usuario"`
	CompanyRole string  `json:"rol_empresa"`
	Salary      float64 `json:"salario"`
	HiredAt     string  `json:"fecha_ingreso"`
}

func createEmployeeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createEmployeeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "JSON inválido.")
			return
		}

		birthDate, okBirth := parseDate(req.BirthDate)
		hiredAt, okHired := parseDate(req.HiredAt)
		if req.BirthDate != "" && !okBirth || req.HiredAt != "" && !okHired {
			respond.Error(w, http.StatusBadRequest, "Formato de fecha inválido.")
			return
		}

		e, err := svc.Create(r.Context(), CreateInput{
			FullName:    req.FullName,
			Email:       req.Email,
			Password:    req.Password,
			Phone:       req.Phone,
			BirthDate:   birthDate,
			Address:     req.Address,
			CompanyRole: req.CompanyRole,
			Salary:      req.Salary,
			HiredAt:     hiredAt,
		})
		if err != nil {
			writeEmployeeError(w, err)
			return
		}

		respond.JSON(w, http.StatusCreated, "Empleado creado con éxito.", createEmployeeData{
			ID:          e.ID,
			FullName:    e.FullName,
			Email:       e.Email,
			CompanyRole: e.CompanyRole,
			Salary:      e.Salary,
			HiredAt:     formatDate(e.HiredAt),
		})
	}
}

func updateEmployeeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateEmployeeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "JSON inválido.")
			return
		}

		birthDate, okBirth := parseDate(req.BirthDate)
		hiredAt, okHired := parseDate(req.HiredAt)
		if req.BirthDate != "" && !okBirth || req.HiredAt != "" && !okHired {
			respond.Error(w, http.StatusBadRequest, "Formato de fecha inválido.")
			return
		}

		e, err := svc.Update(r.Context(), UpdateInput{
			ID:          req.ID,
			FullName:    req.FullName,
			Email:       req.Email,
			Password:    req.Password,
			Phone:       req.Phone,
			BirthDate:   birthDate,
			Address:     req.Address,
			CompanyRole: req.CompanyRole,
			Salary:      req.Salary,
			HiredAt:     hiredAt,
		})
		if err != nil {
			writeEmployeeError(w, err)
			return
		}

		respond.JSON(w, http.StatusOK, "Empleado actualizado con éxito.", updateEmployeeData{
			ID:          e.ID,
			FullName:    e.FullName,
			Email:       e.Email,
			CompanyRole: e.CompanyRole,
			Salary:      e.Salary,
			HiredAt:     formatDate(e.HiredAt),
		})
	}
}

func listEmployeesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			// el contrato original devuelve un array vacío ante error de listado
			respond.Raw(w, http.StatusInternalServerError, []employeeRow{})
			return
		}

		out := make([]employeeRow, 0, len(items))
		for _, e := range items {
			out = append(out, toEmployeeRow(e))
		}
		respond.Raw(w, http.StatusOK, out)
	}
}

func getEmployeeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "Identificador inválido.")
			return
		}

		e, err := svc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, persons.ErrNotFound) {
				respond.Raw(w, http.StatusNotFound, nil)
				return
			}
			respond.Error(w, http.StatusInternalServerError, "Error interno del servidor.")
			return
		}

		respond.Raw(w, http.StatusOK, toEmployeeRow(e))
	}
}

func deleteEmployeeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "Identificador inválido.")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			if errors.Is(err, persons.ErrNotFound) {
				respond.Error(w, http.StatusNotFound, "No se encontró el empleado con ID "+raw+".")
				return
			}
			respond.Error(w, http.StatusInternalServerError, "Error interno del servidor al eliminar el empleado.")
			return
		}

		respond.JSON(w, http.StatusOK, "Empleado con ID "+raw+" eliminado con éxito.", nil)
	}
}

func writeEmployeeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(w, http.StatusBadRequest, "Todos los campos son obligatorios.")
	case errors.Is(err, persons.ErrDuplicateEmail):
		respond.Error(w, http.StatusBadRequest, "El correo electrónico ya está en uso.")
	case errors.Is(err, persons.ErrNotFound):
		respond.Error(w, http.StatusNotFound, "Empleado no encontrado.")
	default:
		respond.Error(w, http.StatusInternalServerError, "Error interno del servidor.")
	}
}

func toEmployeeRow(e Employee) employeeRow {
	return employeeRow{
		ID:          e.ID,
		FullName:    e.FullName,
		Email:       e.Email,
		Phone:       e.Phone,
		BirthDate:   formatDate(e.BirthDate),
		Address:     e.Address,
		Kind:        string(e.Kind),
		CompanyRole: e.CompanyRole,
		Salary:      e.Salary,
		HiredAt:     formatDate(e.HiredAt),
	}
}

// parseDate acepta YYYY-MM-DD o RFC3339. Vacío devuelve zero time
// (la validación de requeridos vive en el servicio).
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

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
