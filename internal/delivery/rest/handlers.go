package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"employee-directory/internal/app/service"
	"employee-directory/internal/domain"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Employees *service.EmployeeService
	Logger    *zap.Logger
}

func NewHandler(employees *service.EmployeeService, logger *zap.Logger) *Handler {
	return &Handler{Employees: employees, Logger: logger}
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Employees.ListEmployees(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, employees)
}

func (h *Handler) AddEmployee(w http.ResponseWriter, r *http.Request) {
	in, err := decodeInput(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	id, err := h.Employees.AddEmployee(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.Logger.Debug("сотрудник добавлен", zap.Int64("id", id))
	writeJSON(w, http.StatusCreated, messageResponse{Message: "Employee added"})
}

func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := employeeID(w, r)
	if !ok {
		return
	}
	in, err := decodeInput(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Employees.UpdateEmployee(r.Context(), id, in); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Employee updated"})
}

func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := employeeID(w, r)
	if !ok {
		return
	}
	if err := h.Employees.DeleteEmployee(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Employee deleted"})
}

// employeeID разбирает {id}; значение вне int64 считается ненайденным маршрутом.
func employeeID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		http.NotFound(w, r)
		return 0, false
	}
	return id, true
}

// decodeInput требует ровно один JSON-объект. Ключи сравниваются точно:
// encoding/json сам по себе принял бы "NAME" за "name".
func decodeInput(r *http.Request) (domain.EmployeeInput, error) {
	var in domain.EmployeeInput
	badBody := &domain.ValidationError{Field: "body", Msg: "request body must be a JSON object with name, email and role"}

	dec := json.NewDecoder(r.Body)
	var raw map[string]json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return in, badBody
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return in, badBody
	}

	fields := map[string]*string{"name": &in.Name, "email": &in.Email, "role": &in.Role}
	for key, dst := range fields {
		v, ok := raw[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(v, dst); err != nil {
			return in, &domain.ValidationError{Field: key, Msg: key + " must be a string"}
		}
	}
	return in, nil
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: vErr.Msg})
		return
	}
	h.Logger.Error("ошибка хранилища",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
