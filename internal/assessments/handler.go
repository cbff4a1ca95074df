// Package assessments provides HTTP handlers and business logic for the
// assessment collection.
package assessments

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/bissquit/assessment-garden/internal/domain"
	"github.com/bissquit/assessment-garden/internal/pkg/ctxlog"
	"github.com/bissquit/assessment-garden/internal/pkg/httputil"
	"github.com/bissquit/assessment-garden/internal/query"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// Handler handles HTTP requests for the assessments module.
type Handler struct {
	service   *Service
	validator *validator.Validate
}

// NewHandler creates a new assessments handler. Enum membership is checked
// through the domain predicates so validation and filtering can never
// drift apart.
func NewHandler(service *Service) *Handler {
	v := validator.New()
	// Registration only fails for an empty tag name.
	_ = v.RegisterValidation("assessment_status", func(fl validator.FieldLevel) bool {
		return domain.AssessmentStatus(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("assessment_priority", func(fl validator.FieldLevel) bool {
		return domain.AssessmentPriority(fl.Field().String()).IsValid()
	})

	return &Handler{
		service:   service,
		validator: v,
	}
}

// RegisterRoutes registers all HTTP routes for the assessments module.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/assessments", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// CreateAssessmentRequest represents the request body for creating an
// assessment.
type CreateAssessmentRequest struct {
	Name     string  `json:"name"`
	Owner    string  `json:"owner"`
	Status   *string `json:"status" validate:"omitempty,assessment_status"`
	Priority *string `json:"priority" validate:"omitempty,assessment_priority"`
}

// Validate normalizes the request into a create input or reports the
// first violated rule with its public message.
func (req *CreateAssessmentRequest) Validate(v *validator.Validate) (CreateAssessmentInput, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return CreateAssessmentInput{}, errors.New("Name is required and must be a non-empty string")
	}

	owner := strings.TrimSpace(req.Owner)
	if owner == "" {
		return CreateAssessmentInput{}, errors.New("Owner is required and must be a non-empty string")
	}

	if err := v.Struct(req); err != nil {
		return CreateAssessmentInput{}, enumError(err)
	}

	input := CreateAssessmentInput{Name: name, Owner: owner}
	if req.Status != nil {
		status := domain.AssessmentStatus(*req.Status)
		input.Status = &status
	}
	if req.Priority != nil {
		priority := domain.AssessmentPriority(*req.Priority)
		input.Priority = &priority
	}
	return input, nil
}

// UpdateAssessmentRequest represents the request body for updating an
// assessment. Every field is optional; absent fields are left untouched.
type UpdateAssessmentRequest struct {
	Name     *string `json:"name"`
	Owner    *string `json:"owner"`
	Status   *string `json:"status" validate:"omitempty,assessment_status"`
	Priority *string `json:"priority" validate:"omitempty,assessment_priority"`
}

// Validate checks only the fields present in the payload. An empty body
// is an accepted no-op update.
func (req *UpdateAssessmentRequest) Validate(v *validator.Validate) (UpdateAssessmentInput, error) {
	var input UpdateAssessmentInput

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return UpdateAssessmentInput{}, errors.New("Name must be a non-empty string")
		}
		input.Name = &name
	}

	if req.Owner != nil {
		owner := strings.TrimSpace(*req.Owner)
		if owner == "" {
			return UpdateAssessmentInput{}, errors.New("Owner must be a non-empty string")
		}
		input.Owner = &owner
	}

	if err := v.Struct(req); err != nil {
		return UpdateAssessmentInput{}, enumError(err)
	}

	if req.Status != nil {
		status := domain.AssessmentStatus(*req.Status)
		input.Status = &status
	}
	if req.Priority != nil {
		priority := domain.AssessmentPriority(*req.Priority)
		input.Priority = &priority
	}
	return input, nil
}

// enumError maps a failed enum check to the public message for that field.
func enumError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].Field() {
		case "Status":
			return errors.New("Invalid status value")
		case "Priority":
			return errors.New("Invalid priority value")
		}
	}
	return errors.New("Invalid request body")
}

// List handles GET /assessments request.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	p := query.Params{SortBy: q.Get("sortBy")}
	if v := q.Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			p.Page = n
		}
	}
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			p.Limit = n
		}
	}
	if q.Get("sortOrder") == "asc" {
		p.Order = query.OrderAsc
	} else {
		p.Order = query.OrderDesc
	}

	result, err := h.service.List(r.Context(), p)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	httputil.JSON(w, http.StatusOK, result)
}

// Create handles POST /assessments request.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "Request body must be an object")
		return
	}

	input, err := req.Validate(h.validator)
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	assessment, err := h.service.Create(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	httputil.JSON(w, http.StatusCreated, assessment)
}

// Update handles PUT /assessments/{id} request.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "Request body must be an object")
		return
	}

	input, err := req.Validate(h.validator)
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	assessment, err := h.service.Update(r.Context(), id, input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	httputil.JSON(w, http.StatusOK, assessment)
}

// Delete handles DELETE /assessments/{id} request.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	httputil.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrAssessmentNotFound):
		httputil.Error(w, http.StatusNotFound, "Assessment not found")
	default:
		ctxlog.FromContext(r.Context()).Error("internal error", "error", err)
		httputil.Error(w, http.StatusInternalServerError, "internal error")
	}
}
