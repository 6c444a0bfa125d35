package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"formbuilder/internal/model"
	"formbuilder/internal/service"
	"formbuilder/internal/transport/rest/middleware"
)

// FormHandler handles form endpoints
type FormHandler struct {
	formSvc *service.FormService
}

// NewFormHandler creates a new form handler
func NewFormHandler(formSvc *service.FormService) *FormHandler {
	return &FormHandler{formSvc: formSvc}
}

// FormRequest is the request body for creating or updating a form
type FormRequest struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	HeaderImage string           `json:"headerImage"`
	Questions   []model.Question `json:"questions"`
}

// Create handles POST /api/forms
func (h *FormHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req FormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	form := &model.Form{
		Title:       req.Title,
		Description: req.Description,
		HeaderImage: req.HeaderImage,
		CreatedBy:   userID,
		Questions:   req.Questions,
	}

	if _, err := h.formSvc.Create(r.Context(), form); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, form)
}

// Get handles GET /api/forms/{formId} (public: respondents load forms by id)
func (h *FormHandler) Get(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["formId"]

	form, err := h.formSvc.GetByID(r.Context(), formID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if form == nil {
		writeError(w, http.StatusNotFound, "form not found")
		return
	}

	writeJSON(w, http.StatusOK, form)
}

// Render handles GET /api/forms/{formId}/render (public: sanitized fill view)
func (h *FormHandler) Render(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["formId"]

	rendered, err := h.formSvc.Render(r.Context(), formID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, rendered)
}

// List handles GET /api/forms
func (h *FormHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	forms, err := h.formSvc.ListByOwner(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if forms == nil {
		forms = []*model.Form{}
	}

	writeJSON(w, http.StatusOK, forms)
}

// Update handles PUT /api/forms/{formId}
func (h *FormHandler) Update(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["formId"]
	userID := middleware.GetUserID(r.Context())

	var req FormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	form := &model.Form{
		ID:          formID,
		Title:       req.Title,
		Description: req.Description,
		HeaderImage: req.HeaderImage,
		Questions:   req.Questions,
	}

	if err := h.formSvc.Update(r.Context(), userID, form); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, form)
}

// Delete handles DELETE /api/forms/{formId}
func (h *FormHandler) Delete(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["formId"]
	userID := middleware.GetUserID(r.Context())

	if err := h.formSvc.Delete(r.Context(), userID, formID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "form and all associated responses deleted"})
}
