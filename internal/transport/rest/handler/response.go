package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"formbuilder/internal/model"
	"formbuilder/internal/service"
	"formbuilder/internal/transport/rest/middleware"
)

// ResponseHandler handles submission and review endpoints
type ResponseHandler struct {
	responseSvc *service.ResponseService
}

// NewResponseHandler creates a new response handler
func NewResponseHandler(responseSvc *service.ResponseService) *ResponseHandler {
	return &ResponseHandler{responseSvc: responseSvc}
}

// SubmitRequest is the request body for an anonymous submission
type SubmitRequest struct {
	Responses []model.AnswerEntry `json:"responses"`
}

// Submit handles POST /api/forms/{formId}/responses (public)
func (h *ResponseHandler) Submit(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["formId"]

	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.responseSvc.Submit(r.Context(), formID, req.Responses)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"message":    "response submitted successfully",
		"responseId": resp.ID,
	})
}

// List handles GET /api/forms/{formId}/responses (owner only)
func (h *ResponseHandler) List(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["formId"]
	userID := middleware.GetUserID(r.Context())

	review, err := h.responseSvc.ListForReview(r.Context(), userID, formID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, review)
}
