package result

import (
	"encoding/json"
	"net/http"

	"quizdesk/internal/apperr"
	"quizdesk/internal/auth"
	"quizdesk/internal/config"
	"quizdesk/internal/user"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// RecordResult stores a quiz attempt. Students record against their own
// profile; staff and admins name the student explicitly.
func (h *Handler) RecordResult(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var dto RecordResultDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	var res *StudentResult
	if claims.Role == user.RoleStudent {
		res, err = h.service.RecordForUser(r.Context(), claims.UserID, dto)
	} else {
		res, err = h.service.Record(r.Context(), dto)
	}
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	config.JSON(w, http.StatusCreated, map[string]string{"status": "created", "id": res.ID.String()})
}

// ListResults answers all results for staff/admin sessions and the session
// student's own results otherwise.
func (h *Handler) ListResults(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var results []StudentResult
	if claims.Role == user.RoleStudent {
		results, err = h.service.ListForUser(r.Context(), claims.UserID)
	} else {
		results, err = h.service.ListAll(r.Context())
	}
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, results)
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperr.Status(err)
	if status == http.StatusInternalServerError {
		config.WithContext(r.Context()).WithError(err).Error("result request failed")
		http.Error(w, "internal server error", status)
		return
	}
	config.JSON(w, status, map[string]string{"status": "error", "message": err.Error()})
}
