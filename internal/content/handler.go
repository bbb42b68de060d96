package content

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"quizdesk/internal/apperr"
	"quizdesk/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperr.Status(err)
	if status == http.StatusInternalServerError {
		config.WithContext(r.Context()).WithError(err).Error("content request failed")
		http.Error(w, "internal server error", status)
		return
	}
	config.JSON(w, status, map[string]string{"status": "error", "message": err.Error()})
}

func created(w http.ResponseWriter, id string) {
	config.JSON(w, http.StatusCreated, map[string]string{"status": "created", "id": id})
}

func deleted(w http.ResponseWriter, id string) {
	config.JSON(w, http.StatusOK, map[string]string{"status": "deleted", "id": id})
}

func updated(w http.ResponseWriter, id string) {
	config.JSON(w, http.StatusOK, map[string]string{"status": "updated", "id": id})
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

func (h *Handler) ListSubjects(w http.ResponseWriter, r *http.Request) {
	subjects, err := h.service.ListSubjects(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, subjects)
}

func (h *Handler) CreateSubject(w http.ResponseWriter, r *http.Request) {
	var dto CreateSubjectDTO
	if !decode(w, r, &dto) {
		return
	}
	subject, err := h.service.CreateSubject(r.Context(), dto)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	created(w, subject.ID.String())
}

func (h *Handler) GetSubject(w http.ResponseWriter, r *http.Request) {
	subject, err := h.service.GetSubject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, subject)
}

func (h *Handler) UpdateSubject(w http.ResponseWriter, r *http.Request) {
	var dto UpdateSubjectDTO
	if !decode(w, r, &dto) {
		return
	}
	subject, err := h.service.UpdateSubject(r.Context(), chi.URLParam(r, "id"), dto)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	updated(w, subject.ID.String())
}

func (h *Handler) DeleteSubject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.service.DeleteSubject(r.Context(), id); err != nil {
		h.respondError(w, r, err)
		return
	}
	deleted(w, id)
}

func (h *Handler) CreateChapter(w http.ResponseWriter, r *http.Request) {
	var dto CreateChapterDTO
	if !decode(w, r, &dto) {
		return
	}
	chapter, err := h.service.CreateChapter(r.Context(), dto)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	created(w, chapter.ID.String())
}

func (h *Handler) GetChapter(w http.ResponseWriter, r *http.Request) {
	chapter, err := h.service.GetChapter(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, chapter)
}

func (h *Handler) UpdateChapter(w http.ResponseWriter, r *http.Request) {
	var dto UpdateChapterDTO
	if !decode(w, r, &dto) {
		return
	}
	chapter, err := h.service.UpdateChapter(r.Context(), chi.URLParam(r, "id"), dto)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	updated(w, chapter.ID.String())
}

func (h *Handler) DeleteChapter(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.service.DeleteChapter(r.Context(), id); err != nil {
		h.respondError(w, r, err)
		return
	}
	deleted(w, id)
}

func (h *Handler) CreateQuiz(w http.ResponseWriter, r *http.Request) {
	var dto CreateQuizDTO
	if !decode(w, r, &dto) {
		return
	}
	quiz, err := h.service.CreateQuiz(r.Context(), dto)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	created(w, quiz.ID.String())
}

func (h *Handler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	quiz, err := h.service.GetQuiz(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, quiz)
}

func (h *Handler) UpdateQuiz(w http.ResponseWriter, r *http.Request) {
	var dto UpdateQuizDTO
	if !decode(w, r, &dto) {
		return
	}
	quiz, err := h.service.UpdateQuiz(r.Context(), chi.URLParam(r, "id"), dto)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	updated(w, quiz.ID.String())
}

func (h *Handler) DeleteQuiz(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.service.DeleteQuiz(r.Context(), id); err != nil {
		h.respondError(w, r, err)
		return
	}
	deleted(w, id)
}

func (h *Handler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var dto CreateQuestionDTO
	if !decode(w, r, &dto) {
		return
	}
	question, err := h.service.CreateQuestion(r.Context(), dto)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	created(w, question.ID.String())
}

func (h *Handler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	question, err := h.service.GetQuestion(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, question)
}

func (h *Handler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	var dto UpdateQuestionDTO
	if !decode(w, r, &dto) {
		return
	}
	question, err := h.service.UpdateQuestion(r.Context(), chi.URLParam(r, "id"), dto)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	updated(w, question.ID.String())
}

func (h *Handler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.service.DeleteQuestion(r.Context(), id); err != nil {
		h.respondError(w, r, err)
		return
	}
	deleted(w, id)
}
