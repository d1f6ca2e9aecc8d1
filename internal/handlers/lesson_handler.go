package handlers

import (
	"net/http"

	"earthwords/internal/service"
)

// LessonHandler handles word lesson requests
type LessonHandler struct {
	lessons *service.LessonService
}

// NewLessonHandler creates a new lesson handler
func NewLessonHandler(lessons *service.LessonService) *LessonHandler {
	return &LessonHandler{lessons: lessons}
}

func (h *LessonHandler) respond(w http.ResponseWriter, res *service.LessonResult, err error) {
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// Open returns the current stage of the lesson
func (h *LessonHandler) Open(w http.ResponseWriter, r *http.Request) {
	res, err := h.lessons.Open(GetLearnerFromContext(r.Context()), r.PathValue("wordId"))
	h.respond(w, res, err)
}

// Next advances to the next stage, completing the word after the last one
func (h *LessonHandler) Next(w http.ResponseWriter, r *http.Request) {
	res, err := h.lessons.Next(GetLearnerFromContext(r.Context()), r.PathValue("wordId"))
	h.respond(w, res, err)
}

// Previous goes back one stage
func (h *LessonHandler) Previous(w http.ResponseWriter, r *http.Request) {
	res, err := h.lessons.Previous(GetLearnerFromContext(r.Context()), r.PathValue("wordId"))
	h.respond(w, res, err)
}

// Exit leaves the lesson for the chapter page
func (h *LessonHandler) Exit(w http.ResponseWriter, r *http.Request) {
	res, err := h.lessons.Exit(GetLearnerFromContext(r.Context()), r.PathValue("wordId"))
	h.respond(w, res, err)
}
