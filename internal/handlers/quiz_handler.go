package handlers

import (
	"net/http"

	"earthwords/internal/service"
	"earthwords/internal/validation"
)

// QuizHandler handles quiz requests
type QuizHandler struct {
	quizzes *service.QuizService
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(quizzes *service.QuizService) *QuizHandler {
	return &QuizHandler{quizzes: quizzes}
}

type answerRequest struct {
	Answer string `json:"answer"`
}

func (h *QuizHandler) respond(w http.ResponseWriter, res *service.QuizResult, err error) {
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// Open returns the current question
func (h *QuizHandler) Open(w http.ResponseWriter, r *http.Request) {
	res, err := h.quizzes.Open(GetLearnerFromContext(r.Context()), r.PathValue("quizId"))
	h.respond(w, res, err)
}

// Answer checks an answer to the current question
func (h *QuizHandler) Answer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequest, "", err)
		return
	}
	if err := validation.ValidateAnswer(req.Answer); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
		return
	}
	res, err := h.quizzes.Answer(GetLearnerFromContext(r.Context()), r.PathValue("quizId"), req.Answer)
	h.respond(w, res, err)
}

// Next moves to the next question or finishes the quiz
func (h *QuizHandler) Next(w http.ResponseWriter, r *http.Request) {
	res, err := h.quizzes.Next(GetLearnerFromContext(r.Context()), r.PathValue("quizId"))
	h.respond(w, res, err)
}

// Previous moves back one question
func (h *QuizHandler) Previous(w http.ResponseWriter, r *http.Request) {
	res, err := h.quizzes.Previous(GetLearnerFromContext(r.Context()), r.PathValue("quizId"))
	h.respond(w, res, err)
}
