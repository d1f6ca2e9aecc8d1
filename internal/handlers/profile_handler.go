package handlers

import (
	"net/http"

	"earthwords/internal/security"
	"earthwords/internal/service"
)

// ProfileHandler serves learner progress and word content
type ProfileHandler struct {
	profiles *service.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profiles *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// Profile returns the learner summary
func (h *ProfileHandler) Profile(w http.ResponseWriter, r *http.Request) {
	p, err := h.profiles.Profile(GetLearnerFromContext(r.Context()))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// Chapter returns the word grid of a chapter
func (h *ProfileHandler) Chapter(w http.ResponseWriter, r *http.Request) {
	overview, err := h.profiles.Chapter(GetLearnerFromContext(r.Context()), r.PathValue("chapter"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, overview)
}

// Word returns the full content of a word
func (h *ProfileHandler) Word(w http.ResponseWriter, r *http.Request) {
	detail, err := h.profiles.Word(r.PathValue("wordId"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, detail)
}

// Reset forgets the learner cookie; the next request starts a new learner
func (h *ProfileHandler) Reset(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, security.CreateDeleteCookie(r))
	w.WriteHeader(http.StatusNoContent)
}
