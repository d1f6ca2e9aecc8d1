package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"earthwords/internal/catalog"
	"earthwords/internal/lesson"
	"earthwords/internal/quiz"
	"earthwords/internal/scene"
)

func respondWithError(w http.ResponseWriter, status int, userMsg, logMsg string, err error) {
	if err != nil {
		if logMsg == "" {
			logMsg = userMsg
		}
		log.Printf("%s: %v", logMsg, err)
	}

	respondJSON(w, status, errorResponse{Error: userMsg})
}

type errorResponse struct {
	Error    string `json:"error"`
	Redirect string `json:"redirect,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// respondServiceError maps the domain sentinel errors onto HTTP responses.
// Unknown lesson words and quizzes answer with a redirect home.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, lesson.ErrSubjectNotFound):
		respondJSON(w, http.StatusNotFound, errorResponse{Error: ErrWordNotFound, Redirect: lesson.HomePath})
	case errors.Is(err, quiz.ErrQuizNotFound):
		respondJSON(w, http.StatusNotFound, errorResponse{Error: ErrQuizNotFound, Redirect: lesson.HomePath})
	case errors.Is(err, catalog.ErrUnknownChapter):
		respondWithError(w, http.StatusNotFound, ErrChapterNotFound, "", nil)
	case errors.Is(err, scene.ErrUnknownUnit):
		respondWithError(w, http.StatusNotFound, ErrUnitNotFound, "", nil)
	default:
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "", err)
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
