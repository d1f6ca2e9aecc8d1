package handlers

import (
	"net/http"

	"earthwords/internal/service"
)

// MediaHandler serves pronunciations and the image and speech tasks
type MediaHandler struct {
	media *service.MediaService
}

// NewMediaHandler creates a new media handler
func NewMediaHandler(media *service.MediaService) *MediaHandler {
	return &MediaHandler{media: media}
}

type imageRequest struct {
	Sentence int `json:"sentence"`
}

// Pronunciation resolves the audio source of a word
func (h *MediaHandler) Pronunciation(w http.ResponseWriter, r *http.Request) {
	p, err := h.media.Pronunciation(r.Context(), r.PathValue("wordId"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// GenerateImage starts or restarts the illustration of a sentence. The body
// is optional.
func (h *MediaHandler) GenerateImage(w http.ResponseWriter, r *http.Request) {
	var req imageRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(w, r, &req); err != nil {
			respondWithError(w, http.StatusBadRequest, ErrInvalidRequest, "", err)
			return
		}
	}
	res, err := h.media.GenerateImage(GetLearnerFromContext(r.Context()), r.PathValue("wordId"), req.Sentence)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusAccepted, res)
}

// Image reports the image task of a word
func (h *MediaHandler) Image(w http.ResponseWriter, r *http.Request) {
	res, ok := h.media.Image(GetLearnerFromContext(r.Context()), r.PathValue("wordId"))
	if !ok {
		respondWithError(w, http.StatusNotFound, ErrNotStarted, "", nil)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// StartSpeech starts a recognition of the word's example sentence
func (h *MediaHandler) StartSpeech(w http.ResponseWriter, r *http.Request) {
	res, err := h.media.Recognize(GetLearnerFromContext(r.Context()), r.PathValue("wordId"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusAccepted, res)
}

// Speech reports the recognition task of a word
func (h *MediaHandler) Speech(w http.ResponseWriter, r *http.Request) {
	res, ok := h.media.Recognition(GetLearnerFromContext(r.Context()), r.PathValue("wordId"))
	if !ok {
		respondWithError(w, http.StatusNotFound, ErrNotStarted, "", nil)
		return
	}
	respondJSON(w, http.StatusOK, res)
}
