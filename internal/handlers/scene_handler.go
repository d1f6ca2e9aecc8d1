package handlers

import (
	"net/http"

	"earthwords/internal/models"
	"earthwords/internal/service"
)

// SceneHandler handles sticker scene requests
type SceneHandler struct {
	scenes *service.SceneService
}

// NewSceneHandler creates a new scene handler
func NewSceneHandler(scenes *service.SceneService) *SceneHandler {
	return &SceneHandler{scenes: scenes}
}

type selectRequest struct {
	TemplateID string `json:"templateId"`
}

type dragMoveRequest struct {
	X      float64       `json:"x"`
	Y      float64       `json:"y"`
	Bounds models.Bounds `json:"bounds"`
}

type scaleRequest struct {
	Delta float64 `json:"delta"`
}

func (h *SceneHandler) respond(w http.ResponseWriter, res *service.SceneResult, err error) {
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// View returns the scene of a unit
func (h *SceneHandler) View(w http.ResponseWriter, r *http.Request) {
	res, err := h.scenes.View(GetLearnerFromContext(r.Context()), r.PathValue("unit"))
	h.respond(w, res, err)
}

// Select arms or disarms a sticker template
func (h *SceneHandler) Select(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if err := decodeJSON(w, r, &req); err != nil || req.TemplateID == "" {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequest, "", err)
		return
	}
	res, err := h.scenes.SelectTemplate(GetLearnerFromContext(r.Context()), r.PathValue("unit"), req.TemplateID)
	h.respond(w, res, err)
}

// Place drops the armed template in the middle of the scene
func (h *SceneHandler) Place(w http.ResponseWriter, r *http.Request) {
	res, err := h.scenes.Place(GetLearnerFromContext(r.Context()), r.PathValue("unit"))
	h.respond(w, res, err)
}

// Deselect clears the edited sticker
func (h *SceneHandler) Deselect(w http.ResponseWriter, r *http.Request) {
	res, err := h.scenes.Deselect(GetLearnerFromContext(r.Context()), r.PathValue("unit"))
	h.respond(w, res, err)
}

// Edit selects a placed sticker for editing
func (h *SceneHandler) Edit(w http.ResponseWriter, r *http.Request) {
	res, err := h.scenes.Edit(GetLearnerFromContext(r.Context()), r.PathValue("unit"), r.PathValue("key"))
	h.respond(w, res, err)
}

// DragStart begins dragging a placed sticker
func (h *SceneHandler) DragStart(w http.ResponseWriter, r *http.Request) {
	res, err := h.scenes.BeginDrag(GetLearnerFromContext(r.Context()), r.PathValue("unit"), r.PathValue("key"))
	h.respond(w, res, err)
}

// DragMove moves the dragged sticker under the pointer
func (h *SceneHandler) DragMove(w http.ResponseWriter, r *http.Request) {
	var req dragMoveRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequest, "", err)
		return
	}
	pointer := models.Position{X: req.X, Y: req.Y}
	res, err := h.scenes.MoveDrag(GetLearnerFromContext(r.Context()), r.PathValue("unit"), r.PathValue("key"), pointer, req.Bounds)
	h.respond(w, res, err)
}

// DragEnd finishes a drag and persists the new position
func (h *SceneHandler) DragEnd(w http.ResponseWriter, r *http.Request) {
	res, err := h.scenes.EndDrag(GetLearnerFromContext(r.Context()), r.PathValue("unit"))
	h.respond(w, res, err)
}

// Scale changes the size of a placed sticker
func (h *SceneHandler) Scale(w http.ResponseWriter, r *http.Request) {
	var req scaleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequest, "", err)
		return
	}
	res, err := h.scenes.Scale(GetLearnerFromContext(r.Context()), r.PathValue("unit"), r.PathValue("key"), req.Delta)
	h.respond(w, res, err)
}

// Duplicate copies a placed sticker
func (h *SceneHandler) Duplicate(w http.ResponseWriter, r *http.Request) {
	res, err := h.scenes.Duplicate(GetLearnerFromContext(r.Context()), r.PathValue("unit"), r.PathValue("key"))
	h.respond(w, res, err)
}

// Remove deletes a placed sticker
func (h *SceneHandler) Remove(w http.ResponseWriter, r *http.Request) {
	res, err := h.scenes.Remove(GetLearnerFromContext(r.Context()), r.PathValue("unit"), r.PathValue("key"))
	h.respond(w, res, err)
}

// Save writes the scene to storage
func (h *SceneHandler) Save(w http.ResponseWriter, r *http.Request) {
	res, err := h.scenes.Save(GetLearnerFromContext(r.Context()), r.PathValue("unit"))
	h.respond(w, res, err)
}
