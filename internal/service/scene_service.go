package service

import (
	"log"

	"earthwords/internal/models"
	"earthwords/internal/notify"
	"earthwords/internal/scene"
)

// SceneResult is the scene after an operation plus the notifications it raised
type SceneResult struct {
	Scene         scene.View            `json:"scene"`
	Notifications []notify.Notification `json:"notifications"`
}

// SceneService drives learners' sticker scenes
type SceneService struct {
	workspaces *Workspaces
}

// NewSceneService creates a new scene service
func NewSceneService(workspaces *Workspaces) *SceneService {
	return &SceneService{workspaces: workspaces}
}

func (s *SceneService) apply(learnerID, unit string, fn func(m *scene.Model)) (*SceneResult, error) {
	var view scene.View
	notes, err := s.workspaces.With(learnerID, func(ws *Workspace) error {
		m, err := ws.Scene(unit)
		if err != nil {
			return err
		}
		fn(m)
		view = m.View()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &SceneResult{Scene: view, Notifications: notes}, nil
}

// View returns the scene of unit
func (s *SceneService) View(learnerID, unit string) (*SceneResult, error) {
	return s.apply(learnerID, unit, func(*scene.Model) {})
}

// SelectTemplate toggles the template armed for placement
func (s *SceneService) SelectTemplate(learnerID, unit, templateID string) (*SceneResult, error) {
	return s.apply(learnerID, unit, func(m *scene.Model) { m.SelectTemplate(templateID) })
}

// Place adds the armed template to the scene
func (s *SceneService) Place(learnerID, unit string) (*SceneResult, error) {
	return s.apply(learnerID, unit, func(m *scene.Model) { m.PlaceSelected() })
}

// Deselect leaves edit mode
func (s *SceneService) Deselect(learnerID, unit string) (*SceneResult, error) {
	return s.apply(learnerID, unit, func(m *scene.Model) { m.Deselect() })
}

// BeginDrag starts dragging key
func (s *SceneService) BeginDrag(learnerID, unit, key string) (*SceneResult, error) {
	return s.apply(learnerID, unit, func(m *scene.Model) { m.BeginDrag(key) })
}

// MoveDrag moves the drag target to pointer within bounds
func (s *SceneService) MoveDrag(learnerID, unit, key string, pointer models.Position, bounds models.Bounds) (*SceneResult, error) {
	return s.apply(learnerID, unit, func(m *scene.Model) { m.ContinueDrag(key, pointer, bounds) })
}

// Edit puts a placed sticker into edit mode
func (s *SceneService) Edit(learnerID, unit, key string) (*SceneResult, error) {
	return s.apply(learnerID, unit, func(m *scene.Model) { m.Edit(key) })
}

// EndDrag finishes the current drag
func (s *SceneService) EndDrag(learnerID, unit string) (*SceneResult, error) {
	return s.apply(learnerID, unit, func(m *scene.Model) { m.EndDrag() })
}

// Scale changes the size of key by delta
func (s *SceneService) Scale(learnerID, unit, key string, delta float64) (*SceneResult, error) {
	return s.apply(learnerID, unit, func(m *scene.Model) { m.Scale(key, delta) })
}

// Duplicate copies key
func (s *SceneService) Duplicate(learnerID, unit, key string) (*SceneResult, error) {
	return s.apply(learnerID, unit, func(m *scene.Model) { m.Duplicate(key) })
}

// Remove deletes key
func (s *SceneService) Remove(learnerID, unit, key string) (*SceneResult, error) {
	return s.apply(learnerID, unit, func(m *scene.Model) { m.Remove(key) })
}

// Save persists all scenes. Storage failures are logged, not returned.
func (s *SceneService) Save(learnerID, unit string) (*SceneResult, error) {
	return s.apply(learnerID, unit, func(m *scene.Model) {
		if err := m.Save(); err != nil {
			log.Printf("Failed to save scene for learner %s: %v", learnerID, err)
		}
	})
}
