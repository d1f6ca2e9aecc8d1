package service

import (
	"earthwords/internal/lesson"
	"earthwords/internal/notify"
)

// LessonResult is the lesson after an action plus the notifications it raised
type LessonResult struct {
	Lesson        *lesson.View          `json:"lesson,omitempty"`
	Transition    *lesson.Transition    `json:"transition,omitempty"`
	Redirect      string                `json:"redirect,omitempty"`
	Notifications []notify.Notification `json:"notifications"`
}

// LessonService drives word lessons
type LessonService struct {
	workspaces *Workspaces
}

// NewLessonService creates a new lesson service
func NewLessonService(workspaces *Workspaces) *LessonService {
	return &LessonService{workspaces: workspaces}
}

// Open returns the current stage of a lesson, starting it if needed.
// lesson.ErrSubjectNotFound is returned for unknown words.
func (s *LessonService) Open(learnerID, wordID string) (*LessonResult, error) {
	var view lesson.View
	notes, err := s.workspaces.With(learnerID, func(ws *Workspace) error {
		m, err := ws.Lesson(wordID)
		if err != nil {
			return err
		}
		view = m.View()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &LessonResult{Lesson: &view, Notifications: notes}, nil
}

// Next advances the lesson
func (s *LessonService) Next(learnerID, wordID string) (*LessonResult, error) {
	return s.step(learnerID, wordID, (*lesson.Model).Advance)
}

// Previous goes back one stage
func (s *LessonService) Previous(learnerID, wordID string) (*LessonResult, error) {
	return s.step(learnerID, wordID, (*lesson.Model).Retreat)
}

// Exit leaves the lesson
func (s *LessonService) Exit(learnerID, wordID string) (*LessonResult, error) {
	return s.step(learnerID, wordID, (*lesson.Model).Exit)
}

func (s *LessonService) step(learnerID, wordID string, action func(*lesson.Model) lesson.Transition) (*LessonResult, error) {
	result := &LessonResult{}
	notes, err := s.workspaces.With(learnerID, func(ws *Workspace) error {
		m, err := ws.Lesson(wordID)
		if err != nil {
			return err
		}
		tr := action(m)
		result.Transition = &tr
		result.Redirect = tr.Redirect
		if tr.Kind == lesson.Moved {
			view := m.View()
			result.Lesson = &view
			return nil
		}
		ws.CloseLesson(wordID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	result.Notifications = notes
	return result, nil
}
