package service

import (
	"earthwords/internal/notify"
	"earthwords/internal/quiz"
)

// QuizResult is the quiz after an action plus the notifications it raised
type QuizResult struct {
	Quiz          *quiz.View            `json:"quiz,omitempty"`
	Answer        *quiz.Answer          `json:"answer,omitempty"`
	Transition    *quiz.Transition      `json:"transition,omitempty"`
	Redirect      string                `json:"redirect,omitempty"`
	Notifications []notify.Notification `json:"notifications"`
}

// QuizService runs quizzes
type QuizService struct {
	workspaces *Workspaces
}

// NewQuizService creates a new quiz service
func NewQuizService(workspaces *Workspaces) *QuizService {
	return &QuizService{workspaces: workspaces}
}

// Open returns the current question, starting a session if needed
func (s *QuizService) Open(learnerID, quizID string) (*QuizResult, error) {
	result := &QuizResult{}
	notes, err := s.workspaces.With(learnerID, func(ws *Workspace) error {
		session, err := ws.Quiz(quizID)
		if err != nil {
			return err
		}
		view := session.View()
		result.Quiz = &view
		return nil
	})
	if err != nil {
		return nil, err
	}
	result.Notifications = notes
	return result, nil
}

// Answer judges an answer to the current question
func (s *QuizService) Answer(learnerID, quizID, answer string) (*QuizResult, error) {
	result := &QuizResult{}
	notes, err := s.workspaces.With(learnerID, func(ws *Workspace) error {
		session, err := ws.Quiz(quizID)
		if err != nil {
			return err
		}
		a, _ := session.Submit(answer)
		result.Answer = &a
		view := session.View()
		result.Quiz = &view
		return nil
	})
	if err != nil {
		return nil, err
	}
	result.Notifications = notes
	return result, nil
}

// Next moves to the next question or finishes the quiz
func (s *QuizService) Next(learnerID, quizID string) (*QuizResult, error) {
	return s.step(learnerID, quizID, (*quiz.Session).Next)
}

// Previous moves back one question or leaves the quiz
func (s *QuizService) Previous(learnerID, quizID string) (*QuizResult, error) {
	return s.step(learnerID, quizID, (*quiz.Session).Previous)
}

func (s *QuizService) step(learnerID, quizID string, action func(*quiz.Session) quiz.Transition) (*QuizResult, error) {
	result := &QuizResult{}
	notes, err := s.workspaces.With(learnerID, func(ws *Workspace) error {
		session, err := ws.Quiz(quizID)
		if err != nil {
			return err
		}
		tr := action(session)
		result.Transition = &tr
		result.Redirect = tr.Redirect
		if tr.Kind == quiz.Moved {
			view := session.View()
			result.Quiz = &view
			return nil
		}
		ws.CloseQuiz(quizID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	result.Notifications = notes
	return result, nil
}
