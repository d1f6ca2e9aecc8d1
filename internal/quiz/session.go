// Package quiz runs a quiz: a running index over the flattened questions,
// one judgement per question, and a summary at the end.
package quiz

import (
	"errors"
	"fmt"

	"earthwords/internal/models"
	"earthwords/internal/notify"
)

// ErrQuizNotFound is returned for an unknown quiz id
var ErrQuizNotFound = errors.New("quiz not found")

// Progress stores quiz completion flags
type Progress interface {
	QuizCompleted(key string) bool
	MarkQuizCompleted(key string)
}

// Answer is the recorded judgement for one question
type Answer struct {
	Given   string `json:"given"`
	Correct bool   `json:"correct"`
}

// Summary is the result of a quiz
type Summary struct {
	Score     int  `json:"score"`
	Total     int  `json:"total"`
	Passed    bool `json:"passed"`
	Completed bool `json:"completed"`
}

// TransitionKind is the outcome of a navigation action
type TransitionKind string

const (
	Moved    TransitionKind = "moved"
	Exited   TransitionKind = "exited"
	Finished TransitionKind = "finished"
)

// Transition reports what Next or Previous did
type Transition struct {
	Kind     TransitionKind `json:"kind"`
	Index    int            `json:"index"`
	Redirect string         `json:"redirect,omitempty"`
	Summary  *Summary       `json:"summary,omitempty"`
}

// Session is one learner's run through a quiz. It is not safe for concurrent use.
type Session struct {
	quiz      *models.Quiz
	questions []models.Question
	progress  Progress
	sink      notify.Sink

	index   int
	answers map[int]Answer
	score   int
}

// New starts a session at the first question
func New(quiz *models.Quiz, progress Progress, sink notify.Sink) *Session {
	if sink == nil {
		sink = notify.Discard
	}
	return &Session{
		quiz:      quiz,
		questions: quiz.Questions(),
		progress:  progress,
		sink:      sink,
		answers:   make(map[int]Answer),
	}
}

// Index returns the zero-based position in the flattened question list
func (s *Session) Index() int { return s.index }

// Total returns the number of questions
func (s *Session) Total() int { return len(s.questions) }

// Score returns the number of questions judged correct so far
func (s *Session) Score() int { return s.score }

// Current returns the question at the running index
func (s *Session) Current() (models.Question, bool) {
	if s.index < 0 || s.index >= len(s.questions) {
		return models.Question{}, false
	}
	return s.questions[s.index], true
}

// Submit judges an answer to the current question. A question is judged
// once; later submissions return the first judgement and report false.
func (s *Session) Submit(answer string) (Answer, bool) {
	if prev, ok := s.answers[s.index]; ok {
		return prev, false
	}
	q, ok := s.Current()
	if !ok {
		return Answer{}, false
	}
	a := Answer{Given: answer, Correct: Grade(q, answer)}
	s.answers[s.index] = a
	if a.Correct {
		s.score++
	}
	return a, true
}

// Answered returns the judgement recorded for the current question
func (s *Session) Answered() (Answer, bool) {
	a, ok := s.answers[s.index]
	return a, ok
}

// Next moves to the following question, or finishes the quiz from the last one
func (s *Session) Next() Transition {
	if s.index < len(s.questions)-1 {
		s.index++
		return Transition{Kind: Moved, Index: s.index}
	}
	summary := s.finish()
	return Transition{Kind: Finished, Index: s.index, Redirect: s.parentPath(), Summary: &summary}
}

// Previous moves back one question, or leaves the quiz from the first one
func (s *Session) Previous() Transition {
	if s.index > 0 {
		s.index--
		return Transition{Kind: Moved, Index: s.index}
	}
	return Transition{Kind: Exited, Index: s.index, Redirect: s.parentPath()}
}

// Summary reports the current score without finishing the quiz
func (s *Session) Summary() Summary {
	return Summary{
		Score:     s.score,
		Total:     len(s.questions),
		Passed:    s.passed(),
		Completed: s.progress.QuizCompleted(s.quiz.CompletionKey),
	}
}

func (s *Session) passed() bool {
	if s.quiz.RequirePerfectScore {
		return s.score == len(s.questions)
	}
	return true
}

func (s *Session) finish() Summary {
	if s.passed() {
		s.progress.MarkQuizCompleted(s.quiz.CompletionKey)
		s.sink.Notify(notify.Notification{
			Kind:        notify.KindCelebration,
			Title:       "Quiz complete!",
			Description: fmt.Sprintf("You scored %d out of %d.", s.score, len(s.questions)),
		})
	} else {
		s.sink.Notify(notify.Notification{
			Kind:        notify.KindSuccess,
			Title:       "Almost there!",
			Description: fmt.Sprintf("You scored %d out of %d. Get every question right to complete this quiz.", s.score, len(s.questions)),
		})
	}
	return s.Summary()
}

func (s *Session) parentPath() string {
	return "/" + s.quiz.Chapter
}

// View is the render state of a quiz session. Correct answers are never included.
type View struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Section  string          `json:"section"`
	Index    int             `json:"index"`
	Total    int             `json:"total"`
	Question models.Question `json:"question"`
	Answer   *Answer         `json:"answer,omitempty"`
	Score    int             `json:"score"`
}

// View builds the render state for the current question
func (s *Session) View() View {
	v := View{
		ID:    s.quiz.ID,
		Title: s.quiz.Title,
		Index: s.index,
		Total: len(s.questions),
		Score: s.score,
	}
	if q, ok := s.Current(); ok {
		v.Question = q
	}
	if a, ok := s.answers[s.index]; ok {
		v.Answer = &a
	}

	n := s.index
	for _, section := range s.quiz.Sections {
		if n < len(section.Questions) {
			v.Section = section.Title
			break
		}
		n -= len(section.Questions)
	}
	return v
}
