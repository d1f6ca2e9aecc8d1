// Package lesson drives a learner through the stages of one word and commits
// the completion record when the last stage is passed.
package lesson

import (
	"errors"
	"fmt"
	"slices"

	"earthwords/internal/catalog"
	"earthwords/internal/models"
	"earthwords/internal/notify"
)

// ErrSubjectNotFound means the requested word is not in the catalog.
// Callers send the learner to HomePath.
var ErrSubjectNotFound = errors.New("subject not found")

// HomePath is where learners land after an unknown subject or a lesson that
// belongs to no chapter
const HomePath = "/"

// Catalog supplies lesson content
type Catalog interface {
	Word(id string) (models.Word, bool)
	Stages() []models.Stage
	ChapterOf(subjectID string) (catalog.Chapter, bool)
	ChapterWords(ch catalog.Chapter) []string
}

// Progress records completions
type Progress interface {
	MarkCompleted(ch catalog.Chapter, subjectID string) bool
	RecordActivity() bool
	Completed(ch catalog.Chapter) []string
}

// TransitionKind is the outcome of a navigation action
type TransitionKind string

const (
	Moved     TransitionKind = "moved"
	Exited    TransitionKind = "exited"
	Completed TransitionKind = "completed"
)

// Transition reports what a navigation action did. Redirect is set when
// control leaves the lesson.
type Transition struct {
	Kind     TransitionKind `json:"kind"`
	Stage    int            `json:"stage"`
	Redirect string         `json:"redirect,omitempty"`
}

// Model is the lesson state of one subject. It is not safe for concurrent use.
type Model struct {
	catalog  Catalog
	progress Progress
	sink     notify.Sink

	subject string
	word    models.Word
	stages  []models.Stage
	stage   int
}

// New opens a lesson at the first stage
func New(cat Catalog, progress Progress, sink notify.Sink, subjectID string) (*Model, error) {
	word, ok := cat.Word(subjectID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSubjectNotFound, subjectID)
	}
	stages := cat.Stages()
	if len(stages) == 0 {
		return nil, fmt.Errorf("lesson %q has no stages", subjectID)
	}
	if sink == nil {
		sink = notify.Discard
	}
	return &Model{
		catalog:  cat,
		progress: progress,
		sink:     sink,
		subject:  subjectID,
		word:     word,
		stages:   stages,
	}, nil
}

// Subject returns the word id of the lesson
func (m *Model) Subject() string { return m.subject }

// Stage returns the zero-based current stage
func (m *Model) Stage() int { return m.stage }

// StageCount returns the number of stages
func (m *Model) StageCount() int { return len(m.stages) }

// Advance moves to the next stage. From the last stage it completes the
// lesson and returns to the chapter overview; the lesson stays on the last
// stage so a repeated Advance completes again without duplicating records.
func (m *Model) Advance() Transition {
	if m.stage < len(m.stages)-1 {
		m.stage++
		return Transition{Kind: Moved, Stage: m.stage}
	}
	return m.complete()
}

// Retreat moves to the previous stage, or leaves the lesson from the first one
func (m *Model) Retreat() Transition {
	if m.stage > 0 {
		m.stage--
		return Transition{Kind: Moved, Stage: m.stage}
	}
	return m.Exit()
}

// Exit leaves the lesson without recording anything
func (m *Model) Exit() Transition {
	return Transition{Kind: Exited, Stage: m.stage, Redirect: m.parentPath()}
}

func (m *Model) complete() Transition {
	ch, ok := m.catalog.ChapterOf(m.subject)
	if ok {
		added := m.progress.MarkCompleted(ch, m.subject)
		m.progress.RecordActivity()

		m.sink.Notify(notify.Notification{
			Kind:        notify.KindMastered,
			Title:       "Word mastered!",
			Description: fmt.Sprintf("You've mastered %q.", m.word.Word),
		})
		if added && chapterDone(m.catalog.ChapterWords(ch), m.progress.Completed(ch)) {
			m.sink.Notify(notify.Notification{
				Kind:        notify.KindCelebration,
				Title:       "Congratulations!",
				Description: "You've completed all the words in this section!",
			})
		}
	}
	return Transition{Kind: Completed, Stage: m.stage, Redirect: m.parentPath()}
}

func (m *Model) parentPath() string {
	if ch, ok := m.catalog.ChapterOf(m.subject); ok {
		return ch.Path()
	}
	return HomePath
}

func chapterDone(words, completed []string) bool {
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		if !slices.Contains(completed, w) {
			return false
		}
	}
	return true
}

// View is the render state of a lesson
type View struct {
	Subject    string         `json:"subject"`
	Chapter    string         `json:"chapter,omitempty"`
	Word       models.Word    `json:"word"`
	Stage      int            `json:"stage"`
	StageCount int            `json:"stageCount"`
	Current    models.Stage   `json:"current"`
	Stages     []models.Stage `json:"stages"`
}

// View builds the render state for the current stage
func (m *Model) View() View {
	v := View{
		Subject:    m.subject,
		Word:       m.word,
		Stage:      m.stage,
		StageCount: len(m.stages),
		Current:    m.stages[m.stage],
		Stages:     m.stages,
	}
	if ch, ok := m.catalog.ChapterOf(m.subject); ok {
		v.Chapter = string(ch)
	}
	return v
}
