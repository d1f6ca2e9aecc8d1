package service

import (
	"log"
	"sync"
	"time"

	"earthwords/internal/catalog"
	"earthwords/internal/lesson"
	"earthwords/internal/notify"
	"earthwords/internal/progress"
	"earthwords/internal/quiz"
	"earthwords/internal/scene"
	"earthwords/internal/storage"
)

// StoreOpener returns the persistence store of a learner
type StoreOpener func(learnerID string) storage.Store

// Workspace holds the live models of one learner. All access goes through
// Workspaces.With, which serializes it.
type Workspace struct {
	LearnerID string

	mu sync.Mutex
	// guarded by Workspaces.mu
	lastSeen time.Time

	catalog  *catalog.Catalog
	store    storage.Store
	notes    *notify.Recorder
	sink     notify.Sink
	progress *progress.Tracker
	scene    *scene.Model
	lessons  map[string]*lesson.Model
	quizzes  map[string]*quiz.Session
}

// Progress returns the learner's completion tracker
func (ws *Workspace) Progress() *progress.Tracker { return ws.progress }

// Scene returns the sticker scene switched to unit
func (ws *Workspace) Scene(unit string) (*scene.Model, error) {
	if !ws.catalog.HasUnit(unit) {
		return nil, scene.ErrUnknownUnit
	}
	if ws.scene == nil {
		ws.scene = scene.New(ws.store, ws.catalog, ws.progress, ws.sink, unit)
	}
	ws.scene.SelectUnit(unit)
	return ws.scene, nil
}

// Lesson returns the open lesson for a word, starting one if needed
func (ws *Workspace) Lesson(wordID string) (*lesson.Model, error) {
	if m, ok := ws.lessons[wordID]; ok {
		return m, nil
	}
	m, err := lesson.New(ws.catalog, ws.progress, ws.sink, wordID)
	if err != nil {
		return nil, err
	}
	ws.lessons[wordID] = m
	return m, nil
}

// CloseLesson forgets the open lesson for a word
func (ws *Workspace) CloseLesson(wordID string) {
	delete(ws.lessons, wordID)
}

// Quiz returns the running session of a quiz, starting one if needed
func (ws *Workspace) Quiz(quizID string) (*quiz.Session, error) {
	if s, ok := ws.quizzes[quizID]; ok {
		return s, nil
	}
	q, ok := ws.catalog.Quiz(quizID)
	if !ok {
		return nil, quiz.ErrQuizNotFound
	}
	s := quiz.New(q, ws.progress, ws.sink)
	ws.quizzes[quizID] = s
	return s, nil
}

// CloseQuiz forgets the running session of a quiz
func (ws *Workspace) CloseQuiz(quizID string) {
	delete(ws.quizzes, quizID)
}

// Workspaces keeps one workspace per active learner
type Workspaces struct {
	catalog *catalog.Catalog
	open    StoreOpener
	sink    notify.Sink
	now     func() time.Time

	mu    sync.Mutex
	items map[string]*Workspace
}

// NewWorkspaces creates an empty registry. sink receives every notification
// in addition to the per-request recorder.
func NewWorkspaces(cat *catalog.Catalog, open StoreOpener, sink notify.Sink) *Workspaces {
	if sink == nil {
		sink = notify.Discard
	}
	return &Workspaces{
		catalog: cat,
		open:    open,
		sink:    sink,
		now:     time.Now,
		items:   make(map[string]*Workspace),
	}
}

// With runs fn with exclusive access to the learner's workspace and returns
// the notifications emitted while it ran
func (w *Workspaces) With(learnerID string, fn func(ws *Workspace) error) ([]notify.Notification, error) {
	ws := w.get(learnerID)

	ws.mu.Lock()
	defer ws.mu.Unlock()

	err := fn(ws)
	return ws.notes.Drain(), err
}

// EvictIdle drops workspaces not used within ttl and returns their learner
// ids. Workspaces in use are skipped.
func (w *Workspaces) EvictIdle(ttl time.Duration) []string {
	cutoff := w.now().Add(-ttl)

	w.mu.Lock()
	defer w.mu.Unlock()

	var evicted []string
	for id, ws := range w.items {
		if !ws.mu.TryLock() {
			continue
		}
		if ws.lastSeen.Before(cutoff) {
			delete(w.items, id)
			evicted = append(evicted, id)
		}
		ws.mu.Unlock()
	}
	if len(evicted) > 0 {
		log.Printf("Evicted %d idle workspaces", len(evicted))
	}
	return evicted
}

// Len returns the number of live workspaces
func (w *Workspaces) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.items)
}

func (w *Workspaces) get(learnerID string) *Workspace {
	w.mu.Lock()
	defer w.mu.Unlock()

	if ws, ok := w.items[learnerID]; ok {
		ws.lastSeen = w.now()
		return ws
	}

	store := w.open(learnerID)
	notes := &notify.Recorder{}
	ws := &Workspace{
		LearnerID: learnerID,
		lastSeen:  w.now(),
		catalog:   w.catalog,
		store:     store,
		notes:     notes,
		sink:      notify.Multi{notes, w.sink},
		progress:  progress.NewTracker(store, w.now),
		lessons:   make(map[string]*lesson.Model),
		quizzes:   make(map[string]*quiz.Session),
	}
	w.items[learnerID] = ws
	return ws
}
