package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"earthwords/internal/audio"
	"earthwords/internal/catalog"
	"earthwords/internal/lesson"
	"earthwords/internal/quiz"
	"earthwords/internal/scene"
	"earthwords/internal/storage"
)

type memoryStores struct {
	mu     sync.Mutex
	stores map[string]*storage.MemoryStore
}

func (m *memoryStores) open(learnerID string) storage.Store {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stores == nil {
		m.stores = make(map[string]*storage.MemoryStore)
	}
	s, ok := m.stores[learnerID]
	if !ok {
		s = storage.NewMemoryStore()
		m.stores[learnerID] = s
	}
	return s
}

func newTestWorkspaces() (*Workspaces, *catalog.Catalog, *memoryStores) {
	cat := catalog.Default()
	stores := &memoryStores{}
	return NewWorkspaces(cat, stores.open, nil), cat, stores
}

func completeWord(t *testing.T, lessons *LessonService, learnerID, wordID string) *LessonResult {
	t.Helper()
	var res *LessonResult
	var err error
	for i := 0; i < 4; i++ {
		res, err = lessons.Next(learnerID, wordID)
		if err != nil {
			t.Fatalf("Next(%s) error = %v", wordID, err)
		}
	}
	return res
}

func TestLessonServiceCompletesAndUnlocksSticker(t *testing.T) {
	ws, _, _ := newTestWorkspaces()
	lessons := NewLessonService(ws)
	scenes := NewSceneService(ws)

	if _, err := lessons.Open("alice", "pumice"); !errors.Is(err, lesson.ErrSubjectNotFound) {
		t.Errorf("Open(pumice) error = %v", err)
	}

	res := completeWord(t, lessons, "alice", "crust")
	if res.Transition.Kind != lesson.Completed || res.Redirect != "/earth-layers" {
		t.Fatalf("last Next() = %+v", res.Transition)
	}
	if len(res.Notifications) != 1 || res.Notifications[0].Title != "Word mastered!" {
		t.Errorf("notifications = %+v", res.Notifications)
	}

	// The closed lesson restarts at the first stage.
	opened, err := lessons.Open("alice", "crust")
	if err != nil || opened.Lesson.Stage != 0 {
		t.Errorf("Open() after completion = %+v, %v", opened, err)
	}

	sel, err := scenes.SelectTemplate("alice", "earth-unit", "crust")
	if err != nil {
		t.Fatal(err)
	}
	if sel.Scene.Armed != "crust" {
		t.Errorf("Armed = %q, want crust", sel.Scene.Armed)
	}
	placed, _ := scenes.Place("alice", "earth-unit")
	if len(placed.Scene.Stickers) != 1 || placed.Notifications[0].Title != "Sticker placed!" {
		t.Errorf("Place() = %+v", placed)
	}

	other, _ := scenes.SelectTemplate("bob", "earth-unit", "crust")
	if other.Scene.Armed != "" {
		t.Error("bob armed a sticker unlocked only by alice")
	}
}

func TestSceneServiceRejectsUnknownUnit(t *testing.T) {
	ws, _, _ := newTestWorkspaces()
	if _, err := NewSceneService(ws).View("alice", "plants-unit"); !errors.Is(err, scene.ErrUnknownUnit) {
		t.Errorf("View() error = %v, want ErrUnknownUnit", err)
	}
}

func TestSceneServiceDragFlow(t *testing.T) {
	ws, _, stores := newTestWorkspaces()
	lessons := NewLessonService(ws)
	scenes := NewSceneService(ws)
	completeWord(t, lessons, "alice", "volcano")

	scenes.SelectTemplate("alice", "earth-unit", "volcano")
	placed, _ := scenes.Place("alice", "earth-unit")
	key := placed.Scene.Stickers[0].Key

	scenes.BeginDrag("alice", "earth-unit", key)
	scenes.MoveDrag("alice", "earth-unit", key, pos(30, 40), bounds(200, 100))
	res, _ := scenes.EndDrag("alice", "earth-unit")
	if got := res.Scene.Stickers[0]; got.X != 15 || got.Y != 40 {
		t.Errorf("sticker at (%v, %v), want (15, 40)", got.X, got.Y)
	}

	res, _ = scenes.Scale("alice", "earth-unit", key, 5)
	if res.Scene.Stickers[0].Scale != 3 {
		t.Errorf("Scale = %v", res.Scene.Stickers[0].Scale)
	}

	res, _ = scenes.Save("alice", "earth-unit")
	if len(res.Notifications) != 1 || res.Notifications[0].Title != "Scene saved!" {
		t.Errorf("Save() notifications = %+v", res.Notifications)
	}

	if _, found, _ := stores.open("alice").GetBlob(storage.KeyPlacedStickers); !found {
		t.Error("scene not persisted")
	}
}

func TestQuizServiceFlow(t *testing.T) {
	ws, _, _ := newTestWorkspaces()
	quizzes := NewQuizService(ws)

	if _, err := quizzes.Open("alice", "history-quiz"); !errors.Is(err, quiz.ErrQuizNotFound) {
		t.Errorf("Open() error = %v", err)
	}

	res, err := quizzes.Answer("alice", catalog.QuizEarthGeography, "0")
	if err != nil || !res.Answer.Correct {
		t.Fatalf("Answer() = %+v, %v", res, err)
	}

	answers := []string{"1", "1", "0", "longitude", "atmosphere"}
	for _, a := range answers {
		quizzes.Next("alice", catalog.QuizEarthGeography)
		quizzes.Answer("alice", catalog.QuizEarthGeography, a)
	}
	res, _ = quizzes.Next("alice", catalog.QuizEarthGeography)
	if res.Transition.Kind != quiz.Finished || !res.Transition.Summary.Passed {
		t.Fatalf("finish = %+v", res.Transition)
	}
	if res.Redirect != "/earth-geography" {
		t.Errorf("Redirect = %q", res.Redirect)
	}

	reopened, _ := quizzes.Open("alice", catalog.QuizEarthGeography)
	if reopened.Quiz.Index != 0 || reopened.Quiz.Score != 0 {
		t.Errorf("reopened quiz = %+v", reopened.Quiz)
	}
}

func TestProfileService(t *testing.T) {
	ws, cat, _ := newTestWorkspaces()
	lessons := NewLessonService(ws)
	profiles := NewProfileService(ws, cat)

	completeWord(t, lessons, "alice", "crust")
	completeWord(t, lessons, "alice", "horizon")
	completeWord(t, lessons, "alice", "crust")

	p, err := profiles.Profile("alice")
	if err != nil {
		t.Fatal(err)
	}
	if p.WordsLearned != 2 || p.StreakDays != 1 || p.StickersCollected != 2 || p.StickersTotal != 17 {
		t.Errorf("profile = %+v", p)
	}

	overview, err := profiles.Chapter("alice", "earth-layers")
	if err != nil {
		t.Fatal(err)
	}
	if overview.Completed != 1 || overview.Total != 7 || overview.AllCompleted {
		t.Errorf("overview = %+v", overview)
	}
	if len(overview.Quizzes) != 1 || overview.Quizzes[0].Questions != 10 {
		t.Errorf("quizzes = %+v", overview.Quizzes)
	}

	if _, err := profiles.Chapter("alice", "oceans"); !errors.Is(err, catalog.ErrUnknownChapter) {
		t.Errorf("Chapter(oceans) error = %v", err)
	}

	detail, err := profiles.Word("erupt")
	if err != nil || detail.Chapter != "earth-layers" || len(detail.Stages) != 4 {
		t.Errorf("Word(erupt) = %+v, %v", detail, err)
	}
}

func TestEvictIdle(t *testing.T) {
	ws, _, _ := newTestWorkspaces()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	ws.now = func() time.Time { return now }

	ws.With("alice", func(*Workspace) error { return nil })
	now = now.Add(20 * time.Minute)
	ws.With("bob", func(*Workspace) error { return nil })
	now = now.Add(15 * time.Minute)

	evicted := ws.EvictIdle(30 * time.Minute)
	if len(evicted) != 1 || evicted[0] != "alice" {
		t.Errorf("EvictIdle() = %v, want [alice]", evicted)
	}
	if ws.Len() != 1 {
		t.Errorf("Len() = %d, want 1", ws.Len())
	}
}

func TestEvictIdleSkipsBusyWorkspace(t *testing.T) {
	ws, _, _ := newTestWorkspaces()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	ws.now = func() time.Time { return now }

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})
	go func() {
		ws.With("alice", func(*Workspace) error {
			close(started)
			<-release
			return nil
		})
		close(done)
	}()
	<-started

	now = now.Add(time.Hour)
	if evicted := ws.EvictIdle(time.Minute); len(evicted) != 0 {
		t.Errorf("EvictIdle() evicted a busy workspace: %v", evicted)
	}
	close(release)
	<-done
}

func TestEvictedLearnerResumesFromStorage(t *testing.T) {
	ws, _, _ := newTestWorkspaces()
	lessons := NewLessonService(ws)
	completeWord(t, lessons, "alice", "core")

	ws.now = func() time.Time { return time.Now().Add(time.Hour) }
	ws.EvictIdle(time.Minute)

	var completed []string
	ws.With("alice", func(w *Workspace) error {
		completed = w.Progress().Completed(catalog.ChapterEarthLayers)
		return nil
	})
	if len(completed) != 1 || completed[0] != "core" {
		t.Errorf("completed after eviction = %v", completed)
	}
}

func TestMediaService(t *testing.T) {
	cat := catalog.Default()
	media := NewMediaService(cat,
		audio.NewPronunciationService("http://127.0.0.1:0", "http://127.0.0.1:0", ""),
		audio.NewImageGenerator(5*time.Millisecond),
		audio.NewSpeechRecognizer(5*time.Millisecond),
	)

	if _, err := media.GenerateImage("alice", "pumice", 0); !errors.Is(err, lesson.ErrSubjectNotFound) {
		t.Errorf("GenerateImage(pumice) error = %v", err)
	}

	res, err := media.GenerateImage("alice", "crust", 1)
	if err != nil || res.State != audio.Pending {
		t.Fatalf("GenerateImage() = %+v, %v", res, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	img, _ := media.images.Tasks().Wait(ctx, "alice/crust")
	if img.Value.Sentence != "Continental crust is thicker than oceanic crust." {
		t.Errorf("image sentence = %q", img.Value.Sentence)
	}

	media.Recognize("alice", "crust")
	rec, _ := media.speech.Tasks().Wait(ctx, "alice/crust")
	if rec.State != audio.Ready || rec.Value.Text != "The Earth's crust varies in thickness." {
		t.Errorf("recognition = %+v", rec)
	}

	if n := media.Forget("alice"); n != 2 {
		t.Errorf("Forget() = %d, want 2", n)
	}
	if _, ok := media.Image("alice", "crust"); ok {
		t.Error("image task survived Forget")
	}

	p, err := media.Pronunciation(ctx, "crust")
	if err != nil || p.Source != audio.SourceDevice {
		t.Errorf("Pronunciation() = %+v, %v", p, err)
	}
}
