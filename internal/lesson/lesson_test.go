package lesson

import (
	"errors"
	"testing"
	"time"

	"earthwords/internal/catalog"
	"earthwords/internal/notify"
	"earthwords/internal/progress"
	"earthwords/internal/storage"
)

func newTracker(store storage.Store) *progress.Tracker {
	return progress.NewTracker(store, func() time.Time {
		return time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	})
}

func openAt(t *testing.T, m *Model, stage int) {
	t.Helper()
	for m.Stage() < stage {
		if tr := m.Advance(); tr.Kind != Moved {
			t.Fatalf("Advance() = %+v while moving to stage %d", tr, stage)
		}
	}
}

func TestUnknownSubject(t *testing.T) {
	tracker := newTracker(storage.NewMemoryStore())
	_, err := New(catalog.Default(), tracker, nil, "pumice")
	if !errors.Is(err, ErrSubjectNotFound) {
		t.Errorf("New() error = %v, want ErrSubjectNotFound", err)
	}
}

func TestProgressionBounds(t *testing.T) {
	tracker := newTracker(storage.NewMemoryStore())
	m, err := New(catalog.Default(), tracker, nil, "crust")
	if err != nil {
		t.Fatal(err)
	}

	tr := m.Retreat()
	if tr.Kind != Exited || tr.Redirect != "/earth-layers" {
		t.Errorf("Retreat() at stage 0 = %+v", tr)
	}
	if m.Stage() != 0 {
		t.Errorf("Stage() = %d after retreat at 0", m.Stage())
	}
	if len(tracker.Completed(catalog.ChapterEarthLayers)) != 0 {
		t.Error("retreat from stage 0 recorded a completion")
	}

	openAt(t, m, 3)
	tr = m.Advance()
	if tr.Kind != Completed || tr.Redirect != "/earth-layers" {
		t.Errorf("Advance() at stage 3 = %+v", tr)
	}
	if m.Stage() != 3 {
		t.Errorf("Stage() = %d after completion, want 3", m.Stage())
	}

	tr = m.Retreat()
	if tr.Kind != Moved || m.Stage() != 2 {
		t.Errorf("Retreat() from stage 3 = %+v", tr)
	}
}

func TestEruptCompletionIsIdempotent(t *testing.T) {
	store := storage.NewMemoryStore()
	tracker := newTracker(store)
	rec := &notify.Recorder{}
	m, err := New(catalog.Default(), tracker, rec, "erupt")
	if err != nil {
		t.Fatal(err)
	}
	openAt(t, m, 3)

	m.Advance()
	completed := tracker.Completed(catalog.ChapterEarthLayers)
	if len(completed) != 1 || completed[0] != "erupt" {
		t.Fatalf("completed = %v, want [erupt]", completed)
	}
	if tracker.StreakDays() != 1 {
		t.Fatalf("StreakDays() = %d", tracker.StreakDays())
	}

	m.Advance()
	if got := len(tracker.Completed(catalog.ChapterEarthLayers)); got != 1 {
		t.Errorf("completed-set size = %d after re-completion, want 1", got)
	}
	if tracker.StreakDays() != 1 {
		t.Errorf("StreakDays() = %d after same-day re-completion", tracker.StreakDays())
	}

	var saved []string
	storage.Load(store, "completedEarthLayersWords", &saved)
	if len(saved) != 1 {
		t.Errorf("persisted = %v", saved)
	}

	notes := rec.Drain()
	if len(notes) != 2 || notes[0].Kind != notify.KindMastered {
		t.Errorf("notifications = %+v", notes)
	}
}

func TestExitWritesNothing(t *testing.T) {
	tracker := newTracker(storage.NewMemoryStore())
	m, _ := New(catalog.Default(), tracker, nil, "horizon")
	openAt(t, m, 3)

	tr := m.Exit()
	if tr.Kind != Exited || tr.Redirect != "/earth-geography" {
		t.Errorf("Exit() = %+v", tr)
	}
	if tracker.WordsLearned() != 0 || tracker.StreakDays() != 0 {
		t.Error("Exit() recorded progress")
	}
}

func TestChapterCelebration(t *testing.T) {
	cat := catalog.Default()
	tracker := newTracker(storage.NewMemoryStore())
	words := cat.ChapterWords(catalog.ChapterEarthGeography)
	for _, w := range words[:len(words)-1] {
		tracker.MarkCompleted(catalog.ChapterEarthGeography, w)
	}

	rec := &notify.Recorder{}
	m, err := New(cat, tracker, rec, words[len(words)-1])
	if err != nil {
		t.Fatal(err)
	}
	openAt(t, m, 3)
	m.Advance()

	notes := rec.Drain()
	if len(notes) != 2 || notes[1].Kind != notify.KindCelebration || notes[1].Title != "Congratulations!" {
		t.Fatalf("notifications = %+v", notes)
	}

	m.Advance()
	for _, n := range rec.Drain() {
		if n.Kind == notify.KindCelebration {
			t.Error("celebration repeated on re-completion")
		}
	}
}

func TestView(t *testing.T) {
	m, _ := New(catalog.Default(), newTracker(storage.NewMemoryStore()), nil, "magma")
	m.Advance()

	v := m.View()
	if v.Stage != 1 || v.StageCount != 4 || v.Current.Title != "Understanding" {
		t.Errorf("view = %+v", v)
	}
	if v.Chapter != "earth-layers" || v.Word.Phonetic != "/ˈmæɡ.mə/" {
		t.Errorf("view word = %+v", v)
	}
}
