// Package progress records what a learner has finished: the completed words
// of each chapter, the dates on which anything was completed, and quiz flags.
package progress

import (
	"log"
	"slices"
	"time"

	"earthwords/internal/catalog"
	"earthwords/internal/storage"
)

// Tracker is the persisted completion state of one learner.
// It is not safe for concurrent use.
type Tracker struct {
	store     storage.Store
	now       func() time.Time
	completed map[catalog.Chapter][]string
	streak    []string
	quizzes   map[string]bool
}

// NewTracker loads a learner's progress from store. Missing or unreadable
// keys start out empty.
func NewTracker(store storage.Store, now func() time.Time) *Tracker {
	if now == nil {
		now = time.Now
	}
	t := &Tracker{
		store:     store,
		now:       now,
		completed: make(map[catalog.Chapter][]string, len(catalog.Chapters)),
		quizzes:   make(map[string]bool),
	}

	for _, ch := range catalog.Chapters {
		words := []string{}
		storage.Load(store, ch.StorageKey(), &words)
		t.completed[ch] = dedupe(words)
	}

	dates := []string{}
	storage.Load(store, storage.KeyStreakData, &dates)
	t.streak = dedupe(dates)
	slices.Sort(t.streak)

	return t
}

// Completed returns the completed words of a chapter in completion order
func (t *Tracker) Completed(ch catalog.Chapter) []string {
	return slices.Clone(t.completed[ch])
}

// IsCompleted reports whether a word has been completed in ch
func (t *Tracker) IsCompleted(ch catalog.Chapter, subjectID string) bool {
	return slices.Contains(t.completed[ch], subjectID)
}

// MarkCompleted adds subjectID to the chapter's completed set and persists it.
// It returns false when the word was already recorded.
func (t *Tracker) MarkCompleted(ch catalog.Chapter, subjectID string) bool {
	if t.IsCompleted(ch, subjectID) {
		return false
	}
	t.completed[ch] = append(t.completed[ch], subjectID)
	if err := storage.Save(t.store, ch.StorageKey(), t.completed[ch]); err != nil {
		log.Printf("Failed to persist completed words for %s: %v", ch, err)
	}
	return true
}

// RecordActivity adds today's date to the streak set, kept sorted.
// It returns false when today was already recorded.
func (t *Tracker) RecordActivity() bool {
	today := t.now().Format(time.DateOnly)
	if slices.Contains(t.streak, today) {
		return false
	}
	t.streak = append(t.streak, today)
	slices.Sort(t.streak)
	if err := storage.Save(t.store, storage.KeyStreakData, t.streak); err != nil {
		log.Printf("Failed to persist streak data: %v", err)
	}
	return true
}

// StreakDays is the number of distinct dates with at least one completion.
// Gaps between dates do not reset it.
func (t *Tracker) StreakDays() int {
	return len(t.streak)
}

// StreakDates returns the recorded dates, oldest first
func (t *Tracker) StreakDates() []string {
	return slices.Clone(t.streak)
}

// WordsLearned counts completed words across all chapters
func (t *Tracker) WordsLearned() int {
	total := 0
	for _, ch := range catalog.Chapters {
		total += len(t.completed[ch])
	}
	return total
}

// IsUnlocked reports whether a word has been completed in any chapter.
// Completed words unlock the sticker with the same id.
func (t *Tracker) IsUnlocked(id string) bool {
	for _, ch := range catalog.Chapters {
		if slices.Contains(t.completed[ch], id) {
			return true
		}
	}
	return false
}

// QuizCompleted reads a quiz completion flag
func (t *Tracker) QuizCompleted(key string) bool {
	done, ok := t.quizzes[key]
	if !ok {
		storage.Load(t.store, key, &done)
		t.quizzes[key] = done
	}
	return done
}

// MarkQuizCompleted sets a quiz completion flag and persists it
func (t *Tracker) MarkQuizCompleted(key string) {
	if t.QuizCompleted(key) {
		return
	}
	t.quizzes[key] = true
	if err := storage.Save(t.store, key, true); err != nil {
		log.Printf("Failed to persist %s: %v", key, err)
	}
}

func dedupe(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if !slices.Contains(out, item) {
			out = append(out, item)
		}
	}
	return out
}
