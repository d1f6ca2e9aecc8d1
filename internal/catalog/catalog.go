// Package catalog holds the static learning content: chapters and their word
// lists, per-word lesson material, the lesson stages, the sticker book and the
// quizzes. A Catalog is populated at startup and read-only afterwards.
package catalog

import (
	"slices"

	"earthwords/internal/models"
)

// Catalog is the read-only content table shared by all learners
type Catalog struct {
	words    map[string]models.Word
	chapters map[Chapter][]string
	stages   []models.Stage
	units    []string
	stickers map[string][]models.StickerTemplate
	quizzes  []*models.Quiz
}

// Default returns the built-in content
func Default() *Catalog {
	c := &Catalog{
		words:    make(map[string]models.Word, len(defaultWords)),
		chapters: make(map[Chapter][]string, len(defaultChapterWords)),
		stages:   slices.Clone(defaultStages),
		stickers: make(map[string][]models.StickerTemplate, len(defaultStickerUnits)),
		quizzes:  defaultQuizzes(),
	}
	for _, w := range defaultWords {
		c.words[w.Word] = w
	}
	for ch, words := range defaultChapterWords {
		c.chapters[ch] = slices.Clone(words)
	}
	for _, unit := range defaultStickerUnits {
		c.units = append(c.units, unit.ID)
		c.stickers[unit.ID] = slices.Clone(unit.Stickers)
	}
	return c
}

// Word looks up the lesson content for a word
func (c *Catalog) Word(id string) (models.Word, bool) {
	w, ok := c.words[id]
	return w, ok
}

// ChapterOf reports which chapter a subject belongs to
func (c *Catalog) ChapterOf(subjectID string) (Chapter, bool) {
	for _, ch := range Chapters {
		if slices.Contains(c.chapters[ch], subjectID) {
			return ch, true
		}
	}
	return "", false
}

// ChapterWords returns the ordered word list of a chapter
func (c *Catalog) ChapterWords(ch Chapter) []string {
	return slices.Clone(c.chapters[ch])
}

// Stages returns the lesson stages in order
func (c *Catalog) Stages() []models.Stage {
	return slices.Clone(c.stages)
}

// Units returns the sticker book units in display order
func (c *Catalog) Units() []string {
	return slices.Clone(c.units)
}

// HasUnit reports whether unit is a sticker book unit
func (c *Catalog) HasUnit(unit string) bool {
	_, ok := c.stickers[unit]
	return ok
}

// Stickers returns the templates of one unit
func (c *Catalog) Stickers(unit string) []models.StickerTemplate {
	return slices.Clone(c.stickers[unit])
}

// Sticker finds a template within a unit
func (c *Catalog) Sticker(unit, id string) (models.StickerTemplate, bool) {
	for _, s := range c.stickers[unit] {
		if s.ID == id {
			return s, true
		}
	}
	return models.StickerTemplate{}, false
}

// StickerTotal counts the templates across all units
func (c *Catalog) StickerTotal() int {
	total := 0
	for _, unit := range c.units {
		total += len(c.stickers[unit])
	}
	return total
}

// Quiz looks up a quiz by id
func (c *Catalog) Quiz(id string) (*models.Quiz, bool) {
	for _, q := range c.quizzes {
		if q.ID == id {
			return q, true
		}
	}
	return nil, false
}

// Quizzes returns the quizzes belonging to a chapter
func (c *Catalog) Quizzes(ch Chapter) []*models.Quiz {
	var out []*models.Quiz
	for _, q := range c.quizzes {
		if q.Chapter == string(ch) {
			out = append(out, q)
		}
	}
	return out
}

// AllQuizzes returns every quiz in the catalog
func (c *Catalog) AllQuizzes() []*models.Quiz {
	return slices.Clone(c.quizzes)
}

// PutWord adds or replaces a word and appends it to ch when it is not
// already listed there
func (c *Catalog) PutWord(ch Chapter, w models.Word) {
	c.words[w.Word] = w
	for other, words := range c.chapters {
		if other != ch {
			c.chapters[other] = slices.DeleteFunc(words, func(id string) bool { return id == w.Word })
		}
	}
	if !slices.Contains(c.chapters[ch], w.Word) {
		c.chapters[ch] = append(c.chapters[ch], w.Word)
	}
}
