package catalog

import (
	"errors"
	"fmt"
)

// ErrUnknownChapter is returned when a chapter name is not recognised
var ErrUnknownChapter = errors.New("unknown chapter")

// Chapter is a themed group of words with its own completion record
type Chapter string

const (
	ChapterEarthLayers    Chapter = "earth-layers"
	ChapterEarthGeography Chapter = "earth-geography"
)

// Chapters lists every chapter in display order
var Chapters = []Chapter{ChapterEarthLayers, ChapterEarthGeography}

// ParseChapter converts a route segment into a Chapter
func ParseChapter(s string) (Chapter, error) {
	for _, ch := range Chapters {
		if string(ch) == s {
			return ch, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownChapter, s)
}

// StorageKey is the persisted key holding the chapter's completed words
func (c Chapter) StorageKey() string {
	switch c {
	case ChapterEarthLayers:
		return "completedEarthLayersWords"
	case ChapterEarthGeography:
		return "completedEarthGeographyWords"
	}
	panic(fmt.Sprintf("catalog: storage key requested for unknown chapter %q", string(c)))
}

// Path is the chapter overview route
func (c Chapter) Path() string {
	return "/" + string(c)
}

// Title is the chapter heading shown to learners
func (c Chapter) Title() string {
	switch c {
	case ChapterEarthLayers:
		return "Earth Layers Vocabulary"
	case ChapterEarthGeography:
		return "Earth Geography Vocabulary"
	}
	return string(c)
}
