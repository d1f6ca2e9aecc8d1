package catalog

import (
	"errors"
	"path/filepath"
	"testing"

	"earthwords/internal/models"

	"github.com/xuri/excelize/v2"
)

func TestChapterOf(t *testing.T) {
	c := Default()

	tests := []struct {
		subject string
		want    Chapter
		wantOK  bool
	}{
		{"erupt", ChapterEarthLayers, true},
		{"tectonic plates", ChapterEarthLayers, true},
		{"horizon", ChapterEarthGeography, true},
		{"mammal", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.subject, func(t *testing.T) {
			got, ok := c.ChapterOf(tt.subject)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ChapterOf(%q) = %q, %v; want %q, %v", tt.subject, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestEveryChapterWordHasContent(t *testing.T) {
	c := Default()
	for _, ch := range Chapters {
		for _, id := range c.ChapterWords(ch) {
			if _, ok := c.Word(id); !ok {
				t.Errorf("chapter %s lists %q without lesson content", ch, id)
			}
		}
	}
}

func TestChapterKeys(t *testing.T) {
	if got := ChapterEarthLayers.StorageKey(); got != "completedEarthLayersWords" {
		t.Errorf("StorageKey() = %q", got)
	}
	if got := ChapterEarthGeography.StorageKey(); got != "completedEarthGeographyWords" {
		t.Errorf("StorageKey() = %q", got)
	}
	if got := ChapterEarthLayers.Path(); got != "/earth-layers" {
		t.Errorf("Path() = %q", got)
	}
}

func TestParseChapter(t *testing.T) {
	if ch, err := ParseChapter("earth-geography"); err != nil || ch != ChapterEarthGeography {
		t.Errorf("ParseChapter() = %q, %v", ch, err)
	}
	if _, err := ParseChapter("animals"); !errors.Is(err, ErrUnknownChapter) {
		t.Errorf("ParseChapter(animals) error = %v, want ErrUnknownChapter", err)
	}
}

func TestStickerBook(t *testing.T) {
	c := Default()

	if units := c.Units(); len(units) != 2 || units[0] != "earth-unit" {
		t.Errorf("Units() = %v", units)
	}
	if got := c.StickerTotal(); got != 17 {
		t.Errorf("StickerTotal() = %d, want 17", got)
	}

	erupt, ok := c.Sticker("earth-unit", "erupt")
	if !ok || erupt.Name != "Eruption" || erupt.Image != "💥" {
		t.Errorf("Sticker(erupt) = %+v, %v", erupt, ok)
	}
	if _, ok := c.Sticker("animals-unit", "crust"); ok {
		t.Error("crust should not be found in animals-unit")
	}
}

func TestQuizzes(t *testing.T) {
	c := Default()

	layers, ok := c.Quiz(QuizEarthLayers)
	if !ok {
		t.Fatal("earth layers quiz missing")
	}
	if n := len(layers.Questions()); n != 10 {
		t.Errorf("earth layers quiz has %d questions, want 10", n)
	}
	if layers.RequirePerfectScore {
		t.Error("earth layers quiz should not require a perfect score")
	}

	geo, ok := c.Quiz(QuizEarthGeography)
	if !ok || !geo.RequirePerfectScore {
		t.Errorf("geography quiz = %+v, %v", geo, ok)
	}
	if got := c.Quizzes(ChapterEarthGeography); len(got) != 1 || got[0].ID != QuizEarthGeography {
		t.Errorf("Quizzes(earth-geography) = %v", got)
	}
}

func TestPutWordMovesBetweenChapters(t *testing.T) {
	c := Default()

	c.PutWord(ChapterEarthGeography, models.Word{Word: "magma", Meaning: "Molten rock."})

	if ch, _ := c.ChapterOf("magma"); ch != ChapterEarthGeography {
		t.Errorf("ChapterOf(magma) = %q after move", ch)
	}
	for _, id := range c.ChapterWords(ChapterEarthLayers) {
		if id == "magma" {
			t.Error("magma still listed in earth-layers")
		}
	}
}

func writeWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatal(err)
		}
	}

	path := filepath.Join(t.TempDir(), "words.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save workbook: %v", err)
	}
	return path
}

func TestImportWorkbook(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"word", "chapter", "translation", "pos", "phonetic", "meaning", "example", "image", "related", "sentences"},
		{"Equator", "earth-geography", "赤道", "noun", "/ɪˈkweɪ.tər/", "An imaginary line around the middle of the Earth.", "", "🌍", "latitude, longitude", "The equator is hot. | It splits the globe."},
		{"lava", "oceans", "", "", "", "Molten rock.", "", "", "", ""},
		{"basalt", "earth-layers", "", "", "", "", "", "", "", ""},
	})

	c := Default()
	result, err := ImportWorkbook(c, path)
	if err != nil {
		t.Fatalf("ImportWorkbook() error = %v", err)
	}

	if result.TotalProcessed != 3 || result.Imported != 1 {
		t.Errorf("result = %+v, want 3 processed and 1 imported", result)
	}
	if len(result.Errors) != 2 {
		t.Errorf("len(Errors) = %d, want 2", len(result.Errors))
	}

	word, ok := c.Word("equator")
	if !ok {
		t.Fatal("equator not imported")
	}
	if len(word.RelatedWords) != 2 || word.RelatedWords[1] != "longitude" {
		t.Errorf("RelatedWords = %v", word.RelatedWords)
	}
	if len(word.Sentences) != 2 || word.Sentences[1] != "It splits the globe." {
		t.Errorf("Sentences = %v", word.Sentences)
	}
	if ch, _ := c.ChapterOf("equator"); ch != ChapterEarthGeography {
		t.Errorf("ChapterOf(equator) = %q", ch)
	}
}

func TestImportWorkbookMissingFile(t *testing.T) {
	if _, err := ImportWorkbook(Default(), filepath.Join(t.TempDir(), "absent.xlsx")); err == nil {
		t.Error("expected error for missing workbook")
	}
}
