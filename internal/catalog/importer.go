package catalog

import (
	"fmt"
	"strings"

	"earthwords/internal/models"

	"github.com/xuri/excelize/v2"
)

// Workbook columns, one word per row after the header row:
//
//	A word  B chapter  C translation  D part of speech  E phonetic
//	F meaning  G example  H image  I related words (comma separated)
//	J sentences (separated by "|")
const (
	colWord = iota
	colChapter
	colTranslation
	colPartOfSpeech
	colPhonetic
	colMeaning
	colExample
	colImage
	colRelated
	colSentences
)

// ImportResult summarises a workbook import
type ImportResult struct {
	TotalProcessed int
	Imported       int
	Errors         []string
}

// ImportWorkbook loads extra words from the first sheet of an .xlsx file into c.
// Rows that fail validation are reported in the result and skipped.
func ImportWorkbook(c *Catalog, path string) (*ImportResult, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}

	result := &ImportResult{Errors: make([]string, 0)}
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) == 0 || strings.TrimSpace(row[colWord]) == "" {
			continue
		}

		result.TotalProcessed++
		ch, word, err := parseRow(row)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
			continue
		}
		c.PutWord(ch, word)
		result.Imported++
	}

	return result, nil
}

func parseRow(row []string) (Chapter, models.Word, error) {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	ch, err := ParseChapter(cell(colChapter))
	if err != nil {
		return "", models.Word{}, err
	}
	if cell(colMeaning) == "" {
		return "", models.Word{}, fmt.Errorf("word %q has no meaning", cell(colWord))
	}

	word := models.Word{
		Word:         strings.ToLower(cell(colWord)),
		Translation:  cell(colTranslation),
		PartOfSpeech: cell(colPartOfSpeech),
		Phonetic:     cell(colPhonetic),
		Meaning:      cell(colMeaning),
		Example:      cell(colExample),
		Image:        cell(colImage),
		RelatedWords: splitList(cell(colRelated), ","),
		Sentences:    splitList(cell(colSentences), "|"),
	}
	return ch, word, nil
}

func splitList(s, sep string) []string {
	out := []string{}
	for _, part := range strings.Split(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
