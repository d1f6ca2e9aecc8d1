package models

// Stage is one step of a word lesson
type Stage struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// MediaExample points at external material using a word
type MediaExample struct {
	Type        string `json:"type"`
	Source      string `json:"source"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// Word holds the learning content for one vocabulary word
type Word struct {
	Word          string         `json:"word"`
	Translation   string         `json:"translation"`
	PartOfSpeech  string         `json:"partOfSpeech"`
	Phonetic      string         `json:"phonetic"`
	Meaning       string         `json:"meaning"`
	Example       string         `json:"example,omitempty"`
	Image         string         `json:"imageUrl"`
	RelatedWords  []string       `json:"relatedWords"`
	Sentences     []string       `json:"sentences"`
	MediaExamples []MediaExample `json:"mediaExamples,omitempty"`
}
