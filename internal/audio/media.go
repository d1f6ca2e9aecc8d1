package audio

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"
	"time"
)

// Default delays of the simulated services
const (
	ImageDelay  = 1500 * time.Millisecond
	SpeechDelay = 2000 * time.Millisecond
)

var placeholderImages = map[string]string{
	"crust":       "https://images.unsplash.com/photo-1526374965328-7f61d4dc18c5",
	"mantle":      "https://images.unsplash.com/photo-1470813740244-df37b8c1edcb",
	"core":        "https://images.unsplash.com/photo-1523712999610-f77fbcfc3843",
	"erupt":       "https://images.unsplash.com/photo-1500375592092-40eb2168fd21",
	"magma":       "https://images.unsplash.com/photo-1506744038136-46273834b3fb",
	"earth":       "https://images.unsplash.com/photo-1498050108023-c5249f4df085",
	"layer":       "https://images.unsplash.com/photo-1487058792275-0ad4aaf24ca7",
	"thicker":     "https://images.unsplash.com/photo-1523712999610-f77fbcfc3843",
	"continental": "https://images.unsplash.com/photo-1500673922987-e212871fec22",
	"oceanic":     "https://images.unsplash.com/photo-1581090464777-f3220bbe1b8b",
}

// PlaceholderImage returns the stock image for a word, defaulting to "earth"
func PlaceholderImage(word string) string {
	if u, ok := placeholderImages[strings.ToLower(word)]; ok {
		return u
	}
	return placeholderImages["earth"]
}

// GeneratedImage is the result of a simulated image generation
type GeneratedImage struct {
	Word     string `json:"word"`
	Sentence string `json:"sentence"`
	Prompt   string `json:"prompt"`
	URL      string `json:"url"`
}

// ImageGenerator simulates an image generation service
type ImageGenerator struct {
	Delay time.Duration
	tasks *Tasks[GeneratedImage]
}

// NewImageGenerator creates a generator that answers after delay
func NewImageGenerator(delay time.Duration) *ImageGenerator {
	return &ImageGenerator{Delay: delay, tasks: NewTasks[GeneratedImage]()}
}

// Generate starts generating an illustration of sentence under key.
// It returns false while a generation for key is pending. Calling it again
// after the task finished regenerates the image.
func (g *ImageGenerator) Generate(key, word, sentence string) bool {
	delay := g.Delay
	return g.tasks.Start(key, func() (GeneratedImage, error) {
		time.Sleep(delay)
		return GeneratedImage{
			Word:     word,
			Sentence: sentence,
			Prompt:   fmt.Sprintf("Realistic visualization of %q with focus on the concept of %q", sentence, word),
			URL:      PlaceholderImage(word),
		}, nil
	})
}

// Tasks exposes the generator's task table
func (g *ImageGenerator) Tasks() *Tasks[GeneratedImage] { return g.tasks }

// Recognition is the result of a simulated speech recognition
type Recognition struct {
	Text     string          `json:"text"`
	Accuracy map[string]bool `json:"accuracy"`
}

// SpeechRecognizer simulates listening to the learner read a sentence
type SpeechRecognizer struct {
	Delay time.Duration
	// Rand returns a value in [0, 1); a word counts as correct above 0.2
	Rand  func() float64
	tasks *Tasks[Recognition]
}

// NewSpeechRecognizer creates a recognizer that answers after delay
func NewSpeechRecognizer(delay time.Duration) *SpeechRecognizer {
	return &SpeechRecognizer{Delay: delay, Rand: rand.Float64, tasks: NewTasks[Recognition]()}
}

var punctuation = regexp.MustCompile(`[,.!?;:]`)

// Recognize starts a recognition of sentence under key. It returns false
// while a recognition for key is pending.
func (r *SpeechRecognizer) Recognize(key, sentence string) bool {
	delay, random := r.Delay, r.Rand
	return r.tasks.Start(key, func() (Recognition, error) {
		time.Sleep(delay)
		accuracy := make(map[string]bool)
		for _, w := range strings.Fields(strings.ToLower(sentence)) {
			w = punctuation.ReplaceAllString(w, "")
			accuracy[w] = random() > 0.2
		}
		return Recognition{Text: sentence, Accuracy: accuracy}, nil
	})
}

// Tasks exposes the recognizer's task table
func (r *SpeechRecognizer) Tasks() *Tasks[Recognition] { return r.tasks }
