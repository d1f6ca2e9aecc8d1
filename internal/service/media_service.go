package service

import (
	"context"
	"strings"

	"earthwords/internal/audio"
	"earthwords/internal/catalog"
	"earthwords/internal/lesson"
)

// MediaService serves pronunciations and the simulated image and speech tasks
type MediaService struct {
	catalog       *catalog.Catalog
	pronunciation *audio.PronunciationService
	images        *audio.ImageGenerator
	speech        *audio.SpeechRecognizer
}

// NewMediaService creates a new media service
func NewMediaService(cat *catalog.Catalog, pronunciation *audio.PronunciationService, images *audio.ImageGenerator, speech *audio.SpeechRecognizer) *MediaService {
	return &MediaService{
		catalog:       cat,
		pronunciation: pronunciation,
		images:        images,
		speech:        speech,
	}
}

func taskKey(learnerID, wordID string) string {
	return learnerID + "/" + wordID
}

// Pronunciation resolves audio for a catalog word
func (s *MediaService) Pronunciation(ctx context.Context, wordID string) (audio.Pronunciation, error) {
	w, ok := s.catalog.Word(wordID)
	if !ok {
		return audio.Pronunciation{}, lesson.ErrSubjectNotFound
	}
	return s.pronunciation.Lookup(ctx, w.Word), nil
}

// GenerateImage starts (or restarts) the illustration of one of the word's
// sentences. An out of range index uses the first sentence.
func (s *MediaService) GenerateImage(learnerID, wordID string, sentence int) (audio.Result[audio.GeneratedImage], error) {
	w, ok := s.catalog.Word(wordID)
	if !ok {
		return audio.Result[audio.GeneratedImage]{}, lesson.ErrSubjectNotFound
	}
	text := w.Example
	if sentence >= 0 && sentence < len(w.Sentences) {
		text = w.Sentences[sentence]
	} else if len(w.Sentences) > 0 {
		text = w.Sentences[0]
	}

	key := taskKey(learnerID, wordID)
	s.images.Generate(key, w.Word, text)
	res, _ := s.images.Tasks().Get(key)
	return res, nil
}

// Image reports the state of the word's image task
func (s *MediaService) Image(learnerID, wordID string) (audio.Result[audio.GeneratedImage], bool) {
	return s.images.Tasks().Get(taskKey(learnerID, wordID))
}

// Recognize starts a simulated recognition of the word's first sentence
func (s *MediaService) Recognize(learnerID, wordID string) (audio.Result[audio.Recognition], error) {
	w, ok := s.catalog.Word(wordID)
	if !ok {
		return audio.Result[audio.Recognition]{}, lesson.ErrSubjectNotFound
	}
	text := w.Example
	if len(w.Sentences) > 0 {
		text = w.Sentences[0]
	}

	key := taskKey(learnerID, wordID)
	s.speech.Recognize(key, text)
	res, _ := s.speech.Tasks().Get(key)
	return res, nil
}

// Recognition reports the state of the word's recognition task
func (s *MediaService) Recognition(learnerID, wordID string) (audio.Result[audio.Recognition], bool) {
	return s.speech.Tasks().Get(taskKey(learnerID, wordID))
}

// Forget drops finished tasks of the given learners
func (s *MediaService) Forget(learnerIDs ...string) int {
	if len(learnerIDs) == 0 {
		return 0
	}
	match := func(key string) bool {
		for _, id := range learnerIDs {
			if strings.HasPrefix(key, id+"/") {
				return true
			}
		}
		return false
	}
	return s.images.Tasks().Forget(match) + s.speech.Tasks().Forget(match)
}
