package audio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Source names where a pronunciation came from
type Source string

const (
	// SourceDictionary is a recording from the dictionary service
	SourceDictionary Source = "dictionary"
	// SourceSynthesized is an MP3 generated by the TTS endpoint and served locally
	SourceSynthesized Source = "synthesized"
	// SourceDevice tells the client to use its own speech synthesis
	SourceDevice Source = "device"
)

// Pronunciation is a playable rendition of a word
type Pronunciation struct {
	Word   string `json:"word"`
	Source Source `json:"source"`
	URL    string `json:"url,omitempty"`
}

const ttsRequestTimeout = 10 * time.Second

// PronunciationService resolves audio for words. Lookups for the same word
// are single-flight.
type PronunciationService struct {
	dictionaryBaseURL string
	ttsBaseURL        string
	audioDir          string
	audioURLPrefix    string
	client            *http.Client
	tasks             *Tasks[Pronunciation]
}

// NewPronunciationService creates a service that checks dictionaryBaseURL
// first and caches synthesized files in audioDir
func NewPronunciationService(dictionaryBaseURL, ttsBaseURL, audioDir string) *PronunciationService {
	return &PronunciationService{
		dictionaryBaseURL: strings.TrimRight(dictionaryBaseURL, "/"),
		ttsBaseURL:        ttsBaseURL,
		audioDir:          audioDir,
		audioURLPrefix:    "/audio/",
		client:            &http.Client{Timeout: ttsRequestTimeout},
		tasks:             NewTasks[Pronunciation](),
	}
}

// Lookup finds the best available pronunciation. It never fails: when both
// remote sources are unavailable the device source is returned. Remote
// results are remembered; device fallbacks are retried on the next lookup.
func (s *PronunciationService) Lookup(ctx context.Context, word string) Pronunciation {
	word = strings.ToLower(strings.TrimSpace(word))
	if res, ok := s.tasks.Get(word); ok && res.State == Ready && res.Value.Source != SourceDevice {
		return res.Value
	}
	res, err := s.tasks.Do(ctx, word, func() (Pronunciation, error) {
		return s.resolve(word), nil
	})
	if err != nil || res.State != Ready {
		return Pronunciation{Word: word, Source: SourceDevice}
	}
	return res.Value
}

func (s *PronunciationService) resolve(word string) Pronunciation {
	ctx, cancel := context.WithTimeout(context.Background(), 2*ttsRequestTimeout)
	defer cancel()

	dictURL := s.dictionaryURL(word)
	err := s.checkDictionary(ctx, dictURL)
	if err == nil {
		return Pronunciation{Word: word, Source: SourceDictionary, URL: dictURL}
	}
	log.Printf("Dictionary pronunciation unavailable for %q: %v", word, err)

	filename, err := s.GenerateAudioFile(ctx, word)
	if err == nil {
		return Pronunciation{Word: word, Source: SourceSynthesized, URL: s.audioURLPrefix + filename}
	}
	log.Printf("Failed to synthesize pronunciation for %q: %v", word, err)

	return Pronunciation{Word: word, Source: SourceDevice}
}

func (s *PronunciationService) dictionaryURL(word string) string {
	return fmt.Sprintf("%s/%s-us.mp3", s.dictionaryBaseURL, url.PathEscape(word))
}

func (s *PronunciationService) checkDictionary(ctx context.Context, target string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, target, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach dictionary: %w", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}

// GenerateAudioFile converts text to speech and saves it as MP3 in the audio
// directory. Returns the filename (not full path); existing files are reused.
func (s *PronunciationService) GenerateAudioFile(ctx context.Context, text string) (string, error) {
	if s.audioDir == "" {
		return "", errors.New("no audio directory configured")
	}

	sanitized := strings.ToLower(strings.TrimSpace(text))
	sanitized = strings.ReplaceAll(sanitized, " ", "_")
	if sanitized == "" || strings.ContainsAny(sanitized, `/\`) || strings.Contains(sanitized, "..") {
		return "", fmt.Errorf("invalid text for audio file: %q", text)
	}

	filename := fmt.Sprintf("word_%s.mp3", sanitized)
	outputPath := filepath.Join(s.audioDir, filename)

	if _, err := os.Stat(outputPath); err == nil {
		return filename, nil
	}

	if err := os.MkdirAll(s.audioDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create audio directory: %w", err)
	}
	if err := s.generateUsingGoogleTTS(ctx, text, outputPath); err != nil {
		return "", fmt.Errorf("failed to generate audio: %w", err)
	}
	return filename, nil
}

// generateUsingGoogleTTS uses Google Translate's text-to-speech endpoint
func (s *PronunciationService) generateUsingGoogleTTS(ctx context.Context, text, outputPath string) error {
	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("q", text)
	params.Set("tl", "en")
	params.Set("client", "tw-ob")
	params.Set("textlen", fmt.Sprintf("%d", len(text)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.ttsBaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	// Google rejects requests without a browser user agent
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	tmpPath := outputPath + ".tmp"
	outFile, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if _, err := io.Copy(outFile, resp.Body); err != nil {
		outFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write audio file: %w", err)
	}
	if err := outFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write audio file: %w", err)
	}
	return os.Rename(tmpPath, outputPath)
}
