package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultTokenSecret signs learner tokens when TOKEN_SECRET is unset.
// Tokens signed with it can be forged by anyone who reads this file.
const DefaultTokenSecret = "change-me-in-production"

// Config holds application configuration
type Config struct {
	ServerPort           string
	DatabaseType         string
	DatabasePath         string
	DatabaseURL          string
	MigrationsPath       string
	AudioPath            string
	WordsWorkbookPath    string
	TokenSecret          string
	TokenDuration        time.Duration
	WorkspaceIdleTTL     time.Duration
	RateLimit            int
	RateWindow           time.Duration
	PronunciationBaseURL string
	SpeechBaseURL        string
	Debug                bool
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is loaded first when present; variables
// already set in the environment win.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to load .env file: %v", err)
	}

	cfg := &Config{
		ServerPort:           getEnv("PORT", "8080"),
		DatabaseType:         getEnv("DB_TYPE", "sqlite"),
		DatabasePath:         getEnv("DB_PATH", "./earthwords.db"),
		DatabaseURL:          getEnv("DATABASE_URL", ""),
		MigrationsPath:       getEnv("MIGRATIONS_PATH", "./migrations"),
		AudioPath:            getEnv("AUDIO_PATH", "./static/audio"),
		WordsWorkbookPath:    getEnv("WORDS_XLSX", ""),
		TokenSecret:          getEnv("TOKEN_SECRET", DefaultTokenSecret),
		TokenDuration:        365 * 24 * time.Hour,
		WorkspaceIdleTTL:     time.Duration(getEnvInt("WORKSPACE_IDLE_MINUTES", 30)) * time.Minute,
		RateLimit:            getEnvInt("RATE_LIMIT", 120),
		RateWindow:           time.Minute,
		PronunciationBaseURL: getEnv("PRONUNCIATION_BASE_URL", "https://api.dictionaryapi.dev/media/pronunciations/en"),
		SpeechBaseURL:        getEnv("TTS_BASE_URL", "https://translate.google.com/translate_tts"),
		Debug:                getEnvBool("DEBUG", false),
	}

	if cfg.TokenSecret == DefaultTokenSecret {
		log.Printf("Warning: TOKEN_SECRET is not set; learner tokens are signed with the default secret")
	}
	return cfg
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
