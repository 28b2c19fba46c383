package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	// LLM generation
	LLMBaseURL string // OpenAI-compatible endpoint, e.g. "https://api.openai.com/v1"
	LLMModel   string // model name, e.g. "gpt-4o-mini"
	LLMStub    bool   // serve canned questions instead of calling the LLM

	// Document pipeline
	CredentialDBPath  string        // SQLite file retaining the API key
	ExtractionTimeout time.Duration // upper bound for one extraction
	MaxTextLen        int           // ceiling on extracted text, in bytes
	ChunkTargetSize   int           // chunk size threshold, in characters
	RegenWorkers      int           // concurrent regeneration calls
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:     mustGetenv("SERVER_ADDRESS"),
		ShutdownTimeout:   mustGetDuration("SHUTDOWN_TIMEOUT"),
		LLMBaseURL:        getenvDefault("LLM_BASE_URL", "https://api.openai.com/v1"),
		LLMModel:          getenvDefault("LLM_MODEL", "gpt-4o-mini"),
		LLMStub:           getenvBool("LLM_STUB", false),
		CredentialDBPath:  getenvDefault("CREDENTIAL_DB_PATH", "quizforge.db"),
		ExtractionTimeout: getenvDuration("EXTRACTION_TIMEOUT", 30*time.Second),
		MaxTextLen:        getenvInt("MAX_TEXT_LEN", 500_000),
		ChunkTargetSize:   getenvInt("CHUNK_TARGET_SIZE", 6000),
		RegenWorkers:      getenvInt("REGEN_WORKERS", 3),
	}
}

func mustGetenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	return v
}

func mustGetDuration(k string) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

func getenvDuration(k string, fallback time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getenvBool(k string, fallback bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid boolean: %v", k, v, err)
	}
	return b
}

func getenvInt(k string, fallback int) int {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid integer: %v", k, v, err)
	}
	return n
}
