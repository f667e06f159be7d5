package config

import (
	"os"
	"strconv"
)

type Config struct {
	Database    DatabaseConfig
	Detector    DetectorConfig
	Recognition RecognitionConfig
	Gemini      GeminiConfig
	OpenAI      OpenAIConfig
	QA          QAConfig
	Web         WebConfig
}

type WebConfig struct {
	Port int    // listen port (default 8080)
	Host string // bind address (default 0.0.0.0)
}

type DatabaseConfig struct {
	URL          string // PostgreSQL connection URL
	MaxOpenConns int    // Maximum open connections (default 25)
	MaxIdleConns int    // Maximum idle connections (default 5)
}

type DetectorConfig struct {
	URL string // face detection sidecar URL, defaults to http://localhost:8001
}

type RecognitionConfig struct {
	// Threshold is the maximum Euclidean distance between unit-normalized
	// descriptors that still counts as a match. Descriptors are unit
	// vectors, so distances fall in [0, 2]. Empirically tuned operating
	// point, not a derived constant.
	Threshold float64
}

type GeminiConfig struct {
	APIKey string
}

type OpenAIConfig struct {
	Token string
}

type QAConfig struct {
	EmbeddingDim  int // dimension of the text embedding column (default 768)
	RetrievalSize int // number of documents retrieved per query (default 4)
}

// envString reads an environment variable, falling back to a default
// when unset or empty.
func envString(key, defaultVal string) string {
	if s := os.Getenv(key); s != "" {
		return s
	}
	return defaultVal
}

// envInt reads an environment variable and parses it as a positive integer.
// Returns the default value if the env var is unset, empty, or invalid.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return defaultVal
}

// envFloat reads an environment variable and parses it as a positive float.
// Returns the default value if the env var is unset, empty, or invalid.
func envFloat(key string, defaultVal float64) float64 {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f > 0 {
		return f
	}
	return defaultVal
}

func Load() *Config {
	return &Config{
		Database: DatabaseConfig{
			URL:          os.Getenv("DATABASE_URL"),
			MaxOpenConns: envInt("DATABASE_MAX_OPEN_CONNS", 25),
			MaxIdleConns: envInt("DATABASE_MAX_IDLE_CONNS", 5),
		},
		Detector: DetectorConfig{
			URL: os.Getenv("DETECTOR_URL"),
		},
		Recognition: RecognitionConfig{
			Threshold: envFloat("RECOGNITION_THRESHOLD", 0.7),
		},
		Gemini: GeminiConfig{
			APIKey: os.Getenv("GEMINI_API_KEY"),
		},
		OpenAI: OpenAIConfig{
			Token: os.Getenv("OPENAI_TOKEN"),
		},
		QA: QAConfig{
			EmbeddingDim:  envInt("QA_EMBEDDING_DIM", 768),
			RetrievalSize: envInt("QA_RETRIEVAL_SIZE", 4),
		},
		Web: WebConfig{
			Port: envInt("WEB_PORT", 8080),
			Host: envString("WEB_HOST", "0.0.0.0"),
		},
	}
}
