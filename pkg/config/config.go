package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string
	DatabaseURL string

	// Skills overrides the default skill catalog (comma separated).
	Skills     []string
	SkillMatch string
	Workers    int

	NERBackend         string
	OpenRouterAPIKey   string
	OpenRouterBase     string
	OpenRouterModel    string
	OpenRouterAppTitle string
	OpenRouterReferer  string

	MaxUploadMB    int
	OutputFile     string
	StrictPDFPages bool
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:               getEnv("PORT", "8080"),
		Environment:        getEnv("APP_ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		Skills:             getEnvList("SKILLS"),
		SkillMatch:         getEnv("SKILL_MATCH", "substring"),
		Workers:            getEnvInt("WORKERS", 1),
		NERBackend:         getEnv("NER_BACKEND", "prose"),
		OpenRouterAPIKey:   os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterBase:     os.Getenv("OPENROUTER_BASE_URL"),
		OpenRouterModel:    os.Getenv("OPENROUTER_MODEL"),
		OpenRouterAppTitle: getEnv("OPENROUTER_APP_TITLE", "resumeparser"),
		OpenRouterReferer:  os.Getenv("OPENROUTER_REFERER"),
		MaxUploadMB:        getEnvInt("MAX_UPLOAD_MB", 15),
		OutputFile:         getEnv("OUTPUT_FILE", "parsed_resumes.csv"),
		StrictPDFPages:     getEnvBool("STRICT_PDF_PAGES", false),
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.MaxUploadMB < 1 {
		cfg.MaxUploadMB = 15
	}
	return cfg
}

// MaxUploadBytes is the per-file upload limit.
func (c Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getEnvList(key string) []string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
