package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "SKILLS", "WORKERS", "SKILL_MATCH", "NER_BACKEND", "OUTPUT_FILE", "STRICT_PDF_PAGES", "MAX_UPLOAD_MB"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Nil(t, cfg.Skills)
	assert.Equal(t, 1, cfg.Workers)
	assert.Equal(t, "substring", cfg.SkillMatch)
	assert.Equal(t, "prose", cfg.NERBackend)
	assert.Equal(t, "parsed_resumes.csv", cfg.OutputFile)
	assert.False(t, cfg.StrictPDFPages)
	assert.Equal(t, int64(15<<20), cfg.MaxUploadBytes())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SKILLS", " Go , Kubernetes,, Keras ")
	t.Setenv("WORKERS", "4")
	t.Setenv("STRICT_PDF_PAGES", "true")
	t.Setenv("MAX_UPLOAD_MB", "2")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, []string{"Go", "Kubernetes", "Keras"}, cfg.Skills)
	assert.Equal(t, 4, cfg.Workers)
	assert.True(t, cfg.StrictPDFPages)
	assert.Equal(t, int64(2<<20), cfg.MaxUploadBytes())
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("WORKERS", "zero")
	t.Setenv("MAX_UPLOAD_MB", "-3")

	cfg := Load()

	assert.Equal(t, 1, cfg.Workers)
	assert.Equal(t, 15, cfg.MaxUploadMB)
}
