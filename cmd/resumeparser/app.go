package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/resumeparser/pkg/config"
	"github.com/artem13815/resumeparser/pkg/llm/openrouter"
	"github.com/artem13815/resumeparser/pkg/logger"
	"github.com/artem13815/resumeparser/pkg/nlp"
	"github.com/artem13815/resumeparser/pkg/repository/memory"
	pgrepo "github.com/artem13815/resumeparser/pkg/repository/postgres"
	"github.com/artem13815/resumeparser/pkg/resume"
	"github.com/artem13815/resumeparser/pkg/storage/postgres"
)

// app holds the dependencies shared by all subcommands.
type app struct {
	cfg  config.Config
	log  *logger.Logger
	svc  *resume.Service
	repo resume.Repository
	pool *pgxpool.Pool
}

// newApp wires config into a ready Service. Without DATABASE_URL batches are
// kept in memory when keepInMemory is set and not stored otherwise.
func newApp(ctx context.Context, cfg config.Config, log *logger.Logger, keepInMemory bool) (*app, error) {
	a := &app{cfg: cfg, log: log}

	recognizer, err := newRecognizer(cfg)
	if err != nil {
		return nil, fmt.Errorf("load NER model: %w", err)
	}
	mode, err := nlp.ParseMatchMode(cfg.SkillMatch)
	if err != nil {
		return nil, err
	}
	skills := cfg.Skills
	if len(skills) == 0 {
		skills = nlp.DefaultSkills()
	}
	catalog := nlp.NewCatalog(skills, mode)

	switch {
	case cfg.DatabaseURL != "":
		pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("postgres connect: %w", err)
		}
		repo, err := pgrepo.NewBatchRepository(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("init batch repo: %w", err)
		}
		a.pool, a.repo = pool, repo
	case keepInMemory:
		log.Warn().Msg("DATABASE_URL не задан: партии хранятся в памяти до перезапуска")
		a.repo = memory.NewBatchRepository()
	}

	a.svc = resume.NewService(resume.NewExtractor(recognizer, catalog), log, resume.Options{
		Workers: cfg.Workers,
		Extract: resume.ExtractOptions{StrictPages: cfg.StrictPDFPages},
		Repo:    a.repo,
	})

	log.Info().
		Str("ner", cfg.NERBackend).
		Str("skill_match", string(catalog.Mode())).
		Int("skills", len(catalog.Skills())).
		Int("workers", cfg.Workers).
		Bool("postgres", a.pool != nil).
		Msg("pipeline ready")
	return a, nil
}

func (a *app) Close() {
	if a.pool != nil {
		a.pool.Close()
	}
}

func newRecognizer(cfg config.Config) (nlp.Recognizer, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.NERBackend)) {
	case "", "prose":
		r, err := nlp.NewProseRecognizer()
		if err != nil {
			return nil, err
		}
		return r, nil
	case "llm":
		if cfg.OpenRouterAPIKey == "" {
			return nil, errors.New("OPENROUTER_API_KEY is required for NER_BACKEND=llm")
		}
		client := openrouter.New(
			cfg.OpenRouterAPIKey,
			cfg.OpenRouterBase,
			cfg.OpenRouterModel,
			cfg.OpenRouterAppTitle,
			cfg.OpenRouterReferer,
		)
		return nlp.NewLLMRecognizer(client), nil
	default:
		return nil, fmt.Errorf("unknown NER_BACKEND %q (want prose or llm)", cfg.NERBackend)
	}
}
