package resume

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/artem13815/resumeparser/pkg/logger"
)

// Document is one input to a batch. Folder entries carry a Path and are read
// lazily; uploads carry their bytes in Data.
type Document struct {
	Filename string
	Path     string
	Data     []byte
}

// Options configures a Service.
type Options struct {
	// Workers bounds how many documents are parsed at once. 1 means sequential.
	Workers int
	Extract ExtractOptions
	// Repo, when set, receives every finished batch.
	Repo Repository
}

// Service runs the per-document pipeline (text extraction, then field
// extraction) over single documents, upload sets and folders.
type Service struct {
	extractor *Extractor
	log       *logger.Logger
	workers   int
	extract   ExtractOptions
	repo      Repository
}

func NewService(extractor *Extractor, log *logger.Logger, opts Options) *Service {
	if log == nil {
		log = logger.Nop()
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &Service{
		extractor: extractor,
		log:       log.WithComponent("resume"),
		workers:   opts.Workers,
		extract:   opts.Extract,
		repo:      opts.Repo,
	}
}

// Extractor returns the field extractor used by the service.
func (s *Service) Extractor() *Extractor { return s.extractor }

// ParseDocument never fails: a document that cannot be read becomes a failed record.
func (s *Service) ParseDocument(ctx context.Context, doc Document) Record {
	text, err := s.readText(doc)
	if err != nil {
		s.log.Warn().Err(err).Str("file", doc.Filename).Msg("document extraction failed")
		return Record{
			File:   doc.Filename,
			Skills: []string{},
			Status: RecordStatusFailed,
			Error:  err.Error(),
		}
	}
	f := s.extractor.Parse(ctx, text)
	if len(f.FieldErrors) > 0 {
		s.log.Warn().Str("file", doc.Filename).Interface("field_errors", f.FieldErrors).Msg("field extraction incomplete")
	}
	return Record{
		Name:        f.Name,
		Email:       f.Email,
		Phone:       f.Phone,
		Skills:      f.Skills,
		File:        doc.Filename,
		Status:      RecordStatusOK,
		FieldErrors: f.FieldErrors,
	}
}

func (s *Service) readText(doc Document) (string, error) {
	if FormatOf(doc.Filename) == FormatUnknown {
		return "", nil
	}
	data := doc.Data
	if data == nil && doc.Path != "" {
		b, err := os.ReadFile(doc.Path)
		if err != nil {
			return "", &ExtractionError{File: doc.Filename, Err: err}
		}
		data = b
	}
	return ExtractText(doc.Filename, data, s.extract)
}

// ParseDocuments parses docs into a batch with one record per document, in input order.
// The only errors are cancellation and a failed save.
func (s *Service) ParseDocuments(ctx context.Context, docs []Document, source Source) (Batch, error) {
	b := Batch{
		ID:        uuid.New(),
		Source:    source,
		CreatedAt: time.Now().UTC(),
		Records:   make([]Record, len(docs)),
	}
	log := s.log.WithBatchID(b.ID.String())
	log.Info().Int("documents", len(docs)).Str("source", string(source)).Msg("batch started")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, doc := range docs {
		if err := gctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			b.Records[i] = s.ParseDocument(gctx, doc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Batch{}, err
	}
	if err := ctx.Err(); err != nil {
		return Batch{}, err
	}

	b.Total = len(b.Records)
	for _, r := range b.Records {
		if r.Failed() {
			b.Failed++
		}
	}
	log.Info().Int("total", b.Total).Int("failed", b.Failed).Msg("batch finished")

	if s.repo != nil {
		if err := s.repo.Save(ctx, b); err != nil {
			log.Error().Err(err).Msg("save batch")
			return b, fmt.Errorf("save batch: %w", err)
		}
	}
	return b, nil
}

// ParseFolder parses every entry of dir (no recursion, no type filter).
func (s *Service) ParseFolder(ctx context.Context, dir string) (Batch, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Batch{}, fmt.Errorf("read folder: %w", err)
	}
	docs := make([]Document, 0, len(entries))
	for _, e := range entries {
		docs = append(docs, Document{Filename: e.Name(), Path: filepath.Join(dir, e.Name())})
	}
	return s.ParseDocuments(ctx, docs, SourceFolder)
}
