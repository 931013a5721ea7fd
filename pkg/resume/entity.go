package resume

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned by repositories for unknown batch IDs.
var ErrNotFound = errors.New("batch not found")

type RecordStatus string

const (
	RecordStatusOK     RecordStatus = "ok"
	RecordStatusFailed RecordStatus = "failed"
)

// Source tells where the documents of a batch came from.
type Source string

const (
	SourceFolder Source = "folder"
	SourceUpload Source = "upload"
)

// Record is the parsed result for one document.
type Record struct {
	Name        string            `json:"name"`
	Email       string            `json:"email"`
	Phone       string            `json:"phone"`
	Skills      []string          `json:"skills"`
	File        string            `json:"file"`
	Status      RecordStatus      `json:"status"`
	Error       string            `json:"error,omitempty"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
}

// SkillsDisplay joins the matched skills the way they appear in reports.
func (r Record) SkillsDisplay() string {
	return strings.Join(r.Skills, ", ")
}

// Failed reports whether the document could not be read.
func (r Record) Failed() bool { return r.Status == RecordStatusFailed }

// Failure names a document that could not be parsed.
type Failure struct {
	File  string `json:"file"`
	Error string `json:"error"`
}

// Batch is one run over a set of documents: one record per document, in input order.
type Batch struct {
	ID        uuid.UUID `json:"id"`
	Source    Source    `json:"source"`
	Total     int       `json:"total"`
	Failed    int       `json:"failed"`
	Records   []Record  `json:"records,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Failures lists the failed records of the batch.
func (b Batch) Failures() []Failure {
	out := []Failure{}
	for _, r := range b.Records {
		if r.Failed() {
			out = append(out, Failure{File: r.File, Error: r.Error})
		}
	}
	return out
}

// Repository is the storage port for parsed batches.
type Repository interface {
	Save(ctx context.Context, b Batch) error
	Get(ctx context.Context, id uuid.UUID) (Batch, error)
	// List returns batches newest first, without records.
	List(ctx context.Context, limit, offset int) ([]Batch, error)
}
