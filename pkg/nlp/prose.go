package nlp

import (
	"context"
	"fmt"

	"github.com/jdkato/prose/v2"
)

// ProseRecognizer runs the prose averaged-perceptron NER model.
type ProseRecognizer struct{}

// NewProseRecognizer checks that the bundled model loads and returns a recognizer.
func NewProseRecognizer() (*ProseRecognizer, error) {
	if _, err := prose.NewDocument("John Smith", prose.WithSegmentation(false)); err != nil {
		return nil, fmt.Errorf("load prose model: %w", err)
	}
	return &ProseRecognizer{}, nil
}

func (r *ProseRecognizer) Entities(ctx context.Context, text string) ([]Entity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		return nil, fmt.Errorf("prose: %w", err)
	}
	ents := doc.Entities()
	out := make([]Entity, 0, len(ents))
	for _, e := range ents {
		out = append(out, Entity{Text: e.Text, Label: e.Label})
	}
	return out, nil
}
