package nlp

import (
	"context"
	"errors"
)

// LabelPerson is the entity label for people.
const LabelPerson = "PERSON"

// ErrNoRecognizer is returned when a name lookup runs without a recognizer.
var ErrNoRecognizer = errors.New("no entity recognizer configured")

// Entity is a labelled span of text.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Recognizer finds named entities. Implementations return entities in document order.
type Recognizer interface {
	Entities(ctx context.Context, text string) ([]Entity, error)
}

// FirstPerson returns the cleaned text of the first PERSON entity, or "" when none.
func FirstPerson(ctx context.Context, r Recognizer, text string) (string, error) {
	if r == nil {
		return "", ErrNoRecognizer
	}
	ents, err := r.Entities(ctx, text)
	if err != nil {
		return "", err
	}
	for _, e := range ents {
		if e.Label == LabelPerson {
			return CleanName(e.Text), nil
		}
	}
	return "", nil
}
