package resume

import (
	"context"
	"regexp"

	"github.com/artem13815/resumeparser/pkg/nlp"
)

var (
	emailRegex = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	// Loose on purpose: long digit runs (zip+4, IDs) also match.
	phoneRegex = regexp.MustCompile(`\+?\d[\d\s-]{8,}\d`)
)

// FieldName is the key used in Record.FieldErrors.
const FieldName = "Name"

// Fields are the values pulled out of one resume text.
type Fields struct {
	Name        string
	Email       string
	Phone       string
	Skills      []string
	FieldErrors map[string]string
}

// Extractor turns raw resume text into Fields. It holds no mutable state,
// so one Extractor may serve concurrent callers.
type Extractor struct {
	recognizer nlp.Recognizer
	catalog    *nlp.Catalog
}

func NewExtractor(recognizer nlp.Recognizer, catalog *nlp.Catalog) *Extractor {
	if catalog == nil {
		catalog = nlp.NewCatalog(nlp.DefaultSkills(), nlp.MatchSubstring)
	}
	return &Extractor{recognizer: recognizer, catalog: catalog}
}

// Catalog exposes the skill catalog the extractor matches against.
func (e *Extractor) Catalog() *nlp.Catalog { return e.catalog }

// Parse extracts name, email, phone and skills. Email, phone and skills are
// matched against the unmodified text; the name comes from the first PERSON
// entity of the label-stripped text.
func (e *Extractor) Parse(ctx context.Context, text string) Fields {
	f := Fields{
		Email:  emailRegex.FindString(text),
		Phone:  phoneRegex.FindString(text),
		Skills: e.catalog.Match(text),
	}
	name, err := nlp.FirstPerson(ctx, e.recognizer, nlp.StripLabels(text))
	if err != nil {
		f.FieldErrors = map[string]string{FieldName: err.Error()}
	} else {
		f.Name = name
	}
	return f
}
