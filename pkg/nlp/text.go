package nlp

import (
	"regexp"
	"strings"
)

var (
	reContactLabels = regexp.MustCompile(`(?i)Email:|Phone:|Contact:`)
	reEmailLike     = regexp.MustCompile(`\S+@\S+`)
)

// StripLabels removes the "Email:", "Phone:" and "Contact:" labels (any case) so the
// recognizer does not fold them into a person span.
func StripLabels(text string) string {
	return reContactLabels.ReplaceAllString(text, "")
}

// CleanName normalises a PERSON span: newlines become spaces and anything
// shaped like an email address is dropped.
func CleanName(span string) string {
	s := strings.TrimSpace(span)
	s = strings.ReplaceAll(s, "\n", " ")
	s = reEmailLike.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
