package nlp

import (
	"regexp"
	"strings"
)

var reSpaces = regexp.MustCompile(`\s+`)

// NormalizeSkill приводит название навыка к каноническому виду:
// обрезает пробелы по краям и схлопывает внутренние, чтобы
// "Machine  Learning" и "Machine Learning" считались одним навыком.
func NormalizeSkill(skill string) string {
	return reSpaces.ReplaceAllString(strings.TrimSpace(skill), " ")
}
