package nlp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/artem13815/resumeparser/pkg/llm"
)

// LLMRecognizer asks a chat model for PERSON spans.
type LLMRecognizer struct {
	llm      llm.ChatModel
	maxChars int
}

func NewLLMRecognizer(model llm.ChatModel) *LLMRecognizer {
	return &LLMRecognizer{llm: model, maxChars: 12000}
}

const llmSystemPrompt = "You are a named-entity recognizer. Return ONLY a JSON array, no markdown, no explanations. Never invent text that is not in the input."

func (r *LLMRecognizer) Entities(ctx context.Context, text string) ([]Entity, error) {
	if r.llm == nil {
		return nil, errors.New("llm is not configured")
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return []Entity{}, nil
	}
	if len(text) > r.maxChars {
		text = text[:r.maxChars]
	}
	user := fmt.Sprintf(
		"Text:\n<<<\n%s\n>>>\n\nList every person name in the order it appears, as:\n[{\"text\": string, \"label\": \"PERSON\"}]\nReturn [] if there are none.",
		text,
	)
	raw, err := r.llm.Ask(ctx, llmSystemPrompt, user)
	if err != nil {
		return nil, fmt.Errorf("llm ner: %w", err)
	}
	return parseEntityList(raw)
}

func parseEntityList(raw string) ([]Entity, error) {
	raw = strings.TrimSpace(raw)
	var out []Entity
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		// the model sometimes wraps the array in prose or a code fence
		i := strings.Index(raw, "[")
		j := strings.LastIndex(raw, "]")
		if i < 0 || j <= i {
			return nil, fmt.Errorf("llm ner: no JSON array in reply")
		}
		if err := json.Unmarshal([]byte(raw[i:j+1]), &out); err != nil {
			return nil, fmt.Errorf("llm ner: decode reply: %w", err)
		}
	}
	ents := make([]Entity, 0, len(out))
	for _, e := range out {
		e.Text = strings.TrimSpace(e.Text)
		if e.Text == "" {
			continue
		}
		e.Label = strings.ToUpper(strings.TrimSpace(e.Label))
		if e.Label == "" {
			e.Label = LabelPerson
		}
		ents = append(ents, e)
	}
	return ents, nil
}
