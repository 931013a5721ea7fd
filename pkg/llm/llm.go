package llm

import "context"

// ChatModel is a single-turn chat completion backend used by the LLM recognizer.
type ChatModel interface {
	Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
