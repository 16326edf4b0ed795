package story

import (
	"encoding/json"
	"fmt"
	"strings"
)

const systemPrompt = "You are a friendly, non-judgmental personal finance coach for young professionals in India."

// buildPrompt serializes the month's results into the coaching prompt
// shared by all network providers.
func buildPrompt(in Input) (string, error) {
	stats, err := json.Marshal(in.Stats)
	if err != nil {
		return "", fmt.Errorf("failed to marshal stats: %w", err)
	}
	categories, err := json.Marshal(in.Categories)
	if err != nil {
		return "", fmt.Errorf("failed to marshal categories: %w", err)
	}
	patterns, err := json.Marshal(in.Patterns)
	if err != nil {
		return "", fmt.Errorf("failed to marshal patterns: %w", err)
	}

	var b strings.Builder
	b.WriteString("You are given:\n")
	fmt.Fprintf(&b, "- A month label: %s\n", in.Period)
	fmt.Fprintf(&b, "- Basic stats: %s\n", stats)
	fmt.Fprintf(&b, "- Top spending categories: %s\n", categories)
	fmt.Fprintf(&b, "- Detected patterns: %s\n\n", patterns)
	b.WriteString(`Task:
- Write a conversational, empathetic "money story" for this month.
- Use very simple language and short paragraphs.
- Do NOT mention that you used stats or data; just talk like a coach.
- Include:
  - How much they roughly earned and spent
  - Biggest spending areas in plain language
  - A gentle comment on savings health (not shaming)
  - 2-3 concrete, realistic suggestions they can try next month
- Keep it under 300 words.`)

	return b.String(), nil
}
