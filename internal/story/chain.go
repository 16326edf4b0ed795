package story

import (
	"context"
	"log/slog"
	"time"

	"github.com/moneystory/moneystory/internal/common"
)

// Chain tries a network-backed generator first and falls back
// unconditionally to the local template on any failure. Chain.Generate
// never returns an error for valid input.
type Chain struct {
	primary  Generator
	fallback Generator
}

// NewChain builds the generator chain. A nil primary (no credentials
// configured) means the template is used directly.
func NewChain(primary, fallback Generator) *Chain {
	if fallback == nil {
		fallback = NewTemplateGenerator()
	}
	return &Chain{primary: primary, fallback: fallback}
}

// Generate produces the story, preferring the primary generator.
func (c *Chain) Generate(ctx context.Context, in Input) (string, error) {
	if c.primary != nil {
		var text string
		err := common.WithRetry(ctx, func() error {
			out, genErr := c.primary.Generate(ctx, in)
			if genErr != nil {
				return genErr
			}
			text = out
			return nil
		}, common.RetryOptions{
			MaxAttempts:  2,
			InitialDelay: 500 * time.Millisecond,
			MaxDelay:     2 * time.Second,
		})
		if err == nil {
			return text, nil
		}
		slog.Warn("story generator failed, falling back to local template",
			"period", in.Period,
			"error", err)
	}

	return c.fallback.Generate(ctx, in)
}
