// Package story turns one month's analytics results into a short prose
// "money story". A network-backed generator can be configured; a
// deterministic local template always stands behind it, so narrative
// generation never fails the caller.
package story

import (
	"context"

	"github.com/moneystory/moneystory/internal/analytics"
)

// Input carries everything a generator needs for one month's narrative.
type Input struct {
	Period     string
	Stats      analytics.Stats
	Categories []analytics.CategorySpend
	Patterns   analytics.PatternReport
}

// Generator produces the narrative text for one period.
type Generator interface {
	Generate(ctx context.Context, in Input) (string, error)
}

// Config selects and tunes a generator provider.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
}
