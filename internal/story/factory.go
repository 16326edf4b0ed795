package story

import (
	"fmt"
	"strings"

	"github.com/moneystory/moneystory/internal/common"
)

// NewGenerator creates a story generator for the configured provider.
func NewGenerator(cfg Config) (Generator, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openai":
		return newOpenAIGenerator(cfg)
	case "anthropic":
		return newAnthropicGenerator(cfg)
	case "local", "":
		return NewTemplateGenerator(), nil
	default:
		return nil, fmt.Errorf("%w: unsupported story provider %q", common.ErrInvalidConfig, cfg.Provider)
	}
}
