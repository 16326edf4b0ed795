package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/moneystory/moneystory/internal/category"
	"github.com/moneystory/moneystory/internal/model"
	"github.com/moneystory/moneystory/internal/storage"
	"github.com/moneystory/moneystory/internal/story"
)

// expandPath resolves ~ and environment variables in a config path.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	return os.ExpandEnv(path)
}

// initStorage opens the configured database, creating it on first use.
func initStorage() (*storage.SQLiteStore, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/moneystory/moneystory.db"
	}
	return storage.New(expandPath(dbPath))
}

// initResolver loads keyword rules from config or falls back to the
// built-in table.
func initResolver() (*category.Resolver, error) {
	rulesPath := viper.GetString("categories.rules_file")
	if rulesPath == "" {
		return category.NewResolver(nil), nil
	}
	rules, err := category.LoadRules(expandPath(rulesPath))
	if err != nil {
		return nil, fmt.Errorf("failed to load category rules: %w", err)
	}
	return category.NewResolver(rules), nil
}

// initGenerator builds the story chain: configured provider first, local
// template as the unconditional fallback. A misconfigured or absent
// provider never aborts a command; the template serves instead.
func initGenerator() story.Generator {
	cfg := story.Config{
		Provider:    viper.GetString("story.provider"),
		APIKey:      viper.GetString("story.api_key"),
		Model:       viper.GetString("story.model"),
		Temperature: viper.GetFloat64("story.temperature"),
		MaxTokens:   viper.GetInt("story.max_tokens"),
	}
	primary, err := story.NewGenerator(cfg)
	if err != nil {
		slog.Warn("story provider unavailable, using local template",
			"provider", cfg.Provider,
			"error", err)
		primary = nil
	}
	return story.NewChain(primary, story.NewTemplateGenerator())
}

// resolveUser picks the configured user, defaulting to the first one.
func resolveUser(ctx context.Context, store *storage.SQLiteStore) (*model.User, error) {
	if id := viper.GetInt64("user.id"); id > 0 {
		return store.GetUser(ctx, id)
	}
	return store.FirstUser(ctx)
}
