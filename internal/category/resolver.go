// Package category fills missing transaction categories using an ordered
// keyword table over the transaction's free-text fields.
package category

import (
	"strings"

	"github.com/moneystory/moneystory/internal/model"
)

// Resolver guesses categories for uncategorized transactions.
type Resolver struct {
	rules []Rule
}

// NewResolver creates a resolver backed by the given ordered rule table.
// A nil or empty table falls back to the built-in defaults.
func NewResolver(rules []Rule) *Resolver {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Resolver{rules: rules}
}

// Guess returns the category of the first rule whose keyword appears in
// the concatenated lower-cased description, source, and account name.
// The second return value is false when no keyword matches.
func (r *Resolver) Guess(description, source, accountName string) (string, bool) {
	tx := model.Transaction{
		Description: description,
		Source:      source,
		AccountName: accountName,
	}
	return r.guess(&tx)
}

func (r *Resolver) guess(tx *model.Transaction) (string, bool) {
	text := tx.SearchText()
	if text == "" {
		return "", false
	}
	for _, rule := range r.rules {
		if strings.Contains(text, rule.Keyword) {
			return rule.Category, true
		}
	}
	return "", false
}

// Apply returns a copy of the transaction set with blank categories
// filled in where a keyword matches. Existing non-blank categories are
// never overwritten, and the input slice is never mutated.
func (r *Resolver) Apply(txns []model.Transaction) []model.Transaction {
	out := make([]model.Transaction, len(txns))
	copy(out, txns)
	for i := range out {
		if out[i].HasCategory() {
			continue
		}
		if cat, ok := r.guess(&out[i]); ok {
			out[i].Category = cat
		}
	}
	return out
}
