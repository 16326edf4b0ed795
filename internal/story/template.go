package story

import (
	"context"
	"fmt"
	"strings"

	"github.com/moneystory/moneystory/internal/analytics"
)

// templateGenerator is the deterministic local fallback. Given valid
// inputs it has no failure modes.
type templateGenerator struct{}

// NewTemplateGenerator creates the local, non-network story generator.
func NewTemplateGenerator() Generator {
	return &templateGenerator{}
}

func (g *templateGenerator) Generate(_ context.Context, in Input) (string, error) {
	stats := in.Stats
	patterns := in.Patterns

	topCats := in.Categories
	if len(topCats) > 3 {
		topCats = topCats[:3]
	}
	catsText := "No major expenses recorded."
	if len(topCats) > 0 {
		parts := make([]string, 0, len(topCats))
		for _, c := range topCats {
			parts = append(parts, fmt.Sprintf("%s (%.0f)", c.Category, c.TotalSpend))
		}
		catsText = strings.Join(parts, "; ")
	}

	tone := "steady and healthy overall."
	switch patterns.CashflowFlag {
	case analytics.CashflowCritical:
		tone = "at risk — your spending was higher than your income."
	case analytics.CashflowWarning:
		tone = "okay, but your savings cushion is thinner than ideal."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "For %s, here's your money story in plain language:\n\n", in.Period)
	fmt.Fprintf(&b, "You brought in about ₹%.0f and spent around ₹%.0f.\n", stats.TotalIncome, stats.TotalExpense)
	fmt.Fprintf(&b, "That leaves you with roughly ₹%.0f left over, which means your savings rate\n", stats.Net)
	fmt.Fprintf(&b, "for the month was about %.1f%%. Overall, your cashflow looks %s\n\n", stats.SavingsRate*100, tone)
	fmt.Fprintf(&b, "Most of your outgoing money went into: %s\n\n", catsText)
	fmt.Fprintf(&b, "Looking at patterns, you paid about ₹%.0f in fees or charges\n", patterns.HighFees.Total)
	fmt.Fprintf(&b, "across %d transaction(s). This is money that gives you zero value\n", patterns.HighFees.Count)
	b.WriteString("back — it's usually worth reducing this over time.\n\n")
	fmt.Fprintf(&b, "We also noticed %d day(s) where your spending spiked well above\n", len(patterns.ImpulseSpikes.Days))
	fmt.Fprintf(&b, "your usual daily level. On those days you spent roughly ₹%.0f\n", patterns.ImpulseSpikes.ExtraSpend)
	b.WriteString("more than your typical pattern. These are good candidates for \"impulse days\" to\nreflect on.\n\n")
	fmt.Fprintf(&b, "Subscriptions (OTT, music, etc.) added up to about ₹%.0f\n", patterns.Subscriptions.Total)
	fmt.Fprintf(&b, "across %d transaction(s). It might be worth checking if all of them\n", patterns.Subscriptions.Count)
	b.WriteString("are still actively used.\n\n")
	b.WriteString("If you want one simple takeaway: reduce unnecessary fees and tame 1-2 of the\n")
	b.WriteString("spike days next month — that alone can improve your savings rate meaningfully\n")
	b.WriteString("without feeling like a harsh budget.")

	return b.String(), nil
}
