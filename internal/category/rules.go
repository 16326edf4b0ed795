package category

// Rule maps a lower-case keyword to a category. Rules are matched in
// declaration order; the first keyword found in a transaction's text wins.
type Rule struct {
	Keyword  string `yaml:"keyword"`
	Category string `yaml:"category"`
}

// DefaultRules returns the built-in keyword table, tuned for young
// professionals in India. Treat this as configuration: the table can be
// replaced wholesale via LoadRules without touching matching logic.
func DefaultRules() []Rule {
	return []Rule{
		// Food & eating out
		{Keyword: "zomato", Category: "Food"},
		{Keyword: "swiggy", Category: "Food"},
		{Keyword: "blinkit", Category: "Food"},
		{Keyword: "instamart", Category: "Food"},
		{Keyword: "bigbasket", Category: "Food"},
		{Keyword: "starbucks", Category: "Food"},
		{Keyword: "cafe", Category: "Food"},
		{Keyword: "restaurant", Category: "Food"},

		// Transport
		{Keyword: "uber", Category: "Transport"},
		{Keyword: "ola", Category: "Transport"},
		{Keyword: "rapido", Category: "Transport"},
		{Keyword: "metro", Category: "Transport"},
		{Keyword: "cab", Category: "Transport"},
		{Keyword: "fuel", Category: "Transport"},
		{Keyword: "petrol", Category: "Transport"},
		{Keyword: "diesel", Category: "Transport"},

		// Subscriptions / OTT
		{Keyword: "netflix", Category: "Subscriptions"},
		{Keyword: "spotify", Category: "Subscriptions"},
		{Keyword: "hotstar", Category: "Subscriptions"},
		{Keyword: "disney", Category: "Subscriptions"},
		{Keyword: "prime", Category: "Subscriptions"},
		{Keyword: "youtube", Category: "Subscriptions"},
		{Keyword: "apple music", Category: "Subscriptions"},

		// Shopping / lifestyle
		{Keyword: "amazon", Category: "Shopping"},
		{Keyword: "flipkart", Category: "Shopping"},
		{Keyword: "myntra", Category: "Shopping"},
		{Keyword: "ajio", Category: "Shopping"},
		{Keyword: "h&m", Category: "Shopping"},
		{Keyword: "zara", Category: "Shopping"},
		{Keyword: "nykaa", Category: "Shopping"},

		// Housing
		{Keyword: "rent", Category: "Housing"},
		{Keyword: "landlord", Category: "Housing"},
		{Keyword: "maintenance", Category: "Housing"},
		{Keyword: "society", Category: "Housing"},

		// Income
		{Keyword: "salary", Category: "Salary"},
		{Keyword: "salaried", Category: "Salary"},
		{Keyword: "stipend", Category: "Salary"},
		{Keyword: "freelance", Category: "Side Income"},
		{Keyword: "consulting", Category: "Side Income"},
		{Keyword: "bonus", Category: "Bonus"},

		// Fees / charges
		{Keyword: "fee", Category: "Fees & Charges"},
		{Keyword: "charges", Category: "Fees & Charges"},
		{Keyword: "penalty", Category: "Fees & Charges"},
		{Keyword: "fine", Category: "Fees & Charges"},
		{Keyword: "interest", Category: "Fees & Charges"},
	}
}
