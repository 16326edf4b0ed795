package analytics

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/moneystory/moneystory/internal/model"
)

// Persona labels form a closed set regardless of cluster count.
const (
	PersonaSuperSaver        = "Super Saver"
	PersonaBalanced          = "Balanced"
	PersonaSubscriptionHeavy = "Subscription Heavy"
	PersonaLifestyleSpender  = "Lifestyle Spender"
)

// Heuristic thresholds used when there are too few periods to cluster.
const (
	superSaverRate     = 0.40
	subsHeavyShare     = 0.20
	lifestyleShopShare = 0.25
)

// expenseFloor guards share computations when a month has no expenses.
const expenseFloor = 1e-6

// maxClusters bounds the k-means step.
const maxClusters = 3

// monthFeatures is the per-period feature vector fed to clustering.
type monthFeatures struct {
	period        string
	savingsRate   float64
	totalExpense  float64
	subsShare     float64
	shoppingShare float64
}

func (f *monthFeatures) vector() []float64 {
	return []float64{f.savingsRate, f.totalExpense, f.subsShare, f.shoppingShare}
}

// BuildProfiles groups a user's full history by calendar month, computes
// per-month behavioral features, and assigns each month a persona label.
// With fewer than two months the label comes from fixed thresholds;
// otherwise months are clustered (k = min(3, months), deterministic) and
// clusters are mapped to personas greedily, without replacement, so no
// two clusters ever share a label.
func BuildProfiles(txns []model.Transaction) BehaviorProfile {
	if len(txns) == 0 {
		return BehaviorProfile{
			LabelsByPeriod:      map[string]string{},
			ClusterDescriptions: map[string]string{},
		}
	}

	features := computeMonthFeatures(txns)

	labels := make(map[string]string, len(features))
	if len(features) < 2 {
		for i := range features {
			labels[features[i].period] = heuristicLabel(&features[i])
		}
		return BehaviorProfile{
			LabelsByPeriod:      labels,
			ClusterDescriptions: PersonaDescriptions(),
		}
	}

	points := standardize(features)
	k := maxClusters
	if len(features) < k {
		k = len(features)
	}
	assignments := kmeansCluster(points, k)
	personaByCluster := assignPersonas(features, assignments, k)

	for i := range features {
		labels[features[i].period] = personaByCluster[assignments[i]]
	}

	return BehaviorProfile{
		LabelsByPeriod:      labels,
		ClusterDescriptions: PersonaDescriptions(),
	}
}

// PersonaDescriptions returns the static description for every persona,
// always in full regardless of which labels were assigned.
func PersonaDescriptions() map[string]string {
	return map[string]string{
		PersonaSuperSaver:        "High savings rate, controlled expenses. You prioritise surplus and future security.",
		PersonaBalanced:          "Reasonable spending and decent savings. You're mostly in control with room to optimise.",
		PersonaSubscriptionHeavy: "Noticeable chunk of spend goes into recurring services. Good candidate for pruning.",
		PersonaLifestyleSpender:  "Higher shopping / lifestyle spend. You enjoy comforts, but may trim a bit without pain.",
	}
}

func computeMonthFeatures(txns []model.Transaction) []monthFeatures {
	groups := make(map[string][]model.Transaction)
	for _, tx := range txns {
		period := model.MonthPeriod(tx.Timestamp)
		groups[period] = append(groups[period], tx)
	}

	periods := make([]string, 0, len(groups))
	for p := range groups {
		periods = append(periods, p)
	}
	sort.Strings(periods)

	features := make([]monthFeatures, 0, len(periods))
	for _, period := range periods {
		group := groups[period]
		stats := ComputeStats(group)

		expense := stats.TotalExpense
		if expense <= 0 {
			expense = expenseFloor
		}

		var subsSpend, shopSpend float64
		for i := range group {
			if isSubscriptionExpense(&group[i]) {
				subsSpend += group[i].Amount
			}
			if isShoppingExpense(&group[i]) {
				shopSpend += group[i].Amount
			}
		}

		features = append(features, monthFeatures{
			period:        period,
			savingsRate:   stats.SavingsRate,
			totalExpense:  stats.TotalExpense,
			subsShare:     subsSpend / expense,
			shoppingShare: shopSpend / expense,
		})
	}
	return features
}

// heuristicLabel applies the fixed priority thresholds used when
// clustering is skipped.
func heuristicLabel(f *monthFeatures) string {
	switch {
	case f.savingsRate >= superSaverRate:
		return PersonaSuperSaver
	case f.subsShare > subsHeavyShare:
		return PersonaSubscriptionHeavy
	case f.shoppingShare > lifestyleShopShare:
		return PersonaLifestyleSpender
	default:
		return PersonaBalanced
	}
}

// standardize scales each feature to zero mean and unit variance across
// periods. Constant features are left centered at zero.
func standardize(features []monthFeatures) [][]float64 {
	n := len(features)
	points := make([][]float64, n)
	for i := range features {
		points[i] = features[i].vector()
	}

	dims := len(points[0])
	column := make([]float64, n)
	for d := 0; d < dims; d++ {
		for i := range points {
			column[i] = points[i][d]
		}
		mean := stat.Mean(column, nil)
		std := stat.PopStdDev(column, nil)
		if std == 0 {
			std = 1
		}
		for i := range points {
			points[i][d] = (points[i][d] - mean) / std
		}
	}
	return points
}

// assignPersonas maps clusters to personas greedily: highest mean savings
// rate takes Super Saver, then highest mean subscription share takes
// Subscription Heavy, then highest mean shopping share takes Lifestyle
// Spender, and whatever is left is Balanced. Each cluster gets exactly
// one label; cluster IDs themselves carry no meaning.
func assignPersonas(features []monthFeatures, assignments []int, k int) map[int]string {
	type clusterMeans struct {
		savings  float64
		subs     float64
		shopping float64
		count    int
	}

	means := make([]clusterMeans, k)
	for i := range features {
		c := assignments[i]
		means[c].savings += features[i].savingsRate
		means[c].subs += features[i].subsShare
		means[c].shopping += features[i].shoppingShare
		means[c].count++
	}
	for c := range means {
		if means[c].count > 0 {
			n := float64(means[c].count)
			means[c].savings /= n
			means[c].subs /= n
			means[c].shopping /= n
		}
	}

	remaining := make(map[int]bool, k)
	for c := 0; c < k; c++ {
		remaining[c] = true
	}

	labels := make(map[int]string, k)
	selectors := []struct {
		metric func(clusterMeans) float64
		label  string
	}{
		{metric: func(m clusterMeans) float64 { return m.savings }, label: PersonaSuperSaver},
		{metric: func(m clusterMeans) float64 { return m.subs }, label: PersonaSubscriptionHeavy},
		{metric: func(m clusterMeans) float64 { return m.shopping }, label: PersonaLifestyleSpender},
	}

	for _, sel := range selectors {
		if len(remaining) == 0 {
			break
		}
		best := -1
		for c := 0; c < k; c++ {
			if !remaining[c] {
				continue
			}
			if best == -1 || sel.metric(means[c]) > sel.metric(means[best]) {
				best = c
			}
		}
		labels[best] = sel.label
		delete(remaining, best)
	}

	for c := range remaining {
		labels[c] = PersonaBalanced
	}
	return labels
}
