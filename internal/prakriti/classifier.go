package prakriti

import "sort"

// Result is the outcome of a classification.
type Result struct {
	Primary   Dosha  `json:"primary"`
	Secondary *Dosha `json:"secondary"`
}

// Score is the number of traits matching a dosha's template.
type Score struct {
	Dosha Dosha `json:"dosha"`
	Score int   `json:"score"`
}

// Classification carries the result together with the ranked scores.
type Classification struct {
	Result Result  `json:"result"`
	Scores []Score `json:"scores"`
}

// Classify scores t against every dosha template and ranks the doshas by
// descending score. Equal scores keep the order of Order. A key without a
// value matches no template.
func Classify(t Traits) Classification {
	scores := make([]Score, 0, len(Order))
	for _, d := range Order {
		tpl := templates[d]
		n := 0
		for _, key := range TraitKeys {
			v := t.Get(key)
			if v != "" && v == tpl.Get(key) {
				n++
			}
		}
		scores = append(scores, Score{Dosha: d, Score: n})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})

	res := Result{Primary: scores[0].Dosha}
	if scores[1].Score > 0 {
		second := scores[1].Dosha
		res.Secondary = &second
	}
	return Classification{Result: res, Scores: scores}
}
