package fuzzy

import "math"

// DefaultThreshold is the minimum accepted score.
const DefaultThreshold = 80

// Candidate is the best reference found for one candidate name.
type Candidate struct {
	Reference string
	Score     int
}

// Distinct returns names without repeats, in first-seen order.
func Distinct(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))

	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}

		seen[name] = struct{}{}
		out = append(out, name)
	}

	return out
}

// MatchAll finds, for every distinct candidate, the highest scoring reference.
// Ties go to the reference that comes first in references. Candidates whose
// best score is below threshold are left out of the result.
func MatchAll(references, candidates []string, threshold int, scorer Scorer) map[string]Candidate {
	if scorer == nil {
		scorer = TokenSortRatio
	}

	references = Distinct(references)
	candidates = Distinct(candidates)

	matches := make(map[string]Candidate, len(candidates))
	if len(references) == 0 {
		return matches
	}

	for _, cand := range candidates {
		best, bestScore := "", math.Inf(-1)

		for _, ref := range references {
			if score := scorer(cand, ref); score > bestScore {
				best, bestScore = ref, score
			}
		}

		if bestScore < float64(threshold) {
			continue
		}

		matches[cand] = Candidate{Reference: best, Score: int(math.Round(bestScore))}
	}

	return matches
}
