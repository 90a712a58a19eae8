package matching

import (
	"github.com/MrJamesThe3rd/roommapper/internal/fuzzy"
)

// Pair joins a reference record to a supplier record that matched it.
type Pair[R, S Record] struct {
	Reference R
	Supplier  S
	Score     int
}

// Pairing splits two record lists into matched pairs and the records left
// over on each side. Every input record lands in exactly one of the three.
type Pairing[R, S Record] struct {
	Matched            []Pair[R, S]
	UnmatchedReference []R
	UnmatchedSupplier  []S
}

// PairRooms matches supplier records against reference records by their
// normalized names. Matching runs once per distinct name; the results are then
// joined back onto every record.
//
// A supplier record is paired with the first reference record (input order)
// carrying the matched name, so it never ends up in two pairs. Later reference
// records with the same normalized name get no suppliers and are reported in
// UnmatchedReference, even when a supplier name matches them exactly. Pairs are
// ordered by reference record, then by supplier record.
func PairRooms[R, S Record](refs []R, sups []S, threshold int, scorer fuzzy.Scorer) Pairing[R, S] {
	refNames := make([]string, len(refs))
	owner := make(map[string]int, len(refs))

	for i, r := range refs {
		name := r.Normalized()
		refNames[i] = name

		if _, ok := owner[name]; !ok {
			owner[name] = i
		}
	}

	supNames := make([]string, len(sups))
	for i, s := range sups {
		supNames[i] = s.Normalized()
	}

	candidates := fuzzy.MatchAll(refNames, supNames, threshold, scorer)

	assigned := make(map[int][]int, len(candidates))

	for j, name := range supNames {
		c, ok := candidates[name]
		if !ok {
			continue
		}

		i := owner[c.Reference]
		assigned[i] = append(assigned[i], j)
	}

	var out Pairing[R, S]

	matchedRefs := make(map[Key]struct{}, len(assigned))
	matchedSups := make(map[Key]struct{}, len(sups))

	for i, r := range refs {
		for _, j := range assigned[i] {
			s := sups[j]
			out.Matched = append(out.Matched, Pair[R, S]{
				Reference: r,
				Supplier:  s,
				Score:     candidates[supNames[j]].Score,
			})
			matchedRefs[r.Key()] = struct{}{}
			matchedSups[s.Key()] = struct{}{}
		}
	}

	for _, r := range refs {
		if _, ok := matchedRefs[r.Key()]; !ok {
			out.UnmatchedReference = append(out.UnmatchedReference, r)
		}
	}

	for _, s := range sups {
		if _, ok := matchedSups[s.Key()]; !ok {
			out.UnmatchedSupplier = append(out.UnmatchedSupplier, s)
		}
	}

	return out
}
