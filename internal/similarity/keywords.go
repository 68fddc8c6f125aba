package similarity

// DefaultIDFWeight is the weight assumed for keywords absent from the IDF
// table. Unseen-in-corpus keywords are treated as moderately informative
// rather than worthless.
const DefaultIDFWeight = 0.1

// Jaccard computes intersection-over-union on the de-duplicated sets of the
// two keyword lists. Two empty lists are a vacuous perfect match (1.0);
// exactly one empty list means no overlap is possible (0.0).
func Jaccard(listA, listB []string) float64 {
	setA := toSet(listA)
	setB := toSet(listB)

	if len(setA) == 0 && len(setB) == 0 {
		return 1.0
	}
	if len(setA) == 0 || len(setB) == 0 {
		return 0.0
	}

	intersection := 0
	for kw := range setA {
		if setB[kw] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection

	return float64(intersection) / float64(union)
}

// EditDistance computes the Levenshtein distance between two strings.
// Comparison is case-sensitive; callers are expected to have normalized case
// already.
func EditDistance(s1, s2 string) int {
	r1 := []rune(s1)
	r2 := []rune(s2)

	if len(r1) < len(r2) {
		r1, r2 = r2, r1
	}
	if len(r2) == 0 {
		return len(r1)
	}

	prev := make([]int, len(r2)+1)
	curr := make([]int, len(r2)+1)
	for j := range prev {
		prev[j] = j
	}

	for i, c1 := range r1 {
		curr[0] = i + 1
		for j, c2 := range r2 {
			insertion := prev[j+1] + 1
			deletion := curr[j] + 1
			substitution := prev[j]
			if c1 != c2 {
				substitution++
			}
			curr[j+1] = min(insertion, deletion, substitution)
		}
		prev, curr = curr, prev
	}

	return prev[len(r2)]
}

// FuzzyMatch reports whether two words are close enough to be treated as the
// same keyword. Exact equality short-circuits; otherwise similarity is
// 1 - editDistance/maxLen and must reach the threshold. Two empty strings
// match.
func FuzzyMatch(w1, w2 string, threshold float64) bool {
	if w1 == w2 {
		return true
	}

	maxLen := max(len([]rune(w1)), len([]rune(w2)))
	if maxLen == 0 {
		return true
	}

	sim := 1.0 - float64(EditDistance(w1, w2))/float64(maxLen)
	return sim >= threshold
}

// FindFuzzyMatches returns the subset of jobKeywords for which at least one
// userKeyword is a fuzzy match. Only the job-side tokens are reported as
// matched; the relation is deliberately asymmetric because only catalog
// keywords carry IDF weight in the weighted intersection.
func FindFuzzyMatches(userKeywords, jobKeywords []string, threshold float64) map[string]bool {
	matches := make(map[string]bool)
	for _, user := range userKeywords {
		for _, job := range jobKeywords {
			if matches[job] {
				continue
			}
			if FuzzyMatch(user, job, threshold) {
				matches[job] = true
			}
		}
	}
	return matches
}

// WeightedJaccard computes IDF-weighted set similarity with fuzzy matching.
// The intersection is the union of exact matches and fuzzy matches (job-side
// tokens); both intersection and union are summed by IDF weight, with
// DefaultIDFWeight for keywords missing from the table. Two empty lists
// yield 1.0, exactly one empty yields 0.0, and a zero-weight union yields
// 0.0.
func WeightedJaccard(userKeywords, jobKeywords []string, idfWeights map[string]float64, fuzzyThreshold float64) float64 {
	if len(userKeywords) == 0 && len(jobKeywords) == 0 {
		return 1.0
	}
	if len(userKeywords) == 0 || len(jobKeywords) == 0 {
		return 0.0
	}

	matched := FindFuzzyMatches(userKeywords, jobKeywords, fuzzyThreshold)

	userSet := toSet(userKeywords)
	jobSet := toSet(jobKeywords)
	for kw := range userSet {
		if jobSet[kw] {
			matched[kw] = true
		}
	}

	var weightedIntersection float64
	for kw := range matched {
		weightedIntersection += idfWeight(idfWeights, kw)
	}

	var weightedUnion float64
	for kw := range userSet {
		weightedUnion += idfWeight(idfWeights, kw)
	}
	for kw := range jobSet {
		if !userSet[kw] {
			weightedUnion += idfWeight(idfWeights, kw)
		}
	}

	if weightedUnion == 0 {
		return 0.0
	}

	return weightedIntersection / weightedUnion
}

func idfWeight(weights map[string]float64, keyword string) float64 {
	if w, ok := weights[keyword]; ok {
		return w
	}
	return DefaultIDFWeight
}

func toSet(list []string) map[string]bool {
	set := make(map[string]bool, len(list))
	for _, s := range list {
		set[s] = true
	}
	return set
}
