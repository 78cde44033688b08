package fingerprint

import (
	"math"
	"strconv"
	"strings"
)

const (
	// maxNibbleEntropy is the entropy in bits of a uniform 16-symbol alphabet.
	maxNibbleEntropy = 4.0

	// MaxEntropyScore is the upper bound of EntropyScore.
	MaxEntropyScore = 100.0
)

// EntropyScore estimates how uniformly the characters of s are distributed.
//
// It computes the Shannon entropy of the character frequencies in bits and
// scales it so that a uniform spread over the 16 hex digits scores 100.
// Characters outside 0-9a-f are counted like any other and can push the raw
// entropy above 4 bits, so the result is clamped to 100. The score is
// rounded to one decimal place, ties to even. An empty string scores 0.
//
// The digest is not involved: the score describes the address itself.
func EntropyScore(s string) float64 {
	counts, total := charFrequencies(strings.ToLower(s))
	if total == 0 {
		return 0
	}

	// Terms are summed one by one in first-occurrence order. Scores that sit
	// on a .x5 boundary depend on the exact bits of the sum.
	ln2 := math.Log(2)
	bits := 0.0
	for _, n := range counts {
		p := float64(n) / float64(total)
		bits -= p * (math.Log(p) / ln2)
	}
	if bits <= 0 {
		// A single repeated character yields -0, which would print as "-0.0".
		return 0
	}

	return roundScore(math.Min(MaxEntropyScore, bits/maxNibbleEntropy*100))
}

// roundScore rounds x to one decimal place. strconv rounds the exact binary
// value and breaks ties to even, unlike math.Round.
func roundScore(x float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 1, 64), 64)
	if err != nil {
		return x
	}
	return r
}

// charFrequencies counts each distinct rune of s in first-occurrence order.
// A fixed order keeps the floating-point sum identical from run to run.
func charFrequencies(s string) ([]int, int) {
	index := make(map[rune]int)
	var counts []int
	total := 0
	for _, c := range s {
		i, ok := index[c]
		if !ok {
			i = len(counts)
			index[c] = i
			counts = append(counts, 0)
		}
		counts[i]++
		total++
	}
	return counts, total
}
