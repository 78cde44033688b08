package extract

import (
	"bufio"
	"context"
	"io"
	"regexp"
	"sort"
)

// Kind identifies the address format of a match.
type Kind string

const (
	// KindEthereum is a 0x-prefixed 20-byte hex address.
	KindEthereum Kind = "ethereum"
	// KindDigest is a 32-byte hex value such as a transaction hash or key
	// fingerprint, with or without 0x.
	KindDigest Kind = "digest"
	// KindBitcoinLegacy is a base58 P2PKH or P2SH Bitcoin address.
	KindBitcoinLegacy Kind = "bitcoin_legacy"
	// KindBitcoinBech32 is a bech32 Bitcoin address.
	KindBitcoinBech32 Kind = "bitcoin_bech32"
)

// maxLineLength bounds a single input line.
const maxLineLength = 1 << 20

// pattern pairs a Kind with its detection regex.
type pattern struct {
	kind Kind
	re   *regexp.Regexp
}

// allPatterns lists every supported format. Order breaks ties between
// matches that start at the same offset and have the same length.
var allPatterns = []pattern{
	{kind: KindEthereum, re: regexp.MustCompile(`\b0[xX][a-fA-F0-9]{40}\b`)},
	{kind: KindDigest, re: regexp.MustCompile(`\b(?:0[xX])?[a-fA-F0-9]{64}\b`)},
	{kind: KindBitcoinBech32, re: regexp.MustCompile(`\bbc1[a-z0-9]{39,59}\b`)},
	{kind: KindBitcoinLegacy, re: regexp.MustCompile(`\b[13][a-km-zA-HJ-NP-Z1-9]{25,34}\b`)},
}

// Match is one address found in the input.
type Match struct {
	// Kind is the detected format.
	Kind Kind

	// Address is the matched text, unchanged.
	Address string

	// Line is the 1-based line number of the first occurrence.
	Line int
}

// Extractor detects addresses of the configured kinds.
type Extractor struct {
	patterns []pattern
}

// New creates an Extractor for the given kinds. With no kinds, every
// supported format is detected. Unknown kinds are ignored.
func New(kinds ...Kind) *Extractor {
	if len(kinds) == 0 {
		return &Extractor{patterns: allPatterns}
	}

	wanted := make(map[Kind]bool, len(kinds))
	for _, k := range kinds {
		wanted[k] = true
	}
	e := &Extractor{}
	for _, p := range allPatterns {
		if wanted[p.kind] {
			e.patterns = append(e.patterns, p)
		}
	}
	return e
}

// span is a candidate match within one line.
type span struct {
	start, end int
	kind       Kind
	rank       int
}

// FindLine returns the non-overlapping matches in a single line, in the
// order they appear. Where matches overlap, the earliest and then longest
// one wins.
func (e *Extractor) FindLine(line string) []Match {
	var spans []span
	for rank, p := range e.patterns {
		for _, loc := range p.re.FindAllStringIndex(line, -1) {
			spans = append(spans, span{start: loc[0], end: loc[1], kind: p.kind, rank: rank})
		}
	}

	sort.Slice(spans, func(i, j int) bool {
		a, b := spans[i], spans[j]
		if a.start != b.start {
			return a.start < b.start
		}
		if a.end != b.end {
			return a.end > b.end
		}
		return a.rank < b.rank
	})

	matches := make([]Match, 0, len(spans))
	end := -1
	for _, s := range spans {
		if s.start < end {
			continue
		}
		matches = append(matches, Match{Kind: s.kind, Address: line[s.start:s.end]})
		end = s.end
	}
	return matches
}

// Find reads r line by line and returns every distinct address in order of
// first appearance. Cancellation is checked between lines.
func (e *Extractor) Find(ctx context.Context, r io.Reader) ([]Match, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	seen := make(map[string]bool)
	var matches []Match
	for lineNo := 1; scanner.Scan(); lineNo++ {
		select {
		case <-ctx.Done():
			return matches, ctx.Err()
		default:
		}

		for _, m := range e.FindLine(scanner.Text()) {
			if seen[m.Address] {
				continue
			}
			seen[m.Address] = true
			m.Line = lineNo
			matches = append(matches, m)
		}
	}

	return matches, scanner.Err()
}

// Addresses returns the Address of every match.
func Addresses(matches []Match) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Address
	}
	return out
}
