package fingerprint

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// consonants and vowels are the alphabets syllables are drawn from.
	consonants = "bcdfghjklmnpqrstvwxyz"
	vowels     = "aeiou"

	// syllableCount is the number of consonant-vowel-consonant syllables built
	// before truncation.
	syllableCount = 5

	// MaxAliasLength is the maximum length of an alias.
	MaxAliasLength = 12

	// seedSeparator joins the address and the seed before hashing.
	seedSeparator = "|"
)

// Alias returns a pronounceable alias for a normalized address.
//
// The alias is built from the first five bytes of Digest(normalized + "|" + seed).
// Each byte b yields one syllable: consonants[b%21], vowels[(b>>3)%5],
// consonants[(b>>5)%21]. The fifteen letters are cut to twelve and the first
// letter is upper-cased.
func Alias(normalized, seed string) string {
	h := Digest(normalized + seedSeparator + seed)

	var sb strings.Builder
	sb.Grow(syllableCount * 3)
	for i := range syllableCount {
		// Digest always returns valid hex, so the parse cannot fail.
		b, _ := strconv.ParseUint(h[i*2:i*2+2], 16, 8) //nolint:errcheck
		sb.WriteByte(consonants[b%uint64(len(consonants))])
		sb.WriteByte(vowels[(b>>3)%uint64(len(vowels))])
		sb.WriteByte(consonants[(b>>5)%uint64(len(consonants))])
	}

	alias := sb.String()[:MaxAliasLength]

	// A Caser keeps state, so each call gets its own.
	return cases.Title(language.Und).String(alias)
}
