package fingerprint

import "strings"

const (
	// DefaultGridSize is the identicon width and height used when none is given.
	DefaultGridSize = 7

	// FilledCell and EmptyCell are the glyphs used to render the grid.
	FilledCell = "█"
	EmptyCell  = " "

	// digestBits is the number of bits available in a digest. The bit cursor
	// wraps to zero when it reaches this value.
	digestBits = 256
)

// Identicon renders a size×size grid from the unseeded digest of a
// normalized address. Rows are returned top to bottom.
//
// Bits are read big-endian from the digest, one per cell, filling the left
// half (and the centre column for odd sizes) row by row. Each cell is mirrored
// onto the right half, so every row reads the same in both directions.
// A size of zero or less selects DefaultGridSize.
func Identicon(normalized string, size int) []string {
	if size <= 0 {
		size = DefaultGridSize
	}

	sum := digestBytes(normalized)
	grid := make([][]bool, size)
	for r := range grid {
		grid[r] = make([]bool, size)
	}

	half := (size + 1) / 2
	cursor := 0
	for r := range size {
		for c := range half {
			if cursor >= digestBits {
				cursor = 0
			}
			filled := sum[cursor/8]>>(7-cursor%8)&1 == 1
			grid[r][c] = filled
			grid[r][size-1-c] = filled
			cursor++
		}
	}

	rows := make([]string, size)
	for r, cells := range grid {
		var sb strings.Builder
		for _, filled := range cells {
			if filled {
				sb.WriteString(FilledCell)
			} else {
				sb.WriteString(EmptyCell)
			}
		}
		rows[r] = sb.String()
	}
	return rows
}
