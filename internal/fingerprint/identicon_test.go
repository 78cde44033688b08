package fingerprint

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdenticon(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		normalized string
		want       []string
	}{
		{
			name:       "deadbeef",
			normalized: "deadbeef",
			want: []string{
				"  █ █  ",
				"█ ███ █",
				"█ █ █ █",
				"███████",
				"   █   ",
				"███████",
				" █   █ ",
			},
		},
		{
			name:       "empty address",
			normalized: "",
			want: []string{
				"███ ███",
				"  ███  ",
				"█ ███ █",
				"       ",
				"██   ██",
				" █   █ ",
				" █   █ ",
			},
		},
		{
			name:       "ethereum address",
			normalized: "d8da6bf26964af9d7eed9e03e53415d37aa96045",
			want: []string{
				"█     █",
				" █ █ █ ",
				" █████ ",
				"███████",
				"   █   ",
				"██   ██",
				"  ███  ",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Identicon(tt.normalized, DefaultGridSize))
		})
	}
}

func TestIdenticon_DefaultSize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Identicon("deadbeef", DefaultGridSize), Identicon("deadbeef", 0))
	assert.Equal(t, Identicon("deadbeef", DefaultGridSize), Identicon("deadbeef", -3))
}

func TestIdenticon_Symmetry(t *testing.T) {
	t.Parallel()

	for _, size := range []int{1, 2, 5, 7, 8, 16, 25} {
		for _, addr := range []string{"", "deadbeef", "zz", "0123456789abcdef"} {
			rows := Identicon(addr, size)
			require.Len(t, rows, size)
			for r, row := range rows {
				cells := []rune(row)
				require.Len(t, cells, size, "row %d of %q at size %d", r, addr, size)
				for c := range cells {
					assert.Equal(t, cells[c], cells[size-1-c],
						"row %d of %q at size %d is not symmetric", r, addr, size)
				}
			}
		}
	}
}

func TestIdenticon_WrapsCursor(t *testing.T) {
	t.Parallel()

	// 25 rows of 13 bits each read 325 bits, past the end of the digest.
	rows := Identicon("deadbeef", 25)
	require.Len(t, rows, 25)

	// The cursor restarts at bit 0 after bit 255: bit 256 is row 19, column 9.
	bits := ""
	for _, row := range rows {
		cells := []rune(row)
		for c := 0; c < 13; c++ {
			if string(cells[c]) == FilledCell {
				bits += "1"
			} else {
				bits += "0"
			}
		}
	}
	require.Len(t, bits, 325)
	assert.Equal(t, bits[:69], bits[256:])
}

func TestIdenticon_Glyphs(t *testing.T) {
	t.Parallel()

	for _, row := range Identicon("deadbeef", DefaultGridSize) {
		assert.Equal(t, DefaultGridSize, utf8.RuneCountInString(row))
		for _, c := range row {
			assert.Contains(t, []string{FilledCell, EmptyCell}, string(c))
		}
	}
}

func TestIdenticon_IgnoresSeed(t *testing.T) {
	t.Parallel()

	a := Derive("deadbeef", WithSeed(""))
	b := Derive("deadbeef", WithSeed("x"))
	assert.Equal(t, a.Identicon, b.Identicon)
	assert.NotEqual(t, a.Alias, b.Alias)
}
