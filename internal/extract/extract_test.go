package extract

import (
	"context"
	"errors"
	"strings"
	"testing"
)

const (
	ethAddr    = "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"
	txHash     = "0x2baf1f40105d9501fe319a8ec463fdf4325a2a5df445adf3f572f626253678c9"
	btcLegacy  = "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"
	btcBech32  = "bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq"
	bareDigest = "2baf1f40105d9501fe319a8ec463fdf4325a2a5df445adf3f572f626253678c9"
)

func TestFindLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		kinds []Kind
		line  string
		want  []Match
	}{
		{
			name: "mixed formats in order of appearance",
			line: "Send to " + ethAddr + ", or " + btcLegacy + ". tx " + txHash + " " + btcBech32,
			want: []Match{
				{Kind: KindEthereum, Address: ethAddr},
				{Kind: KindBitcoinLegacy, Address: btcLegacy},
				{Kind: KindDigest, Address: txHash},
				{Kind: KindBitcoinBech32, Address: btcBech32},
			},
		},
		{
			name: "digest without prefix",
			line: "fingerprint=" + bareDigest,
			want: []Match{{Kind: KindDigest, Address: bareDigest}},
		},
		{
			name: "uppercase prefix",
			line: "0XD8DA6BF26964AF9D7EED9E03E53415D37AA96045",
			want: []Match{{Kind: KindEthereum, Address: "0XD8DA6BF26964AF9D7EED9E03E53415D37AA96045"}},
		},
		{
			name: "too short is ignored",
			line: "0xdeadbeef and 0x" + strings.Repeat("a", 39),
			want: nil,
		},
		{
			name: "too long is ignored",
			line: "0x" + strings.Repeat("a", 41),
			want: nil,
		},
		{
			name:  "kind filter",
			kinds: []Kind{KindEthereum},
			line:  btcLegacy + " " + ethAddr + " " + txHash,
			want:  []Match{{Kind: KindEthereum, Address: ethAddr}},
		},
		{
			name: "no addresses",
			line: "nothing to see here",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := New(tt.kinds...).FindLine(tt.line)
			if len(got) != len(tt.want) {
				t.Fatalf("FindLine() = %+v, want %+v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("match %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	if got := len(New().patterns); got != len(allPatterns) {
		t.Errorf("New() has %d patterns, want %d", got, len(allPatterns))
	}
	if got := len(New(KindDigest, Kind("unknown")).patterns); got != 1 {
		t.Errorf("New(digest, unknown) has %d patterns, want 1", got)
	}
}

func TestFind(t *testing.T) {
	t.Parallel()

	t.Run("deduplicates and records first line", func(t *testing.T) {
		t.Parallel()

		input := "header\n" +
			"pay " + ethAddr + "\n" +
			"\n" +
			"again " + ethAddr + " and " + btcLegacy + "\n"

		got, err := New().Find(t.Context(), strings.NewReader(input))
		if err != nil {
			t.Fatalf("Find() error = %v", err)
		}
		want := []Match{
			{Kind: KindEthereum, Address: ethAddr, Line: 2},
			{Kind: KindBitcoinLegacy, Address: btcLegacy, Line: 4},
		}
		if len(got) != len(want) {
			t.Fatalf("Find() = %+v, want %+v", got, want)
		}
		for i := range got {
			if got[i] != want[i] {
				t.Errorf("match %d = %+v, want %+v", i, got[i], want[i])
			}
		}

		addrs := Addresses(got)
		if strings.Join(addrs, ",") != ethAddr+","+btcLegacy {
			t.Errorf("Addresses() = %v", addrs)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		got, err := New().Find(t.Context(), strings.NewReader(""))
		if err != nil {
			t.Fatalf("Find() error = %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected no matches, got %+v", got)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		_, err := New().Find(ctx, strings.NewReader(ethAddr+"\n"))
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})
}
