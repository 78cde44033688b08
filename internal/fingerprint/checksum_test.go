package fingerprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecksum(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want ChecksumStatus
	}{
		{name: "valid checksum", raw: "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", want: ChecksumValid},
		{name: "valid checksum without prefix", raw: "fB6916095ca1df60bB79Ce92cE3Ea74c37c5d359", want: ChecksumValid},
		{name: "valid checksum with whitespace", raw: "  0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB\n", want: ChecksumValid},
		{name: "valid checksum uppercase prefix", raw: "0XD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb", want: ChecksumValid},
		{name: "one letter flipped", raw: "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAeD", want: ChecksumInvalid},
		{name: "all lowercase", raw: "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed", want: ChecksumNotApplicable},
		{name: "all uppercase", raw: "0x5AAEB6053F3E94C9B9A09F33669435E7EF1BEAED", want: ChecksumNotApplicable},
		{name: "wrong length", raw: "0xDeadBeef", want: ChecksumNotApplicable},
		{name: "non-hex", raw: "0xZaAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", want: ChecksumNotApplicable},
		{name: "empty", raw: "", want: ChecksumNotApplicable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Checksum(tt.raw))
		})
	}
}

func TestToChecksumAddress(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		"d8dA6BF26964aF9D7eEd9e03E53415D37aA96045",
		ToChecksumAddress("d8da6bf26964af9d7eed9e03e53415d37aa96045"))

	// Anything that is not a 40-digit lowercase hex string is returned as is.
	assert.Equal(t, "deadbeef", ToChecksumAddress("deadbeef"))
	assert.Equal(t, "", ToChecksumAddress(""))
}

func TestChecksumStatus_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "valid", ChecksumValid.String())
	assert.Equal(t, "invalid", ChecksumInvalid.String())
	assert.Equal(t, "not applicable", ChecksumNotApplicable.String())
}
