package fingerprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"deadbeef", "2baf1f40105d9501fe319a8ec463fdf4325a2a5df445adf3f572f626253678c9"},
		{"aaaaaa", "ed02457b5c41d964dbd2f2a609d63fe1bb7528dbe55e1abf5b52c249cd735797"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got := Digest(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, DigestLength)
		})
	}
}
