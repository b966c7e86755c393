package hat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSizedString_RoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"short", "abc"},
		{"team name", "Team Rocket"},
		{"unicode", "🎩 hüte"},
		{"max length", strings.Repeat("x", MaxSizedStringLen)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for _, off := range []int{0, 3} {
				data := append(make([]byte, off), sizedString(tc.text)...)
				data = append(data, 0xff)

				got, n, err := ReadSizedString(data, off)
				require.NoError(t, err)
				assert.Equal(t, tc.text, got)
				assert.Equal(t, len(tc.text)+1, n)
			}
		})
	}
}

func TestReadSizedString_Errors(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
		off  int
	}{
		{"empty buffer", nil, 0},
		{"offset at end", []byte{0x01, 'a'}, 2},
		{"offset past end", []byte{0x01, 'a'}, 5},
		{"negative offset", []byte{0x01, 'a'}, -1},
		{"text runs past end", []byte{0x05, 'a', 'b'}, 0},
		{"negative length byte", []byte{0x80, 'a'}, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := ReadSizedString(tc.data, tc.off)
			assert.ErrorIs(t, err, ErrStructural)
		})
	}
}
