package hat

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecord(t *testing.T) {
	testCases := []struct {
		name  string
		team  string
		image []byte
	}{
		{"small image", "abc", bytes.Repeat([]byte{0xAA}, 5)},
		{"empty team", "", []byte{0x89, 'P', 'N', 'G'}},
		{"empty image", "ghosts", nil},
		{"large image", "big", bytes.Repeat([]byte{0x42}, 64*1024)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			prefix := []byte{9, 9, 9}
			data := append(append(prefix, recordBytes(tc.team, tc.image)...), 0x00, 0x00)

			record, end, err := ParseRecord(data, len(prefix))
			require.NoError(t, err)
			assert.Equal(t, tc.team, record.TeamName)
			assert.Equal(t, len(tc.image), record.ImageSize)
			assert.Len(t, record.Image, len(tc.image))
			assert.True(t, bytes.Equal(tc.image, record.Image))
			assert.Equal(t, len(data)-2, end)
		})
	}
}

func TestParseRecord_CopiesImage(t *testing.T) {
	data := recordBytes("abc", []byte{1, 2, 3})
	record, _, err := ParseRecord(data, 0)
	require.NoError(t, err)

	data[len(data)-1] = 0xff
	assert.Equal(t, []byte{1, 2, 3}, record.Image)
}

func TestParseRecord_Errors(t *testing.T) {
	full := recordBytes("abc", bytes.Repeat([]byte{0xAA}, 5))

	testCases := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"reserved only partial", full[:7]},
		{"missing team name", full[:8]},
		{"truncated team name", full[:10]},
		{"missing image size", full[:12]},
		{"truncated image size", full[:14]},
		{"truncated mid image", full[:len(full)-1]},
		{"negative image size", append(append(make([]byte, 8), sizedString("abc")...), putInt32(-5)...)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			record, _, err := ParseRecord(tc.data, 0)
			assert.ErrorIs(t, err, ErrStructural)
			assert.Nil(t, record)
		})
	}
}
