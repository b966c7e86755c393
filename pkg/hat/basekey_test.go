package hat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBaseKey(t *testing.T) {
	testCases := []struct {
		name  string
		magic uint64
		want  BaseKeyClass
	}{
		{"plain", MagicPlainAlt, BaseKeyPlain},
		{"plain shared with simple", MagicSimple, BaseKeyPlain},
		{"specific", MagicSpecific, BaseKeySpecific},
		{"specific alt", MagicSpecificAlt, BaseKeySpecific},
		{"zero", 0, BaseKeyInvalid},
		{"all ones", ^uint64(0), BaseKeyInvalid},
		{"near plain", MagicPlainAlt - 1, BaseKeyInvalid},
		{"near specific", MagicSpecific + 1, BaseKeyInvalid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ValidateBaseKey(append(putUint64(tc.magic), 0xaa, 0xbb))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestValidateBaseKey_ShortBuffer(t *testing.T) {
	class, err := ValidateBaseKey([]byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrStructural)
	assert.Equal(t, BaseKeyInvalid, class)
}

func TestClassifyBaseKey_OnlyKnownMagicsAreValid(t *testing.T) {
	known := map[uint64]bool{
		MagicSimple:      true,
		MagicPlainAlt:    true,
		MagicSpecific:    true,
		MagicSpecificAlt: true,
	}
	for v := uint64(402965919293000); v < 402965919293100; v++ {
		if known[v] {
			continue
		}
		assert.Equal(t, BaseKeyInvalid, ClassifyBaseKey(v), "magic %d", v)
	}
}

func TestBaseKeyClass_String(t *testing.T) {
	assert.Equal(t, "plain", BaseKeyPlain.String())
	assert.Equal(t, "specific", BaseKeySpecific.String())
	assert.Equal(t, "invalid", BaseKeyInvalid.String())
}
