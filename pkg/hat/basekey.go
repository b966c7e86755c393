package hat

// BaseKeyClass is the result of checking a decrypted base section's magic.
type BaseKeyClass int

const (
	BaseKeyInvalid BaseKeyClass = iota
	// BaseKeyPlain bases are followed directly by the record.
	BaseKeyPlain
	// BaseKeySpecific bases carry one extra sized string before the record.
	BaseKeySpecific
)

func (c BaseKeyClass) String() string {
	switch c {
	case BaseKeyPlain:
		return "plain"
	case BaseKeySpecific:
		return "specific"
	default:
		return "invalid"
	}
}

// ClassifyBaseKey maps a base-key magic to its class.
func ClassifyBaseKey(magic uint64) BaseKeyClass {
	switch magic {
	case MagicPlainAlt, MagicSimple:
		return BaseKeyPlain
	case MagicSpecific, MagicSpecificAlt:
		return BaseKeySpecific
	default:
		return BaseKeyInvalid
	}
}

// ValidateBaseKey classifies a decrypted base section by its first 8 bytes.
// An error is returned only when plain is too short to hold the magic; an
// unrecognized magic yields BaseKeyInvalid.
func ValidateBaseKey(plain []byte) (BaseKeyClass, error) {
	magic, err := readMagic(plain, "base-key magic")
	if err != nil {
		return BaseKeyInvalid, err
	}
	return ClassifyBaseKey(magic), nil
}
