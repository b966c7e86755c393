package hat

import (
	"errors"
	"fmt"
)

// Container is the full trace of one decode.
type Container struct {
	Variant Variant

	// Complex containers only.
	IV            []byte
	Base          []byte // Decrypted base section
	BaseKeyMagic  uint64
	BaseKeyClass  BaseKeyClass
	SpecificField string // Extra field of Specific bases, skipped during decode

	Record *Record
}

// Decoder decodes hat containers. The zero value is not usable; use NewDecoder.
type Decoder struct {
	cipher Cipher
	key    []byte
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithCipher replaces the AES-CBC cipher used for base sections.
func WithCipher(c Cipher) Option {
	return func(d *Decoder) {
		d.cipher = c
	}
}

// WithKey replaces the base decryption key.
func WithKey(key []byte) Option {
	return func(d *Decoder) {
		d.key = append([]byte(nil), key...)
	}
}

// NewDecoder creates a decoder using BaseKey and AES-CBC unless overridden.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{
		cipher: AESCipher{},
		key:    BaseKey[:],
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

var defaultDecoder = NewDecoder()

// Decode decodes raw with the default decoder.
func Decode(raw []byte) (*Record, error) {
	return defaultDecoder.Decode(raw)
}

// DecryptBase decrypts the base section of a Complex container with the default decoder.
func DecryptBase(raw []byte) ([]byte, error) {
	return defaultDecoder.DecryptBase(raw)
}

// Decode returns the record held by raw.
func (d *Decoder) Decode(raw []byte) (*Record, error) {
	c, err := d.Inspect(raw)
	if err != nil {
		return nil, err
	}
	return c.Record, nil
}

// DecryptBase extracts the IV of a Complex container and decrypts the rest.
func (d *Decoder) DecryptBase(raw []byte) ([]byte, error) {
	_, plain, err := d.decryptBase(raw)
	return plain, err
}

func (d *Decoder) decryptBase(raw []byte) ([]byte, []byte, error) {
	iv, end, err := ExtractIV(raw)
	if err != nil {
		return nil, nil, err
	}
	plain, err := d.cipher.Decrypt(ModeCBC, d.key, iv, raw[end:])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decrypt base section: %w", err)
	}
	return iv, plain, nil
}

// Inspect decodes raw and returns every intermediate value along with the record.
func (d *Decoder) Inspect(raw []byte) (*Container, error) {
	variant, err := Classify(raw)
	if err != nil {
		return nil, err
	}

	c := &Container{Variant: variant}
	switch variant {
	case VariantSimple:
		c.Record, _, err = ParseRecord(raw, magicSize)
		if err != nil {
			return nil, fmt.Errorf("failed to parse simple record: %w", err)
		}
		return c, nil
	case VariantComplex:
		if err := d.inspectComplex(raw, c); err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedVariant, variant)
	}
}

func (d *Decoder) inspectComplex(raw []byte, c *Container) error {
	iv, base, err := d.decryptBase(raw)
	if err != nil {
		return err
	}
	c.IV = iv
	c.Base = base

	magic, err := readMagic(base, "base-key magic")
	if err != nil {
		return err
	}
	c.BaseKeyMagic = magic
	c.BaseKeyClass = ClassifyBaseKey(magic)

	off := magicSize
	switch c.BaseKeyClass {
	case BaseKeyPlain:
	case BaseKeySpecific:
		field, n, err := ReadSizedString(base, off)
		if err != nil {
			return fmt.Errorf("failed to read specific field: %w", err)
		}
		c.SpecificField = field
		off += n
	default:
		return fmt.Errorf("%w: unknown base-key magic %d", ErrInvalidBaseKey, magic)
	}

	c.Record, _, err = ParseRecord(base, off)
	if err != nil {
		return fmt.Errorf("failed to parse base record: %w", err)
	}
	return nil
}

// Kind returns the sentinel error err wraps, or nil when it wraps none of them.
func Kind(err error) error {
	for _, kind := range []error{ErrStructural, ErrInvalidBaseKey, ErrUnsupportedVariant} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
