// Package hat decodes ".hat" containers, the binary format used to distribute
// cosmetic team hats.
//
// # Container Format
//
// All integers are little-endian. A container comes in one of two variants,
// told apart by the first 8 bytes.
//
// Simple containers (rare, legacy) carry their record in the clear:
//
//	[Magic(8)][Reserved(8)][TeamName(sized)][ImageSize(4)][Image]
//
// Complex containers carry an AES-CBC encrypted base section:
//
//	[IVLength(4)][IV][Ciphertext]
//
// Once decrypted, the base section starts with a base-key magic. Plain bases
// are followed directly by the record; Specific bases carry one extra sized
// string that is skipped:
//
//	[BaseKeyMagic(8)][Extra(sized), Specific only][Reserved(8)][TeamName(sized)][ImageSize(4)][Image]
//
// A sized string is one signed length byte followed by that many UTF-8 bytes.
//
// # Usage
//
//	record, err := hat.Decode(raw)
//	if err != nil {
//	    return err
//	}
//	os.WriteFile(name+".png", record.Image, 0644)
//
// # Error Handling
//
// Every failure wraps one of ErrStructural, ErrInvalidBaseKey or
// ErrUnsupportedVariant and can be matched with errors.Is. Reads are bounds
// checked: a declared length that runs past the buffer is an error, never a
// truncated result.
//
// # Thread Safety
//
// Decoding keeps no state between calls. A Decoder may be shared between
// goroutines as long as its Cipher is safe for concurrent use, which the
// default AES-CBC cipher is.
package hat
