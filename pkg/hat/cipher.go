package hat

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// Mode selects the block cipher chaining mode.
type Mode int

// ModeCBC is the only mode used by hat containers.
const ModeCBC Mode = 2

// Cipher decrypts a ciphertext with the given key and IV.
type Cipher interface {
	Decrypt(mode Mode, key, iv, ciphertext []byte) ([]byte, error)
}

// AESCipher is the default Cipher: AES in CBC mode. Trailing PKCS#7 padding
// is removed when it is well formed and left in place otherwise.
type AESCipher struct{}

func (AESCipher) Decrypt(mode Mode, key, iv, ciphertext []byte) ([]byte, error) {
	if mode != ModeCBC {
		return nil, fmt.Errorf("%w: cipher mode %d", ErrUnsupportedVariant, mode)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	bs := block.BlockSize()
	if len(iv) != bs {
		return nil, fmt.Errorf("%w: IV length %d, cipher block size %d", ErrUnsupportedVariant, len(iv), bs)
	}
	if len(ciphertext) == 0 || len(ciphertext)%bs != 0 {
		return nil, structuralf("ciphertext length %d is not a positive multiple of %d", len(ciphertext), bs)
	}

	out := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, ciphertext)
	return unpad(out, bs), nil
}

func unpad(data []byte, blockSize int) []byte {
	if len(data) == 0 {
		return data
	}
	pad := int(data[len(data)-1])
	if pad == 0 || pad > blockSize || pad > len(data) {
		return data
	}
	for _, b := range data[len(data)-pad:] {
		if int(b) != pad {
			return data
		}
	}
	return data[:len(data)-pad]
}
