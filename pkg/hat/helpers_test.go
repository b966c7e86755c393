package hat

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

var testIV = []byte{
	0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77,
	0x88, 0x99, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff,
}

func putUint64(v uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return b
}

func putInt32(v int32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, uint32(v))
	return b
}

func sizedString(s string) []byte {
	return append([]byte{byte(len(s))}, s...)
}

// recordBytes builds [Reserved(8)][TeamName][ImageSize][Image].
func recordBytes(name string, image []byte) []byte {
	var buf bytes.Buffer
	buf.Write(make([]byte, reservedSize))
	buf.Write(sizedString(name))
	buf.Write(putInt32(int32(len(image))))
	buf.Write(image)
	return buf.Bytes()
}

func simpleContainer(name string, image []byte) []byte {
	return append(putUint64(MagicSimple), recordBytes(name, image)...)
}

func encryptCBC(t testing.TB, key, iv, plain []byte) []byte {
	t.Helper()
	block, err := aes.NewCipher(key)
	require.NoError(t, err)

	pad := aes.BlockSize - len(plain)%aes.BlockSize
	padded := append(append([]byte(nil), plain...), bytes.Repeat([]byte{byte(pad)}, pad)...)

	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, padded)
	return out
}

func complexContainer(t testing.TB, iv, base []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	buf.Write(putInt32(int32(len(iv))))
	buf.Write(iv)
	buf.Write(encryptCBC(t, BaseKey[:], iv, base))
	return buf.Bytes()
}

func plainBase(magic uint64, name string, image []byte) []byte {
	return append(putUint64(magic), recordBytes(name, image)...)
}

func specificBase(magic uint64, extra, name string, image []byte) []byte {
	base := append(putUint64(magic), sizedString(extra)...)
	return append(base, recordBytes(name, image)...)
}
