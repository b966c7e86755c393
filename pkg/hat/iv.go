package hat

import "encoding/binary"

const ivLengthFieldLen = 4

// ExtractIV returns the initialization vector of a Complex container and the
// offset of the first ciphertext byte. The returned IV aliases buf.
func ExtractIV(buf []byte) ([]byte, int, error) {
	if err := need(buf, 0, ivLengthFieldLen, "IV length"); err != nil {
		return nil, 0, err
	}
	n := int(int32(binary.LittleEndian.Uint32(buf)))
	if n < 0 {
		return nil, 0, structuralf("negative IV length %d", n)
	}
	if err := need(buf, ivLengthFieldLen, n, "IV"); err != nil {
		return nil, 0, err
	}
	end := ivLengthFieldLen + n
	return buf[ivLengthFieldLen:end:end], end, nil
}
