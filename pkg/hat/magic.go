package hat

import "encoding/binary"

// Magic values, read as 64-bit little-endian integers.
const (
	// MagicSimple marks a Simple container. Decrypted base sections reuse it
	// as one of the two Plain base-key magics.
	MagicSimple uint64 = 630430777029345

	MagicPlainAlt    uint64 = 402965919293045
	MagicSpecific    uint64 = 630449177029345
	MagicSpecificAlt uint64 = 465665919293045
)

const (
	magicSize    = 8
	reservedSize = 8
	sizeFieldLen = 4
)

// BaseKey is the AES-128 key shared by every Complex container.
var BaseKey = [16]byte{
	0xf3, 0x16, 0x98, 0x20, 0x01, 0xf4, 0x7a, 0x6f,
	0x61, 0x2a, 0x0d, 0x02, 0x13, 0x0f, 0x2d, 0xe6,
}

func readMagic(buf []byte, what string) (uint64, error) {
	if err := need(buf, 0, magicSize, what); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:magicSize]), nil
}
