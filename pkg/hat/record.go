package hat

import "encoding/binary"

// Record is the decoded content of a hat.
type Record struct {
	TeamName  string // Team name label
	ImageSize int    // Declared image size in bytes
	Image     []byte // Image bytes, PNG in practice
}

// ParseRecord reads a record starting at off: 8 reserved bytes, the team name
// as a sized string, the declared image size and the image itself. It returns
// the record and the offset just past it. The image is copied out of buf.
func ParseRecord(buf []byte, off int) (*Record, int, error) {
	if err := need(buf, off, reservedSize, "reserved header"); err != nil {
		return nil, 0, err
	}
	off += reservedSize

	name, n, err := ReadSizedString(buf, off)
	if err != nil {
		return nil, 0, err
	}
	off += n

	if err := need(buf, off, sizeFieldLen, "image size"); err != nil {
		return nil, 0, err
	}
	size := int(int32(binary.LittleEndian.Uint32(buf[off:])))
	off += sizeFieldLen
	if size < 0 {
		return nil, 0, structuralf("negative image size %d", size)
	}
	if err := need(buf, off, size, "image"); err != nil {
		return nil, 0, err
	}

	image := make([]byte, size)
	copy(image, buf[off:off+size])

	return &Record{
		TeamName:  name,
		ImageSize: size,
		Image:     image,
	}, off + size, nil
}
