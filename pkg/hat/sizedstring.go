package hat

// MaxSizedStringLen is the longest string a signed length byte can describe.
const MaxSizedStringLen = 127

// ReadSizedString reads a length-prefixed string at off and returns it with
// the number of bytes consumed, length byte included.
func ReadSizedString(buf []byte, off int) (string, int, error) {
	if err := need(buf, off, 1, "sized string length"); err != nil {
		return "", 0, err
	}
	n := int(int8(buf[off]))
	if n < 0 {
		return "", 0, structuralf("negative sized string length %d at offset %d", n, off)
	}
	if err := need(buf, off+1, n, "sized string"); err != nil {
		return "", 0, err
	}
	return string(buf[off+1 : off+1+n]), n + 1, nil
}
