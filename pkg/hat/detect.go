package hat

// Variant identifies the container layout.
type Variant int

const (
	VariantSimple Variant = iota + 1
	VariantComplex
)

func (v Variant) String() string {
	switch v {
	case VariantSimple:
		return "simple"
	case VariantComplex:
		return "complex"
	default:
		return "unknown"
	}
}

// Classify reports whether buf is a Simple or a Complex container. Anything
// that does not start with MagicSimple is treated as Complex.
func Classify(buf []byte) (Variant, error) {
	magic, err := readMagic(buf, "container magic")
	if err != nil {
		return 0, err
	}
	if magic == MagicSimple {
		return VariantSimple, nil
	}
	return VariantComplex, nil
}
