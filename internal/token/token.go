// Package token implements the byte-level RFC 9110 token-class
// predicates shared by the scalar classifier and the batched validator.
// Each predicate is realized both as a 256-entry bool table and as a
// 256-bit bitmap ([4]uint64), built from the same byte-range literals in
// the same init pass so the two can never drift apart.
package token

// Class identifies one of the three RFC 9110 token classes this parser
// enforces.
type Class uint8

const (
	ClassRequestTarget Class = iota
	ClassHeaderName
	ClassHeaderValue
)

var (
	requestTargetTable [256]bool
	headerNameTable    [256]bool
	headerValueTable   [256]bool

	requestTargetBitmap [4]uint64
	headerNameBitmap    [4]uint64
	headerValueBitmap   [4]uint64
)

func init() {
	// is_request_target_token: VCHAR, 0x21-0x7E.
	for b := 0x21; b <= 0x7E; b++ {
		setBoth(&requestTargetTable, &requestTargetBitmap, byte(b))
	}

	// is_header_name_token: tchar.
	const tcharSpecials = "!#$%&'*+-.^_`|~"
	for i := 0; i < len(tcharSpecials); i++ {
		setBoth(&headerNameTable, &headerNameBitmap, tcharSpecials[i])
	}
	for b := '0'; b <= '9'; b++ {
		setBoth(&headerNameTable, &headerNameBitmap, byte(b))
	}
	for b := 'A'; b <= 'Z'; b++ {
		setBoth(&headerNameTable, &headerNameBitmap, byte(b))
	}
	for b := 'a'; b <= 'z'; b++ {
		setBoth(&headerNameTable, &headerNameBitmap, byte(b))
	}

	// is_header_value_token: field-vchar (VCHAR / obs-text) plus HTAB.
	// Equivalently: (b > 0x1F || b == 0x09) && b != 0x7F.
	for b := 0; b <= 0xFF; b++ {
		if (b > 0x1F || b == 0x09) && b != 0x7F {
			setBoth(&headerValueTable, &headerValueBitmap, byte(b))
		}
	}
}

func setBoth(table *[256]bool, bitmap *[4]uint64, b byte) {
	table[b] = true
	bitmap[b>>6] |= 1 << (b & 0x3F)
}

// IsRequestTargetByte reports whether b is a valid request-target byte
// (VCHAR, 0x21-0x7E). SP, CTLs and non-ASCII are rejected.
func IsRequestTargetByte(b byte) bool { return requestTargetTable[b] }

// IsHeaderNameByte reports whether b is a valid header-name byte
// (tchar).
func IsHeaderNameByte(b byte) bool { return headerNameTable[b] }

// IsHeaderValueByte reports whether b is a valid header-value byte
// (field-vchar or HTAB).
func IsHeaderValueByte(b byte) bool { return headerValueTable[b] }

// Is reports whether b belongs to class c. Equivalent to calling the
// specific IsXByte function for c, provided for the batched validator's
// generic dispatch over Class.
func Is(c Class, b byte) bool {
	switch c {
	case ClassRequestTarget:
		return requestTargetTable[b]
	case ClassHeaderName:
		return headerNameTable[b]
	case ClassHeaderValue:
		return headerValueTable[b]
	default:
		return false
	}
}

// Bitmap returns the 256-bit membership bitmap for c, encoded as 4
// uint64 words where bit (b%64) of word (b/64) is set iff b belongs to
// the class. Used by internal/validate as a second, independently-built
// membership test for the same class.
func Bitmap(c Class) [4]uint64 {
	switch c {
	case ClassRequestTarget:
		return requestTargetBitmap
	case ClassHeaderName:
		return headerNameBitmap
	case ClassHeaderValue:
		return headerValueBitmap
	default:
		return [4]uint64{}
	}
}

// ScalarCount returns the number of leading bytes of b that belong to
// class c — the ground truth the batched validator's output is checked
// against in tests.
func ScalarCount(c Class, b []byte) int {
	for i, v := range b {
		if !Is(c, v) {
			return i
		}
	}
	return len(b)
}
