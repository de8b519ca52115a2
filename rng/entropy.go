package rng

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// EntropyKind tags how an Entropy value was supplied.
type EntropyKind uint8

// Entropy kinds.
const (
	EntropyBytes EntropyKind = 1 + iota
	EntropyText
	EntropyValue
)

func (k EntropyKind) String() string {
	switch k {
	case EntropyBytes:
		return "bytes"
	case EntropyText:
		return "text"
	case EntropyValue:
		return "value"
	default:
		return "unknown"
	}
}

// Entropy is the seed of a deterministic stream, together with the kind of input it came from.
// Its canonical encoding is:
//   - bytes are used unchanged,
//   - text is encoded as UTF-8,
//   - any other value is converted to its canonical text, which is then encoded as UTF-8.
type Entropy struct {
	kind EntropyKind
	data []byte
}

// FromBytes returns entropy that uses the given bytes unchanged.
func FromBytes(b []byte) Entropy {
	data := make([]byte, len(b))
	copy(data, b)
	return Entropy{kind: EntropyBytes, data: data}
}

// FromText returns entropy that uses the UTF-8 encoding of the given text.
func FromText(s string) Entropy {
	return Entropy{kind: EntropyText, data: []byte(s)}
}

// FromValue returns entropy for an arbitrary value. Byte slices and strings
// behave like FromBytes and FromText, everything else is first converted to
// its canonical text:
//   - integers in base 10,
//   - floats in the shortest representation that round trips, always with a
//     fraction or exponent ("1.0", "1e+16"),
//   - booleans as "True" or "False",
//   - nil as "None",
//   - fmt.Stringer values via String(),
//   - anything else via fmt.Sprint.
func FromValue(v interface{}) Entropy {
	switch val := v.(type) {
	case Entropy:
		return val
	case []byte:
		return FromBytes(val)
	case string:
		return FromText(val)
	}
	return Entropy{kind: EntropyValue, data: []byte(canonicalText(v))}
}

func canonicalText(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "None"
	case bool:
		if val {
			return "True"
		}
		return "False"
	case int:
		return strconv.FormatInt(int64(val), 10)
	case int8:
		return strconv.FormatInt(int64(val), 10)
	case int16:
		return strconv.FormatInt(int64(val), 10)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint:
		return strconv.FormatUint(uint64(val), 10)
	case uint8:
		return strconv.FormatUint(uint64(val), 10)
	case uint16:
		return strconv.FormatUint(uint64(val), 10)
	case uint32:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float32:
		return floatText(float64(val), 32)
	case float64:
		return floatText(val, 64)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

// floatText formats f with the shortest digits that round trip. Exponents in
// [-4, 16) use fixed notation with at least one fractional digit, all others
// use scientific notation.
func floatText(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	sci := strconv.FormatFloat(f, 'e', -1, bitSize)
	exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if err != nil || exp < -4 || exp >= 16 {
		return sci
	}

	fixed := strconv.FormatFloat(f, 'f', -1, bitSize)
	if !strings.ContainsRune(fixed, '.') {
		fixed += ".0"
	}
	return fixed
}

// Kind returns the kind of input the entropy was created from.
func (e Entropy) Kind() EntropyKind {
	return e.kind
}

// Bytes returns a copy of the canonical byte encoding.
func (e Entropy) Bytes() []byte {
	data := make([]byte, len(e.data))
	copy(data, e.data)
	return data
}

// Len returns the length of the canonical byte encoding.
func (e Entropy) Len() int {
	return len(e.data)
}

// String describes the entropy without revealing it.
func (e Entropy) String() string {
	return fmt.Sprintf("<entropy %s, %d bytes>", e.kind, len(e.data))
}
