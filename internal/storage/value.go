package storage

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Kind is the leading tag byte of an encoded value.
type Kind byte

const (
	KindInt  Kind = 0x01
	KindBool Kind = 0x02
	KindStr  Kind = 0x03
)

const (
	MaxStringLength = 65535

	intValueSize    = 1 + 4
	boolValueSize   = 1 + 1
	strValuePrefix  = 1 + 2
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "Int"
	case KindBool:
		return "Bool"
	case KindStr:
		return "Str"
	default:
		return fmt.Sprintf("Kind(0x%02x)", byte(k))
	}
}

// Value is a single record: a 32-bit signed integer, a boolean or a UTF-8
// string. Only the field matching Kind is meaningful.
type Value struct {
	Kind Kind
	Int  int32
	Bool bool
	Str  string
}

func Int(n int32) Value {
	return Value{Kind: KindInt, Int: n}
}

func Bool(b bool) Value {
	return Value{Kind: KindBool, Bool: b}
}

func Str(s string) Value {
	return Value{Kind: KindStr, Str: s}
}

// Size returns the encoded length of the value in bytes.
func (v Value) Size() uint64 {
	switch v.Kind {
	case KindInt:
		return intValueSize
	case KindBool:
		return boolValueSize
	case KindStr:
		return strValuePrefix + uint64(len(v.Str))
	default:
		return 0
	}
}

func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return "Int(" + strconv.FormatInt(int64(v.Int), 10) + ")"
	case KindBool:
		return "Bool(" + strconv.FormatBool(v.Bool) + ")"
	case KindStr:
		return "Str(" + strconv.Quote(v.Str) + ")"
	default:
		return v.Kind.String()
	}
}

// MarshalValue encodes v as a tag byte followed by its payload.
func MarshalValue(v Value) ([]byte, error) {
	switch v.Kind {
	case KindInt:
		buf := make([]byte, intValueSize)
		buf[0] = byte(KindInt)
		marshalInt32(buf, v.Int, 1)
		return buf, nil
	case KindBool:
		buf := make([]byte, boolValueSize)
		buf[0] = byte(KindBool)
		if v.Bool {
			buf[1] = 1
		}
		return buf, nil
	case KindStr:
		if len(v.Str) > MaxStringLength {
			return nil, fmt.Errorf("%w: got %d", ErrStringTooLong, len(v.Str))
		}
		if !utf8.ValidString(v.Str) {
			return nil, fmt.Errorf("%w: %w", ErrEncode, ErrInvalidString)
		}
		buf := make([]byte, strValuePrefix+len(v.Str))
		buf[0] = byte(KindStr)
		marshalUint16(buf, uint16(len(v.Str)), 1)
		copy(buf[strValuePrefix:], v.Str)
		return buf, nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %s", ErrEncode, v.Kind)
	}
}

// UnmarshalValue decodes the value at the start of buf and returns it with
// the number of bytes consumed. Bytes past the encoded value are ignored.
func UnmarshalValue(buf []byte) (Value, int, error) {
	if len(buf) == 0 {
		return Value{}, 0, ErrEmptyInput
	}

	switch Kind(buf[0]) {
	case KindInt:
		if len(buf) < intValueSize {
			return Value{}, 0, fmt.Errorf("%w: int needs %d bytes, have %d", ErrTruncatedValue, intValueSize, len(buf))
		}
		return Int(unmarshalInt32(buf, 1)), intValueSize, nil
	case KindBool:
		if len(buf) < boolValueSize {
			return Value{}, 0, fmt.Errorf("%w: bool needs %d bytes, have %d", ErrTruncatedValue, boolValueSize, len(buf))
		}
		return Bool(buf[1] != 0), boolValueSize, nil
	case KindStr:
		if len(buf) < strValuePrefix {
			return Value{}, 0, fmt.Errorf("%w: string prefix needs %d bytes, have %d", ErrTruncatedValue, strValuePrefix, len(buf))
		}
		total := strValuePrefix + int(unmarshalUint16(buf, 1))
		if len(buf) < total {
			return Value{}, 0, fmt.Errorf("%w: string needs %d bytes, have %d", ErrTruncatedValue, total, len(buf))
		}
		raw := buf[strValuePrefix:total]
		if !utf8.Valid(raw) {
			return Value{}, 0, fmt.Errorf("%w: %w", ErrDecode, ErrInvalidString)
		}
		return Str(string(raw)), total, nil
	default:
		return Value{}, 0, fmt.Errorf("%w 0x%02x", ErrUnknownTag, buf[0])
	}
}
