package ir

import "fmt"

type Type int

const (
	StringType Type = iota
	ObjectType
	ArrayType
)

func Types() []Type {
	return []Type{StringType, ObjectType, ArrayType}
}

func (t Type) String() string {
	d, err := t.MarshalText()
	if err != nil {
		return fmt.Sprintf("<%d>", int(t))
	}
	return string(d)
}

func (t Type) MarshalText() ([]byte, error) {
	switch t {
	case StringType:
		return []byte("String"), nil
	case ObjectType:
		return []byte("Object"), nil
	case ArrayType:
		return []byte("Array"), nil
	default:
		return nil, fmt.Errorf("%w: unknown type %d", errInternal, int(t))
	}
}

func (t *Type) UnmarshalText(d []byte) error {
	switch string(d) {
	case "String":
		*t = StringType
	case "Object":
		*t = ObjectType
	case "Array":
		*t = ArrayType
	default:
		return fmt.Errorf("%w: unknown type %q", ErrType, d)
	}
	return nil
}
