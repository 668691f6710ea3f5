package runtime

import "strconv"

// Kind identifies the runtime value category.
type Kind int

const (
	KindInteger Kind = iota
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	default:
		return "unknown"
	}
}

// Value is a runtime ghl value.
type Value interface {
	Kind() Kind
	String() string
}

// IntegerValue holds a fixed-width 64-bit signed integer. Arithmetic that
// leaves the int64 range is a runtime error, not a wraparound.
type IntegerValue struct {
	Value int64
}

func (IntegerValue) Kind() Kind { return KindInteger }

func (v IntegerValue) String() string {
	return strconv.FormatInt(v.Value, 10)
}
