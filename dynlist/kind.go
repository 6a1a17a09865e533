package dynlist

import (
	"strings"

	"github.com/mazzegi/seqbox/maps"
	"github.com/mazzegi/seqbox/set"
)

// Kind tags the dynamic type of an element
type Kind int

const (
	Invalid Kind = iota
	Int          // Go int
	Float        // Go float64
	String       // Go string
	Bool         // Go bool
)

var kindNames = map[Kind]string{
	Invalid: "invalid",
	Int:     "int",
	Float:   "float",
	String:  "str",
	Bool:    "bool",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return kindNames[Invalid]
}

func (k Kind) IsNumeric() bool {
	return k == Int || k == Float
}

// KindOf returns the kind of v. Values of unsupported Go types are Invalid.
func KindOf(v any) Kind {
	switch v.(type) {
	case int:
		return Int
	case float64:
		return Float
	case string:
		return String
	case bool:
		return Bool
	default:
		return Invalid
	}
}

// Types is the fixed set of kinds a list accepts
type Types struct {
	kinds set.Set[Kind]
}

var (
	IntType    = TypesOf(Int)
	FloatType  = TypesOf(Float)
	StringType = TypesOf(String)
	BoolType   = TypesOf(Bool)
	Numeric    = TypesOf(Int, Float)
)

// TypesOf builds the allowed types from kinds; Invalid is ignored
func TypesOf(kinds ...Kind) Types {
	s := set.New[Kind]()
	for _, k := range kinds {
		if k == Invalid {
			continue
		}
		s.Insert(k)
	}
	return Types{kinds: s}
}

func (t Types) Allows(v any) bool {
	k := KindOf(v)
	return k != Invalid && t.kinds.Contains(k)
}

// Kinds returns the allowed kinds in ascending order
func (t Types) Kinds() []Kind {
	return maps.OrderedKeys(t.kinds)
}

func (t Types) Equal(o Types) bool {
	return t.kinds.Equal(o.kinds)
}

// IsNumeric returns true, if t is not empty and every allowed kind is numeric
func (t Types) IsNumeric() bool {
	if t.kinds.Len() == 0 {
		return false
	}
	for k := range t.kinds {
		if !k.IsNumeric() {
			return false
		}
	}
	return true
}

func (t Types) String() string {
	ks := t.Kinds()
	if len(ks) == 1 {
		return ks[0].String()
	}
	names := make([]string, len(ks))
	for i, k := range ks {
		names[i] = k.String()
	}
	return "(" + strings.Join(names, ", ") + ")"
}
