package gdl

// ValueKind discriminates property value variants
type ValueKind int

const (
	KindNumber ValueKind = iota
	KindString
	KindBool
	KindArray
	KindObject
)

// Value is a scalar, array, or nested-object property value.
// All GDL numerics are float64; integer-looking literals coerce losslessly.
type Value struct {
	Kind ValueKind
	Num  float64
	Str  string
	Bool bool
	Arr  []Value
	Obj  []Property // nested object keeps property order
}

// Property is a single `key: value` entry
type Property struct {
	Key  string
	Val  Value
	Line int
}

// Block is `keyword identifier? { ... }` with ordered properties and
// ordered child blocks
type Block struct {
	Keyword string
	Name    string
	Props   []Property
	Blocks  []*Block
	Line    int
}

// Document is the parse result: ordered top-level blocks
type Document struct {
	Blocks []*Block
}

// Prop returns the last property with the given key, if present.
// Last-wins matches hand-authored level data where a later line overrides
// an earlier one.
func (b *Block) Prop(key string) (Value, bool) {
	for i := len(b.Props) - 1; i >= 0; i-- {
		if b.Props[i].Key == key {
			return b.Props[i].Val, true
		}
	}
	return Value{}, false
}

// Float returns a numeric property or def when absent or non-numeric
func (b *Block) Float(key string, def float64) float64 {
	v, ok := b.Prop(key)
	if !ok || v.Kind != KindNumber {
		return def
	}
	return v.Num
}

// Str returns a string property or def when absent or non-string
func (b *Block) Str(key, def string) string {
	v, ok := b.Prop(key)
	if !ok || v.Kind != KindString {
		return def
	}
	return v.Str
}

// Flag returns a bool property or def when absent or non-bool
func (b *Block) Flag(key string, def bool) bool {
	v, ok := b.Prop(key)
	if !ok || v.Kind != KindBool {
		return def
	}
	return v.Bool
}

// Floats returns a numeric array property; ok is false when the key is
// absent or any element is non-numeric
func (b *Block) Floats(key string) ([]float64, bool) {
	v, ok := b.Prop(key)
	if !ok || v.Kind != KindArray {
		return nil, false
	}
	out := make([]float64, 0, len(v.Arr))
	for _, el := range v.Arr {
		if el.Kind != KindNumber {
			return nil, false
		}
		out = append(out, el.Num)
	}
	return out, true
}

// Child returns the first child block with the given keyword
func (b *Block) Child(keyword string) *Block {
	for _, c := range b.Blocks {
		if c.Keyword == keyword {
			return c
		}
	}
	return nil
}

// Children returns all child blocks with the given keyword, in order
func (b *Block) Children(keyword string) []*Block {
	var out []*Block
	for _, c := range b.Blocks {
		if c.Keyword == keyword {
			out = append(out, c)
		}
	}
	return out
}

// ObjProp returns the property with the given key from an object value
func (v Value) ObjProp(key string) (Value, bool) {
	if v.Kind != KindObject {
		return Value{}, false
	}
	for i := len(v.Obj) - 1; i >= 0; i-- {
		if v.Obj[i].Key == key {
			return v.Obj[i].Val, true
		}
	}
	return Value{}, false
}

// Plain converts a Value into untyped Go data (float64, string, bool,
// []any, map[string]any). Behavior property maps are built from this.
func (v Value) Plain() any {
	switch v.Kind {
	case KindNumber:
		return v.Num
	case KindString:
		return v.Str
	case KindBool:
		return v.Bool
	case KindArray:
		out := make([]any, len(v.Arr))
		for i, el := range v.Arr {
			out[i] = el.Plain()
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.Obj))
		for _, p := range v.Obj {
			out[p.Key] = p.Val.Plain()
		}
		return out
	}
	return nil
}
