package tydi

// Kind discriminates logical stream type nodes.
type Kind uint8

const (
	// KindNull is the leaf carrying no bits.
	KindNull Kind = iota
	// KindBits is the primitive leaf: b bits of element data.
	KindBits
	// KindGroup is the product type: the concatenation of its fields.
	KindGroup
	// KindUnion is the sum type: one of its variants at a time.
	KindUnion
	// KindStream introduces a new physical stream boundary.
	KindStream
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBits:
		return "bits"
	case KindGroup:
		return "group"
	case KindUnion:
		return "union"
	case KindStream:
		return "stream"
	default:
		return "unknown"
	}
}

// Direction is the direction of a stream relative to its parent.
type Direction uint8

const (
	// Forward flows from the source of the parent stream to its sink.
	Forward Direction = iota
	// Reverse flows against the parent stream.
	Reverse
)

// String returns the direction name.
func (d Direction) String() string {
	if d == Reverse {
		return "reverse"
	}
	return "forward"
}

// reversed returns the opposite direction.
func (d Direction) reversed() Direction {
	if d == Forward {
		return Reverse
	}
	return Forward
}

// Synchronicity relates the dimensionality information of a child stream
// to that of its parent.
type Synchronicity uint8

const (
	// Sync: the child redundantly carries the parent's dimensionality;
	// for each parent element there is one child sequence.
	Sync Synchronicity = iota
	// Flatten: the child's last bits absorb the parent dimensionality
	// instead of carrying it redundantly.
	Flatten
	// Desync: parent and child sequences correspond, but transfer counts
	// may differ per element.
	Desync
	// FlatDesync: no correspondence between parent and child transfers
	// remains.
	FlatDesync
)

// String returns the synchronicity name.
func (s Synchronicity) String() string {
	switch s {
	case Sync:
		return "sync"
	case Flatten:
		return "flatten"
	case Desync:
		return "desync"
	case FlatDesync:
		return "flatdesync"
	default:
		return "unknown"
	}
}

// flattens reports whether the mode resets dimensionality accumulation.
func (s Synchronicity) flattens() bool {
	return s == Flatten || s == FlatDesync
}

// Field is a named member of a group or union.
type Field struct {
	Name string
	Type *Type
}

// FieldOf builds a Field for group and union construction.
func FieldOf(name string, typ *Type) Field {
	return Field{Name: name, Type: typ}
}

// StreamType carries the parameters of a stream node.
type StreamType struct {
	// Element is the type of the data elements transferred by the stream.
	Element *Type
	// Throughput is the minimum number of elements transferable per cycle,
	// relative to the parent stream. Zero defaults to one. Must not be
	// negative.
	Throughput float64
	// Dimensionality is the number of nested sequence levels the stream
	// carries, before parent accumulation.
	Dimensionality int
	// Synchronicity relates this stream's dimensionality information to
	// its parent's.
	Synchronicity Synchronicity
	// Complexity is the guarantee level of the stream's physical
	// interface.
	Complexity Complexity
	// Direction is the flow direction relative to the parent stream.
	Direction Direction
	// User is the transfer-associated user signal type. It must not
	// contain a stream node. Nil means Null.
	User *Type
	// Keep forces the stream to exist even when its element and user
	// types carry no bits, preserving timing-only streams.
	Keep bool
}

// Type is an immutable logical stream type tree node. Use the constructor
// functions to build one; construction validates names, widths, and
// nesting eagerly so the lowering functions cannot encounter a malformed
// tree.
type Type struct {
	kind   Kind
	width  int         // KindBits
	fields []Field     // KindGroup, KindUnion
	stream *StreamType // KindStream
}

var nullType = &Type{kind: KindNull}

// Null returns the type that carries no bits.
func Null() *Type {
	return nullType
}

// Bits returns the primitive type of width bits. The width must be
// positive.
func Bits(width int) (*Type, error) {
	if width <= 0 {
		return nil, newError(CodeZeroWidthField, "", "bit width must be positive, got %d", width)
	}
	return &Type{kind: KindBits, width: width}, nil
}

// Group returns the product of the given fields. Field names must follow
// the identifier rule and be unique case-insensitively. Field order is
// significant and preserved.
func Group(fields ...Field) (*Type, error) {
	if err := validateFields(fields); err != nil {
		return nil, err
	}
	return &Type{kind: KindGroup, fields: copyFields(fields)}, nil
}

// Union returns the sum of the given variants. At least one variant is
// required; variant names follow the same rules as group field names.
func Union(variants ...Field) (*Type, error) {
	if len(variants) == 0 {
		return nil, newError(CodeInvalidArgument, "", "union requires at least one variant")
	}
	if err := validateFields(variants); err != nil {
		return nil, err
	}
	return &Type{kind: KindUnion, fields: copyFields(variants)}, nil
}

// NewStream returns a stream node with the given parameters. The user
// type must not contain a stream node; the throughput must not be
// negative (zero defaults to one). A nil element or user is treated as
// Null.
func NewStream(spec StreamType) (*Type, error) {
	if spec.Element == nil {
		spec.Element = Null()
	}
	if spec.User == nil {
		spec.User = Null()
	}
	if spec.Throughput < 0 {
		return nil, newError(CodeInvalidArgument, "", "throughput must be positive, got %v", spec.Throughput)
	}
	if spec.Throughput == 0 {
		spec.Throughput = 1
	}
	if spec.Dimensionality < 0 {
		return nil, newError(CodeInvalidArgument, "", "dimensionality cannot be negative, got %d", spec.Dimensionality)
	}
	if spec.User.containsStream() {
		return nil, newError(CodeIllegalNesting, "", "user type cannot contain a stream")
	}
	return &Type{kind: KindStream, stream: &spec}, nil
}

// MustBits is like Bits but panics on error.
func MustBits(width int) *Type {
	t, err := Bits(width)
	if err != nil {
		panic(err)
	}
	return t
}

// MustGroup is like Group but panics on error.
func MustGroup(fields ...Field) *Type {
	t, err := Group(fields...)
	if err != nil {
		panic(err)
	}
	return t
}

// MustUnion is like Union but panics on error.
func MustUnion(variants ...Field) *Type {
	t, err := Union(variants...)
	if err != nil {
		panic(err)
	}
	return t
}

// MustStream is like NewStream but panics on error.
func MustStream(spec StreamType) *Type {
	t, err := NewStream(spec)
	if err != nil {
		panic(err)
	}
	return t
}

func validateFields(fields []Field) error {
	names := make([]string, len(fields))
	for i, f := range fields {
		if err := ValidateName(f.Name); err != nil {
			return err
		}
		if f.Type == nil {
			return newError(CodeInvalidArgument, f.Name, "field type cannot be nil")
		}
		names[i] = f.Name
	}
	return checkUniqueNames(names, "")
}

func copyFields(fields []Field) []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// Kind returns the node kind.
func (t *Type) Kind() Kind {
	if t == nil {
		return KindNull
	}
	return t.kind
}

// Width returns the bit width of a bits node, and zero for any other
// kind.
func (t *Type) Width() int {
	if t == nil || t.kind != KindBits {
		return 0
	}
	return t.width
}

// Members returns the fields of a group or the variants of a union, in
// declaration order. The returned slice must not be modified.
func (t *Type) Members() []Field {
	if t == nil {
		return nil
	}
	return t.fields
}

// Stream returns the parameters of a stream node, or nil for any other
// kind. The returned struct must not be modified.
func (t *Type) Stream() *StreamType {
	if t == nil {
		return nil
	}
	return t.stream
}

// IsNull reports whether the type produces no signals at all. A group is
// null when every field is null; a union is null when every variant is
// null; a stream is null when its element and user types are null and the
// keep flag is unset. Split elides null streams entirely.
func (t *Type) IsNull() bool {
	if t == nil {
		return true
	}
	switch t.kind {
	case KindNull:
		return true
	case KindBits:
		return false
	case KindGroup, KindUnion:
		for _, f := range t.fields {
			if !f.Type.IsNull() {
				return false
			}
		}
		return true
	case KindStream:
		return t.stream.Element.IsNull() && t.stream.User.IsNull() && !t.stream.Keep
	default:
		return false
	}
}

// containsStream reports whether the tree contains a stream node.
func (t *Type) containsStream() bool {
	if t == nil {
		return false
	}
	if t.kind == KindStream {
		return true
	}
	for _, f := range t.fields {
		if f.Type.containsStream() {
			return true
		}
	}
	return false
}

// Equal reports deep structural equality. Names are compared
// case-sensitively; complexity levels are compared under the zero-padding
// rule, so a stream at complexity "2" equals one at "2.0".
func (t *Type) Equal(other *Type) bool {
	if t == nil {
		t = nullType
	}
	if other == nil {
		other = nullType
	}
	if t.kind != other.kind {
		return false
	}
	switch t.kind {
	case KindNull:
		return true
	case KindBits:
		return t.width == other.width
	case KindGroup, KindUnion:
		if len(t.fields) != len(other.fields) {
			return false
		}
		for i := range t.fields {
			if t.fields[i].Name != other.fields[i].Name {
				return false
			}
			if !t.fields[i].Type.Equal(other.fields[i].Type) {
				return false
			}
		}
		return true
	case KindStream:
		a, b := t.stream, other.stream
		return a.Throughput == b.Throughput &&
			a.Dimensionality == b.Dimensionality &&
			a.Synchronicity == b.Synchronicity &&
			a.Direction == b.Direction &&
			a.Keep == b.Keep &&
			a.Complexity.Equals(b.Complexity) &&
			a.Element.Equal(b.Element) &&
			a.User.Equal(b.User)
	default:
		return false
	}
}
