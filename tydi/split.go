package tydi

// NamedStream pairs a hierarchical stream name with a stream-kind type.
// The root stream of a split type has the empty path.
type NamedStream struct {
	Name   PathName
	Stream *Type
}

// SplitStreams is the result of Split: the asynchronous signal subtype
// and the ordered list of physical stream boundaries found in the tree.
type SplitStreams struct {
	// Signals is the stream-free part of the type: the user-defined
	// signals that exist outside any handshake. It contains no stream
	// nodes.
	Signals *Type
	// Streams lists each spawned stream with its hierarchical name, in
	// declaration order, parents before children. Every listed type is a
	// stream node whose element type is itself stream-free.
	Streams []NamedStream
}

// Split decomposes a logical stream type into its asynchronous signals
// and a flat, named list of fully independent streams.
//
// Stream parameters compose across nesting: a parent stream rewrites each
// child spawned below it by reversing the child's direction when the
// parent is reversed, multiplying the child's throughput by its own, and
// either forcing the child to FlatDesync (when the parent flattens) or
// adding its own dimensionality to the child's (when the child itself
// does not flatten). Null streams without the keep flag are elided: they
// spawn nothing of their own.
func Split(t *Type) (SplitStreams, error) {
	return split(t, 0)
}

func split(t *Type, depth int) (SplitStreams, error) {
	if depth > maxNestingDepth {
		return SplitStreams{}, newError(CodeNestingTooDeep, "", "type nested deeper than %d levels", maxNestingDepth)
	}
	switch t.Kind() {
	case KindNull, KindBits:
		return SplitStreams{Signals: t}, nil

	case KindGroup, KindUnion:
		members := make([]Field, 0, len(t.Members()))
		var streams []NamedStream
		for _, f := range t.Members() {
			sub, err := split(f.Type, depth+1)
			if err != nil {
				return SplitStreams{}, err
			}
			members = append(members, Field{Name: f.Name, Type: sub.Signals})
			for _, ns := range sub.Streams {
				streams = append(streams, NamedStream{
					Name:   ns.Name.withPrefix(f.Name),
					Stream: ns.Stream,
				})
			}
		}
		// Member names were validated at construction; rebuild the node
		// directly to keep split total over valid trees.
		signals := &Type{kind: t.kind, fields: members}
		return SplitStreams{Signals: signals, Streams: streams}, nil

	case KindStream:
		s := t.stream
		element, err := split(s.Element, depth+1)
		if err != nil {
			return SplitStreams{}, err
		}

		var streams []NamedStream
		if !element.Signals.IsNull() || !s.User.IsNull() || s.Keep {
			self := *s
			self.Element = element.Signals
			streams = append(streams, NamedStream{
				Stream: &Type{kind: KindStream, stream: &self},
			})
		}
		for _, ns := range element.Streams {
			child := *ns.Stream.stream
			if s.Direction == Reverse {
				child.Direction = child.Direction.reversed()
			}
			if s.Synchronicity.flattens() {
				child.Synchronicity = FlatDesync
			} else if !child.Synchronicity.flattens() {
				child.Dimensionality += s.Dimensionality
			}
			child.Throughput *= s.Throughput
			streams = append(streams, NamedStream{
				Name:   ns.Name,
				Stream: &Type{kind: KindStream, stream: &child},
			})
		}

		// A stream node never contributes signals upward; its content is
		// captured by the spawned stream above.
		return SplitStreams{Signals: Null(), Streams: streams}, nil

	default:
		return SplitStreams{}, newError(CodeInvalidArgument, "", "unknown type kind")
	}
}
