package tydi

// Compatible reports whether a source of type source may drive a sink of
// type sink without conversion logic.
//
// Two types are compatible when they are structurally equal, or when both
// are streams with identical throughput, dimensionality, synchronicity,
// direction, and user type, mutually compatible elements, and a source
// complexity strictly below the sink's (the sink assumes fewer guarantees
// than the source provides, never more), or when both are groups or both
// unions with identical field name sequences and pairwise compatible
// field types.
//
// Name matching here is case-sensitive, stricter than the
// case-insensitive uniqueness enforced at construction: case-sensitive
// host languages must not be handed a false match.
func Compatible(source, sink *Type) bool {
	if source.Equal(sink) {
		return true
	}

	if source.Kind() == KindStream && sink.Kind() == KindStream {
		a, b := source.Stream(), sink.Stream()
		if a.Throughput == b.Throughput &&
			a.Dimensionality == b.Dimensionality &&
			a.Synchronicity == b.Synchronicity &&
			a.Direction == b.Direction &&
			a.User.Equal(b.User) &&
			a.Complexity.LessThan(b.Complexity) &&
			Compatible(a.Element, b.Element) {
			return true
		}
	}

	if (source.Kind() == KindGroup && sink.Kind() == KindGroup) ||
		(source.Kind() == KindUnion && sink.Kind() == KindUnion) {
		sf, kf := source.Members(), sink.Members()
		if len(sf) != len(kf) {
			return false
		}
		for i := range sf {
			if sf[i].Name != kf[i].Name {
				return false
			}
			if !Compatible(sf[i].Type, kf[i].Type) {
				return false
			}
		}
		return true
	}

	return false
}
