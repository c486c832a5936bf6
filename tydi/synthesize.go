package tydi

import "math"

// NamedPhysicalStream pairs a hierarchical stream name with its physical
// descriptor.
type NamedPhysicalStream struct {
	Name   PathName
	Stream PhysicalStream
}

// LogicalStream is the physical representation of a logical stream type:
// the flattened asynchronous user signals plus one physical stream
// descriptor per stream boundary in the type.
type LogicalStream struct {
	// Signals is the flattened stream-free part of the type.
	Signals Fields
	// Streams lists the physical streams in declaration order, parents
	// before children.
	Streams []NamedPhysicalStream
}

// Synthesize lowers a logical stream type to its physical representation.
// Each stream found by Split becomes one physical stream whose element
// and user content are the flattened bit fields of the stream's element
// and user types, with ceil(throughput) element lanes.
func Synthesize(t *Type) (*LogicalStream, error) {
	parts, err := Split(t)
	if err != nil {
		return nil, err
	}
	signals, err := FieldsOf(parts.Signals)
	if err != nil {
		return nil, err
	}

	streams := make([]NamedPhysicalStream, 0, len(parts.Streams))
	for _, ns := range parts.Streams {
		s := ns.Stream.Stream()
		element, err := FieldsOf(s.Element)
		if err != nil {
			return nil, err
		}
		user, err := FieldsOf(s.User)
		if err != nil {
			return nil, err
		}
		lanes := int(math.Ceil(s.Throughput))
		if lanes < 1 {
			lanes = 1
		}
		physical, err := NewPhysicalStream(element, lanes, s.Dimensionality, s.Complexity, user)
		if err != nil {
			return nil, err
		}
		streams = append(streams, NamedPhysicalStream{Name: ns.Name, Stream: physical})
	}

	return &LogicalStream{Signals: signals, Streams: streams}, nil
}
