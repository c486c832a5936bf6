// Package tydi lowers logical stream types to physical streams.
//
// A logical stream type is a recursive description of structured, nested,
// variable-length data moving through hardware:
//
//   - Null: carries no bits
//   - Bits(b): b bits of element data
//   - Group: product of named fields
//   - Union: tagged sum of named variants
//   - Stream: a new handshaked stream boundary with its own throughput,
//     dimensionality, synchronicity, complexity, direction, user signals,
//     and keep flag
//
// A physical stream is one valid/ready-handshaked signal group described
// by five parameters: element content E, element lanes N, dimensionality
// D, complexity C, and user content U.
//
// # Lowering
//
// Split separates a type into its stream-free asynchronous signals and a
// flat, named list of independent streams, composing dimensionality,
// synchronicity, direction, and throughput across arbitrary nesting.
// FieldsOf flattens a stream-free type into named bit fields, encoding
// unions as a tag selector plus a shared payload. Synthesize combines the
// two into the final physical representation:
//
//	element := tydi.MustGroup(
//		tydi.FieldOf("a", tydi.MustBits(3)),
//		tydi.FieldOf("b", tydi.MustBits(5)),
//	)
//	t := tydi.MustStream(tydi.StreamType{
//		Element:        element,
//		Dimensionality: 1,
//		Complexity:     tydi.MajorComplexity(4),
//	})
//	ls, err := tydi.Synthesize(t)
//	// ls.Streams[0].Stream has E=8, N=1, D=1, C=4, U=0.
//
// All transforms are pure functions over immutable trees; a malformed
// tree is rejected at construction time with a typed *Error, never at
// lowering time.
//
// # Compatibility
//
// Compatible reports whether a source type may drive a sink type
// directly. A sink may assume fewer guarantees than the source provides
// (a strictly higher complexity), never more.
//
// # Names
//
// Field, variant, and stream names follow the identifier rule enforced by
// ValidateName and are unique case-insensitively within their scope.
// Flattened hierarchical names join segments with a double underscore,
// which the identifier rule keeps collision-free.
package tydi
