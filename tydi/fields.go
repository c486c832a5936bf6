package tydi

import "strings"

// maxNestingDepth bounds recursive descent over type trees. Realistic
// designs nest tens of levels at most; the limit turns a pathological
// tree into a typed error instead of unbounded stack growth.
const maxNestingDepth = 1024

// BitField is one named, sized field of a physical stream's element or
// user content. The name may be empty when a lone bits node flattens to a
// single anonymous field.
type BitField struct {
	Name  PathName
	Width int
}

// Fields is the ordered field list of a physical stream. Names are unique
// case-insensitively.
type Fields []BitField

// NewFields validates and returns a field list. Widths must be positive
// and flattened names unique case-insensitively.
func NewFields(fields []BitField) (Fields, error) {
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if f.Width <= 0 {
			return nil, newError(CodeZeroWidthField, f.Name.String(), "field width must be positive, got %d", f.Width)
		}
		key := strings.ToLower(f.Name.String())
		if _, ok := seen[key]; ok {
			return nil, newError(CodeDuplicateName, f.Name.String(), "duplicate field name")
		}
		seen[key] = struct{}{}
	}
	return Fields(fields), nil
}

// BitCount returns the combined width of all fields.
func (f Fields) BitCount() int {
	total := 0
	for _, field := range f {
		total += field.Width
	}
	return total
}

// FieldsOf flattens an element or user signal type into an ordered list
// of named bit fields. It applies to null, bits, group, and union trees;
// stream nodes are rejected because they describe independent physical
// streams, not element content. Use Split first to separate the two.
//
// Group fields are prefixed with their field name, joined by a double
// underscore; a union with more than one variant gains a zero-based "tag"
// selector field of ceil(log2 n) bits, followed by a shared "union"
// payload field as wide as its widest variant. The payload holds the
// active variant's fields LSB-first and LSB-aligned; bits beyond the
// active variant's width are don't-care, and a driven tag value at or
// above the variant count is illegal on the wire (it cannot be ruled out
// structurally).
func FieldsOf(t *Type) (Fields, error) {
	return fieldsOf(t, nil, 0)
}

func fieldsOf(t *Type, prefix PathName, depth int) (Fields, error) {
	if depth > maxNestingDepth {
		return nil, newError(CodeNestingTooDeep, prefix.String(), "type nested deeper than %d levels", maxNestingDepth)
	}
	switch t.Kind() {
	case KindNull:
		return nil, nil

	case KindBits:
		return Fields{{Name: prefix, Width: t.Width()}}, nil

	case KindGroup:
		var out Fields
		for _, f := range t.Members() {
			sub, err := fieldsOf(f.Type, prefix.withSuffix(f.Name), depth+1)
			if err != nil {
				return nil, err
			}
			out = append(out, sub...)
		}
		return out, nil

	case KindUnion:
		var out Fields
		variants := t.Members()
		if len(variants) > 1 {
			out = append(out, BitField{
				Name:  prefix.withSuffix("tag"),
				Width: log2Ceil(len(variants)),
			})
		}
		// The union payload is the LSB-aligned overlay of all variants;
		// only the widest variant determines the field width.
		payload := 0
		for _, v := range variants {
			sub, err := fieldsOf(v.Type, nil, depth+1)
			if err != nil {
				return nil, err
			}
			if w := sub.BitCount(); w > payload {
				payload = w
			}
		}
		if payload > 0 {
			out = append(out, BitField{
				Name:  prefix.withSuffix("union"),
				Width: payload,
			})
		}
		return out, nil

	case KindStream:
		return nil, newError(CodeInvalidArgument, prefix.String(), "cannot flatten a stream node into bit fields")

	default:
		return nil, newError(CodeInvalidArgument, prefix.String(), "unknown type kind")
	}
}
