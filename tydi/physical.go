package tydi

import "math/bits"

// log2Ceil returns ceil(log2(n)) for n >= 1.
func log2Ceil(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}

// PhysicalStream describes one valid/ready-handshaked hardware interface:
// element content E, element lanes N, dimensionality D, complexity C, and
// user content U.
type PhysicalStream struct {
	elementFields  Fields
	elementLanes   int
	dimensionality int
	complexity     Complexity
	userFields     Fields
}

// NewPhysicalStream constructs a physical stream descriptor. Element
// lanes must be positive and dimensionality nonnegative.
func NewPhysicalStream(elementFields Fields, elementLanes, dimensionality int, complexity Complexity, userFields Fields) (PhysicalStream, error) {
	if elementLanes < 1 {
		return PhysicalStream{}, newError(CodeInvalidArgument, "", "element lanes must be positive, got %d", elementLanes)
	}
	if dimensionality < 0 {
		return PhysicalStream{}, newError(CodeInvalidArgument, "", "dimensionality cannot be negative, got %d", dimensionality)
	}
	return PhysicalStream{
		elementFields:  elementFields,
		elementLanes:   elementLanes,
		dimensionality: dimensionality,
		complexity:     complexity,
		userFields:     userFields,
	}, nil
}

// ElementFields returns the element content fields (E).
func (p PhysicalStream) ElementFields() Fields {
	return p.elementFields
}

// ElementLanes returns the number of element lanes (N).
func (p PhysicalStream) ElementLanes() int {
	return p.elementLanes
}

// Dimensionality returns the number of nested sequence levels (D).
func (p PhysicalStream) Dimensionality() int {
	return p.dimensionality
}

// Complexity returns the complexity level (C).
func (p PhysicalStream) Complexity() Complexity {
	return p.complexity
}

// UserFields returns the user content fields (U).
func (p PhysicalStream) UserFields() Fields {
	return p.userFields
}

// DataBitCount returns the width of the data signal: the combined element
// field width times the number of lanes.
func (p PhysicalStream) DataBitCount() int {
	return p.elementFields.BitCount() * p.elementLanes
}

// LastBitCount returns the width of the last signal: one bit per
// dimension per lane. Below complexity 8 all but the top lane's last bits
// are driven zero, but the lanes are still present on the wire.
func (p PhysicalStream) LastBitCount() int {
	return p.dimensionality * p.elementLanes
}

// StaiBitCount returns the width of the start-index signal, present from
// complexity 6 up on multi-lane streams.
func (p PhysicalStream) StaiBitCount() int {
	if p.complexity.Major() >= 6 && p.elementLanes > 1 {
		return log2Ceil(p.elementLanes)
	}
	return 0
}

// EndiBitCount returns the width of the end-index signal, present on
// multi-lane streams from complexity 5 up or whenever the stream carries
// dimensionality.
func (p PhysicalStream) EndiBitCount() int {
	if (p.complexity.Major() >= 5 || p.dimensionality >= 1) && p.elementLanes > 1 {
		return log2Ceil(p.elementLanes)
	}
	return 0
}

// StrbBitCount returns the width of the strobe signal: one bit per lane,
// present from complexity 7 up or whenever the stream carries
// dimensionality. Below complexity 8 all strobe bits carry the same
// value.
func (p PhysicalStream) StrbBitCount() int {
	if p.complexity.Major() >= 7 || p.dimensionality >= 1 {
		return p.elementLanes
	}
	return 0
}

// UserBitCount returns the width of the user signal.
func (p PhysicalStream) UserBitCount() int {
	return p.userFields.BitCount()
}

// BitCount returns the combined width of all payload signals, excluding
// the scalar valid and ready handshake signals.
func (p PhysicalStream) BitCount() int {
	return p.DataBitCount() +
		p.LastBitCount() +
		p.StaiBitCount() +
		p.EndiBitCount() +
		p.StrbBitCount() +
		p.UserBitCount()
}

// IsCanonical reports whether exactly one wire-level encoding exists per
// logical sequence for the stream's lane count, which holds below
// complexity 4.
func (p PhysicalStream) IsCanonical() bool {
	return p.complexity.Major() < 4
}

// SignalMap returns the per-signal widths of the stream.
func (p PhysicalStream) SignalMap() SignalMap {
	return SignalMap{
		data: p.DataBitCount(),
		last: p.LastBitCount(),
		stai: p.StaiBitCount(),
		endi: p.EndiBitCount(),
		strb: p.StrbBitCount(),
		user: p.UserBitCount(),
	}
}

// Signal is one named wire group of a physical stream.
type Signal struct {
	Name  string
	Width int
}

// SignalMap holds the widths of a physical stream's signals. A zero width
// means the signal is absent.
type SignalMap struct {
	data int
	last int
	stai int
	endi int
	strb int
	user int
}

// Data returns the data signal width, or zero when absent.
func (m SignalMap) Data() int { return m.data }

// Last returns the last signal width, or zero when absent.
func (m SignalMap) Last() int { return m.last }

// Stai returns the start-index signal width, or zero when absent.
func (m SignalMap) Stai() int { return m.stai }

// Endi returns the end-index signal width, or zero when absent.
func (m SignalMap) Endi() int { return m.endi }

// Strb returns the strobe signal width, or zero when absent.
func (m SignalMap) Strb() int { return m.strb }

// User returns the user signal width, or zero when absent.
func (m SignalMap) User() int { return m.user }

// BitCount returns the combined width of all signals in the map,
// excluding valid and ready.
func (m SignalMap) BitCount() int {
	return m.data + m.last + m.stai + m.endi + m.strb + m.user
}

// Signals lists the stream's wires in canonical order: valid, ready,
// data, last, stai, endi, strb, user. The scalar valid and ready
// handshake signals are always present; absent payload signals are
// omitted.
func (m SignalMap) Signals() []Signal {
	out := []Signal{
		{Name: "valid", Width: 1},
		{Name: "ready", Width: 1},
	}
	for _, s := range []Signal{
		{Name: "data", Width: m.data},
		{Name: "last", Width: m.last},
		{Name: "stai", Width: m.stai},
		{Name: "endi", Width: m.endi},
		{Name: "strb", Width: m.strb},
		{Name: "user", Width: m.user},
	} {
		if s.Width > 0 {
			out = append(out, s)
		}
	}
	return out
}
