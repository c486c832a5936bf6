package tydi

import "testing"

func TestSynthesize_BitsAlone(t *testing.T) {
	// Bits with no enclosing stream spawns no physical streams; the bits
	// themselves surface as a single anonymous asynchronous signal.
	ls, err := Synthesize(MustBits(8))
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
	if len(ls.Streams) != 0 {
		t.Errorf("got %d streams, want 0", len(ls.Streams))
	}
	assertFields(t, ls.Signals, []BitField{{Name: nil, Width: 8}})
}

func TestSynthesize_SimpleStream(t *testing.T) {
	s := MustStream(StreamType{Element: MustBits(8), Complexity: MajorComplexity(0)})
	ls, err := Synthesize(s)
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
	if len(ls.Signals) != 0 {
		t.Errorf("got %d signal fields, want 0", len(ls.Signals))
	}
	if len(ls.Streams) != 1 {
		t.Fatalf("got %d streams, want 1", len(ls.Streams))
	}
	got := ls.Streams[0]
	if !got.Name.IsEmpty() {
		t.Errorf("stream name = %q, want empty", got.Name.String())
	}
	p := got.Stream
	if p.ElementFields().BitCount() != 8 {
		t.Errorf("E = %d, want 8", p.ElementFields().BitCount())
	}
	if p.ElementLanes() != 1 {
		t.Errorf("N = %d, want 1", p.ElementLanes())
	}
	if p.Dimensionality() != 0 {
		t.Errorf("D = %d, want 0", p.Dimensionality())
	}
	if p.UserFields().BitCount() != 0 {
		t.Errorf("U = %d, want 0", p.UserFields().BitCount())
	}
}

func TestSynthesize_SignalsOnly(t *testing.T) {
	// A group of bits with no stream inside yields only user signals.
	g := MustGroup(
		FieldOf("a", MustBits(3)),
		FieldOf("b", MustBits(5)),
	)
	ls, err := Synthesize(g)
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
	if len(ls.Streams) != 0 {
		t.Errorf("got %d streams, want 0", len(ls.Streams))
	}
	assertFields(t, ls.Signals, []BitField{
		{Name: PathName{"a"}, Width: 3},
		{Name: PathName{"b"}, Width: 5},
	})
}

func TestSynthesize_LanesFromThroughput(t *testing.T) {
	tests := []struct {
		throughput float64
		wantLanes  int
	}{
		{0, 1},   // defaulted at construction
		{1, 1},
		{0.5, 1}, // fractional rates still need a lane
		{2, 2},
		{2.5, 3}, // lanes are the ceiling of the rate
	}

	for _, tt := range tests {
		s := MustStream(StreamType{Element: MustBits(4), Throughput: tt.throughput})
		ls, err := Synthesize(s)
		if err != nil {
			t.Fatalf("Synthesize failed: %v", err)
		}
		if got := ls.Streams[0].Stream.ElementLanes(); got != tt.wantLanes {
			t.Errorf("throughput %v: N = %d, want %d", tt.throughput, got, tt.wantLanes)
		}
	}
}

func TestSynthesize_NestedStreams(t *testing.T) {
	// A record with a plain field and a nested sequence of bytes: the
	// outer stream carries the record, the inner stream the sequence,
	// with the outer dimensionality added onto the inner.
	inner := MustStream(StreamType{
		Element:        MustBits(8),
		Dimensionality: 1,
		Complexity:     MajorComplexity(4),
	})
	outer := MustStream(StreamType{
		Element: MustGroup(
			FieldOf("size", MustBits(32)),
			FieldOf("bytes", inner),
		),
		Dimensionality: 1,
		Complexity:     MajorComplexity(4),
		User:           MustBits(2),
	})

	ls, err := Synthesize(outer)
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
	if len(ls.Streams) != 2 {
		t.Fatalf("got %d streams, want 2", len(ls.Streams))
	}

	root := ls.Streams[0]
	if !root.Name.IsEmpty() {
		t.Errorf("root stream name = %q, want empty", root.Name.String())
	}
	assertFields(t, root.Stream.ElementFields(), []BitField{
		{Name: PathName{"size"}, Width: 32},
	})
	if root.Stream.Dimensionality() != 1 {
		t.Errorf("root D = %d, want 1", root.Stream.Dimensionality())
	}
	if root.Stream.UserBitCount() != 2 {
		t.Errorf("root U = %d, want 2", root.Stream.UserBitCount())
	}

	nested := ls.Streams[1]
	if nested.Name.String() != "bytes" {
		t.Errorf("nested stream name = %q, want %q", nested.Name.String(), "bytes")
	}
	if nested.Stream.Dimensionality() != 2 {
		t.Errorf("nested D = %d, want 2", nested.Stream.Dimensionality())
	}
	if nested.Stream.ElementFields().BitCount() != 8 {
		t.Errorf("nested E = %d, want 8", nested.Stream.ElementFields().BitCount())
	}
}

func TestSynthesize_GuaranteesEU(t *testing.T) {
	// E and U of every emitted stream equal the sum of their field
	// widths by construction.
	u := MustGroup(FieldOf("flag", MustBits(1)), FieldOf("count", MustBits(7)))
	s := MustStream(StreamType{
		Element: MustUnion(
			FieldOf("x", MustBits(2)),
			FieldOf("y", MustBits(4)),
		),
		User: u,
	})
	ls, err := Synthesize(s)
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
	p := ls.Streams[0].Stream
	if p.ElementFields().BitCount() != 5 { // tag(1) + union(4)
		t.Errorf("E = %d, want 5", p.ElementFields().BitCount())
	}
	if p.UserBitCount() != 8 {
		t.Errorf("U = %d, want 8", p.UserBitCount())
	}
	assertFields(t, p.UserFields(), []BitField{
		{Name: PathName{"flag"}, Width: 1},
		{Name: PathName{"count"}, Width: 7},
	})
}
