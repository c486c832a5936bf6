package tydi

import "testing"

func mustFields(t *testing.T, fields ...BitField) Fields {
	t.Helper()
	f, err := NewFields(fields)
	if err != nil {
		t.Fatalf("NewFields failed: %v", err)
	}
	return f
}

func TestPhysicalStream_BitCounts(t *testing.T) {
	element := mustFields(t,
		BitField{Name: PathName{"a"}, Width: 8},
		BitField{Name: PathName{"b"}, Width: 16},
		BitField{Name: PathName{"c"}, Width: 1},
	)
	user := mustFields(t, BitField{Name: PathName{"flag"}, Width: 1})

	p, err := NewPhysicalStream(element, 3, 4, MajorComplexity(8), user)
	if err != nil {
		t.Fatalf("NewPhysicalStream failed: %v", err)
	}

	if got := p.DataBitCount(); got != 75 { // (8+16+1) * 3 lanes
		t.Errorf("data = %d, want 75", got)
	}
	if got := p.LastBitCount(); got != 12 { // 4 dims * 3 lanes
		t.Errorf("last = %d, want 12", got)
	}
	if got := p.StaiBitCount(); got != 2 { // ceil(log2 3)
		t.Errorf("stai = %d, want 2", got)
	}
	if got := p.EndiBitCount(); got != 2 {
		t.Errorf("endi = %d, want 2", got)
	}
	if got := p.StrbBitCount(); got != 3 { // one per lane
		t.Errorf("strb = %d, want 3", got)
	}
	if got := p.UserBitCount(); got != 1 {
		t.Errorf("user = %d, want 1", got)
	}
	if got := p.BitCount(); got != 95 {
		t.Errorf("total = %d, want 95", got)
	}
}

func TestPhysicalStream_MinimalStream(t *testing.T) {
	element := mustFields(t, BitField{Name: PathName{"a"}, Width: 8})
	p, err := NewPhysicalStream(element, 1, 0, MajorComplexity(0), nil)
	if err != nil {
		t.Fatalf("NewPhysicalStream failed: %v", err)
	}

	if p.DataBitCount() != 8 || p.BitCount() != 8 {
		t.Errorf("data/total = %d/%d, want 8/8", p.DataBitCount(), p.BitCount())
	}
	for name, got := range map[string]int{
		"last": p.LastBitCount(),
		"stai": p.StaiBitCount(),
		"endi": p.EndiBitCount(),
		"strb": p.StrbBitCount(),
		"user": p.UserBitCount(),
	} {
		if got != 0 {
			t.Errorf("%s = %d, want 0", name, got)
		}
	}
	if !p.IsCanonical() {
		t.Error("complexity 0 stream should be canonical")
	}
}

func TestPhysicalStream_ComplexityThresholds(t *testing.T) {
	element := mustFields(t, BitField{Name: nil, Width: 4})
	tests := []struct {
		name       string
		lanes, dim int
		complexity int
		stai, endi int
		strb       int
	}{
		{"c0_single_lane", 1, 0, 0, 0, 0, 0},
		{"c8_single_lane", 1, 0, 8, 0, 0, 1},  // strb from c>=7 even on one lane
		{"c4_multi_lane", 2, 0, 4, 0, 0, 0},   // no index signals below c5
		{"c5_multi_lane", 2, 0, 5, 0, 1, 0},   // endi from c>=5
		{"c6_multi_lane", 2, 0, 6, 1, 1, 0},   // stai from c>=6
		{"c7_multi_lane", 2, 0, 7, 1, 1, 2},   // strb lanes from c>=7
		{"c2_with_dims", 2, 1, 2, 0, 1, 2},    // dims force endi and strb
		{"c8_four_lanes", 4, 2, 8, 2, 2, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPhysicalStream(element, tt.lanes, tt.dim, MajorComplexity(tt.complexity), nil)
			if err != nil {
				t.Fatalf("NewPhysicalStream failed: %v", err)
			}
			if got := p.StaiBitCount(); got != tt.stai {
				t.Errorf("stai = %d, want %d", got, tt.stai)
			}
			if got := p.EndiBitCount(); got != tt.endi {
				t.Errorf("endi = %d, want %d", got, tt.endi)
			}
			if got := p.StrbBitCount(); got != tt.strb {
				t.Errorf("strb = %d, want %d", got, tt.strb)
			}
		})
	}
}

func TestPhysicalStream_Validation(t *testing.T) {
	if _, err := NewPhysicalStream(nil, 0, 0, Complexity{}, nil); err == nil {
		t.Error("zero lanes should be rejected")
	}
	if _, err := NewPhysicalStream(nil, 1, -1, Complexity{}, nil); err == nil {
		t.Error("negative dimensionality should be rejected")
	}
}

func TestSignalMap_CanonicalOrder(t *testing.T) {
	element := mustFields(t,
		BitField{Name: PathName{"a"}, Width: 3},
		BitField{Name: PathName{"b"}, Width: 2},
	)
	p, err := NewPhysicalStream(element, 2, 3, MajorComplexity(8), nil)
	if err != nil {
		t.Fatalf("NewPhysicalStream failed: %v", err)
	}

	m := p.SignalMap()
	if m.BitCount() != p.BitCount() {
		t.Errorf("map bit count = %d, stream bit count = %d", m.BitCount(), p.BitCount())
	}

	want := []Signal{
		{Name: "valid", Width: 1},
		{Name: "ready", Width: 1},
		{Name: "data", Width: 10}, // (3+2) * 2 lanes
		{Name: "last", Width: 6},  // 3 dims * 2 lanes
		{Name: "stai", Width: 1},
		{Name: "endi", Width: 1},
		{Name: "strb", Width: 2},
	}
	got := m.Signals()
	if len(got) != len(want) {
		t.Fatalf("got %d signals, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("signal %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSignalMap_OmitsAbsent(t *testing.T) {
	element := mustFields(t, BitField{Name: nil, Width: 8})
	p, err := NewPhysicalStream(element, 1, 0, MajorComplexity(0), nil)
	if err != nil {
		t.Fatalf("NewPhysicalStream failed: %v", err)
	}
	got := p.SignalMap().Signals()
	want := []Signal{
		{Name: "valid", Width: 1},
		{Name: "ready", Width: 1},
		{Name: "data", Width: 8},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d signals, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("signal %d = %v, want %v", i, got[i], want[i])
		}
	}
}
