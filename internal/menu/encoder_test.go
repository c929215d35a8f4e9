package menu

import "testing"

func TestEncoderFeed(t *testing.T) {
	tests := []struct {
		name      string
		factor    int
		samples   []uint32
		wantOK    bool
		wantDelta int32
		wantPos   uint32
		wantPrev  uint32
	}{
		{name: "forward detent", factor: 2, samples: []uint32{2}, wantOK: true, wantDelta: 1, wantPos: 1},
		{name: "backward detent", factor: 2, samples: []uint32{4, 2}, wantOK: true, wantDelta: -1, wantPos: 1, wantPrev: 2},
		{name: "bounce rejected", factor: 2, samples: []uint32{2, 3}, wantOK: false, wantDelta: 1, wantPos: 1},
		{name: "jump keeps magnitude", factor: 2, samples: []uint32{8}, wantOK: true, wantDelta: 4, wantPos: 4},
		{name: "same sample is a zero step", factor: 2, samples: []uint32{2, 2}, wantOK: true, wantDelta: 0, wantPos: 1, wantPrev: 1},
		{name: "rollover backwards", factor: 2, samples: []uint32{0xFFFFFFFE}, wantOK: true, wantDelta: -1, wantPos: 0x7FFFFFFF},
		{name: "rollover forwards", factor: 2, samples: []uint32{0xFFFFFFFE, 0}, wantOK: true, wantDelta: 1, wantPos: 0, wantPrev: 0x7FFFFFFF},
		{name: "factor three", factor: 3, samples: []uint32{3, 4}, wantOK: false, wantDelta: 1, wantPos: 1},
		{name: "factor one accepts all", factor: 1, samples: []uint32{1, 2, 3}, wantOK: true, wantDelta: 1, wantPos: 3, wantPrev: 2},
		{name: "invalid factor defaults", factor: 0, samples: []uint32{1}, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc := NewEncoder(tt.factor)
			var ok bool
			for _, raw := range tt.samples {
				_, ok = enc.Feed(raw)
			}
			if ok != tt.wantOK {
				t.Fatalf("expected last sample accepted=%v, got %v", tt.wantOK, ok)
			}
			if enc.Delta() != tt.wantDelta {
				t.Fatalf("expected delta %d, got %d", tt.wantDelta, enc.Delta())
			}
			if enc.Current() != tt.wantPos {
				t.Fatalf("expected logical position %d, got %d", tt.wantPos, enc.Current())
			}
			if enc.Prev() != tt.wantPrev {
				t.Fatalf("expected previous position %d, got %d", tt.wantPrev, enc.Prev())
			}
		})
	}
}

func TestEncoderRejectLeavesStateUntouched(t *testing.T) {
	enc := NewEncoder(DefaultFilterFactor)
	enc.Feed(6)
	before := *enc
	for _, raw := range []uint32{1, 7, 9, 0xFFFFFFFF} {
		if delta, ok := enc.Feed(raw); ok || delta != 0 {
			t.Fatalf("expected %d to be rejected, got delta=%d ok=%v", raw, delta, ok)
		}
	}
	if *enc != before {
		t.Fatalf("rejected samples changed encoder state: %+v -> %+v", before, *enc)
	}
	if enc.Factor() != DefaultFilterFactor {
		t.Fatalf("expected factor %d, got %d", DefaultFilterFactor, enc.Factor())
	}
}
