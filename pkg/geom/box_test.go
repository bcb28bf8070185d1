package geom

import "testing"

func TestEmptyBox(t *testing.T) {
	e := EmptyBox()
	if !e.Empty() {
		t.Fatal("EmptyBox().Empty() = false, want true")
	}
	full := EmptyBox().IncludeSphere(Vec{}, 1)
	if e.Overlaps(full) || full.Overlaps(e) {
		t.Error("empty box overlaps a non-empty box")
	}
	if !e.Dilate(100).Empty() {
		t.Error("Dilate() made an empty box non-empty")
	}
}

func TestBoxIncludeSphere(t *testing.T) {
	b := EmptyBox().
		IncludeSphere(Vec{X: 1, Y: 2, Z: 3}, 0.5).
		IncludeSphere(Vec{X: -1, Y: 0, Z: 3}, 1)

	wantMin := Vec{X: -2, Y: -1, Z: 2}
	wantMax := Vec{X: 1.5, Y: 2.5, Z: 4}
	if !ApproxEqual(b.Min, wantMin, Tolerance) || !ApproxEqual(b.Max, wantMax, Tolerance) {
		t.Errorf("box = [%v, %v], want [%v, %v]", b.Min, b.Max, wantMin, wantMax)
	}
}

func TestBoxDilate(t *testing.T) {
	b := EmptyBox().IncludeSphere(Vec{}, 1)

	tests := []struct {
		name string
		d    float64
		max  float64
	}{
		{"positive", 0.25, 1.25},
		{"zero", 0, 1},
		{"negative clamped", -3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.Dilate(tt.d)
			if got.Max.X != tt.max || got.Min.X != -tt.max {
				t.Errorf("Dilate(%v) x-range = [%v, %v], want [%v, %v]", tt.d, got.Min.X, got.Max.X, -tt.max, tt.max)
			}
		})
	}
}

func TestBoxOverlaps(t *testing.T) {
	unit := func(c Vec) Box { return EmptyBox().IncludeSphere(c, 1) }

	tests := []struct {
		name string
		a, b Box
		want bool
	}{
		{"same", unit(Vec{}), unit(Vec{}), true},
		{"touching", unit(Vec{}), unit(Vec{X: 2}), true},
		{"apart on x", unit(Vec{}), unit(Vec{X: 2.01}), false},
		{"apart on y only", unit(Vec{}), unit(Vec{X: 1, Y: 3}), false},
		{"apart on z only", unit(Vec{}), unit(Vec{Z: -2.5}), false},
		{"diagonal corners", unit(Vec{}), unit(Vec{X: 1.9, Y: 1.9, Z: 1.9}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("Overlaps() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}
