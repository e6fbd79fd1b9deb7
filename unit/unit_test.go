// SPDX-License-Identifier: Unlicense OR MIT

package unit_test

import (
	"math"
	"testing"

	"gioui.org/typeset/unit"
)

func TestRelResolve(t *testing.T) {
	tests := map[string]struct {
		rel  unit.Rel
		ref  unit.Abs
		want unit.Abs
	}{
		"absolute ignores reference": {
			rel:  unit.Absolute(12),
			ref:  100,
			want: 12,
		},
		"absolute ignores infinite reference": {
			rel:  unit.Absolute(12),
			ref:  unit.Inf(),
			want: 12,
		},
		"ratio": {
			rel:  unit.Relative(unit.Percent(50)),
			ref:  50,
			want: 25,
		},
		"full ratio": {
			rel:  unit.Relative(1),
			ref:  50,
			want: 50,
		},
		"mixed": {
			rel:  unit.Rel{Ratio: unit.Percent(10), Abs: 5},
			ref:  200,
			want: 25,
		},
		"ratio of infinite is zero": {
			rel:  unit.Rel{Ratio: unit.Percent(10), Abs: 5},
			ref:  unit.Inf(),
			want: 5,
		},
		"ratio of NaN is zero": {
			rel:  unit.Relative(unit.Percent(10)),
			ref:  unit.Abs(math.NaN()),
			want: 0,
		},
		"negative propagates": {
			rel:  unit.Rel{Ratio: unit.Percent(-50), Abs: 10},
			ref:  100,
			want: -40,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rel.Resolve(tt.ref); got != tt.want {
				t.Errorf("%v.Resolve(%v) = %v, want %v", tt.rel, tt.ref, got, tt.want)
			}
		})
	}
}

func TestFrShare(t *testing.T) {
	tests := []struct {
		f, total  unit.Fr
		remaining unit.Abs
		want      unit.Abs
	}{
		{1, 2, 100, 50},
		{2, 2, 100, 100},
		{1, 4, 10, 2.5},
		{1, 0, 100, 0},
		{1, 1, unit.Inf(), 0},
		{1, 1, -10, 0},
		{0, 1, 10, 0},
	}
	for _, tt := range tests {
		if got := tt.f.Share(tt.total, tt.remaining); got != tt.want {
			t.Errorf("%v.Share(%v, %v) = %v, want %v", tt.f, tt.total, tt.remaining, got, tt.want)
		}
	}
}

func TestMetric(t *testing.T) {
	m := unit.Metric{FontSize: 10}
	tests := []struct {
		v    unit.Value
		want unit.Abs
	}{
		{unit.V(12, unit.UnitPt), 12},
		{unit.V(1, unit.UnitIn), 72},
		{unit.V(2.54, unit.UnitCm), 72},
		{unit.V(25.4, unit.UnitMm), 72},
		{unit.V(1.5, unit.UnitEm), 15},
	}
	for _, tt := range tests {
		got := m.Abs(tt.v)
		if math.Abs(float64(got-tt.want)) > 1e-3 {
			t.Errorf("Abs(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
	if got := (unit.Metric{}).Abs(unit.V(2, unit.UnitEm)); got != 2*unit.DefaultFontSize {
		t.Errorf("zero metric em = %v, want %v", got, 2*unit.DefaultFontSize)
	}
}

func TestAdd(t *testing.T) {
	m := unit.Metric{FontSize: 10}
	if got := unit.Add(m, unit.V(1, unit.UnitEm), unit.V(2, unit.UnitEm)); got != unit.V(3, unit.UnitEm) {
		t.Errorf("Add same unit = %v", got)
	}
	if got := unit.Add(m, unit.V(1, unit.UnitEm), unit.V(5, unit.UnitPt)); got != unit.V(15, unit.UnitPt) {
		t.Errorf("Add mixed units = %v", got)
	}
	if got := unit.Add(m); got != (unit.Value{}) {
		t.Errorf("Add of nothing = %v", got)
	}
	if got := unit.Add(m, unit.V(0, unit.UnitPt), unit.V(2, unit.UnitEm)); got != unit.V(2, unit.UnitEm) {
		t.Errorf("Add zero and em = %v", got)
	}
}

func TestRelAdd(t *testing.T) {
	r := unit.Relative(unit.Percent(10)).Add(unit.Absolute(5)).Add(unit.Relative(unit.Percent(15)))
	if r.Abs != 5 || math.Abs(float64(r.Ratio)-0.25) > 1e-12 {
		t.Errorf("sum = %v", r)
	}
	if got := r.Resolve(100); math.Abs(float64(got)-30) > 1e-9 {
		t.Errorf("sum resolves to %v, want 30", got)
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		s    interface{ String() string }
		want string
	}{
		{unit.Abs(5), "5pt"},
		{unit.Percent(50), "50%"},
		{unit.Rel{Ratio: unit.Percent(50), Abs: 5}, "50% + 5pt"},
		{unit.Fr(2), "2fr"},
		{unit.V(3, unit.UnitMm), "3mm"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
