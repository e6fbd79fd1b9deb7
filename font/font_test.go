// SPDX-License-Identifier: Unlicense OR MIT

package font

import "testing"

func TestParseWeight(t *testing.T) {
	for w := Thin; w <= Black; w += 100 {
		got, ok := ParseWeight(w.String())
		if !ok || got != w {
			t.Errorf("ParseWeight(%q) = %v, %v", w.String(), got, ok)
		}
	}
	if w, ok := ParseWeight("bold"); !ok || w != Bold {
		t.Errorf("ParseWeight(bold) = %v, %v", w, ok)
	}
	if _, ok := ParseWeight("heavy"); ok {
		t.Error("ParseWeight accepted heavy")
	}
	if got := Weight(50).String(); got != "Weight(+50)" {
		t.Errorf("unnamed weight prints %q", got)
	}
}

func TestParseStyle(t *testing.T) {
	tests := map[string]Style{"regular": Regular, "Normal": Regular, "italic": Italic}
	for in, want := range tests {
		if got, ok := ParseStyle(in); !ok || got != want {
			t.Errorf("ParseStyle(%q) = %v, %v", in, got, ok)
		}
	}
	if _, ok := ParseStyle("oblique"); ok {
		t.Error("ParseStyle accepted oblique")
	}
}
