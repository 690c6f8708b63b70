package glide

import "testing"

func TestDeriveMode(t *testing.T) {
	cases := []struct {
		zoom, pan bool
		want      Mode
	}{
		{false, false, ModeNone},
		{true, false, ModeZoomOnly},
		{false, true, ModePanOnly},
		{true, true, ModeBoth},
	}
	for _, c := range cases {
		if got := DeriveMode(c.zoom, c.pan); got != c.want {
			t.Errorf("DeriveMode(%v, %v) = %v, want %v", c.zoom, c.pan, got, c.want)
		}
	}
}

func TestModeString(t *testing.T) {
	if ModeNone.String() != "none" || ModeBoth.String() != "zoom+pan" {
		t.Fatalf("unexpected mode names: %v %v", ModeNone, ModeBoth)
	}
}
