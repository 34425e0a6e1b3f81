package torus

import (
	"testing"

	"github.com/lixenwraith/donut/vmath"
)

func TestProject_KnownSamples(t *testing.T) {
	tests := []struct {
		name       string
		a, b       vmath.Rotor
		tube, ring vmath.Rotor
		want       Sample
	}{
		{
			name: "initial view first sample",
			a:    vmath.Quarter(), b: vmath.Quarter(),
			tube: vmath.Identity(), ring: vmath.Identity(),
			want: Sample{X: 40, Y: 21, Depth: 0, Lum: -8, Offset: 1720},
		},
		{
			name: "identity view outer rim",
			a:    vmath.Identity(), b: vmath.Identity(),
			tube: vmath.Identity(), ring: vmath.Identity(),
			want: Sample{X: 58, Y: 12, Depth: 0, Lum: 0, Offset: 1018},
		},
		{
			name: "identity view near side",
			a:    vmath.Identity(), b: vmath.Identity(),
			tube: vmath.Rotor{X: 0, Y: -vmath.Scale}, ring: vmath.Identity(),
			want: Sample{X: 40, Y: 12, Depth: -96, Lum: 8, Offset: 1000},
		},
		{
			name: "identity view far side",
			a:    vmath.Identity(), b: vmath.Identity(),
			tube: vmath.Quarter(), ring: vmath.Identity(),
			want: Sample{X: 40, Y: 12, Depth: 96, Lum: -8, Offset: 1000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Project(tt.a, tt.b, tt.tube, tt.ring)
			if got != tt.want {
				t.Errorf("Project() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestShade(t *testing.T) {
	tests := []struct {
		lum  int
		want byte
	}{
		{-100, '.'},
		{-8, '.'},
		{0, '.'},
		{1, ','},
		{5, ';'},
		{8, '*'},
		{11, '@'},
		{12, '.'},
		{1 << 20, '.'},
	}
	for _, tt := range tests {
		if got := Shade(tt.lum); got != tt.want {
			t.Errorf("Shade(%d) = %q, want %q", tt.lum, got, tt.want)
		}
	}

	if len(Ramp) != 12 {
		t.Errorf("Ramp has %d glyphs, want 12", len(Ramp))
	}
}

func TestOffset(t *testing.T) {
	tests := []struct {
		x, y, want int
	}{
		{40, 21, 1720},
		{1, 1, 81},
		{79, 21, 1759},
		{5, 22, 5},   // row product wraps at Size
		{1, -1, 817}, // (2^64 - 80) mod 1760 = 816
		{3, 25, 243},
	}
	for _, tt := range tests {
		if got := Offset(tt.x, tt.y); got != tt.want {
			t.Errorf("Offset(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestSamples_GridSize(t *testing.T) {
	count := 0
	for range Samples(vmath.Quarter(), vmath.Quarter()) {
		count++
	}
	if count != TubeSteps*RingSteps {
		t.Errorf("Samples yielded %d, want %d", count, TubeSteps*RingSteps)
	}
}

func TestSamples_EarlyStop(t *testing.T) {
	count := 0
	for range Samples(vmath.Quarter(), vmath.Quarter()) {
		count++
		if count == 10 {
			break
		}
	}
	if count != 10 {
		t.Errorf("iteration continued after break: %d", count)
	}
}

func TestSamples_FirstMatchesProject(t *testing.T) {
	a, b := vmath.Quarter(), vmath.Quarter()
	for s := range Samples(a, b) {
		want := Project(a, b, vmath.Identity(), vmath.Identity())
		if s != want {
			t.Errorf("first sample %+v, want %+v", s, want)
		}
		break
	}
}

func TestSamples_BoundsAcrossViews(t *testing.T) {
	a, b := vmath.Quarter(), vmath.Quarter()
	for frame := 0; frame < 120; frame++ {
		for s := range Samples(a, b) {
			if !s.Visible() {
				continue
			}
			if s.Offset < 0 || s.Offset >= Size {
				t.Fatalf("frame %d: visible sample %+v has offset outside buffer", frame, s)
			}
			if s.Offset != s.Y*Width+s.X {
				t.Fatalf("frame %d: visible sample %+v offset != y*%d+x", frame, s, Width)
			}
		}
		a.Advance(vmath.ViewStepA)
		b.Advance(vmath.ViewStepB)
	}
}

func TestSample_Visible(t *testing.T) {
	tests := []struct {
		x, y int
		want bool
	}{
		{1, 1, true},
		{79, 21, true},
		{0, 5, false},
		{5, 0, false},
		{80, 5, false},
		{5, 22, false},
		{-3, -3, false},
	}
	for _, tt := range tests {
		s := Sample{X: tt.x, Y: tt.y}
		if got := s.Visible(); got != tt.want {
			t.Errorf("Sample{X:%d, Y:%d}.Visible() = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}
