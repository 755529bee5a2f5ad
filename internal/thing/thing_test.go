package thing

import (
	"testing"

	"github.com/darajkong/scale-comparison/internal/emath"
	"github.com/darajkong/scale-comparison/internal/units"
)

func TestHeightClamps(t *testing.T) {
	th := New("huge", units.New(emath.New(1, 400)))
	if got := th.Height(0, 1000); got != 1000 {
		t.Errorf("Height = %v, want clamp to 1000", got)
	}
	th = New("unit", units.New(emath.FromExp(3)))
	if got := th.Height(3, 1000); got != 1 {
		t.Errorf("Height at own scale = %v, want 1", got)
	}
}

func TestXPosition(t *testing.T) {
	if XPosition(0) != 0 {
		t.Errorf("XPosition(0) = %v, want 0", XPosition(0))
	}
	if got := XPosition(2); got != -2*BarOffset {
		t.Errorf("XPosition(2) = %v, want %v", got, -2*BarOffset)
	}
}

func TestAlpha(t *testing.T) {
	if got := Alpha(0, 0); got != 0 {
		t.Errorf("Alpha(0, 0) = %v, want 0", got)
	}
	if got := Alpha(0, 2); got != 1 {
		t.Errorf("Alpha(0, 2) = %v, want 1", got)
	}
	if got := Alpha(3, 2); got != 0 {
		t.Errorf("Alpha(3, 2) = %v, want 0", got)
	}
	mid := Alpha(0, 0.5)
	if mid != 0.125 {
		t.Errorf("Alpha(0, 0.5) = %v, want 0.125", mid)
	}
}

func TestDefaultsAscending(t *testing.T) {
	things := Defaults()
	if len(things) != 4 {
		t.Fatalf("got %d defaults, want 4", len(things))
	}
	for i := 1; i < len(things); i++ {
		if things[i].LogScale() <= things[i-1].LogScale() {
			t.Errorf("defaults not ascending at %d: %v then %v",
				i, things[i-1].LogScale(), things[i].LogScale())
		}
	}
}
