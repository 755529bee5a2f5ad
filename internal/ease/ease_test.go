package ease

import "testing"

func TestEndpoints(t *testing.T) {
	curves := map[string]func(float64) float64{
		"InCubic":    InCubic,
		"OutCubic":   OutCubic,
		"InOutCubic": InOutCubic,
	}
	for name, f := range curves {
		if got := f(0); got != 0 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := f(1); got != 1 {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
	}
}

func TestMonotonic(t *testing.T) {
	curves := map[string]func(float64) float64{
		"InCubic":    InCubic,
		"OutCubic":   OutCubic,
		"InOutCubic": InOutCubic,
	}
	for name, f := range curves {
		prev := f(0)
		for i := 1; i <= 100; i++ {
			v := f(float64(i) / 100)
			if v < prev {
				t.Fatalf("%s not monotonic at t=%v", name, float64(i)/100)
			}
			prev = v
		}
	}
}

func TestInOutCubicMidpoint(t *testing.T) {
	if got := InOutCubic(0.5); got != 0.5 {
		t.Errorf("InOutCubic(0.5) = %v, want 0.5", got)
	}
}

func TestClamp01(t *testing.T) {
	if Clamp01(-2) != 0 || Clamp01(2) != 1 || Clamp01(0.3) != 0.3 {
		t.Error("Clamp01 out of contract")
	}
}
