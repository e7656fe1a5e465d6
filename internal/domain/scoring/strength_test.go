package scoring

import "testing"

func TestToStrengthMeter_FloorOnZeroMax(t *testing.T) {
	if got := ToStrengthMeter(0, 0, Defaults().StrengthMeterThresholds); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
}

func TestToStrengthMeter_CeilingAtMax(t *testing.T) {
	for _, score := range []float64{0.5, 1, 9, 12, 1000} {
		if got := ToStrengthMeter(score, score, Defaults().StrengthMeterThresholds); got != 5 {
			t.Fatalf("score %v: expected 5, got %d", score, got)
		}
	}
}

func TestToStrengthMeter_Tiers(t *testing.T) {
	th := Defaults().StrengthMeterThresholds
	cases := []struct {
		score float64
		want  int
	}{
		{80, 5},
		{79.9, 4},
		{60, 4},
		{59.9, 3},
		{40, 3},
		{39.9, 2},
		{20, 2},
		{19.9, 1},
		{0, 1},
	}
	for _, c := range cases {
		if got := ToStrengthMeter(c.score, 100, th); got != c.want {
			t.Fatalf("score %v/100: expected %d, got %d", c.score, c.want, got)
		}
	}
}

func TestToStrengthMeter_Monotonic(t *testing.T) {
	th := Defaults().StrengthMeterThresholds
	prev := 0
	for score := 0.0; score <= 100; score += 0.5 {
		got := ToStrengthMeter(score, 100, th)
		if got < prev {
			t.Fatalf("meter decreased at score %v: %d -> %d", score, prev, got)
		}
		prev = got
	}
}

// The meter is relative to the batch maximum, not an absolute scale: the same
// raw score rates differently against a different peer set.
func TestToStrengthMeter_BatchRelative(t *testing.T) {
	th := Defaults().StrengthMeterThresholds
	if got := ToStrengthMeter(10, 10, th); got != 5 {
		t.Fatalf("expected 5 when best in batch, got %d", got)
	}
	if got := ToStrengthMeter(10, 100, th); got != 1 {
		t.Fatalf("expected 1 against a far stronger batch, got %d", got)
	}
}
