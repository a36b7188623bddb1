package rules

import "testing"

func TestApplyConwayRules(t *testing.T) {
	for n := uint8(0); n <= 8; n++ {
		wantAlive := n == 2 || n == 3
		if got := ApplyConwayRules(n, true); got != wantAlive {
			t.Errorf("live cell with %d neighbours: got %v, want %v", n, got, wantAlive)
		}

		wantBorn := n == 3
		if got := ApplyConwayRules(n, false); got != wantBorn {
			t.Errorf("dead cell with %d neighbours: got %v, want %v", n, got, wantBorn)
		}
	}
}
