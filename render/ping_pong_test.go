package render

import "testing"

func TestPingPongParityAfterNPasses(t *testing.T) {
	var chain pingPong

	// After N passes the final composite is read from side N%2. N=0 is the
	// passthrough case: nothing swapped, the seeded scene is still on side 0.
	for n := 0; n <= 5; n++ {
		chain.Reset()
		for pass := 0; pass < n; pass++ {
			src, dst := chain.Source(), chain.Dest()
			if src == dst {
				t.Fatalf("pass %d of %d: source and destination are both side %d", pass, n, src)
			}
			chain.Swap()
		}
		if got := chain.Source(); got != n%2 {
			t.Errorf("after %d passes final source = %d, want %d", n, got, n%2)
		}
	}
}

func TestPingPongResetReturnsToSeededSide(t *testing.T) {
	var chain pingPong
	chain.Swap()
	if chain.Source() != 1 {
		t.Fatalf("Source() after Swap = %d, want 1", chain.Source())
	}
	chain.Reset()
	if chain.Source() != 0 {
		t.Errorf("Source() after Reset = %d, want 0", chain.Source())
	}
	if chain.Dest() != 1 {
		t.Errorf("Dest() after Reset = %d, want 1", chain.Dest())
	}
}
