package scoreboard

import "testing"

func TestClaimAndIsReady(t *testing.T) {
	sb := New()

	if !sb.IsReady(5) {
		t.Fatal("fresh scoreboard register should be ready")
	}

	sb.Claim(5, 1)
	if sb.IsReady(5) {
		t.Fatal("claimed register should not be ready")
	}
	if sb.Holder(5) != 1 {
		t.Errorf("Holder(5) = %d, want 1", sb.Holder(5))
	}
}

func TestReleaseOnlyIfCurrentHolder(t *testing.T) {
	sb := New()

	sb.Claim(2, 1) // I1 dispatches, claims reg 2
	sb.Claim(2, 2) // I2 dispatches, overwrites: scoreboard[2] = 2 (WAW)

	// I1's State Update tries to release with its own tag (1); it is no
	// longer the holder, so the release must be a no-op.
	sb.Release(2, 1)
	if sb.IsReady(2) {
		t.Fatal("release from a stale tag must not clear a later claim")
	}
	if sb.Holder(2) != 2 {
		t.Errorf("Holder(2) = %d, want 2 (I2's tag)", sb.Holder(2))
	}

	// I2's State Update releases with the current tag; this must clear it.
	sb.Release(2, 2)
	if !sb.IsReady(2) {
		t.Fatal("release from the current holder must clear the register")
	}
}

func TestResetClearsAllRegisters(t *testing.T) {
	sb := New()
	sb.Claim(0, 5)
	sb.Claim(127, 9)

	sb.Reset()

	if !sb.IsReady(0) || !sb.IsReady(127) {
		t.Fatal("Reset() should clear every register to Ready")
	}
}
