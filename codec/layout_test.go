package codec

import "testing"

// TestLayoutConstants asserts EventBaseSize and SpikeBaseSize against
// an independently summed field-width table, so the named constants
// cannot drift silently from the layout they claim to describe.
func TestLayoutConstants(t *testing.T) {
	const (
		wantEventBaseSize = 1 /*base tag*/ + 1 /*event type*/ + 2 /*source id*/ + 2 /*sub-processor*/ +
			2 /*source index*/ + 8 /*timestamp*/ + 2 /*virtual channel*/ + 6 /*padding*/
		wantSpikeBaseSize = 1 + 1 + 2 + 2 + 2 + 8 + 8 /*padding*/
	)
	if EventBaseSize != wantEventBaseSize {
		t.Fatalf("EventBaseSize = %d, want %d", EventBaseSize, wantEventBaseSize)
	}
	if SpikeBaseSize != wantSpikeBaseSize {
		t.Fatalf("SpikeBaseSize = %d, want %d", SpikeBaseSize, wantSpikeBaseSize)
	}
}
