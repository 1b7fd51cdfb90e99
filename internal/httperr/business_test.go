package httperr

import (
	"fmt"
	"testing"
)

func TestIsBusiness(t *testing.T) {
	err := fmt.Errorf("booking: %w", ErrBusiness("slot_unavailable"))

	if !IsBusiness(err, "slot_unavailable") {
		t.Fatalf("expected wrapped business error to match")
	}
	if IsBusiness(err, "invalid_state") {
		t.Fatalf("different code must not match")
	}
	if IsBusiness(fmt.Errorf("plain"), "slot_unavailable") {
		t.Fatalf("plain error is not a business error")
	}
}
