package appointment

import (
	"testing"

	"github.com/BruksfildServices01/appointme-client/internal/httperr"
)

func TestCanCancel(t *testing.T) {
	for _, st := range []Status{StatusPending, StatusConfirmed} {
		if err := CanCancel(st); err != nil {
			t.Fatalf("%s should be cancellable: %v", st, err)
		}
	}
	for _, st := range []Status{StatusCompleted, StatusCancelled, StatusRejected, StatusNoShow} {
		if err := CanCancel(st); !httperr.IsBusiness(err, "invalid_state") {
			t.Fatalf("%s should not be cancellable", st)
		}
	}
}

func TestCanTransition(t *testing.T) {
	if err := CanTransition(StatusPending, StatusConfirmed); err != nil {
		t.Fatalf("pending -> confirmed: %v", err)
	}
	if err := CanTransition(StatusConfirmed, StatusCompleted); err != nil {
		t.Fatalf("confirmed -> completed: %v", err)
	}
	if err := CanTransition(StatusConfirmed, StatusPending); err == nil {
		t.Fatalf("confirmed -> pending should fail")
	}
	if err := CanTransition(StatusCompleted, StatusCancelled); err == nil {
		t.Fatalf("completed is terminal")
	}
}

func TestNextStatuses(t *testing.T) {
	next := NextStatuses(StatusConfirmed)
	want := []Status{StatusCompleted, StatusCancelled, StatusRejected, StatusNoShow}
	if len(next) != len(want) {
		t.Fatalf("expected %v, got %v", want, next)
	}
	for i := range want {
		if next[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, next)
		}
	}
	if len(NextStatuses(StatusCancelled)) != 0 {
		t.Fatalf("cancelled has no transitions")
	}
}

func TestParseStatus(t *testing.T) {
	if st, ok := ParseStatus("no_show"); !ok || st != StatusNoShow {
		t.Fatalf("expected no_show")
	}
	if _, ok := ParseStatus("scheduled"); ok {
		t.Fatalf("scheduled is not a valid status")
	}
}
