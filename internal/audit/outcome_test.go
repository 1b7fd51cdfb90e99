package audit

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/BruksfildServices01/appointme-client/internal/apiclient"
	"github.com/BruksfildServices01/appointme-client/internal/httperr"
)

func TestOutcome(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, "ok"},
		{httperr.ErrBusiness("slot_unavailable"), "slot_unavailable"},
		{fmt.Errorf("cancel: %w", apiclient.ErrAuthExpired), "auth_expired"},
		{&apiclient.NetworkError{Op: "create"}, "network"},
		{&apiclient.ServerError{Op: "create", Status: http.StatusBadRequest}, "server"},
	}
	for _, tc := range cases {
		if got := Outcome(tc.err); got != tc.want {
			t.Fatalf("Outcome(%v) = %s, want %s", tc.err, got, tc.want)
		}
	}
}
