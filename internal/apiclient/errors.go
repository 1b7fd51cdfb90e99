package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrAuthExpired is returned when the backend rejects the bearer token.
var ErrAuthExpired = errors.New("apiclient: authentication expired")

// NetworkError wraps transport failures and timeouts.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("apiclient: %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ServerError is any non-2xx answer other than an expired session.
type ServerError struct {
	Op     string
	Status int
	Detail string
}

func (e *ServerError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("apiclient: %s: %d %s", e.Op, e.Status, e.Detail)
	}
	return fmt.Sprintf("apiclient: %s: %d", e.Op, e.Status)
}

type Outcome string

const (
	OutcomeOK          Outcome = "ok"
	OutcomeAuthExpired Outcome = "auth_expired"
	OutcomeNetwork     Outcome = "network"
	OutcomeServer      Outcome = "server"
)

// Classify maps an error returned by Client to its Outcome.
func Classify(err error) Outcome {
	if err == nil {
		return OutcomeOK
	}
	if errors.Is(err, ErrAuthExpired) {
		return OutcomeAuthExpired
	}
	var ne *NetworkError
	if errors.As(err, &ne) {
		return OutcomeNetwork
	}
	return OutcomeServer
}

// Detail returns the backend message carried by err, or fallback.
func Detail(err error, fallback string) string {
	var se *ServerError
	if errors.As(err, &se) && se.Detail != "" {
		return se.Detail
	}
	return fallback
}

func IsStatus(err error, status int) bool {
	var se *ServerError
	return errors.As(err, &se) && se.Status == status
}

func IsNotFound(err error) bool {
	return IsStatus(err, http.StatusNotFound)
}

func IsConflict(err error) bool {
	return IsStatus(err, http.StatusConflict)
}

// parseDetail reads {"detail": "..."} or the validation form
// {"detail": [{"msg": "..."}]}.
func parseDetail(body []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(payload.Detail, &s); err == nil {
		return s
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(payload.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if it.Msg != "" {
				msgs = append(msgs, it.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}

	return ""
}
