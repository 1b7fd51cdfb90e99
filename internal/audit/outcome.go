package audit

import (
	"errors"

	"github.com/BruksfildServices01/appointme-client/internal/apiclient"
	"github.com/BruksfildServices01/appointme-client/internal/httperr"
)

// Outcome is "ok", the business error code, or the backend outcome.
func Outcome(err error) string {
	if err == nil {
		return "ok"
	}
	var be httperr.BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return string(apiclient.Classify(err))
}
