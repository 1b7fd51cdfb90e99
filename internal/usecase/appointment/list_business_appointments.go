package appointment

import (
	"context"
	"sort"

	domain "github.com/BruksfildServices01/appointme-client/internal/domain/appointment"
	"github.com/BruksfildServices01/appointme-client/internal/dto"
	"github.com/BruksfildServices01/appointme-client/internal/httperr"
	"github.com/BruksfildServices01/appointme-client/internal/timezone"
)

type ListBusinessAppointments struct {
	repoFor domain.RepositoryFor
	tz      string
}

func NewListBusinessAppointments(
	repoFor domain.RepositoryFor,
	tz string,
) *ListBusinessAppointments {
	return &ListBusinessAppointments{
		repoFor: repoFor,
		tz:      tz,
	}
}

// Execute lists the business appointments, optionally narrowed to one
// status, in chronological order.
func (uc *ListBusinessAppointments) Execute(
	ctx context.Context,
	actor Actor,
	status string,
) ([]dto.AppointmentListDTO, error) {

	if status != "" {
		if _, ok := domain.ParseStatus(status); !ok {
			return nil, httperr.ErrBusiness("invalid_status")
		}
	}

	appointments, err := uc.repoFor(actor.Token).ListBusinessAppointments(ctx, status)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(uc.tz)

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, toListDTO(ap, loc))
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].StartsAt.Equal(out[j].StartsAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].StartsAt.Before(out[j].StartsAt)
	})

	return out, nil
}

// CountByStatus tallies appointments per status for the dashboard cards.
func CountByStatus(items []dto.AppointmentListDTO) map[string]int {
	counts := make(map[string]int, len(domain.AllStatuses))
	for _, st := range domain.AllStatuses {
		counts[string(st)] = 0
	}
	for _, it := range items {
		counts[it.Status]++
	}
	return counts
}

