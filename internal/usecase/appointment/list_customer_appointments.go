package appointment

import (
	"context"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	domain "github.com/BruksfildServices01/appointme-client/internal/domain/appointment"
	"github.com/BruksfildServices01/appointme-client/internal/dto"
	"github.com/BruksfildServices01/appointme-client/internal/models"
	"github.com/BruksfildServices01/appointme-client/internal/timezone"
)

const businessLookupConcurrency = 4

type ListCustomerAppointments struct {
	repoFor domain.RepositoryFor
	tz      string
	now     func() time.Time
}

func NewListCustomerAppointments(
	repoFor domain.RepositoryFor,
	tz string,
) *ListCustomerAppointments {
	return &ListCustomerAppointments{
		repoFor: repoFor,
		tz:      tz,
		now:     time.Now,
	}
}

// Execute returns open appointments that have not started yet as
// upcoming (soonest first) and everything else as past (latest first).
func (uc *ListCustomerAppointments) Execute(
	ctx context.Context,
	actor Actor,
) (*dto.CustomerAppointmentsDTO, error) {

	repo := uc.repoFor(actor.Token)

	appointments, err := repo.ListCustomerAppointments(ctx)
	if err != nil {
		return nil, err
	}

	names := businessNames(ctx, repo, appointments)

	loc := timezone.Location(uc.tz)
	now := uc.now().In(loc)

	out := &dto.CustomerAppointmentsDTO{
		Upcoming: []dto.AppointmentListDTO{},
		Past:     []dto.AppointmentListDTO{},
	}
	for _, ap := range appointments {
		item := toListDTO(ap, loc)
		item.BusinessName = names[ap.BusinessID]

		if domain.Status(ap.Status).IsOpen() && !item.StartsAt.Before(now) {
			out.Upcoming = append(out.Upcoming, item)
		} else {
			out.Past = append(out.Past, item)
		}
	}

	sort.SliceStable(out.Upcoming, func(i, j int) bool {
		return out.Upcoming[i].StartsAt.Before(out.Upcoming[j].StartsAt)
	})
	sort.SliceStable(out.Past, func(i, j int) bool {
		return out.Past[i].StartsAt.After(out.Past[j].StartsAt)
	})

	return out, nil
}

// businessNames looks up each distinct business once. Lookups that fail
// leave the name empty.
func businessNames(
	ctx context.Context,
	repo domain.Repository,
	appointments []models.Appointment,
) map[uint]string {

	ids := make(map[uint]struct{})
	for _, ap := range appointments {
		ids[ap.BusinessID] = struct{}{}
	}

	var (
		mu    sync.Mutex
		names = make(map[uint]string, len(ids))
	)

	var g errgroup.Group
	g.SetLimit(businessLookupConcurrency)
	for id := range ids {
		id := id
		g.Go(func() error {
			b, err := repo.GetBusiness(ctx, id)
			if err != nil || b == nil {
				return nil
			}
			mu.Lock()
			names[id] = b.BusinessName
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return names
}

func toListDTO(ap models.Appointment, loc *time.Location) dto.AppointmentListDTO {
	status := domain.Status(ap.Status)

	item := dto.AppointmentListDTO{
		ID:              ap.ID,
		Reference:       ap.AppointmentID,
		BusinessID:      ap.BusinessID,
		CustomerID:      ap.CustomerID,
		Date:            ap.AppointmentDate,
		DateLabel:       ap.AppointmentDate,
		Time:            ap.AppointmentTime,
		TimeLabel:       ap.AppointmentTime,
		DurationMinutes: ap.DurationMinutes,
		Status:          ap.Status,
		BusinessNote:    ap.BusinessNote,
		CanCancel:       domain.CanCancel(status) == nil,
		CanReschedule:   domain.CanReschedule(status) == nil,
	}

	for _, next := range domain.NextStatuses(status) {
		item.NextStatuses = append(item.NextStatuses, string(next))
	}

	day, err := time.ParseInLocation(timezone.DateLayout, ap.AppointmentDate, loc)
	if err != nil {
		return item
	}
	item.DateLabel = day.Format("Mon, Jan 2, 2006")
	item.StartsAt = day

	if at, err := domain.ParseClock(ap.AppointmentTime); err == nil {
		item.Time = at.String()
		item.TimeLabel = at.Label()
		item.StartsAt = day.Add(time.Duration(at) * time.Minute)
	}
	return item
}
