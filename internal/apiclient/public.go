package apiclient

import (
	"context"
	"net/url"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/BruksfildServices01/appointme-client/internal/models"
)

type SearchFilter struct {
	Specialty string
	Location  string
}

func (c *Client) SearchBusinesses(ctx context.Context, f SearchFilter) ([]models.Business, error) {
	q := url.Values{}
	if s := strings.TrimSpace(f.Specialty); s != "" {
		q.Set("specialty", s)
	}
	if l := strings.TrimSpace(f.Location); l != "" {
		q.Set("location", l)
	}

	var out []models.Business
	if err := c.get(ctx, "/public/businesses", "/public/businesses", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Business(ctx context.Context, id uint) (*models.Business, error) {
	var out models.Business
	if err := c.get(ctx, "/public/businesses/{id}", idPath("/public/businesses/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) BusinessServices(ctx context.Context, id uint) ([]models.Service, error) {
	var out []models.Service
	if err := c.get(ctx, "/public/businesses/{id}/services", idPath("/public/businesses/%d/services", id), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AvailabilityWindows returns every active window of the business; the
// backend does not narrow them to date.
func (c *Client) AvailabilityWindows(ctx context.Context, id uint, date string) ([]models.TimeSlot, error) {
	var out []models.TimeSlot
	q := url.Values{"date": {date}}
	if err := c.get(ctx, "/public/businesses/{id}/slots", idPath("/public/businesses/%d/slots", id), q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) BookedSlots(ctx context.Context, id uint, date string) ([]string, error) {
	var out models.BookedSlots
	q := url.Values{"date": {date}}
	if err := c.get(ctx, "/public/businesses/{id}/booked-slots", idPath("/public/businesses/%d/booked-slots", id), q, &out); err != nil {
		return nil, err
	}
	return out.BookedSlots, nil
}

type Availability struct {
	Windows []models.TimeSlot
	Booked  []string
}

// DayAvailability fetches windows and booked times together.
func (c *Client) DayAvailability(ctx context.Context, id uint, date string) (*Availability, error) {
	var av Availability

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		windows, err := c.AvailabilityWindows(gctx, id, date)
		av.Windows = windows
		return err
	})
	g.Go(func() error {
		booked, err := c.BookedSlots(gctx, id, date)
		av.Booked = booked
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &av, nil
}
