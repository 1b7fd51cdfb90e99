package appointment

import (
	"context"

	"golang.org/x/sync/errgroup"

	domain "github.com/BruksfildServices01/appointme-client/internal/domain/appointment"
	"github.com/BruksfildServices01/appointme-client/internal/models"
)

type BusinessDetails struct {
	Business *models.Business
	// Services holds only the active services.
	Services []models.Service
}

type LoadBusiness struct {
	repoFor domain.RepositoryFor
}

func NewLoadBusiness(repoFor domain.RepositoryFor) *LoadBusiness {
	return &LoadBusiness{repoFor: repoFor}
}

// Execute fetches the business and its services together; either failure
// fails the whole load.
func (uc *LoadBusiness) Execute(
	ctx context.Context,
	actor Actor,
	businessID uint,
) (*BusinessDetails, error) {

	repo := uc.repoFor(actor.Token)

	var (
		business *models.Business
		services []models.Service
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		b, err := repo.GetBusiness(gctx, businessID)
		business = b
		return err
	})
	g.Go(func() error {
		s, err := repo.ListServices(gctx, businessID)
		services = s
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &BusinessDetails{
		Business: business,
		Services: activeServices(services),
	}, nil
}

func activeServices(in []models.Service) []models.Service {
	out := make([]models.Service, 0, len(in))
	for _, s := range in {
		if s.IsActive {
			out = append(out, s)
		}
	}
	return out
}
