package clubclient

import (
	"context"
	"net/http"

	"github.com/stpnv0/TennisHub/internal/domain"
)

// DegradedGateway answers in place of an unreachable club service.
type DegradedGateway struct{}

func (DegradedGateway) GetClub(_ context.Context, id int64) (*domain.Club, error) {
	return nil, domain.NewClubUnavailable(id, http.StatusServiceUnavailable)
}

func (DegradedGateway) ListClubs(context.Context) ([]domain.Club, error) {
	return []domain.Club{}, nil
}
