package ports

import (
	"context"

	"github.com/stpnv0/TennisHub/internal/domain"
)

// ClubGateway reads clubs from the club service. GetClub returns
// *domain.RemoteError for remote failures and (nil, nil) when the remote
// answered without a body.
type ClubGateway interface {
	GetClub(ctx context.Context, id int64) (*domain.Club, error)
	ListClubs(ctx context.Context) ([]domain.Club, error)
}
