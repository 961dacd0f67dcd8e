package service

import (
	"context"
	"fmt"

	"github.com/stpnv0/TennisHub/internal/domain"
	"github.com/stpnv0/TennisHub/internal/service/ports"
)

// ClubService exposes the club service through this API.
type ClubService struct {
	clubs ports.ClubGateway
}

func NewClubService(clubs ports.ClubGateway) *ClubService {
	return &ClubService{clubs: clubs}
}

func (s *ClubService) Get(ctx context.Context, id int64) (*domain.Club, error) {
	club, err := s.clubs.GetClub(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get club: %w", err)
	}
	if club == nil {
		return nil, domain.NewClubNotFound(id)
	}
	return club, nil
}

func (s *ClubService) List(ctx context.Context) ([]domain.Club, error) {
	clubs, err := s.clubs.ListClubs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clubs: %w", err)
	}
	if clubs == nil {
		clubs = []domain.Club{}
	}
	return clubs, nil
}
