package clubclient

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/stpnv0/TennisHub/internal/domain"
	"github.com/stpnv0/TennisHub/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type remoteGateway interface {
	ports.ClubGateway
	Ping(ctx context.Context) error
}

// FailoverGateway routes calls to the remote gateway while it is healthy and
// to the fallback otherwise. A transport failure marks it unhealthy; only
// Probe marks it healthy again. A cancelled caller context changes nothing.
type FailoverGateway struct {
	remote   remoteGateway
	fallback ports.ClubGateway
	healthy  atomic.Bool
	logger   logger.Logger
}

func NewFailoverGateway(remote remoteGateway, fallback ports.ClubGateway, log logger.Logger) *FailoverGateway {
	f := &FailoverGateway{
		remote:   remote,
		fallback: fallback,
		logger:   log,
	}
	f.healthy.Store(true)
	return f
}

func (f *FailoverGateway) Healthy() bool {
	return f.healthy.Load()
}

func (f *FailoverGateway) GetClub(ctx context.Context, id int64) (*domain.Club, error) {
	if f.healthy.Load() {
		club, err := f.remote.GetClub(ctx, id)
		if !errors.Is(err, ErrUnreachable) {
			return club, err
		}
		f.markDown(err)
	}
	return f.fallback.GetClub(ctx, id)
}

func (f *FailoverGateway) ListClubs(ctx context.Context) ([]domain.Club, error) {
	if f.healthy.Load() {
		clubs, err := f.remote.ListClubs(ctx)
		if !errors.Is(err, ErrUnreachable) {
			return clubs, err
		}
		f.markDown(err)
	}
	return f.fallback.ListClubs(ctx)
}

// Probe pings the remote and stores the result as the current health.
func (f *FailoverGateway) Probe(ctx context.Context) (bool, error) {
	err := f.remote.Ping(ctx)
	if ctx.Err() != nil {
		return f.healthy.Load(), err
	}
	healthy := err == nil
	if was := f.healthy.Swap(healthy); was != healthy && healthy {
		f.logger.Info("club service is back, leaving degraded mode")
	}
	return healthy, err
}

func (f *FailoverGateway) markDown(err error) {
	if f.healthy.CompareAndSwap(true, false) {
		f.logger.Warn("club service unreachable, switching to degraded mode",
			logger.String("error", err.Error()),
		)
	}
}
