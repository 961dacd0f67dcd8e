package clubclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stpnv0/TennisHub/internal/domain"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

// ErrUnreachable means no HTTP response was received after all attempts.
var ErrUnreachable = errors.New("club service unreachable")

const (
	outcomeOK          = "ok"
	outcomeEmpty       = "empty"
	outcomeNotFound    = "not_found"
	outcomeRemoteError = "remote_error"
	outcomeUnreachable = "unreachable"
	outcomeCanceled    = "canceled"
)

const maxBodySize = 1 << 20

type Options struct {
	BaseURL        string
	ConnectTimeout time.Duration
	RequestTimeout time.Duration
	RetryAttempts  int
	RetryDelay     time.Duration
}

// HTTPGateway talks to the club service over HTTP. Only transport failures
// are retried; any HTTP status is final.
type HTTPGateway struct {
	baseURL  string
	client   *http.Client
	strategy retry.Strategy
	logger   logger.Logger
	outcomes *prometheus.CounterVec
}

func NewHTTPGateway(opts Options, log logger.Logger, reg prometheus.Registerer) (*HTTPGateway, error) {
	outcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tennishub",
		Subsystem: "club_client",
		Name:      "requests_total",
		Help:      "Club service calls by operation and outcome.",
	}, []string{"op", "outcome"})
	if err := reg.Register(outcomes); err != nil {
		return nil, fmt.Errorf("register club client metrics: %w", err)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = (&net.Dialer{
		Timeout:   opts.ConnectTimeout,
		KeepAlive: 30 * time.Second,
	}).DialContext

	return &HTTPGateway{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		client: &http.Client{
			Transport: transport,
			Timeout:   opts.RequestTimeout,
		},
		strategy: retry.Strategy{
			Attempts: opts.RetryAttempts,
			Delay:    opts.RetryDelay,
			Backoff:  1,
		},
		logger:   log,
		outcomes: outcomes,
	}, nil
}

func (g *HTTPGateway) GetClub(ctx context.Context, id int64) (*domain.Club, error) {
	status, body, err := g.get(ctx, fmt.Sprintf("/api/clubs/%d", id))
	if err != nil {
		g.observe("get_club", failureOutcome(err))
		return nil, err
	}

	switch {
	case status == http.StatusNotFound:
		g.observe("get_club", outcomeNotFound)
		return nil, domain.NewClubNotFound(id)
	case status >= http.StatusBadRequest:
		g.observe("get_club", outcomeRemoteError)
		return nil, domain.NewClubUnavailable(id, status)
	}

	if isEmpty(body) {
		g.observe("get_club", outcomeEmpty)
		return nil, nil
	}

	var club domain.Club
	if err = json.Unmarshal(body, &club); err != nil {
		g.observe("get_club", outcomeRemoteError)
		return nil, &domain.RemoteError{
			StatusCode: http.StatusBadGateway,
			ClubID:     id,
			Err:        fmt.Errorf("%w: decode club: %v", domain.ErrClubServiceUnavailable, err),
		}
	}

	g.observe("get_club", outcomeOK)
	return &club, nil
}

func (g *HTTPGateway) ListClubs(ctx context.Context) ([]domain.Club, error) {
	status, body, err := g.get(ctx, "/api/clubs")
	if err != nil {
		g.observe("list_clubs", failureOutcome(err))
		return nil, err
	}

	if status >= http.StatusBadRequest {
		g.observe("list_clubs", outcomeRemoteError)
		return nil, domain.NewClubUnavailable(0, status)
	}

	if isEmpty(body) {
		g.observe("list_clubs", outcomeEmpty)
		return []domain.Club{}, nil
	}

	var clubs []domain.Club
	if err = json.Unmarshal(body, &clubs); err != nil {
		g.observe("list_clubs", outcomeRemoteError)
		return nil, &domain.RemoteError{
			StatusCode: http.StatusBadGateway,
			Err:        fmt.Errorf("%w: decode clubs: %v", domain.ErrClubServiceUnavailable, err),
		}
	}

	g.observe("list_clubs", outcomeOK)
	return clubs, nil
}

// Ping makes a single HEAD request without retries. Any response below 500
// counts as reachable.
func (g *HTTPGateway) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, g.baseURL+"/api/clubs", nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("ping aborted: %w", ctxErr)
		}
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	_ = resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return domain.NewClubUnavailable(0, resp.StatusCode)
	}
	return nil
}

func (g *HTTPGateway) get(ctx context.Context, path string) (int, []byte, error) {
	var (
		status  int
		body    []byte
		attempt int
	)

	err := retry.DoContext(ctx, g.strategy, func() error {
		attempt++
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path, nil)
		if err != nil {
			return err
		}
		req.Header.Set("Accept", "application/json")

		resp, err := g.client.Do(req)
		if err != nil {
			g.logger.Debug("club service request failed",
				logger.String("path", path),
				logger.Int("attempt", attempt),
				logger.String("error", err.Error()),
			)
			return err
		}
		defer resp.Body.Close()

		b, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
		if err != nil {
			return err
		}
		status, body = resp.StatusCode, b
		return nil
	})
	if err != nil {
		// отмена или дедлайн вызывающего не говорят о состоянии сервиса клубов
		if ctxErr := ctx.Err(); ctxErr != nil {
			return 0, nil, fmt.Errorf("club service request aborted: %w", ctxErr)
		}
		g.logger.Warn("club service unreachable",
			logger.String("path", path),
			logger.Int("attempts", attempt),
			logger.String("error", err.Error()),
		)
		return 0, nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	if len(body) > maxBodySize {
		return 0, nil, &domain.RemoteError{
			StatusCode: http.StatusBadGateway,
			Err:        fmt.Errorf("%w: response exceeds %d bytes", domain.ErrClubServiceUnavailable, maxBodySize),
		}
	}

	return status, body, nil
}

func failureOutcome(err error) string {
	switch {
	case errors.Is(err, ErrUnreachable):
		return outcomeUnreachable
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return outcomeCanceled
	default:
		return outcomeRemoteError
	}
}

func (g *HTTPGateway) observe(op, outcome string) {
	g.outcomes.WithLabelValues(op, outcome).Inc()
}

func isEmpty(body []byte) bool {
	trimmed := bytes.TrimSpace(body)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
