package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/stpnv0/TennisHub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
)

// Runs against a real database only when TENNISHUB_TEST_POSTGRES_DSN is set,
// e.g. "host=localhost port=5432 user=postgres password=postgres dbname=tennishub_test sslmode=disable".
const postgresDSNEnv = "TENNISHUB_TEST_POSTGRES_DSN"

func intPtr(v int) *int { return &v }

func openPostgres(t *testing.T) *dbpg.DB {
	t.Helper()
	dsn := os.Getenv(postgresDSNEnv)
	if dsn == "" {
		t.Skipf("%s not set", postgresDSNEnv)
	}

	migrations, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	defer migrations.Close()
	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.Up(migrations, "../../migrations"))

	db, err := dbpg.New(dsn, nil, &dbpg.Options{MaxOpenConns: 20, MaxIdleConns: 5})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Master.Close() })
	return db
}

// seedPostgres creates one event with the given capacity and n users, and
// removes them when the test ends.
func seedPostgres(t *testing.T, db *dbpg.DB, capacity *int, n int) (string, []string) {
	t.Helper()
	ctx := context.Background()
	events, users := NewEventRepo(db), NewUserRepo(db)

	start := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	event := &domain.Event{
		ID: uuid.NewString(), Kind: domain.EventKindTournament, Name: "Open", ClubID: 5,
		StartTime: start, EndTime: start.Add(2 * time.Hour), Capacity: capacity,
		CreatedAt: start, UpdatedAt: start,
	}
	require.NoError(t, events.Create(ctx, event))

	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		id := uuid.NewString()
		require.NoError(t, users.Create(ctx, &domain.User{
			ID:        id,
			Username:  fmt.Sprintf("player-%s", id[:8]),
			Email:     id + "@example.com",
			CreatedAt: start,
			UpdatedAt: start,
		}))
		ids = append(ids, id)
	}

	t.Cleanup(func() {
		_, _ = db.Master.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, event.ID)
		for _, id := range ids {
			_, _ = db.Master.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
		}
	})
	return event.ID, ids
}

func TestEventRepository_MutateMembers_ConcurrentAdmitNoOvershoot(t *testing.T) {
	db := openPostgres(t)
	const capacity = 3
	eventID, users := seedPostgres(t, db, intPtr(capacity), 12)
	repo := NewEventRepo(db)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		admitted int
		full     int
	)
	for _, id := range users {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, err := repo.MutateMembers(context.Background(), eventID, func(e *domain.Event) error {
				return e.Admit(id)
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				admitted++
			case errors.Is(err, domain.ErrCapacityExceeded):
				full++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(id)
	}
	wg.Wait()

	assert.Equal(t, capacity, admitted)
	assert.Equal(t, len(users)-capacity, full)

	event, err := repo.GetByID(context.Background(), eventID)
	require.NoError(t, err)
	assert.Len(t, event.MemberIDs, capacity)
}

func TestEventRepository_MutateMembers_WithdrawAndReadmit(t *testing.T) {
	db := openPostgres(t)
	eventID, users := seedPostgres(t, db, intPtr(1), 2)
	repo := NewEventRepo(db)
	ctx := context.Background()
	admit := func(id string) error {
		_, err := repo.MutateMembers(ctx, eventID, func(e *domain.Event) error { return e.Admit(id) })
		return err
	}

	require.NoError(t, admit(users[0]))
	assert.ErrorIs(t, admit(users[0]), domain.ErrAlreadyMember)
	assert.ErrorIs(t, admit(users[1]), domain.ErrCapacityExceeded)

	event, err := repo.MutateMembers(ctx, eventID, func(e *domain.Event) error { return e.Withdraw(users[0]) })
	require.NoError(t, err)
	assert.Empty(t, event.MemberIDs)

	require.NoError(t, admit(users[1]))
	stored, err := repo.GetByID(ctx, eventID)
	require.NoError(t, err)
	assert.Equal(t, []string{users[1]}, stored.MemberIDs)
}

func TestEventRepository_MutateMembers_ConstraintErrors(t *testing.T) {
	db := openPostgres(t)
	eventID, users := seedPostgres(t, db, nil, 1)
	repo := NewEventRepo(db)
	ctx := context.Background()

	_, err := repo.MutateMembers(ctx, eventID, func(e *domain.Event) error {
		e.MemberIDs = append(e.MemberIDs, uuid.NewString())
		return nil
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = repo.MutateMembers(ctx, eventID, func(e *domain.Event) error {
		e.MemberIDs = append(e.MemberIDs, users[0], users[0])
		return nil
	})
	assert.ErrorIs(t, err, domain.ErrAlreadyMember)

	stored, err := repo.GetByID(ctx, eventID)
	require.NoError(t, err)
	assert.Empty(t, stored.MemberIDs)

	_, err = repo.MutateMembers(ctx, uuid.NewString(), func(*domain.Event) error { return nil })
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}
