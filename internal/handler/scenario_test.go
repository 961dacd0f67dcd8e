package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stpnv0/TennisHub/internal/clubclient"
	"github.com/stpnv0/TennisHub/internal/domain"
	"github.com/stpnv0/TennisHub/internal/handler/dto"
	"github.com/stpnv0/TennisHub/internal/repository"
	"github.com/stpnv0/TennisHub/internal/router"
	"github.com/stpnv0/TennisHub/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

type discardNotifier struct{}

func (discardNotifier) NotifyAdmitted(context.Context, *domain.User, *domain.Event)  {}
func (discardNotifier) NotifyWithdrawn(context.Context, *domain.User, *domain.Event) {}

// clubServer knows exactly one club, id 5.
func clubServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/clubs/5":
			_, _ = w.Write([]byte(`{"id":5,"name":"Center Court","address":"Main st. 1","courtIds":[1,2,3]}`))
		case "/api/clubs":
			_, _ = w.Write([]byte(`[{"id":5,"name":"Center Court"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func setupStack(t *testing.T, clubURL string) http.Handler {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)

	remote, err := clubclient.NewHTTPGateway(clubclient.Options{
		BaseURL:        clubURL,
		ConnectTimeout: time.Second,
		RequestTimeout: 2 * time.Second,
		RetryAttempts:  2,
		RetryDelay:     time.Millisecond,
	}, log, prometheus.NewRegistry())
	require.NoError(t, err)
	clubs := clubclient.NewFailoverGateway(remote, clubclient.DegradedGateway{}, log)

	store := repository.NewMemoryStore()
	h := NewHandler(
		service.NewEventService(store.Events(), clubs, log),
		service.NewRegistry(store.Events(), store.Users(), discardNotifier{}, log),
		service.NewUserService(store.Users(), store.Events()),
		service.NewClubService(clubs),
	)
	return router.InitRouter("test", h, nil, nil)
}

func createUser(t *testing.T, r http.Handler, username string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/users", dto.UserRequest{
		Username: username,
		Email:    username + "@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.ID
}

func createEvent(t *testing.T, r http.Handler, capacity int) string {
	t.Helper()
	body := eventBody()
	body["capacity"] = capacity
	w := doJSON(t, r, http.MethodPost, "/api/clubs/5/tournaments", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.ID
}

func TestScenario_UnknownClubIs404(t *testing.T) {
	r := setupStack(t, clubServer(t).URL)

	w := doJSON(t, r, http.MethodPost, "/api/clubs/999/events", eventBody())

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, dto.LabelNotFound, resp.Error)
	assert.Contains(t, resp.Message, "999")

	list := doJSON(t, r, http.MethodGet, "/api/events", nil)
	assert.JSONEq(t, `[]`, list.Body.String())
}

func TestScenario_InvalidRangeNeverPersists(t *testing.T) {
	r := setupStack(t, clubServer(t).URL)

	body := eventBody()
	body["end"] = body["start"]
	w := doJSON(t, r, http.MethodPost, "/api/clubs/5/events", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	list := doJSON(t, r, http.MethodGet, "/api/events", nil)
	assert.JSONEq(t, `[]`, list.Body.String())
}

func TestScenario_ReadSurvivesUnreachableClubService(t *testing.T) {
	srv := clubServer(t)
	r := setupStack(t, srv.URL)

	eventID := createEvent(t, r, 4)

	w := doJSON(t, r, http.MethodGet, "/api/events/"+eventID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var before dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &before))
	require.NotNil(t, before.ClubName)
	assert.Equal(t, "Center Court", *before.ClubName)

	srv.Close()

	w = doJSON(t, r, http.MethodGet, "/api/events/"+eventID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var after dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &after))
	assert.Nil(t, after.ClubName)
	assert.Equal(t, eventID, after.ID)

	clubs := doJSON(t, r, http.MethodGet, "/api/clubs", nil)
	assert.Equal(t, http.StatusOK, clubs.Code)
	assert.JSONEq(t, `[]`, clubs.Body.String())

	create := doJSON(t, r, http.MethodPost, "/api/clubs/5/events", eventBody())
	assert.Equal(t, http.StatusServiceUnavailable, create.Code)
	assert.Equal(t, dto.LabelRemoteUnavailable, decodeError(t, create).Error)
}

func TestScenario_LastSeatGoesToExactlyOne(t *testing.T) {
	r := setupStack(t, clubServer(t).URL)

	eventID := createEvent(t, r, 1)
	alice := createUser(t, r, "alice")
	bob := createUser(t, r, "bob")

	users := []string{alice, bob}
	reqs := make([]*http.Request, len(users))
	for i, userID := range users {
		reqs[i] = httptest.NewRequest(http.MethodPost, "/api/events/"+eventID+"/register/"+userID, nil)
	}

	var wg sync.WaitGroup
	codes := make([]int, len(reqs))
	for i, req := range reqs {
		wg.Add(1)
		go func(i int, req *http.Request) {
			defer wg.Done()
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			codes[i] = w.Code
		}(i, req)
	}
	wg.Wait()

	assert.ElementsMatch(t, []int{http.StatusOK, http.StatusConflict}, codes)

	w := doJSON(t, r, http.MethodGet, "/api/events/"+eventID, nil)
	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.MemberCount)
}

func TestScenario_RegisterTwiceThenWithdraw(t *testing.T) {
	r := setupStack(t, clubServer(t).URL)

	eventID := createEvent(t, r, 10)
	alice := createUser(t, r, "alice")
	path := "/api/tournaments/" + eventID + "/register/" + alice

	assert.Equal(t, http.StatusOK, doJSON(t, r, http.MethodPost, path, nil).Code)
	assert.Equal(t, http.StatusConflict, doJSON(t, r, http.MethodPost, path, nil).Code)

	profile := doJSON(t, r, http.MethodGet, "/api/users/"+alice, nil)
	var resp dto.UserProfileResponse
	require.NoError(t, json.Unmarshal(profile.Body.Bytes(), &resp))
	assert.Equal(t, []string{eventID}, resp.RegisteredTournaments)

	assert.Equal(t, http.StatusOK, doJSON(t, r, http.MethodDelete, path, nil).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(t, r, http.MethodDelete, path, nil).Code)

	wrongKind := doJSON(t, r, http.MethodPost, "/api/trainings/"+eventID+"/register/"+alice, nil)
	assert.Equal(t, http.StatusNotFound, wrongKind.Code)
}
