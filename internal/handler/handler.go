package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/stpnv0/TennisHub/internal/domain"
	"github.com/stpnv0/TennisHub/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type EventSvc interface {
	Create(ctx context.Context, clubID int64, input domain.CreateEventInput) (*domain.Event, error)
	Get(ctx context.Context, kind domain.EventKind, id string) (*domain.EventView, error)
	List(ctx context.Context, filter domain.EventFilter) ([]*domain.EventView, error)
	Update(ctx context.Context, id string, input domain.UpdateEventInput) (*domain.EventView, error)
	Delete(ctx context.Context, id string) error
}

type RegistrySvc interface {
	Admit(ctx context.Context, kind domain.EventKind, eventID, userID string) error
	Withdraw(ctx context.Context, kind domain.EventKind, eventID, userID string) error
}

type UserSvc interface {
	Create(ctx context.Context, input domain.UserInput) (*domain.User, error)
	GetProfile(ctx context.Context, id string) (*domain.UserProfile, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, input domain.UserInput) (*domain.User, error)
}

type ClubSvc interface {
	Get(ctx context.Context, id int64) (*domain.Club, error)
	List(ctx context.Context) ([]domain.Club, error)
}

type Handler struct {
	eventService    EventSvc
	registryService RegistrySvc
	userService     UserSvc
	clubService     ClubSvc
}

func NewHandler(eventService EventSvc, registryService RegistrySvc, userService UserSvc, clubService ClubSvc) *Handler {
	useJSONFieldNames()
	return &Handler{
		eventService:    eventService,
		registryService: registryService,
		userService:     userService,
		clubService:     clubService,
	}
}

// Events

// CreateEvent creates an event in the club from the path. A non-empty kind
// overrides the one from the body.
func (h *Handler) CreateEvent(kind domain.EventKind) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		clubID, ok := clubIDParam(c)
		if !ok {
			return
		}

		var req dto.CreateEventRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			h.bindError(c, err)
			return
		}

		input := req.ToInput()
		if kind != "" {
			input.Kind = kind
		}

		event, err := h.eventService.Create(c.Request.Context(), clubID, input)
		if err != nil {
			h.handleError(c, err)
			return
		}

		c.JSON(http.StatusCreated, dto.ToEventResponse(event, nil))
	}
}

func (h *Handler) GetEvent(kind domain.EventKind) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id, ok := uuidParam(c, "id", "invalid event id")
		if !ok {
			return
		}

		view, err := h.eventService.Get(c.Request.Context(), kind, id)
		if err != nil {
			h.handleError(c, err)
			return
		}

		c.JSON(http.StatusOK, dto.ToEventViewResponse(view))
	}
}

func (h *Handler) ListEvents(kind domain.EventKind) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		filter := domain.EventFilter{Kind: kind}
		if raw := c.Query("club_id"); raw != "" {
			clubID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || clubID <= 0 {
				abortInvalid(c, "invalid club_id")
				return
			}
			filter.ClubID = &clubID
		}

		views, err := h.eventService.List(c.Request.Context(), filter)
		if err != nil {
			h.handleError(c, err)
			return
		}

		resp := make([]dto.EventResponse, 0, len(views))
		for _, v := range views {
			resp = append(resp, dto.ToEventViewResponse(v))
		}

		c.JSON(http.StatusOK, resp)
	}
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	id, ok := uuidParam(c, "id", "invalid event id")
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	view, err := h.eventService.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventViewResponse(view))
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	id, ok := uuidParam(c, "id", "invalid event id")
	if !ok {
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Registrations

func (h *Handler) Register(kind domain.EventKind) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		eventID, userID, ok := registrationParams(c)
		if !ok {
			return
		}

		if err := h.registryService.Admit(c.Request.Context(), kind, eventID, userID); err != nil {
			h.handleError(c, err)
			return
		}

		c.JSON(http.StatusOK, dto.RegistrationResponse{Status: "registered", EventID: eventID, UserID: userID})
	}
}

func (h *Handler) Unregister(kind domain.EventKind) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		eventID, userID, ok := registrationParams(c)
		if !ok {
			return
		}

		if err := h.registryService.Withdraw(c.Request.Context(), kind, eventID, userID); err != nil {
			h.handleError(c, err)
			return
		}

		c.JSON(http.StatusOK, dto.RegistrationResponse{Status: "unregistered", EventID: eventID, UserID: userID})
	}
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	user, err := h.userService.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) GetUser(c *ginext.Context) {
	id, ok := uuidParam(c, "id", "invalid user id")
	if !ok {
		return
	}

	profile, err := h.userService.GetProfile(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserProfileResponse(profile))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateUser(c *ginext.Context) {
	id, ok := uuidParam(c, "id", "invalid user id")
	if !ok {
		return
	}

	var req dto.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	user, err := h.userService.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// Clubs

func (h *Handler) ListClubs(c *ginext.Context) {
	clubs, err := h.clubService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ClubResponse, 0, len(clubs))
	for i := range clubs {
		resp = append(resp, dto.ToClubResponse(&clubs[i]))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetClub(c *ginext.Context) {
	clubID, ok := clubIDParam(c)
	if !ok {
		return
	}

	club, err := h.clubService.Get(c.Request.Context(), clubID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClubResponse(club))
}

func uuidParam(c *ginext.Context, name, msg string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		abortInvalid(c, msg)
		return "", false
	}
	return id, true
}

func clubIDParam(c *ginext.Context) (int64, bool) {
	clubID, err := strconv.ParseInt(c.Param("clubId"), 10, 64)
	if err != nil || clubID <= 0 {
		abortInvalid(c, "invalid club id")
		return 0, false
	}
	return clubID, true
}

func registrationParams(c *ginext.Context) (eventID, userID string, ok bool) {
	if eventID, ok = uuidParam(c, "id", "invalid event id"); !ok {
		return "", "", false
	}
	if userID, ok = uuidParam(c, "userId", "invalid user id"); !ok {
		return "", "", false
	}
	return eventID, userID, true
}
