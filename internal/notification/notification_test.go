package notification

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stpnv0/TennisHub/internal/domain"
	"github.com/stpnv0/TennisHub/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type fakeSender struct {
	sent []tgbotapi.MessageConfig
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		f.sent = append(f.sent, msg)
	}
	return tgbotapi.Message{}, f.err
}

type fakeChannel struct {
	keys   []string
	bodies [][]byte
	err    error
}

func (f *fakeChannel) PublishWithContext(_ context.Context, _, key string, _, _ bool, msg amqp.Publishing) error {
	f.keys = append(f.keys, key)
	f.bodies = append(f.bodies, msg.Body)
	return f.err
}

func (f *fakeChannel) Close() error { return nil }

func testEvent() *domain.Event {
	capacity := 8
	return &domain.Event{
		ID:        "e1",
		Kind:      domain.EventKindTraining,
		Name:      "Morning drills",
		ClubID:    5,
		Capacity:  &capacity,
		MemberIDs: []string{"u1", "u2"},
	}
}

func TestTelegramNotifier_SendsToChat(t *testing.T) {
	sender := &fakeSender{}
	n := &TelegramNotifier{bot: sender, logger: newTestLogger(t)}

	chatID := int64(42)
	n.NotifyAdmitted(context.Background(), &domain.User{ID: "u1", TelegramChatID: &chatID}, testEvent())

	require.Len(t, sender.sent, 1)
	assert.Equal(t, chatID, sender.sent[0].ChatID)
	assert.Contains(t, sender.sent[0].Text, "Morning drills")
	assert.Contains(t, sender.sent[0].Text, "2/8")
}

func TestTelegramNotifier_Skips(t *testing.T) {
	sender := &fakeSender{}
	n := &TelegramNotifier{bot: sender, logger: newTestLogger(t)}

	n.NotifyWithdrawn(context.Background(), &domain.User{ID: "u1"}, testEvent())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	chatID := int64(42)
	n.NotifyWithdrawn(ctx, &domain.User{ID: "u1", TelegramChatID: &chatID}, testEvent())

	assert.Empty(t, sender.sent)
}

func TestTelegramNotifier_DisabledWithoutToken(t *testing.T) {
	n, err := NewTelegramNotifier("", newTestLogger(t))
	require.NoError(t, err)

	chatID := int64(42)
	assert.NotPanics(t, func() {
		n.NotifyAdmitted(context.Background(), &domain.User{TelegramChatID: &chatID}, testEvent())
	})
}

func TestRabbitPublisher_PublishesMessage(t *testing.T) {
	ch := &fakeChannel{}
	p := &RabbitPublisher{ch: ch, exchange: "tennishub.registrations", logger: newTestLogger(t)}

	p.NotifyAdmitted(context.Background(), &domain.User{ID: "u2", Username: "bob"}, testEvent())
	p.NotifyWithdrawn(context.Background(), &domain.User{ID: "u2", Username: "bob"}, testEvent())

	assert.Equal(t, []string{RoutingKeyAdmitted, RoutingKeyWithdrawn}, ch.keys)

	var msg RegistrationMessage
	require.NoError(t, json.Unmarshal(ch.bodies[0], &msg))
	assert.Equal(t, RoutingKeyAdmitted, msg.Type)
	assert.Equal(t, "e1", msg.EventID)
	assert.Equal(t, "training", msg.EventKind)
	assert.Equal(t, "bob", msg.Username)
	assert.Equal(t, 2, msg.Members)
	assert.Equal(t, 8, *msg.Capacity)
}

func TestRabbitPublisher_ErrorIsSwallowed(t *testing.T) {
	ch := &fakeChannel{err: errors.New("channel closed")}
	p := &RabbitPublisher{ch: ch, exchange: "x", logger: newTestLogger(t)}

	assert.NotPanics(t, func() {
		p.NotifyAdmitted(context.Background(), &domain.User{ID: "u1"}, testEvent())
	})
	assert.Len(t, ch.keys, 1)
}

func TestRabbitPublisher_DisabledWithoutURL(t *testing.T) {
	p, err := NewRabbitPublisher("", "x", newTestLogger(t))
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		p.NotifyAdmitted(context.Background(), &domain.User{ID: "u1"}, testEvent())
		p.Close()
	})
}

func TestFanout_CallsEveryNotifier(t *testing.T) {
	first := mocks.NewMockRegistrationNotifier(t)
	second := mocks.NewMockRegistrationNotifier(t)
	user, event := &domain.User{ID: "u1"}, testEvent()

	first.EXPECT().NotifyAdmitted(context.Background(), user, event).Return().Once()
	second.EXPECT().NotifyAdmitted(context.Background(), user, event).Return().Once()
	first.EXPECT().NotifyWithdrawn(context.Background(), user, event).Return().Once()
	second.EXPECT().NotifyWithdrawn(context.Background(), user, event).Return().Once()

	f := Fanout{first, second}
	f.NotifyAdmitted(context.Background(), user, event)
	f.NotifyWithdrawn(context.Background(), user, event)
}
