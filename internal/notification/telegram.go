package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/TennisHub/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type telegramSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramNotifier struct {
	bot    telegramSender
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyAdmitted(ctx context.Context, user *domain.User, event *domain.Event) {
	text := fmt.Sprintf(
		"*Вы записаны!*\n\n"+"%s: %s\n"+"Начало (время указано в UTC): %s\n"+"Занято мест: %s",
		kindTitle(event.Kind), event.Name,
		event.StartTime.UTC().Format("02.01.2006 15:04"),
		occupancy(event),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyWithdrawn(ctx context.Context, user *domain.User, event *domain.Event) {
	text := fmt.Sprintf(
		"*Запись отменена*\n\n"+"%s: %s\n"+"Начало (время указано в UTC): %s",
		kindTitle(event.Kind), event.Name,
		event.StartTime.UTC().Format("02.01.2006 15:04"),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}

func kindTitle(kind domain.EventKind) string {
	if kind == domain.EventKindTraining {
		return "Тренировка"
	}
	return "Турнир"
}

func occupancy(e *domain.Event) string {
	if e.Capacity == nil {
		return fmt.Sprintf("%d", len(e.MemberIDs))
	}
	return fmt.Sprintf("%d/%d", len(e.MemberIDs), *e.Capacity)
}
