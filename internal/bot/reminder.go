package bot

import (
	"context"
	"log"
	"time"

	"github.com/dragosdragos935/Italia-Word-Quiz/internal/config"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/robfig/cron/v3"
)

const defaultReminderSpec = "0 18 * * *"

type ReminderSI interface {
	Subscribe(ctx context.Context, chatID int64) (bool, error)
	Unsubscribe(ctx context.Context, chatID int64) (bool, error)
	Subscribers(ctx context.Context) []int64
}

// ReminderT sends subscribed chats a daily study nudge on a cron schedule.
type ReminderT struct {
	bot     BotSender
	service ReminderSI
	cron    *cron.Cron
	text    string
}

func NewReminderTAPI(bot BotSender, service ReminderSI, cfg config.ReminderConfig) (*ReminderT, error) {
	t := &ReminderT{
		bot:     bot,
		service: service,
		cron:    cron.New(),
		text:    cfg.Text,
	}
	if t.text == "" {
		t.text = "🔔 Time to study! A few flashcards a day keep the streak alive."
	}

	spec := cfg.Spec
	if spec == "" {
		spec = defaultReminderSpec
	}

	if _, err := t.cron.AddFunc(spec, t.sendReminders); err != nil {
		return nil, err
	}

	return t, nil
}

func (t *ReminderT) StartSchedule() {
	t.cron.Start()
}

func (t *ReminderT) StopSchedule() {
	t.cron.Stop()
}

func (t *ReminderT) sendReminders() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, chatID := range t.service.Subscribers(ctx) {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, t.text))
	}
}

func (t *ReminderT) showReminderMenu(message *tgbotapi.Message) {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		[]tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData("🔔 Remind me daily", "reminder_on"),
			tgbotapi.NewInlineKeyboardButtonData("🔕 Stop reminders", "reminder_off"),
		},
	)

	msg := tgbotapi.NewMessage(message.Chat.ID, "Daily study reminder:")
	msg.ReplyMarkup = &keyboard
	sendMessage(t.bot, msg)
}

func (t *ReminderT) handleReminderCallbackQuery(query *tgbotapi.CallbackQuery) {
	if query.Message == nil {
		return
	}
	chatID := query.Message.Chat.ID

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	switch query.Data {
	case "reminder_on":
		added, err := t.service.Subscribe(ctx, chatID)
		if err != nil {
			log.Printf("failed to subscribe chat %d: %v", chatID, err)
			sendMessage(t.bot, tgbotapi.NewMessage(chatID, "❌ Couldn't update reminders"))
			return
		}
		text := "🔔 You're already subscribed."
		if added {
			text = "🔔 Daily reminder on!"
		}
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, text))

	case "reminder_off":
		removed, err := t.service.Unsubscribe(ctx, chatID)
		if err != nil {
			log.Printf("failed to unsubscribe chat %d: %v", chatID, err)
			sendMessage(t.bot, tgbotapi.NewMessage(chatID, "❌ Couldn't update reminders"))
			return
		}
		text := "🔕 You weren't subscribed."
		if removed {
			text = "🔕 Reminders off."
		}
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, text))
	}
}
