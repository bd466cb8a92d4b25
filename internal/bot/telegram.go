package bot

import (
	"log"

	"github.com/dragosdragos935/Italia-Word-Quiz/internal/config"
	"github.com/dragosdragos935/Italia-Word-Quiz/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type ServiceI interface {
	QuizSI
	CardSI
	DictSI
	TheorySI
	ProgressSI
	ReminderSI
}

type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramAPI struct {
	bot      *tgbotapi.BotAPI
	quiz     *QuizT
	cards    *CardsT
	dict     *DictT
	theory   *TheoryT
	progress *ProgressT
	reminder *ReminderT
}

func NewTelegramAPI(cfg config.Config, service ServiceI, cache *cache.Cache) (*TelegramAPI, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, err
	}

	if cfg.Env == "development" {
		bot.Debug = true
	} else {
		bot.Debug = false
	}

	reminder, err := NewReminderTAPI(bot, service, cfg.Reminder)
	if err != nil {
		return nil, err
	}

	return &TelegramAPI{
		bot:      bot,
		quiz:     NewQuizTAPI(bot, cache, service),
		cards:    NewCardsTAPI(bot, service),
		dict:     NewDictTAPI(bot, service),
		theory:   NewTheoryTAPI(bot, service),
		progress: NewProgressTAPI(bot, service),
		reminder: reminder,
	}, nil
}

func (t *TelegramAPI) Start() {
	t.reminder.StartSchedule()
	defer t.reminder.StopSchedule()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.bot.GetUpdatesChan(u)

	for update := range updates {
		if update.Message != nil {
			if update.Message.IsCommand() {
				t.handleCommand(update.Message)
			} else {
				t.handleMessage(update.Message)
			}
			continue
		}

		if update.CallbackQuery != nil {
			t.handleCallbackQuery(update.CallbackQuery)
		}
	}
}

func sendMessage(bot BotSender, msg tgbotapi.Chattable) tgbotapi.Message {
	sentMsg, err := bot.Send(msg)
	if err != nil {
		log.Printf("Failed to send message: %v", err)
	}
	return sentMsg
}
