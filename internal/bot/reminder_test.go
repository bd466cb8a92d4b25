package bot

import (
	"context"
	"testing"

	mock_bot "github.com/dragosdragos935/Italia-Word-Quiz/internal/bot/mock"
	"github.com/dragosdragos935/Italia-Word-Quiz/internal/config"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReminderTMock(t *testing.T, bot BotSender, service ReminderSI, cfg config.ReminderConfig) *ReminderT {
	t.Helper()

	reminderT, err := NewReminderTAPI(bot, service, cfg)
	require.NoError(t, err)
	return reminderT
}

func TestNewReminderTAPI_badSpec(t *testing.T) {
	t.Parallel()

	_, err := NewReminderTAPI(&mock_bot.MockBot{}, newBotTestService(t), config.ReminderConfig{Spec: "not a cron spec"})
	require.Error(t, err)
}

func TestReminderT_subscribeFlow(t *testing.T) {
	t.Parallel()

	services := newBotTestService(t)
	mockBot := &mock_bot.MockBot{}
	reminderT := newReminderTMock(t, mockBot, services, config.ReminderConfig{})

	query := &tgbotapi.CallbackQuery{
		ID:      "cb1",
		Data:    "reminder_on",
		Message: chatMessage(""),
	}

	reminderT.handleReminderCallbackQuery(query)
	require.Len(t, mockBot.SentMessages, 1)
	assert.Contains(t, mockBot.SentMessages[0].(tgbotapi.MessageConfig).Text, "Daily reminder on")

	assert.Equal(t, []int64{123}, services.Subscribers(context.Background()))

	mock_bot.ClearSentMessages(mockBot)

	reminderT.handleReminderCallbackQuery(query)
	require.Len(t, mockBot.SentMessages, 1)
	assert.Contains(t, mockBot.SentMessages[0].(tgbotapi.MessageConfig).Text, "already subscribed")

	mock_bot.ClearSentMessages(mockBot)

	query.Data = "reminder_off"
	reminderT.handleReminderCallbackQuery(query)
	require.Len(t, mockBot.SentMessages, 1)
	assert.Contains(t, mockBot.SentMessages[0].(tgbotapi.MessageConfig).Text, "Reminders off")

	assert.Empty(t, services.Subscribers(context.Background()))
}

func TestReminderT_sendReminders(t *testing.T) {
	t.Parallel()

	services := newBotTestService(t)
	ctx := context.Background()

	_, err := services.Subscribe(ctx, 100)
	require.NoError(t, err)
	_, err = services.Subscribe(ctx, 200)
	require.NoError(t, err)

	mockBot := &mock_bot.MockBot{}
	reminderT := newReminderTMock(t, mockBot, services, config.ReminderConfig{Text: "time to study"})

	reminderT.sendReminders()

	require.Len(t, mockBot.SentMessages, 2)
	first := mockBot.SentMessages[0].(tgbotapi.MessageConfig)
	assert.Equal(t, "time to study", first.Text)
	assert.Equal(t, int64(100), first.ChatID)
}

func TestReminderT_showReminderMenu(t *testing.T) {
	t.Parallel()

	mockBot := &mock_bot.MockBot{}
	reminderT := newReminderTMock(t, mockBot, newBotTestService(t), config.ReminderConfig{})

	reminderT.showReminderMenu(chatMessage(ButtonReminders))

	require.Len(t, mockBot.SentMessages, 1)
	msg := mockBot.SentMessages[0].(tgbotapi.MessageConfig)

	keyboard, ok := msg.ReplyMarkup.(*tgbotapi.InlineKeyboardMarkup)
	require.True(t, ok)
	require.Len(t, keyboard.InlineKeyboard, 1)
	require.Len(t, keyboard.InlineKeyboard[0], 2)
	assert.Equal(t, "reminder_on", *keyboard.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "reminder_off", *keyboard.InlineKeyboard[0][1].CallbackData)
}
