package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/dragosdragos935/Italia-Word-Quiz/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type ProgressSI interface {
	Overview(ctx context.Context) (models.DailyProgress, int)
}

type ProgressT struct {
	bot     BotSender
	service ProgressSI
}

func NewProgressTAPI(bot BotSender, service ProgressSI) *ProgressT {
	return &ProgressT{
		bot:     bot,
		service: service,
	}
}

func (t *ProgressT) sendOverview(message *tgbotapi.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	progress, goalPercent := t.service.Overview(ctx)

	text := fmt.Sprintf(
		"🔥 *Streak*: **%d day(s)**\n\n"+
			"📅 *Studied today*: **%d**\n\n"+
			"🎯 *Daily goal*: **%d%%**\n\n"+
			"📚 *Total exercises*: **%d**",
		progress.Streak, progress.StudiedToday, goalPercent, progress.TotalStudied,
	)

	msg := tgbotapi.NewMessage(message.Chat.ID, text)
	msg.ParseMode = "markdown"
	sendMessage(t.bot, msg)
}
