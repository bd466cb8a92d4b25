package bot

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/dragosdragos935/Italia-Word-Quiz/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type TheorySI interface {
	Materials(ctx context.Context) ([]models.TheoryMaterial, error)
	CreateMaterial(ctx context.Context, title, language, description string) (models.TheoryMaterial, error)
	QuizLanguages() (source, target string)
}

type TheoryT struct {
	bot     BotSender
	service TheorySI
}

func NewTheoryTAPI(bot BotSender, service TheorySI) *TheoryT {
	return &TheoryT{
		bot:     bot,
		service: service,
	}
}

func (t *TheoryT) showMaterials(message *tgbotapi.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	materials, err := t.service.Materials(ctx)
	if err != nil {
		log.Printf("failed to load theory for chat %d: %v", message.Chat.ID, err)
		sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, "❌ Couldn't load theory materials"))
		return
	}
	if len(materials) == 0 {
		sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID,
			"📚 No theory notes yet. Save one with /addtheory <title> | <description>"))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📚 Theory materials (%d):\n\n", len(materials)))
	for i, m := range materials {
		sb.WriteString(fmt.Sprintf("%d. **%s** (%s)\n   %s\n", i+1, m.Title, models.LanguageName(m.Language), m.Description))
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, strings.TrimSpace(sb.String()))
	msg.ParseMode = "markdown"
	sendMessage(t.bot, msg)
}

func (t *TheoryT) handleAddCommand(message *tgbotapi.Message) {
	parts := strings.SplitN(message.CommandArguments(), "|", 2)
	if len(parts) != 2 {
		sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, "Usage: /addtheory <title> | <description>"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, target := t.service.QuizLanguages()

	material, err := t.service.CreateMaterial(ctx, parts[0], target, parts[1])
	if err != nil {
		log.Printf("failed to add theory for chat %d: %v", message.Chat.ID, err)
		sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, "❌ Couldn't save the note: "+err.Error()))
		return
	}

	sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, "📚 Saved: "+material.Title))
}
