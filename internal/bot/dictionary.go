package bot

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/dragosdragos935/Italia-Word-Quiz/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const dictPageSize = 10

type DictSI interface {
	Entries(ctx context.Context, filter models.DictionaryFilter) ([]models.DictionaryEntry, error)
	Translate(ctx context.Context, text, source, target string) (models.TranslationResult, error)
	QuizLanguages() (source, target string)
}

type DictT struct {
	bot     BotSender
	service DictSI
}

func NewDictTAPI(bot BotSender, service DictSI) *DictT {
	return &DictT{
		bot:     bot,
		service: service,
	}
}

func (t *DictT) showEntries(message *tgbotapi.Message, page int) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	entries, err := t.service.Entries(ctx, models.DictionaryFilter{Sort: "recent"})
	if err != nil {
		log.Printf("failed to load dictionary for chat %d: %v", message.Chat.ID, err)
		sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, "❌ Couldn't load the dictionary"))
		return
	}
	if len(entries) == 0 {
		sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID,
			"📖 The dictionary is empty. Cards you add are mirrored here automatically."))
		return
	}

	text, hasNext := formatEntries(entries, page)

	msg := tgbotapi.NewMessage(message.Chat.ID, text)
	msg.ParseMode = "markdown"
	if keyboard := paginationKeyboard("dict", page, hasNext); keyboard != nil {
		msg.ReplyMarkup = keyboard
	}
	sendMessage(t.bot, msg)
}

func formatEntries(entries []models.DictionaryEntry, page int) (string, bool) {
	start := page * dictPageSize
	if start >= len(entries) {
		start = 0
		page = 0
	}
	end := start + dictPageSize
	if end > len(entries) {
		end = len(entries)
	}

	totalPages := (len(entries) + dictPageSize - 1) / dictPageSize

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📖 Page (%d/%d) | Total entries (%d):\n\n", page+1, totalPages, len(entries)))

	for i, e := range entries[start:end] {
		sb.WriteString(fmt.Sprintf("%d. **%s** → *%s*", start+i+1, e.SourceWord, e.TargetWord))
		if e.Type != "" {
			sb.WriteString(" (" + e.Type + ")")
		}
		sb.WriteString("\n")
		if e.Description != "" {
			sb.WriteString("   📝 " + e.Description + "\n")
		}
	}

	return strings.TrimSpace(sb.String()), end < len(entries)
}

// handleTranslateCommand serves "/translate <word>" through the external
// translation service.
func (t *DictT) handleTranslateCommand(message *tgbotapi.Message) {
	word := strings.TrimSpace(message.CommandArguments())
	if word == "" {
		sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, "Usage: /translate <word>"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	source, target := t.service.QuizLanguages()

	result, err := t.service.Translate(ctx, word, source, target)
	if err != nil {
		log.Printf("failed to translate %q for chat %d: %v", word, message.Chat.ID, err)
		sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, "❌ Translation lookup failed. Try again later."))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📖 *%s* → **%s**\n", word, result.Text))
	if len(result.Alternatives) > 0 {
		sb.WriteString("🔄 Also: " + strings.Join(result.Alternatives, ", ") + "\n")
	}
	if result.Match > 0 {
		quality := "low"
		if result.Match >= 0.7 {
			quality = "high"
		} else if result.Match >= 0.4 {
			quality = "medium"
		}
		sb.WriteString(fmt.Sprintf("📊 Confidence: %.1f (%s)", result.Match, quality))
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, strings.TrimSpace(sb.String()))
	msg.ParseMode = "markdown"
	sendMessage(t.bot, msg)
}

func (t *DictT) handleDictCallbackQuery(query *tgbotapi.CallbackQuery) {
	if query.Message == nil {
		return
	}
	if strings.HasPrefix(query.Data, "dict_page_") {
		page, err := strconv.Atoi(strings.TrimPrefix(query.Data, "dict_page_"))
		if err != nil {
			return
		}
		t.showEntries(query.Message, page)
	}
}
