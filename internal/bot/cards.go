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

const cardsPageSize = 10

type CardSI interface {
	CreateCard(ctx context.Context, category models.Category, sourceLang, targetLang, sourceText, targetText string) (models.Flashcard, error)
	Cards(ctx context.Context, filter models.CardFilter) ([]models.Flashcard, error)
	CardStats(ctx context.Context) (models.CardStats, error)
	AddFromCard(ctx context.Context, card models.Flashcard) error
	QuizLanguages() (source, target string)
}

type CardsT struct {
	bot     BotSender
	service CardSI
}

func NewCardsTAPI(bot BotSender, service CardSI) *CardsT {
	return &CardsT{
		bot:     bot,
		service: service,
	}
}

// handleAddCard parses "+ word = translation" into a new flashcard in the
// configured quiz language pair. The card is mirrored into the dictionary.
func (t *CardsT) handleAddCard(message *tgbotapi.Message) {
	body := strings.TrimSpace(strings.TrimPrefix(message.Text, "+"))
	parts := strings.SplitN(body, "=", 2)
	if len(parts) != 2 {
		sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, "Format: + word = translation"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	source, target := t.service.QuizLanguages()

	card, err := t.service.CreateCard(ctx, models.CategoryWords, source, target, parts[0], parts[1])
	if err != nil {
		log.Printf("failed to add card for chat %d: %v", message.Chat.ID, err)
		sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, "❌ Couldn't add the card: "+err.Error()))
		return
	}

	if err := t.service.AddFromCard(ctx, card); err != nil {
		log.Printf("failed to mirror card %d to dictionary: %v", card.ID, err)
	}

	sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID,
		fmt.Sprintf("✅ Card added: %s → %s", card.SourceText, card.TargetText)))
}

func (t *CardsT) showCards(message *tgbotapi.Message, page int) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cards, err := t.service.Cards(ctx, models.CardFilter{Sort: "recent"})
	if err != nil {
		log.Printf("failed to load cards for chat %d: %v", message.Chat.ID, err)
		sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, "❌ Couldn't load your cards"))
		return
	}
	if len(cards) == 0 {
		sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID,
			"🃏 No flashcards yet. Send `+ word = translation` to add the first one!"))
		return
	}

	text, hasNext := formatCards(cards, page)

	msg := tgbotapi.NewMessage(message.Chat.ID, text)
	msg.ParseMode = "markdown"
	if keyboard := paginationKeyboard("cards", page, hasNext); keyboard != nil {
		msg.ReplyMarkup = keyboard
	}
	sendMessage(t.bot, msg)
}

func formatCards(cards []models.Flashcard, page int) (string, bool) {
	start := page * cardsPageSize
	if start >= len(cards) {
		start = 0
		page = 0
	}
	end := start + cardsPageSize
	if end > len(cards) {
		end = len(cards)
	}

	totalPages := (len(cards) + cardsPageSize - 1) / cardsPageSize

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🃏 Page (%d/%d) | Total cards (%d):\n\n", page+1, totalPages, len(cards)))

	for i, card := range cards[start:end] {
		sb.WriteString(fmt.Sprintf("%d. **%s** → *%s*\n", start+i+1, card.SourceText, card.TargetText))
		sb.WriteString(fmt.Sprintf("   %s → %s · attempts %d · correct %d\n",
			models.LanguageName(card.SourceLanguage), models.LanguageName(card.TargetLanguage),
			card.Attempts, card.Correct))
	}

	return strings.TrimSpace(sb.String()), end < len(cards)
}

func (t *CardsT) sendCardStats(message *tgbotapi.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stats, err := t.service.CardStats(ctx)
	if err != nil {
		log.Printf("failed to get card stats for chat %d: %v", message.Chat.ID, err)
		sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, "❌ Couldn't load card stats"))
		return
	}

	text := fmt.Sprintf("🃏 *Total cards*: **%d**\n\n✅ *Learned*: **%d**\n\n📌 *Still to learn*: **%d**",
		stats.TotalCount, stats.LearnedCount, stats.TotalCount-stats.LearnedCount)

	msg := tgbotapi.NewMessage(message.Chat.ID, text)
	msg.ParseMode = "markdown"
	sendMessage(t.bot, msg)
}

func (t *CardsT) handleCardsCallbackQuery(query *tgbotapi.CallbackQuery) {
	if query.Message == nil {
		return
	}
	switch {
	case strings.HasPrefix(query.Data, "cards_page_"):
		page, err := strconv.Atoi(strings.TrimPrefix(query.Data, "cards_page_"))
		if err != nil {
			return
		}
		t.showCards(query.Message, page)
	case query.Data == "cards_stats":
		t.sendCardStats(query.Message)
	}
}

// paginationKeyboard builds prev/next buttons with "<prefix>_page_<n>"
// callbacks, or nil when there is a single page.
func paginationKeyboard(prefix string, page int, hasNext bool) *tgbotapi.InlineKeyboardMarkup {
	var row []tgbotapi.InlineKeyboardButton
	if page > 0 {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("⬅️ Prev", fmt.Sprintf("%s_page_%d", prefix, page-1)))
	}
	if hasNext {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("➡️ Next", fmt.Sprintf("%s_page_%d", prefix, page+1)))
	}
	if len(row) == 0 {
		return nil
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(row)
	return &keyboard
}
