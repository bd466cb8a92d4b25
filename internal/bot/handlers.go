package bot

import (
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	ButtonQuiz       = "🧠 Start Quiz"
	ButtonMyCards    = "🃏 My Cards"
	ButtonCardStats  = "📈 Card Stats"
	ButtonDictionary = "📖 Dictionary"
	ButtonTheory     = "📚 Theory"
	ButtonProgress   = "📊 My Progress"
	ButtonReminders  = "🔔 Reminders"
	ButtonMainMenu   = "🏠 Main Menu"
	ButtonBack       = "⏪ Back"
	ButtonHelp       = "ℹ️ Help"
)

func (t *TelegramAPI) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		t.handleStartCommand(message)
	case "help":
		t.handleHelpCommand(message)
	case "translate":
		t.dict.handleTranslateCommand(message)
	case "addtheory":
		t.theory.handleAddCommand(message)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Unknown command. Use /start")
		sendMessage(t.bot, msg)
	}
}

func (t *TelegramAPI) handleStartCommand(message *tgbotapi.Message) {
	welcomeText := "🤖 Hi! I'm your language-learning companion!\n\n" +
		"✨ What I can do:\n" +
		"• 🧠 Run quizzes over your flashcards in nine modes\n" +
		"• 🃏 Keep your personal flashcard collection\n" +
		"• 📖 Maintain your dictionary\n" +
		"• 📊 Track your daily streak\n" +
		"• 🔔 Remind you to study\n\n" +
		"Add a card by sending:  + word = translation\n" +
		"Then press a button below to begin!"

	keyboard := t.generateMenuKeyboard()

	msg := tgbotapi.NewMessage(message.Chat.ID, welcomeText)
	msg.ReplyMarkup = keyboard

	sendMessage(t.bot, msg)
}

func (t *TelegramAPI) showMainMenu(message *tgbotapi.Message) {
	keyboard := t.generateMenuKeyboard()

	msg := tgbotapi.NewMessage(message.Chat.ID, "🏠 Main menu:")
	msg.ReplyMarkup = keyboard

	sendMessage(t.bot, msg)
}

func (t *TelegramAPI) generateMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonQuiz),
			tgbotapi.NewKeyboardButton(ButtonMyCards),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonDictionary),
			tgbotapi.NewKeyboardButton(ButtonTheory),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonProgress),
			tgbotapi.NewKeyboardButton(ButtonReminders),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonCardStats),
			tgbotapi.NewKeyboardButton(ButtonHelp),
		),
	)

	keyboard.ResizeKeyboard = true
	keyboard.OneTimeKeyboard = false

	return keyboard
}

func (t *TelegramAPI) handleHelpCommand(message *tgbotapi.Message) {
	helpText := `
📚 Available commands:
/start - launch the bot
/help - this message
/translate <word> - look a word up in the online dictionary
/addtheory <title> | <description> - save a theory note

🎯 Use the buttons:
• "Start Quiz" - pick a mode and test yourself
• "My Cards" - browse your flashcards
• "Dictionary" - browse or search your dictionary
• "My Progress" - streak and daily goal
• "Reminders" - daily study reminder

➕ Add a flashcard any time by sending:
+ word = translation
`

	msg := tgbotapi.NewMessage(message.Chat.ID, helpText)
	sendMessage(t.bot, msg)
}

func (t *TelegramAPI) handleMessage(message *tgbotapi.Message) {
	if message.From == nil {
		log.Printf("Message without sender: %d", message.Chat.ID)
		return
	}
	text := message.Text

	// A plain text message during an active typed-mode quiz is an answer.
	if t.quiz.handleAnswerMessage(message) {
		return
	}

	switch {
	case text == ButtonQuiz:
		t.quiz.sendModePicker(message)
	case text == ButtonMyCards:
		t.cards.showCards(message, 0)
	case text == ButtonCardStats:
		t.cards.sendCardStats(message)
	case text == ButtonDictionary:
		t.dict.showEntries(message, 0)
	case text == ButtonTheory:
		t.theory.showMaterials(message)
	case text == ButtonProgress:
		t.progress.sendOverview(message)
	case text == ButtonReminders:
		t.reminder.showReminderMenu(message)
	case text == ButtonMainMenu || text == ButtonBack:
		t.showMainMenu(message)
	case text == ButtonHelp:
		t.handleHelpCommand(message)
	case strings.HasPrefix(text, "+"):
		t.cards.handleAddCard(message)

	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "I didn't get that. Use the buttons below.")
		sendMessage(t.bot, msg)
	}
}

func (t *TelegramAPI) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	callback := tgbotapi.NewCallback(query.ID, "")
	callback.ShowAlert = false
	if _, err := t.bot.Request(callback); err != nil {
		log.Printf("Failed to answer callback: %v", err)
	}

	data := query.Data

	switch {
	case strings.HasPrefix(data, "quiz_") || strings.HasPrefix(data, "mode_") ||
		strings.HasPrefix(data, "opt_") || strings.HasPrefix(data, "ml_") || strings.HasPrefix(data, "mr_"):
		t.quiz.handleQuizCallbackQuery(query)

	case strings.HasPrefix(data, "cards_"):
		t.cards.handleCardsCallbackQuery(query)

	case strings.HasPrefix(data, "dict_"):
		t.dict.handleDictCallbackQuery(query)

	case data == "reminder_on" || data == "reminder_off":
		t.reminder.handleReminderCallbackQuery(query)

	case data == "main_menu":
		t.showMainMenu(query.Message)

	default:
		log.Printf("Unknown callback data: %s from user %d", data, query.From.ID)
	}
}
