package bot

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dragosdragos935/Italia-Word-Quiz/internal/quiz"
	"github.com/dragosdragos935/Italia-Word-Quiz/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type QuizSI interface {
	StartQuiz(ctx context.Context, mode quiz.Mode, onTick func(int), onExpire func(quiz.Grading)) (*quiz.Session, error)
}

// chatState is per-chat presentation state for the active question: the
// message holding the question (edited on speed-round ticks) and a pending
// left-column pick in matching mode.
type chatState struct {
	msgID       int
	baseText    string
	pendingPick int
}

type QuizT struct {
	bot     BotSender
	cache   *cache.Cache
	service QuizSI

	mu    sync.Mutex
	chats map[int64]*chatState
}

func NewQuizTAPI(bot BotSender, cache *cache.Cache, service QuizSI) *QuizT {
	return &QuizT{
		bot:     bot,
		cache:   cache,
		service: service,
		chats:   make(map[int64]*chatState),
	}
}

var pickerModes = []quiz.Mode{
	quiz.ModeTyping, quiz.ModeMultipleChoice, quiz.ModeSentence,
	quiz.ModeFlashcardFlip, quiz.ModeListening, quiz.ModeMatching,
	quiz.ModeSpeed, quiz.ModePronunciation, quiz.ModeMixed,
}

func (t *QuizT) sendModePicker(message *tgbotapi.Message) {
	var rows [][]tgbotapi.InlineKeyboardButton
	row := make([]tgbotapi.InlineKeyboardButton, 0, 3)

	for i, mode := range pickerModes {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(mode.Label(), "mode_"+string(mode)))
		if (i+1)%3 == 0 {
			rows = append(rows, row)
			row = make([]tgbotapi.InlineKeyboardButton, 0, 3)
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(rows...)

	msg := tgbotapi.NewMessage(message.Chat.ID, "🧠 Pick a quiz mode:")
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}

func (t *QuizT) startQuiz(chatID int64, modeData string) {
	mode, err := quiz.ParseMode(strings.TrimPrefix(modeData, "mode_"))
	if err != nil {
		log.Printf("Bad quiz mode callback for chat %d: %v", chatID, err)
		return
	}

	// Closing a previous session discards it without persisting anything
	// beyond the per-card attempts already recorded.
	if old, exists := t.cache.GetSession(chatID); exists {
		old.Close()
		t.cache.DeleteSession(chatID)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	session, err := t.service.StartQuiz(ctx, mode,
		func(left int) { t.onTick(chatID, left) },
		func(g quiz.Grading) { t.onExpire(chatID, g) },
	)
	if err != nil {
		log.Printf("failed to start quiz for chat %d: %v", chatID, err)
		text := "❌ Couldn't start the quiz. Try again later."
		if err == quiz.ErrNoCardsAvailable {
			text = "🃏 You have no flashcards yet. Send `+ word = translation` to add one!"
		} else if err == quiz.ErrInsufficientCardsForMode {
			text = "❌ Matching mode needs at least 2 cards."
		}
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, text))
		return
	}

	t.cache.SetSession(chatID, session)
	t.renderQuestion(chatID, session)
}

func (t *QuizT) renderQuestion(chatID int64, session *quiz.Session) {
	q, err := session.Question()
	if err != nil {
		t.finishQuiz(chatID, session)
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("❓ %d / %d · %s\n", q.Index+1, q.Total, q.Mode.Label()))
	sb.WriteString(q.Direction)
	sb.WriteString("\n\n")

	var keyboard tgbotapi.InlineKeyboardMarkup

	switch q.Mode {
	case quiz.ModeMultipleChoice:
		sb.WriteString("Translate: *" + q.Text + "*")
		var rows [][]tgbotapi.InlineKeyboardButton
		for i, option := range q.Options {
			rows = append(rows, []tgbotapi.InlineKeyboardButton{
				tgbotapi.NewInlineKeyboardButtonData(option, "opt_"+strconv.Itoa(i)),
			})
		}
		rows = append(rows, quizControlRow())
		keyboard = tgbotapi.NewInlineKeyboardMarkup(rows...)

	case quiz.ModeFlashcardFlip:
		sb.WriteString("🃏 *" + q.Text + "*\n\nFlip the card, then grade yourself.")
		keyboard = tgbotapi.NewInlineKeyboardMarkup(
			[]tgbotapi.InlineKeyboardButton{
				tgbotapi.NewInlineKeyboardButtonData("🔄 Flip", "quiz_flip"),
			},
			[]tgbotapi.InlineKeyboardButton{
				tgbotapi.NewInlineKeyboardButtonData("✅ I knew it", "quiz_self_1"),
				tgbotapi.NewInlineKeyboardButtonData("❌ I didn't", "quiz_self_0"),
			},
			quizControlRow(),
		)

	case quiz.ModeMatching:
		round, err := session.Matching()
		if err != nil {
			t.finishQuiz(chatID, session)
			return
		}
		sb.WriteString("🧩 Match the pairs: pick one from each column.")
		keyboard = matchingKeyboard(round)

	case quiz.ModePronunciation:
		sb.WriteString("🎤 Pronounce: *" + q.Text + "*\n\nRecord yourself, then confirm.")
		keyboard = tgbotapi.NewInlineKeyboardMarkup(
			[]tgbotapi.InlineKeyboardButton{
				tgbotapi.NewInlineKeyboardButtonData("✅ Recording saved", "quiz_rec"),
			},
			quizControlRow(),
		)

	case quiz.ModeSpeed:
		sb.WriteString("⚡ Translate: *" + q.Text + "*")
		keyboard = tgbotapi.NewInlineKeyboardMarkup(quizControlRow())

	case quiz.ModeListening:
		sb.WriteString("🔊 Read this aloud, then type the translation: *" + q.Text + "*")
		keyboard = tgbotapi.NewInlineKeyboardMarkup(quizControlRow())

	default: // typing, sentence
		sb.WriteString("Translate: *" + q.Text + "*")
		keyboard = tgbotapi.NewInlineKeyboardMarkup(quizControlRow())
	}

	// baseText stays countdown-free so each tick can rebuild the full text.
	text := sb.String()
	if q.Mode == quiz.ModeSpeed {
		text += speedCountdownLine(q.TimeLeft)
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "markdown"
	msg.ReplyMarkup = &keyboard

	sent := sendMessage(t.bot, msg)

	t.mu.Lock()
	t.chats[chatID] = &chatState{msgID: sent.MessageID, baseText: sb.String(), pendingPick: -1}
	t.mu.Unlock()
}

func speedCountdownLine(left int) string {
	return fmt.Sprintf("\n⏱ %d seconds!", left)
}

func quizControlRow() []tgbotapi.InlineKeyboardButton {
	return []tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData("💡 Hint", "quiz_hint"),
		tgbotapi.NewInlineKeyboardButtonData("⏭ Skip", "quiz_skip"),
		tgbotapi.NewInlineKeyboardButtonData("🚪 Close", "quiz_close"),
	}
}

func matchingKeyboard(round *quiz.MatchingRound) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for i := 0; i < len(round.Prompts); i++ {
		left := round.Prompts[i].Text
		if round.Prompts[i].Matched {
			left = "✔ " + left
		}
		right := round.Answers[i].Text
		if round.Answers[i].Matched {
			right = "✔ " + right
		}
		rows = append(rows, []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(left, "ml_"+strconv.Itoa(i)),
			tgbotapi.NewInlineKeyboardButtonData(right, "mr_"+strconv.Itoa(i)),
		})
	}
	rows = append(rows, quizControlRow())
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// handleAnswerMessage consumes a plain text message as a quiz answer when a
// typed-mode question is open. Reports whether the message was consumed.
func (t *QuizT) handleAnswerMessage(message *tgbotapi.Message) bool {
	chatID := message.Chat.ID
	session, exists := t.cache.GetSession(chatID)
	if !exists {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	grading, err := session.SubmitAnswer(ctx, message.Text)
	switch err {
	case nil:
	case quiz.ErrModeMismatch, quiz.ErrQuestionClosed:
		return false
	case quiz.ErrQuizFinished:
		t.finishQuiz(chatID, session)
		return true
	default:
		log.Printf("failed to grade answer for chat %d: %v", chatID, err)
		return true
	}

	if grading.Correct {
		t.sendGraded(chatID, "🎉 Correct! Well done!")
	} else {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "❌ Wrong. Try again or use the hint!"))
	}
	return true
}

func (t *QuizT) handleQuizCallbackQuery(query *tgbotapi.CallbackQuery) {
	if query.Message == nil {
		log.Printf("CallbackQuery without message: %v", query.ID)
		return
	}
	chatID := query.Message.Chat.ID
	data := query.Data

	if strings.HasPrefix(data, "mode_") {
		t.startQuiz(chatID, data)
		return
	}

	session, exists := t.cache.GetSession(chatID)
	if !exists {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "❌ No active quiz. Press \""+ButtonQuiz+"\" to start one."))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	switch {
	case data == "quiz_close":
		session.Close()
		t.cache.DeleteSession(chatID)
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "🚪 Quiz closed."))

	case data == "quiz_next":
		t.advance(chatID, session)

	case data == "quiz_skip":
		_, summary, err := session.Skip(ctx)
		if err != nil {
			t.finishQuiz(chatID, session)
			return
		}
		if summary != nil {
			t.sendSummary(chatID, *summary)
			t.cache.DeleteSession(chatID)
			return
		}
		t.renderQuestion(chatID, session)

	case data == "quiz_hint":
		answer, err := session.Hint()
		if err != nil {
			t.advance(chatID, session)
			return
		}
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "💡 Hint: the answer is \""+answer+"\""))

	case data == "quiz_flip":
		back, err := session.Flip()
		if err != nil {
			return
		}
		q, qerr := session.Question()
		if qerr != nil {
			t.finishQuiz(chatID, session)
			return
		}
		side := q.Text
		label := "front"
		if back {
			side = q.CorrectAnswer
			label = "back"
		}
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, fmt.Sprintf("🃏 (%s) %s", label, side)))

	case data == "quiz_self_1" || data == "quiz_self_0":
		grading, err := session.SelfGrade(ctx, data == "quiz_self_1")
		if err != nil {
			return
		}
		if grading.Correct {
			t.sendGraded(chatID, "🎉 Nice, it stays learned!")
		} else {
			t.sendGraded(chatID, "📌 Marked for another round. The answer was \""+grading.CorrectAnswer+"\"")
		}

	case data == "quiz_rec":
		if _, err := session.CompleteRecording(ctx); err != nil {
			return
		}
		t.sendGraded(chatID, "🎤 Recording saved - counted as correct!")

	case strings.HasPrefix(data, "opt_"):
		t.handleOptionPick(ctx, chatID, session, data)

	case strings.HasPrefix(data, "ml_") || strings.HasPrefix(data, "mr_"):
		t.handleMatchPick(ctx, chatID, session, data)

	default:
		log.Printf("Unknown quiz callback data: %s", data)
	}
}

func (t *QuizT) handleOptionPick(ctx context.Context, chatID int64, session *quiz.Session, data string) {
	option, err := strconv.Atoi(strings.TrimPrefix(data, "opt_"))
	if err != nil {
		return
	}

	grading, err := session.ChooseOption(ctx, option)
	switch err {
	case nil:
	case quiz.ErrOptionDisabled:
		return
	case quiz.ErrQuestionClosed:
		t.advance(chatID, session)
		return
	default:
		t.finishQuiz(chatID, session)
		return
	}

	if grading.Correct {
		t.sendGraded(chatID, "🎉 Correct! Well done!")
	} else {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "❌ Not that one - the other options are still open."))
	}
}

func (t *QuizT) handleMatchPick(ctx context.Context, chatID int64, session *quiz.Session, data string) {
	idx, err := strconv.Atoi(data[3:])
	if err != nil {
		return
	}

	if strings.HasPrefix(data, "ml_") {
		t.mu.Lock()
		if st, ok := t.chats[chatID]; ok {
			st.pendingPick = idx
		}
		t.mu.Unlock()
		return
	}

	t.mu.Lock()
	st, ok := t.chats[chatID]
	pending := -1
	if ok {
		pending = st.pendingPick
		st.pendingPick = -1
	}
	t.mu.Unlock()

	if pending < 0 {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "Pick from the left column first."))
		return
	}

	result, err := session.PickMatch(ctx, pending, idx)
	switch err {
	case nil:
	case quiz.ErrOptionDisabled:
		return
	default:
		t.finishQuiz(chatID, session)
		return
	}

	if !result.Matched {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "❌ Not a pair - both selections cleared."))
		return
	}
	if result.RoundComplete {
		t.sendGraded(chatID, "🎉 All pairs matched!")
		return
	}

	round, err := session.Matching()
	if err != nil {
		t.finishQuiz(chatID, session)
		return
	}
	keyboard := matchingKeyboard(round)
	msg := tgbotapi.NewMessage(chatID, "✔ Matched! Keep going.")
	msg.ReplyMarkup = &keyboard
	sendMessage(t.bot, msg)
}

// sendGraded confirms a terminal grading and offers the next question.
func (t *QuizT) sendGraded(chatID int64, text string) {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		[]tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData("➡️ Next question", "quiz_next"),
			tgbotapi.NewInlineKeyboardButtonData("🚪 Close", "quiz_close"),
		},
	)
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = &keyboard
	sendMessage(t.bot, msg)
}

func (t *QuizT) advance(chatID int64, session *quiz.Session) {
	_, summary, err := session.Advance()
	if err != nil {
		t.finishQuiz(chatID, session)
		return
	}
	if summary != nil {
		t.sendSummary(chatID, *summary)
		t.cache.DeleteSession(chatID)
		return
	}
	t.renderQuestion(chatID, session)
}

func (t *QuizT) finishQuiz(chatID int64, session *quiz.Session) {
	t.sendSummary(chatID, session.Summary())
	session.Close()
	t.cache.DeleteSession(chatID)
}

func (t *QuizT) sendSummary(chatID int64, summary quiz.Summary) {
	text := fmt.Sprintf("🏁 Quiz completed!\n\n✅ Correct: %d\n❌ Wrong: %d\n🎯 Accuracy: %d%%",
		summary.Correct, summary.Wrong, summary.Accuracy)
	if summary.HintUsed {
		text += "\n💡 Hints were used."
	}
	sendMessage(t.bot, tgbotapi.NewMessage(chatID, text))
}

func (t *QuizT) onTick(chatID int64, left int) {
	t.mu.Lock()
	st, ok := t.chats[chatID]
	t.mu.Unlock()
	if !ok || st.msgID == 0 {
		return
	}

	edit := tgbotapi.NewEditMessageText(chatID, st.msgID, st.baseText+speedCountdownLine(left))
	edit.ParseMode = "markdown"
	sendMessage(t.bot, edit)
}

func (t *QuizT) onExpire(chatID int64, g quiz.Grading) {
	t.sendGraded(chatID, "⏰ Time's up! The answer was \""+g.CorrectAnswer+"\"")
}
