package reporter

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"go-deadline-crawler/internal/config"
	"go-deadline-crawler/internal/scraper"
)

type TelegramReporter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramReporter(cfg *config.Config) (*TelegramReporter, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	return &TelegramReporter{
		bot:    bot,
		chatID: cfg.TelegramChatID,
	}, nil
}

func (t *TelegramReporter) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "HTML" //use HTML for bold/italic
	_, err := t.bot.Send(msg)
	return err
}

// SendJob posts one accepted job in shareable form.
func (t *TelegramReporter) SendJob(job scraper.Job) error {
	text := fmt.Sprintf(
		"📌 <b>%s</b>\n"+
			"📅 Last date: %s\n",
		job.Title,
		job.LastDate.Format("02/01/2006"),
	)
	if job.YouTubeLink != "" {
		text += fmt.Sprintf("▶️ <a href=\"%s\">Watch on YouTube</a>\n", job.YouTubeLink)
	}
	text += fmt.Sprintf("🔗 <a href=\"%s\">Apply Now</a>", job.Link)
	return t.SendMessage(text)
}

func (t *TelegramReporter) SendStatus(message string) error {
	return t.SendMessage("ℹ️ " + message)
}

func (t *TelegramReporter) SendError(errReq error) error {
	return t.SendMessage(fmt.Sprintf("⚠️ <b>Crawler Error</b>:\n%v", errReq))
}
