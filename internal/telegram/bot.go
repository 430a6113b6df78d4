package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"go-career-watcher/internal/models"
)

// Telegram rejects messages above 4096 chars; stay safely under it when
// chunking digests.
const messageCharLimit = 4000

type Bot struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

func NewBot(token string, chatID int64) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}
	return &Bot{
		api:    api,
		chatID: chatID,
	}, nil
}

// SendDigest announces added and removed listings for one crawl, split into
// as many messages as the character limit requires.
func (b *Bot) SendDigest(tag string, added, removed models.Collection) error {
	var lines []string
	lines = append(lines, fmt.Sprintf("📣 [%s] %d new, %d removed", tag, len(added), len(removed)))

	for _, l := range added {
		lines = append(lines, fmt.Sprintf("+ %s — %s\n%s", l.ID, l.Title, l.Link))
	}
	for _, l := range removed {
		lines = append(lines, fmt.Sprintf("- %s — %s", l.ID, l.Title))
	}

	for _, chunk := range chunkLines(lines, messageCharLimit) {
		msg := tgbotapi.NewMessage(b.chatID, chunk)
		msg.DisableWebPagePreview = true
		if _, err := b.api.Send(msg); err != nil {
			return fmt.Errorf("failed to send digest: %w", err)
		}
	}
	return nil
}

func (b *Bot) SendStatus(text string) error {
	msg := tgbotapi.NewMessage(b.chatID, text)
	_, err := b.api.Send(msg)
	return err
}

// chunkLines packs lines into messages no longer than limit. A single line
// longer than the limit is sent alone, truncated by Telegram if need be.
func chunkLines(lines []string, limit int) []string {
	var chunks []string
	var current strings.Builder

	for _, line := range lines {
		if current.Len() > 0 && current.Len()+len(line)+1 > limit {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString("\n")
		}
		current.WriteString(line)
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}
	return chunks
}
