package adapters

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/laiba2005shahzad/BuildWAI/application/ports/outbound"
	"github.com/laiba2005shahzad/BuildWAI/config"
)

type telegramNotifier struct {
	logger         outbound.LoggerPort
	bot            *tgbotapi.BotAPI
	telegramConfig *config.TelegramConfig
}

// NewTelegramNotifier posts broadcast digests to a Telegram chat.
func NewTelegramNotifier(logger outbound.LoggerPort, telegramConfig *config.TelegramConfig) (outbound.NotifierPort, error) {
	bot, err := tgbotapi.NewBotAPI(telegramConfig.BotToken)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &telegramNotifier{
		logger:         logger,
		bot:            bot,
		telegramConfig: telegramConfig,
	}, nil
}

func (t *telegramNotifier) PublishDigest(ctx context.Context, digest string) error {
	if digest == "" {
		return nil
	}

	msg := tgbotapi.NewMessage(t.telegramConfig.ChatID, digest)
	if _, err := t.bot.Send(msg); err != nil {
		return fmt.Errorf("send telegram digest: %w", err)
	}

	t.logger.Debug("Broadcast digest sent to Telegram")
	return nil
}
