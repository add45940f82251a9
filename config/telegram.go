package config

import (
	"fmt"
	"os"
	"strconv"
)

// TelegramConfig enables the optional broadcast digest notifier. When no
// token is configured, GetTelegramConfig returns (nil, nil) and no digests
// are sent.
type TelegramConfig struct {
	BotToken string
	ChatID   int64
}

func GetTelegramConfig() (*TelegramConfig, error) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	chatID := os.Getenv("TELEGRAM_CHAT_ID")

	if token == "" && chatID == "" {
		return nil, nil
	}
	if token == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN must be set when TELEGRAM_CHAT_ID is set")
	}
	if chatID == "" {
		return nil, fmt.Errorf("TELEGRAM_CHAT_ID must be set when TELEGRAM_BOT_TOKEN is set")
	}

	chatIDVal, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TELEGRAM_CHAT_ID: %w", err)
	}

	return &TelegramConfig{
		BotToken: token,
		ChatID:   chatIDVal,
	}, nil
}
