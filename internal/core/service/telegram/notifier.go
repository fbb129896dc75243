package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"content-collector/logging"
)

// Notifier отправляет итоговые уведомления цикла через бот-аккаунт.
// Без токена или чата работает как заглушка: уведомления просто не уходят.
type Notifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewNotifier(token string, chatID int64) *Notifier {
	if token == "" || chatID == 0 {
		logging.Log("Telegram", logrus.WarnLevel, "Уведомления выключены: не заданы токен бота или чат")
		return &Notifier{}
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		logging.Log("Telegram", logrus.ErrorLevel, fmt.Sprintf("Ошибка подключения к боту Telegram: %v", err))
		return &Notifier{}
	}

	logging.Log("Telegram", logrus.InfoLevel, "Успешное подключение к боту Telegram")
	return &Notifier{bot: bot, chatID: chatID}
}

func (n *Notifier) Send(ctx context.Context, text string) error {
	if n.bot == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := n.bot.Send(tgbotapi.NewMessage(n.chatID, text))
	return err
}
