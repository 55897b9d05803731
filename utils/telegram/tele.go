package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
)

// Notifier carries the bot token so callers only pick a channel.
type Notifier struct {
	BotToken string
}

func (n Notifier) Notify(message string, channelId int64) {
	SendTelegram(n.BotToken, message, channelId)
}

func SendTelegram(botToken, message string, channelId int64) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		fmt.Println(err)
		return
	}

	_, err = bot.Send(tgbotapi.NewMessage(channelId, message))
	if err != nil {
		fmt.Println(err)
	}
}
