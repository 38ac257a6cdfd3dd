package main

import (
	"fyi-bot/bot"
	"fyi-bot/handlers"
)

func main() {
	bot.Run(handlers.Register)
}
