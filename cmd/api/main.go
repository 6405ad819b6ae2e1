package main

// @title Wedding LINE Bot APIs
// @version 1.0
// @description Webhook and guest-list APIs for the wedding LINE bot.

// @host localhost:9089
// @BasePath /
// @schemes http
import (
	protocol "wedding-line-bot/protocal"
	_ "wedding-line-bot/docs"

	_ "github.com/arsmn/fiber-swagger/v2"
	"github.com/sirupsen/logrus"
)

func main() {
	err := protocol.ServeHTTP()
	if err != nil {
		logrus.Println(err)
	}
}
