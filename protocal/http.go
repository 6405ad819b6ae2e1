package protocal

import (
	"flag"
	"log"
	"os"
	"os/signal"

	"wedding-line-bot/configs"
	httpAdapter "wedding-line-bot/internal/adapters/input/http"
	"wedding-line-bot/internal/adapters/output/cards"
	lineAdapter "wedding-line-bot/internal/adapters/output/line"
	"wedding-line-bot/internal/adapters/output/memory"
	"wedding-line-bot/internal/adapters/output/postgres"
	"wedding-line-bot/internal/application"
	"wedding-line-bot/pkg/database_driver/gorm"

	swagger "github.com/arsmn/fiber-swagger/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	gormDB "gorm.io/gorm"

	"github.com/sirupsen/logrus"
)

type config struct {
	ENV string `mapstructure:"env"`
}

// ServeHTTP func
func ServeHTTP() error {
	app := fiber.New()
	var cfg config
	flag.StringVar(&cfg.ENV, "env", "", "the environment to use")
	flag.Parse()
	configs.InitViper("./configs", cfg.ENV)
	logrus.Info(configs.GetViper().Env)
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept,Authorization",
	}))

	if configs.GetViper().Line.ChannelSecret == "" || configs.GetViper().Line.ChannelToken == "" {
		logrus.Warn("LINE channel credentials are missing, webhook handling will be degraded")
	}

	// The bot keeps serving its probes and static content while postgres is
	// unreachable; guest persistence degrades to failure replies until the
	// store comes back.
	var dbPostgres *gormDB.DB
	dbConGorm, err := gorm.ConnectToPostgreSQL(
		configs.GetViper().Postgres.Host,
		configs.GetViper().Postgres.Port,
		configs.GetViper().Postgres.Username,
		configs.GetViper().Postgres.Password,
		configs.GetViper().Postgres.DbName,
		configs.GetViper().Postgres.SSLMode,
	)
	if err != nil {
		logrus.Errorf("Failed to connect postgres, running degraded: %v", err)
	} else {
		dbPostgres = dbConGorm.Postgres
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		for range c {
			log.Println("Gracefull shut down ...")
			if dbPostgres != nil {
				gorm.DisconnectPostgres(dbPostgres)
			}
			err := app.Shutdown()
			if err != nil {
				log.Println("Error when shutdown server: ", err)
			}
		}
	}()

	// Wire up the hexagonal architecture layers
	// Output adapters
	guestRepo := postgres.NewGuestRepository(dbPostgres)
	sessionStore := memory.NewMemorySessionStore()
	cardSource := cards.NewFileCardSource(configs.GetViper().Wedding.CardsPath)
	lineClient, err := lineAdapter.NewLineClientAdapter(configs.GetViper().Line.ChannelToken)
	if err != nil {
		logrus.Fatalf("Failed to create LINE client: %v", err)
	}

	// Application services (use cases)
	guestSrv := application.NewGuestService(guestRepo)
	lineWebhookSrv := application.NewLineWebhookService(lineClient, guestRepo, sessionStore, cardSource,
		application.FlowLimits{
			MinNameLength: configs.GetViper().Wedding.MinNameLength,
			MaxGuests:     configs.GetViper().Wedding.MaxGuests,
		})

	// Input adapters (HTTP handlers)
	hdl := httpAdapter.New(guestSrv, dbPostgres)
	lineWebhookHdl := httpAdapter.NewLineWebhookHandler(lineWebhookSrv, configs.GetViper().Line.ChannelSecret)

	app.Get("/swagger/*", swagger.HandlerDefault) // default
	app.Get("/", hdl.Alive)
	app.Get("/health", hdl.HealthCheck)

	magnolia := app.Group("/v1/api")
	{
		magnolia.Get("/confirmations", hdl.GetConfirmations)
		magnolia.Get("/wishes", hdl.GetWellWishes)
	}

	// LINE webhook endpoint
	webhook := app.Group("/webhook")
	{
		webhook.Post("/line", lineWebhookHdl.HandleWebhook)
	}

	err = app.Listen(":" + configs.GetViper().App.Port)
	if err != nil {
		return err
	}

	logrus.Println("Listerning on port: ", configs.GetViper().App.Port)
	return nil
}
