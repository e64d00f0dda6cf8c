package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/alovak/paypal-gateway/listener"
	"github.com/alovak/paypal-gateway/paypal"
	"github.com/joho/godotenv"
	"golang.org/x/exp/slog"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}

	cfg, err := listener.Load()
	if err != nil {
		log.Fatalf("loading config: %v\n", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout))

	client := paypal.NewClient(paypal.NewHTTPTransport(nil))
	if err := client.SetAPICredentials(cfg.Paypal.Credentials()); err != nil {
		logger.Error("configuring paypal client", "err", err)
		os.Exit(1)
	}

	app := listener.NewApp(logger, cfg, client)
	if err := app.Start(); err != nil {
		logger.Error("starting app", "err", err)
		os.Exit(1)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	app.Shutdown()
}
