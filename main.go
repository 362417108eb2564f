package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/joho/godotenv"

	"travel-registration/catalog"
	"travel-registration/config"
	"travel-registration/database"
	"travel-registration/handlers"
	"travel-registration/middleware"
	"travel-registration/router"
)

func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()

	store := database.New(cfg.WorkbookPath)
	if err := store.Init(); err != nil {
		log.Fatalf("workbook: %v", err)
	}

	engine := html.New("./views", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(middleware.EncryptCookies(cfg.SessionSecret))

	h := handlers.New(catalog.Default(), store, middleware.NewFlash())
	router.SetupRoutes(app, h)

	go func() {
		log.Printf("listening on %s", cfg.ListenAddr)
		if err := app.Listen(cfg.ListenAddr); err != nil {
			log.Fatalf("listen: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Println("shutting down...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
