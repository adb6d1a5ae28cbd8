package main

import (
	"embed"
	"flag"
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	"mealdesk/internal/config"
	"mealdesk/internal/handler"
	"mealdesk/internal/logger"
	"mealdesk/internal/model"
	"mealdesk/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

//go:embed web/*
var staticFS embed.FS

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "err", err)
		os.Exit(1)
	}

	db, err := cfg.OpenGormDB()
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	if err := migrate(db); err != nil {
		slog.Error("db migrate failed", "err", err)
		os.Exit(1)
	}

	guestH := handler.NewGuestHandler(service.NewGuestService(db))
	mealH := handler.NewMealHandler(service.NewMealService(db))

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	api := r.Group("/api")
	api.GET("/guests", guestH.Search)
	api.POST("/meals", mealH.Record)
	api.GET("/totals", mealH.Totals)

	webFS, _ := fs.Sub(staticFS, "web")
	r.NoRoute(gin.WrapH(http.FileServer(http.FS(webFS))))

	slog.Info("server starting", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
}

// migrate creates the tables plus the partial unique index backing the
// one-guest-meal-per-day rule, so a lost check-then-insert race surfaces
// as a duplicate-key error instead of a second row.
func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Guest{}, &model.MealAttendance{}); err != nil {
		return err
	}
	return db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS uk_guest_meal_per_day
		ON meal_attendance (guest_id, served_on)
		WHERE meal_type = 'guest'`).Error
}
