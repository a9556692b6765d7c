package main

import (
	"time"

	"github.com/sirupsen/logrus"

	"tastybites/config"
	httpapi "tastybites/internal/api/http"
	"tastybites/internal/service"
	"tastybites/internal/storage"
)

func main() {
	config.Load()

	db := config.MustInitPostgres()
	defer db.Close()

	catalog := storage.NewPostgresCatalog(db)
	if err := catalog.EnsureSchema(); err != nil {
		logrus.Fatal("Failed to ensure schema: ", err)
	}

	seeder := service.NewSeeder(catalog, logrus.StandardLogger())
	if err := seeder.Run(); err != nil {
		logrus.Fatal("Failed to seed catalog: ", err)
	}

	var cache service.MenuCache
	if rdb := config.NewRedis(); rdb != nil {
		cache = storage.NewMenuCache(rdb, 5*time.Minute)
	}

	var publisher service.QueryPublisher
	if writer := config.NewKafkaWriter("menu-queries"); writer != nil {
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	}

	menu := service.NewMenuService(catalog, cache, publisher)
	qr := service.DefaultQRGenerator{BaseURL: config.EnvOr("PUBLIC_URL", "http://localhost:8080")}

	handler := httpapi.NewHandler(menu, qr, logrus.StandardLogger())
	router := httpapi.NewRouter(handler)

	httpapi.StartServer(":"+config.EnvOr("PORT", "8080"), router)
}
