package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/protexflow/protexflow-backend/config"
	"github.com/protexflow/protexflow-backend/routes"
	"github.com/protexflow/protexflow-backend/services"
)

func main() {
	// .env yükle
	if err := godotenv.Load(); err != nil {
		log.Println(".env dosyası bulunamadı")
	}

	config.InitDB()

	// Termin zamanlayıcısı process girişinde kurulur, testler kendi
	// örneklerini oluşturur
	scheduler := services.NewDeadlineScheduler(config.DB)
	if os.Getenv("APP_ENV") != "test" {
		scheduler.Start(config.ProductionCheckInterval())
	}

	r := gin.Default()

	// CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r = routes.SetupRouter(r, config.DB, scheduler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		log.Println("Sunucu çalışıyor, port:" + port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Sunucu başlatılamadı:", err)
		}
	}()

	// SIGINT/SIGTERM: önce zamanlayıcıyı durdur, sonra sunucuyu ve DB'yi kapat
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Kapatma sinyali alındı")

	scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Println("Sunucu kapatma hatası:", err)
	}

	if sqlDB, err := config.DB.DB(); err == nil {
		sqlDB.Close()
	}
	log.Println("Sunucu kapatıldı")
}
