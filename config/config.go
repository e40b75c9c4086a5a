package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/protexflow/protexflow-backend/models"
)

var DB *gorm.DB

func InitDB() {
	// Bağlantı bilgilerini ortam değişkenlerinden al
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Europe/Istanbul",
		dbHost, dbUser, dbPass, dbName, dbPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Veritabanına bağlanılamadı:", err)
	}

	DB = db

	// Connection pool ayarları
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("gorm üzerinden sql.DB alınamadı:", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	err = DB.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.Order{},
		&models.Sample{},
		&models.ProductionTracking{},
		&models.ProductionStageUpdate{},
		&models.Notification{},
	)
	if err != nil {
		log.Fatal("autoMigrate hatası: ", err)
	}
	log.Println("postgreSQL bağlandı ve migrate edildi")
}

// ProductionCheckInterval termin kontrol döngüsünün periyodunu döner.
// PRODUCTION_CHECK_INTERVAL dakika cinsindendir, varsayılan 60.
func ProductionCheckInterval() time.Duration {
	v := os.Getenv("PRODUCTION_CHECK_INTERVAL")
	if v == "" {
		return 60 * time.Minute
	}
	minutes, err := strconv.Atoi(v)
	if err != nil || minutes <= 0 {
		log.Printf("Geçersiz PRODUCTION_CHECK_INTERVAL değeri %q, 60 dakika kullanılıyor", v)
		return 60 * time.Minute
	}
	return time.Duration(minutes) * time.Minute
}
