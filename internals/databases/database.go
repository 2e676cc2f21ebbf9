package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	adminModel "github.com/prabhatlnct2008/digipath/internals/features/admins/model"
	recordingModel "github.com/prabhatlnct2008/digipath/internals/features/recordings/model"
	sessionModel "github.com/prabhatlnct2008/digipath/internals/features/sessions/model"
	speakerModel "github.com/prabhatlnct2008/digipath/internals/features/speakers/model"
	tagModel "github.com/prabhatlnct2008/digipath/internals/features/tags/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("[DB] connecting to PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=digipath&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // PgBouncer friendly
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("[DB] connection failed: %v", err)
	}

	DB = db
	log.Println("[DB] connected")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("[DB] pool tuning skipped: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)
}

// AutoMigrate keeps the schema in sync when DB_AUTOMIGRATE=true. Production
// deployments run migrations out-of-band and leave this off.
func AutoMigrate() {
	if getenv("DB_AUTOMIGRATE", "false") != "true" {
		return
	}
	log.Println("[DB] running automigrate...")
	if err := DB.AutoMigrate(
		&adminModel.AdminUserModel{},
		&adminModel.TokenBlacklistModel{},
		&speakerModel.SpeakerModel{},
		&tagModel.TagModel{},
		&sessionModel.SessionModel{},
		&recordingModel.RecordingModel{},
	); err != nil {
		log.Fatalf("[DB] automigrate failed: %v", err)
	}
	log.Println("[DB] automigrate done")
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
