// file: database/connect.go
package database

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/stansam/EduSafaris-sub001/models"
)

var DB *gorm.DB

func dsn() string {
	if v := os.Getenv("DB_DSN"); v != "" {
		return v
	}
	return "root:123456@tcp(localhost:3306)/edusafaris?charset=utf8mb4&parseTime=True&loc=Local"
}

func Connect() {
	var err error
	DB, err = gorm.Open(mysql.Open(dsn()), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		log.Fatal("Failed to get underlying sql.DB:", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	// MySQL closes idle connections after wait_timeout; recycle ours before that.
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Database connection successfully established and connection pool configured.")
}

func MigrateTables() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Trip{},
		&models.Participant{},
		&models.Consent{},
		&models.Notification{},
		&models.Vendor{},
		&models.Booking{},
		&models.Payment{},
		&models.ActivityLog{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
	log.Println("Database migration completed.")
}
