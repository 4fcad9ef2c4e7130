// file: services/main_test.go
package services

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/stansam/EduSafaris-sub001/database"
	"github.com/stansam/EduSafaris-sub001/models"
)

func migrateAll(t *testing.T, db *gorm.DB) {
	t.Helper()
	err := db.AutoMigrate(
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
	require.NoError(t, err)
}

// setupTestDB points the package-level connection at an in-memory sqlite
// database for the duration of one test. A single pooled connection keeps
// the memory database alive and serializes access.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	migrateAll(t, db)

	prev := database.DB
	database.DB = db
	t.Cleanup(func() {
		database.DB = prev
		sqlDB.Close()
	})
	return db
}

// setupFileTestDB backs the test with an on-disk database so multiple
// connections can genuinely contend. BEGIN IMMEDIATE plus a busy timeout is
// the sqlite recipe for serializing concurrent writers without spurious
// "database is locked" failures.
func setupFileTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?_busy_timeout=10000&_txlock=immediate",
		filepath.Join(t.TempDir(), "edusafaris_test.db"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	migrateAll(t, db)

	prev := database.DB
	database.DB = db
	t.Cleanup(func() {
		database.DB = prev
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
	})
	return db
}

func seedUser(t *testing.T, role models.UserRole, email string) *models.User {
	t.Helper()
	user := models.User{
		FirstName: "Test",
		LastName:  string(role),
		Email:     email,
		Password:  "password123",
		Role:      role,
	}
	require.NoError(t, database.DB.Create(&user).Error)
	return &user
}

// seedTrip creates a trip in the given status with a deadline safely in the
// future. Callers override fields on the returned value and Save when a test
// needs something sharper.
func seedTrip(t *testing.T, organizerID uint32, status models.TripStatus, maxParticipants uint) *models.Trip {
	t.Helper()
	now := time.Now()
	trip := models.Trip{
		Title:                "Museum of Natural History",
		Description:          "Annual science trip",
		Destination:          "City Museum",
		StartDate:            now.Add(30 * 24 * time.Hour),
		EndDate:              now.Add(31 * 24 * time.Hour),
		RegistrationDeadline: now.Add(20 * 24 * time.Hour),
		PricePerStudent:      50,
		MinParticipants:      1,
		MaxParticipants:      maxParticipants,
		Status:               status,
		OrganizerID:          organizerID,
		ConsentRequired:      true,
	}
	require.NoError(t, database.DB.Create(&trip).Error)
	return &trip
}

func seedParticipant(t *testing.T, tripID, guardianID uint32, status models.ParticipantStatus) *models.Participant {
	t.Helper()
	p := models.Participant{
		TripID:     tripID,
		GuardianID: guardianID,
		FirstName:  "Alex",
		LastName:   fmt.Sprintf("Student%d", guardianID),
		Status:     status,
	}
	if status == "" {
		p.Status = models.ParticipantStatusPending
	}
	require.NoError(t, database.DB.Create(&p).Error)
	return &p
}

func signParticipationConsent(t *testing.T, participantID uint32) {
	t.Helper()
	_, err := SignConsent(SignConsentInput{
		ParticipantID:      participantID,
		ConsentType:        models.ConsentTypeTripParticipation,
		SignerName:         "Pat Guardian",
		SignerRelationship: "parent",
		SignerEmail:        "pat@example.com",
		TypedSignature:     "Pat Guardian",
		IPAddress:          "192.0.2.1",
	})
	require.NoError(t, err)
}

func reloadTrip(t *testing.T, id uint32) *models.Trip {
	t.Helper()
	var trip models.Trip
	require.NoError(t, database.DB.First(&trip, id).Error)
	return &trip
}

func reloadParticipant(t *testing.T, id uint32) *models.Participant {
	t.Helper()
	var p models.Participant
	require.NoError(t, database.DB.Preload("Consents").First(&p, id).Error)
	return &p
}
