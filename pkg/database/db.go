package database

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// TurnoRow represents the turnos table for the database-backed variant. The
// assignees are stored as the JSON document the API exchanges, in either of
// its two formats.
type TurnoRow struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Fecha      string    `gorm:"index;not null" json:"fecha"`
	HoraInicio string    `gorm:"not null" json:"horaInicio"`
	HoraFin    string    `json:"horaFin"`
	Actividad  string    `gorm:"not null" json:"actividad"`
	Personas   string    `gorm:"not null" json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}

// Event represents the events table: the commission's dated happenings used
// to anchor the schedule.
type Event struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Nombre   string    `gorm:"not null" json:"nombre"`
	StartsAt time.Time `gorm:"index;not null" json:"starts_at"`
}

// SaveAudit represents the save_audits table: one row per calendar date
// counting batch saves and the turnos they wrote.
type SaveAudit struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Date       string `gorm:"uniqueIndex;not null" json:"date"`
	SaveCount  int    `gorm:"default:0" json:"save_count"`
	TurnoCount int    `gorm:"default:0" json:"turno_count"`
}

// MasterUser represents the master_users table for the admin login.
type MasterUser struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"unique;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// InitDB initializes the database connection and migrates the schema
func InitDB() *gorm.DB {
	var db *gorm.DB
	var err error

	dsn := os.Getenv("DATABASE_URL")
	if dsn != "" {
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	} else {
		dbPath := os.Getenv("DATA_PATH")
		if dbPath == "" {
			dbPath = "turnos.db"
		}
		db, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	}

	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	// Auto Migration
	db.AutoMigrate(&TurnoRow{}, &Event{}, &SaveAudit{}, &MasterUser{})

	return db
}
