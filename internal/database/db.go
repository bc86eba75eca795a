package database

import (
	"log"
	"os"
	"time"

	"hnl-console/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(dsn string) {
	var err error

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		log.Printf("trying to connect to DB (attempt %d/%d)...", i, maxAttempts)

		DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			log.Println("connected to DB successfully")
			break
		}

		log.Printf("failed to connect to DB: %v", err)
		time.Sleep(2 * time.Second)
	}

	if err != nil {
		log.Fatalf("failed to connect to db after %d attempts: %v", maxAttempts, err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	createDefaultOperator()
}

// Migrate creates the full 25-table schema. Tests run it against sqlite.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Location{},
		&models.SurfaceLocation{},
		&models.UpsideDownLocation{},
		&models.Person{},
		&models.Researcher{},
		&models.Agent{},
		&models.Victim{},
		&models.PsychicSubject{},
		&models.Entity{},
		&models.Monster{},
		&models.ShadowCreature{},
		&models.MindEntity{},
		&models.Portal{},
		&models.Event{},
		&models.Artifact{},
		&models.Report{},
		&models.ReportDetail{},
		&models.Experiment{},
		&models.EntityAppearance{},
		&models.EventEntity{},
		&models.EventArtifact{},
		&models.VictimRecord{},
		&models.Operator{},
		&models.AuditLog{},
		&models.DTSSnapshot{},
	)
}

// console/API operator only from env/config
func createDefaultOperator() {
	username := os.Getenv("OPS_ADMIN_USERNAME")
	if username == "" {
		username = "overseer@hnl.local"
	}
	password := os.Getenv("OPS_ADMIN_PASSWORD")
	if password == "" {
		password = "Hawkins123!"
	}

	var count int64
	if err := DB.Model(&models.Operator{}).
		Where("role = ?", models.OperatorAdmin).
		Count(&count).Error; err != nil {
		log.Printf("failed to check admin operator: %v", err)
		return
	}
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("failed to hash default operator password: %v", err)
		return
	}

	admin := models.Operator{
		Username:     username,
		PasswordHash: string(hash),
		Role:         models.OperatorAdmin,
	}

	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("failed to create default operator: %v", err)
		return
	}

	log.Printf("created default admin operator: %s", username)
}
