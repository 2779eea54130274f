// Command seed creates the marketplace tables and fills them with demo
// rows for local development.
package main

import (
	"time"

	"motoradmin/internal/config"
	"motoradmin/internal/logger"
	"motoradmin/internal/models"
	"motoradmin/internal/repositories"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func main() {
	config.LoadEnv()
	cfg := config.Load()
	log := logger.Init(cfg.Env, cfg.LogLevel, cfg.LogFormat)
	defer logger.Sync()

	db, err := repositories.OpenDB(repositories.DBConfig{
		DSN:             cfg.DatabaseURL,
		MaxIdleConns:    2,
		MaxOpenConns:    2,
		ConnMaxLifetime: time.Hour,
		ConnMaxIdleTime: time.Minute,
	}, log)
	if err != nil {
		log.Fatal("database unavailable", zap.Error(err))
	}
	defer func() {
		if err := repositories.CloseDB(db); err != nil {
			log.Warn("failed to close database connection", zap.Error(err))
		}
	}()

	if err := repositories.Migrate(db); err != nil {
		log.Fatal("failed to migrate", zap.Error(err))
	}

	var existing int64
	if err := db.Model(&models.UserProfile{}).Count(&existing).Error; err != nil {
		log.Fatal("failed to count profiles", zap.Error(err))
	}
	if existing > 0 {
		log.Info("profiles already present, skipping seed", zap.Int64("profiles", existing))
		return
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		return seed(tx, time.Now().UTC())
	}); err != nil {
		log.Fatal("failed to seed demo data", zap.Error(err))
	}
	log.Info("demo data created")
}

func seed(tx *gorm.DB, now time.Time) error {
	approved := models.VerificationApproved
	users := []models.UserProfile{
		{ID: uuid.NewString(), Email: "arjun.mehta@example.com", FullName: strPtr("Arjun Mehta"), Phone: strPtr("+91 98200 11111"), CreatedAt: now.Add(-72 * time.Hour)},
		{ID: uuid.NewString(), Email: "priya.nair@example.com", FullName: strPtr("Priya Nair"), CreatedAt: now.Add(-48 * time.Hour),
			IsVerified: true, VerificationStatus: &approved, VerifiedAt: &now},
		{ID: uuid.NewString(), Email: "rahul.singh@example.com", CreatedAt: now.Add(-24 * time.Hour)},
	}
	if err := tx.Create(&users).Error; err != nil {
		return err
	}

	cars := []models.CarListing{
		{
			ID: uuid.NewString(), UserID: users[0].ID, Brand: "Maruti Suzuki", Model: "Swift", Year: 2019,
			Price: 550000, Mileage: intPtr(42000), FuelType: "Petrol", Transmission: "Manual", Condition: "Used",
			Location: "Mumbai", OwnerName: "Arjun Mehta", OwnerPhone: "+91 98200 11111", OwnerEmail: users[0].Email,
			Images: pq.StringArray{"https://picsum.photos/seed/swift/800/600"}, Features: pq.StringArray{"ABS", "Airbags"},
			Views: intPtr(128), CreatedAt: now.Add(-70 * time.Hour),
		},
		{
			ID: uuid.NewString(), UserID: users[1].ID, Brand: "Toyota", Model: "Fortuner", Year: 2022,
			Price: 38500000, FuelType: "Diesel", Transmission: "Automatic", Condition: "Used",
			Location: "Bengaluru", OwnerName: "Priya Nair", OwnerPhone: "+91 98450 22222", OwnerEmail: users[1].Email,
			Images: pq.StringArray{"https://picsum.photos/seed/fortuner/800/600"}, IsFeatured: true, IsVerified: true,
			Views: intPtr(940), CreatedAt: now.Add(-40 * time.Hour),
		},
		{
			ID: uuid.NewString(), UserID: users[1].ID, Brand: "Hyundai", Model: "Creta", Year: 2020,
			Price: 1250000, FuelType: "Petrol", Transmission: "Automatic", Condition: "Used",
			Location: "Bengaluru", OwnerName: "Priya Nair", OwnerPhone: "+91 98450 22222", OwnerEmail: users[1].Email,
			Images: pq.StringArray{}, IsSold: true, CreatedAt: now.Add(-30 * time.Hour),
		},
	}
	if err := tx.Create(&cars).Error; err != nil {
		return err
	}

	requests := []models.VerificationRequest{
		{
			ID: uuid.NewString(), UserID: users[0].ID, DocumentType: "Aadhaar Card",
			FrontImageURL: "https://picsum.photos/seed/aadhaar-front/800/500",
			BackImageURL:  "https://picsum.photos/seed/aadhaar-back/800/500",
			Status:        models.VerificationPending, CreatedAt: now.Add(-12 * time.Hour),
		},
		{
			ID: uuid.NewString(), UserID: users[1].ID, DocumentType: "Driving License",
			FrontImageURL: "https://picsum.photos/seed/dl-front/800/500",
			BackImageURL:  "https://picsum.photos/seed/dl-back/800/500",
			Status:        models.VerificationApproved, CreatedAt: now.Add(-46 * time.Hour),
		},
		{
			ID: uuid.NewString(), UserID: users[2].ID, DocumentType: "PAN Card",
			FrontImageURL: "https://picsum.photos/seed/pan-front/800/500",
			BackImageURL:  "https://picsum.photos/seed/pan-back/800/500",
			Status:        models.VerificationPending, CreatedAt: now.Add(-2 * time.Hour),
		},
	}
	return tx.Create(&requests).Error
}
