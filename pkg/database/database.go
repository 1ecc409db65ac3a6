package database

import (
	"fmt"
	"log"

	"github.com/Ss09shubh/mock-test/internal/config"
	"github.com/Ss09shubh/mock-test/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
		cfg.Database.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		// Duplicate-key errors must surface as gorm.ErrDuplicatedKey so the
		// services can turn them into conflicts.
		TranslateError: true,
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if shouldMigrate(cfg) {
		err = db.AutoMigrate(
			&model.User{},
			&model.Course{},
			&model.CourseAssignment{},
			&model.Examination{},
			&model.Question{},
			&model.Option{},
			&model.ExamResult{},
			&model.ExamAnswer{},
		)

		if err != nil {
			return nil, err
		}

		log.Println("Database migration completed")
	}

	return db, nil
}

// shouldMigrate runs migrations automatically outside release mode; in
// release mode the -migrate / -migrate-only flags opt in explicitly.
func shouldMigrate(cfg *config.Config) bool {
	return cfg.Server.Mode != "release" || cfg.ForceMigrate
}

// SeedAdmin creates the bootstrap administrator account when none exists.
// Members can only be created by an admin, so a fresh database needs one.
func SeedAdmin(db *gorm.DB, admin *config.AdminConfig) error {
	if admin.Email == "" || admin.Password == "" {
		return nil
	}

	var count int64
	if err := db.Model(&model.User{}).Where("role = ?", model.Admin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &model.User{
		Name:     admin.Name,
		Email:    admin.Email,
		Password: string(hashed),
		Role:     model.Admin,
	}
	if err := db.Create(user).Error; err != nil {
		return err
	}

	log.Printf("Seeded bootstrap admin account %s", admin.Email)
	return nil
}
