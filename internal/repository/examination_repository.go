package repository

import (
	"github.com/Ss09shubh/mock-test/internal/model"

	"gorm.io/gorm"
)

type ExaminationRepository struct {
	DB *gorm.DB
}

func NewExaminationRepository(db *gorm.DB) *ExaminationRepository {
	return &ExaminationRepository{DB: db}
}

// Create persists the whole aggregate (examination, questions, options) in
// one transaction. Questions and options are never written again afterwards.
func (r *ExaminationRepository) Create(exam *model.Examination) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(exam).Error
	})
}

func (r *ExaminationRepository) FindByID(id string) (*model.Examination, error) {
	var exam model.Examination
	err := r.DB.Preload("Course").
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.position asc")
		}).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("options.position asc")
		}).
		First(&exam, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &exam, nil
}

func (r *ExaminationRepository) FindByCourse(courseID string) ([]model.Examination, error) {
	var exams []model.Examination
	err := r.DB.Preload("Course").
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.position asc")
		}).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("options.position asc")
		}).
		Where("course_id = ?", courseID).
		Order("created_at desc").
		Find(&exams).Error
	return exams, err
}
