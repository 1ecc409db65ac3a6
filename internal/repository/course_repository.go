package repository

import (
	"github.com/Ss09shubh/mock-test/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

func (r *CourseRepository) FindByID(id string) (*model.Course, error) {
	var course model.Course
	err := r.DB.Preload("CreatedBy").First(&course, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *CourseRepository) FindAll() ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Preload("CreatedBy").Order("created_at desc").Find(&courses).Error
	return courses, err
}

// FindAssignedTo returns the courses a member has an assignment for.
func (r *CourseRepository) FindAssignedTo(memberID string) ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Preload("CreatedBy").
		Joins("JOIN course_assignments ca ON ca.course_id = courses.id").
		Where("ca.member_id = ?", memberID).
		Order("courses.created_at desc").
		Find(&courses).Error
	return courses, err
}
