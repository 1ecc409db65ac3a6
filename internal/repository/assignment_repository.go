package repository

import (
	"github.com/Ss09shubh/mock-test/internal/model"

	"gorm.io/gorm"
)

type AssignmentRepository struct {
	DB *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{DB: db}
}

// Create relies on the unique (course_id, member_id) index: a duplicate
// assignment comes back as gorm.ErrDuplicatedKey, not a silent overwrite.
func (r *AssignmentRepository) Create(assignment *model.CourseAssignment) error {
	return r.DB.Create(assignment).Error
}

func (r *AssignmentRepository) Exists(courseID, memberID string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.CourseAssignment{}).
		Where("course_id = ? AND member_id = ?", courseID, memberID).
		Count(&count).Error
	return count > 0, err
}
