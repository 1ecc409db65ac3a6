package repository

import (
	"errors"
	"time"

	"github.com/Ss09shubh/mock-test/internal/model"
	"github.com/Ss09shubh/mock-test/internal/util"

	"gorm.io/gorm"
)

type ExamResultRepository struct {
	DB *gorm.DB
}

func NewExamResultRepository(db *gorm.DB) *ExamResultRepository {
	return &ExamResultRepository{DB: db}
}

// Create relies on the unique (examination_id, member_id) index: the loser of
// a concurrent start race gets gorm.ErrDuplicatedKey.
func (r *ExamResultRepository) Create(result *model.ExamResult) error {
	return r.DB.Create(result).Error
}

func (r *ExamResultRepository) FindByID(id string) (*model.ExamResult, error) {
	var result model.ExamResult
	err := r.DB.Preload("Examination").
		Preload("Course").
		Preload("Member").
		Preload("Answers").
		First(&result, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *ExamResultRepository) FindByExamAndMember(examinationID, memberID string) (*model.ExamResult, error) {
	var result model.ExamResult
	err := r.DB.Preload("Answers").
		Where("examination_id = ? AND member_id = ?", examinationID, memberID).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Complete performs the attempt's single mutation: a conditional update
// guarded on status = in-progress plus the answer rows, in one transaction.
// A concurrent double submit loses the guard and gets ErrAttemptNotInProgress.
func (r *ExamResultRepository) Complete(result *model.ExamResult, answers []model.ExamAnswer) error {
	now := time.Now()
	return r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.ExamResult{}).
			Where("id = ? AND status = ?", result.ID, model.StatusInProgress).
			Updates(map[string]interface{}{
				"total_marks_obtained": result.TotalMarksObtained,
				"is_passed":            result.IsPassed,
				"end_time":             now,
				"status":               model.StatusCompleted,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return util.ErrAttemptNotInProgress
		}

		for i := range answers {
			answers[i].ResultID = result.ID
		}
		if len(answers) > 0 {
			if err := tx.Create(&answers).Error; err != nil {
				return err
			}
		}

		result.EndTime = &now
		result.Status = model.StatusCompleted
		result.Answers = answers
		return nil
	})
}

func (r *ExamResultRepository) listCompleted(where string, args ...interface{}) ([]model.ExamResult, error) {
	var results []model.ExamResult
	q := r.DB.Preload("Examination").
		Preload("Course").
		Preload("Member").
		Where("status IN ?", []model.ExamResultStatus{model.StatusCompleted, model.StatusAutoSubmitted})
	if where != "" {
		q = q.Where(where, args...)
	}
	err := q.Order("created_at desc").Find(&results).Error
	return results, err
}

func (r *ExamResultRepository) FindCompleted() ([]model.ExamResult, error) {
	return r.listCompleted("")
}

func (r *ExamResultRepository) FindCompletedByMember(memberID string) ([]model.ExamResult, error) {
	return r.listCompleted("member_id = ?", memberID)
}

func (r *ExamResultRepository) FindCompletedByCourse(courseID string) ([]model.ExamResult, error) {
	return r.listCompleted("course_id = ?", courseID)
}
