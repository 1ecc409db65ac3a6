package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Ss09shubh/mock-test/internal/model"
	"github.com/Ss09shubh/mock-test/internal/util"
	"github.com/Ss09shubh/mock-test/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const redactedCacheTTL = time.Hour

type ExaminationService struct {
	Exams       ExaminationStore
	Courses     CourseStore
	Assignments AssignmentStore
	// Cache for redacted views; examinations are immutable after creation so
	// entries never need invalidation. May be nil.
	Cache *redis.Client
}

func NewExaminationService(exams ExaminationStore, courses CourseStore, assignments AssignmentStore, cache *redis.Client) *ExaminationService {
	return &ExaminationService{
		Exams:       exams,
		Courses:     courses,
		Assignments: assignments,
		Cache:       cache,
	}
}

type OptionRequest struct {
	Text      string `json:"text" binding:"required"`
	IsCorrect *bool  `json:"isCorrect" binding:"required"`
}

type QuestionRequest struct {
	Text    string          `json:"text" binding:"required"`
	Marks   int             `json:"marks" binding:"required,min=1"`
	Options []OptionRequest `json:"options" binding:"required,dive"`
}

type CreateExaminationRequest struct {
	Name            string            `json:"name" binding:"required,max=100"`
	CourseID        string            `json:"courseId" binding:"required"`
	TotalMarks      int               `json:"totalMarks" binding:"required,min=1"`
	PassMarks       int               `json:"passMarks" binding:"required,min=1"`
	DurationMinutes int               `json:"durationMinutes" binding:"required,min=1"`
	Questions       []QuestionRequest `json:"questions" binding:"required,min=1,dive"`
}

// ValidateExamination enforces the authoring invariants: at least one
// question, every question worth at least 1 mark with at least 2 options and
// exactly one correct, question marks summing to totalMarks, passMarks within
// totalMarks. The checks hold here regardless of transport-level binding.
func ValidateExamination(req *CreateExaminationRequest) error {
	if len(req.Questions) == 0 {
		return util.ErrNoQuestions
	}

	sum := 0
	for _, q := range req.Questions {
		if q.Marks < 1 {
			return util.ErrInvalidMarks
		}
		if len(q.Options) < 2 {
			return util.ErrTooFewOptions
		}
		correct := 0
		for _, o := range q.Options {
			if o.IsCorrect != nil && *o.IsCorrect {
				correct++
			}
		}
		if correct != 1 {
			return util.ErrNotOneCorrectOption
		}
		sum += q.Marks
	}

	if sum != req.TotalMarks {
		return util.ErrMarksMismatch
	}
	if req.PassMarks > req.TotalMarks {
		return util.ErrPassMarksTooHigh
	}
	return nil
}

// CreateExamination persists the aggregate; questions and options get stable
// generated identifiers and keep their submitted order.
func (s *ExaminationService) CreateExamination(actorID string, req CreateExaminationRequest) (*model.Examination, error) {
	if _, err := s.Courses.FindByID(req.CourseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	if err := ValidateExamination(&req); err != nil {
		return nil, err
	}

	exam := &model.Examination{
		Name:            req.Name,
		CourseID:        req.CourseID,
		TotalMarks:      req.TotalMarks,
		PassMarks:       req.PassMarks,
		DurationMinutes: req.DurationMinutes,
		CreatedByID:     actorID,
		Questions:       make([]model.Question, len(req.Questions)),
	}

	for i, q := range req.Questions {
		question := model.Question{
			Text:     q.Text,
			Marks:    q.Marks,
			Position: i,
			Options:  make([]model.Option, len(q.Options)),
		}
		for j, o := range q.Options {
			question.Options[j] = model.Option{
				Text:      o.Text,
				IsCorrect: o.IsCorrect != nil && *o.IsCorrect,
				Position:  j,
			}
		}
		exam.Questions[i] = question
	}

	if err := s.Exams.Create(exam); err != nil {
		return nil, err
	}
	return exam, nil
}

// GetFull returns the examination with the answer key. Admin-only path.
func (s *ExaminationService) GetFull(id string) (*model.Examination, error) {
	exam, err := s.Exams.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrExamNotFound
	}
	return exam, err
}

// GetRedactedForMember is the member-facing read: assignment is enforced and
// the view never carries isCorrect.
func (s *ExaminationService) GetRedactedForMember(ctx context.Context, id, memberID string) (*model.RedactedExamination, error) {
	exam, err := s.GetFull(id)
	if err != nil {
		return nil, err
	}

	assigned, err := s.Assignments.Exists(exam.CourseID, memberID)
	if err != nil {
		return nil, err
	}
	if !assigned {
		return nil, util.ErrNotAssigned
	}

	return s.redactedView(ctx, exam), nil
}

// ListForCourse returns a course's examinations, full for admins and
// redacted for assigned members.
func (s *ExaminationService) ListForCourse(ctx context.Context, courseID string, principal *util.Claims) ([]model.Examination, []*model.RedactedExamination, error) {
	if _, err := s.Courses.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, util.ErrCourseNotFound
		}
		return nil, nil, err
	}

	if principal.Role == model.Member {
		assigned, err := s.Assignments.Exists(courseID, principal.UserID)
		if err != nil {
			return nil, nil, err
		}
		if !assigned {
			return nil, nil, util.ErrNotAssigned
		}
	}

	exams, err := s.Exams.FindByCourse(courseID)
	if err != nil {
		return nil, nil, err
	}

	if principal.Role == model.Admin {
		return exams, nil, nil
	}

	views := make([]*model.RedactedExamination, len(exams))
	for i := range exams {
		views[i] = s.redactedView(ctx, &exams[i])
	}
	return nil, views, nil
}

// redactedView serves the projection through the cache when one is wired.
func (s *ExaminationService) redactedView(ctx context.Context, exam *model.Examination) *model.RedactedExamination {
	if s.Cache == nil {
		return model.RedactExamination(exam)
	}

	key := "exam:redacted:" + exam.ID
	if cached, err := s.Cache.Get(ctx, key).Result(); err == nil {
		var view model.RedactedExamination
		if err := json.Unmarshal([]byte(cached), &view); err == nil {
			return &view
		}
	}

	view := model.RedactExamination(exam)
	if payload, err := json.Marshal(view); err == nil {
		if err := s.Cache.Set(ctx, key, payload, redactedCacheTTL).Err(); err != nil {
			logger.Log.Warn("failed to cache redacted examination", zap.String("exam", exam.ID), zap.Error(err))
		}
	}
	return view
}
