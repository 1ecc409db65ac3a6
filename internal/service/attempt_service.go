package service

import (
	"errors"
	"time"

	"github.com/Ss09shubh/mock-test/internal/model"
	"github.com/Ss09shubh/mock-test/internal/util"

	"gorm.io/gorm"
)

// AttemptService owns the examination attempt state machine:
// in-progress -> completed (terminal). auto-submitted is a second terminal
// state set only by administrative timeout handling; nothing here triggers
// it, the stored duration is advisory.
type AttemptService struct {
	Exams       ExaminationStore
	Assignments AssignmentStore
	Results     ExamResultStore
}

func NewAttemptService(exams ExaminationStore, assignments AssignmentStore, results ExamResultStore) *AttemptService {
	return &AttemptService{
		Exams:       exams,
		Assignments: assignments,
		Results:     results,
	}
}

// Start opens or resumes a member's attempt. It is idempotent while the
// attempt is in progress, fails with ErrExamAlreadyTaken once a terminal
// attempt exists, and never auto-assigns a missing course assignment. The
// returned examination view is always redacted.
func (s *AttemptService) Start(examinationID string, principal *util.Claims) (*model.ExamResult, *model.RedactedExamination, error) {
	exam, err := s.Exams.FindByID(examinationID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, util.ErrExamNotFound
	}
	if err != nil {
		return nil, nil, err
	}

	if principal.Role == model.Member {
		assigned, err := s.Assignments.Exists(exam.CourseID, principal.UserID)
		if err != nil {
			return nil, nil, err
		}
		if !assigned {
			return nil, nil, util.ErrNotAssigned
		}
	}

	existing, err := s.Results.FindByExamAndMember(examinationID, principal.UserID)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		if existing.Status.Terminal() {
			return existing, nil, util.ErrExamAlreadyTaken
		}
		// Idempotent resume: same attempt, no new row.
		return existing, model.RedactExamination(exam), nil
	}

	result := &model.ExamResult{
		ExaminationID: examinationID,
		CourseID:      exam.CourseID,
		MemberID:      principal.UserID,
		StartTime:     time.Now(),
		Status:        model.StatusInProgress,
	}

	if err := s.Results.Create(result); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost a concurrent start race; the winner's row decides.
			return s.resolveRace(examinationID, exam, principal.UserID)
		}
		return nil, nil, err
	}

	return result, model.RedactExamination(exam), nil
}

func (s *AttemptService) resolveRace(examinationID string, exam *model.Examination, memberID string) (*model.ExamResult, *model.RedactedExamination, error) {
	winner, err := s.Results.FindByExamAndMember(examinationID, memberID)
	if err != nil {
		return nil, nil, err
	}
	if winner == nil {
		return nil, nil, util.ErrExamAlreadyTaken
	}
	if winner.Status.Terminal() {
		return winner, nil, util.ErrExamAlreadyTaken
	}
	return winner, model.RedactExamination(exam), nil
}

// Submit grades and completes an in-progress attempt. This is the attempt's
// only mutation; the conditional update in the store makes a concurrent
// double submit lose with ErrAttemptNotInProgress.
func (s *AttemptService) Submit(examinationID, resultID string, submitted []AnswerSubmission, principal *util.Claims) (*model.ExamResult, error) {
	result, err := s.Results.FindByID(resultID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrResultNotFound
	}
	if err != nil {
		return nil, err
	}

	// The attempt must belong to the examination being submitted.
	if result.ExaminationID != examinationID {
		return nil, util.ErrResultNotFound
	}

	if result.MemberID != principal.UserID {
		return nil, util.ErrNotOwner
	}
	if result.Status != model.StatusInProgress {
		return nil, util.ErrAttemptNotInProgress
	}

	exam, err := s.Exams.FindByID(result.ExaminationID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrExamNotFound
	}
	if err != nil {
		return nil, err
	}

	answers, total := GradeSubmission(exam, submitted)

	result.TotalMarksObtained = total
	result.IsPassed = total >= exam.PassMarks

	if err := s.Results.Complete(result, answers); err != nil {
		return nil, err
	}

	return result, nil
}
