package service

import (
	"errors"

	"github.com/Ss09shubh/mock-test/internal/model"
	"github.com/Ss09shubh/mock-test/internal/util"

	"gorm.io/gorm"
)

// ResultService is the read side over completed attempts. In-progress
// attempts never appear here.
type ResultService struct {
	Results ExamResultStore
}

func NewResultService(results ExamResultStore) *ResultService {
	return &ResultService{Results: results}
}

func (s *ResultService) ListResults(principal *util.Claims) ([]model.ExamResult, error) {
	if principal.Role == model.Admin {
		return s.Results.FindCompleted()
	}
	return s.Results.FindCompletedByMember(principal.UserID)
}

func (s *ResultService) GetResult(id string, principal *util.Claims) (*model.ExamResult, error) {
	result, err := s.Results.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrResultNotFound
	}
	if err != nil {
		return nil, err
	}

	if principal.Role == model.Member && result.MemberID != principal.UserID {
		return nil, util.ErrNotOwner
	}

	return result, nil
}

// ListByMember and ListByCourse are admin projections; an unknown id yields
// an empty list, not an error.
func (s *ResultService) ListByMember(memberID string) ([]model.ExamResult, error) {
	return s.Results.FindCompletedByMember(memberID)
}

func (s *ResultService) ListByCourse(courseID string) ([]model.ExamResult, error) {
	return s.Results.FindCompletedByCourse(courseID)
}
