package service

import (
	"errors"

	"github.com/Ss09shubh/mock-test/internal/model"
	"github.com/Ss09shubh/mock-test/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	Users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{Users: users}
}

type CreateMemberRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Gender   string `json:"gender" binding:"omitempty,oneof=male female other"`
	Phone    string `json:"phone" binding:"omitempty,max=20"`
	Password string `json:"password" binding:"required,min=8"`
}

// CreateMember creates a member account on behalf of an admin.
func (s *UserService) CreateMember(actorID string, req CreateMemberRequest) (*model.User, error) {
	_, err := s.Users.FindByEmail(req.Email)
	if err == nil {
		return nil, util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	member := &model.User{
		Name:        req.Name,
		Email:       req.Email,
		Gender:      req.Gender,
		Phone:       req.Phone,
		Password:    string(hashedPassword),
		Role:        model.Member,
		CreatedByID: actorID,
	}

	if err := s.Users.Create(member); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ErrEmailRegistered
		}
		return nil, err
	}
	return member, nil
}

func (s *UserService) ListMembers() ([]model.User, error) {
	return s.Users.FindMembers()
}

func (s *UserService) GetMember(id string) (*model.User, error) {
	user, err := s.Users.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrMemberNotFound
	}
	if err != nil {
		return nil, err
	}
	if user.Role != model.Member {
		return nil, util.ErrNotAMember
	}
	return user, nil
}
