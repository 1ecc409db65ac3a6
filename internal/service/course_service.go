package service

import (
	"errors"
	"time"

	"github.com/Ss09shubh/mock-test/internal/model"
	"github.com/Ss09shubh/mock-test/internal/util"

	"gorm.io/gorm"
)

type CourseService struct {
	Courses     CourseStore
	Assignments AssignmentStore
	Users       UserStore
}

func NewCourseService(courses CourseStore, assignments AssignmentStore, users UserStore) *CourseService {
	return &CourseService{
		Courses:     courses,
		Assignments: assignments,
		Users:       users,
	}
}

type CreateCourseRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"required,max=500"`
}

func (s *CourseService) CreateCourse(actorID string, req CreateCourseRequest) (*model.Course, error) {
	course := &model.Course{
		Name:        req.Name,
		Description: req.Description,
		CreatedByID: actorID,
	}
	if err := s.Courses.Create(course); err != nil {
		return nil, err
	}
	return course, nil
}

// ListCourses returns every course for an admin, assigned courses only for a
// member.
func (s *CourseService) ListCourses(principal *util.Claims) ([]model.Course, error) {
	if principal.Role == model.Admin {
		return s.Courses.FindAll()
	}
	return s.Courses.FindAssignedTo(principal.UserID)
}

func (s *CourseService) GetCourse(id string, principal *util.Claims) (*model.Course, error) {
	course, err := s.Courses.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCourseNotFound
	}
	if err != nil {
		return nil, err
	}

	if principal.Role == model.Member {
		assigned, err := s.Assignments.Exists(course.ID, principal.UserID)
		if err != nil {
			return nil, err
		}
		if !assigned {
			return nil, util.ErrNotAssigned
		}
	}

	return course, nil
}

// AssignCourse grants a member access to a course. A repeat assignment is a
// conflict, both at the application check and at the unique index beneath it.
func (s *CourseService) AssignCourse(courseID, memberID, actorID string) (*model.CourseAssignment, error) {
	if _, err := s.Courses.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	member, err := s.Users.FindByID(memberID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrMemberNotFound
	}
	if err != nil {
		return nil, err
	}
	if member.Role != model.Member {
		return nil, util.ErrNotAMember
	}

	exists, err := s.Assignments.Exists(courseID, memberID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, util.ErrAlreadyAssigned
	}

	assignment := &model.CourseAssignment{
		CourseID:     courseID,
		MemberID:     memberID,
		AssignedByID: actorID,
		AssignedAt:   time.Now(),
	}
	if err := s.Assignments.Create(assignment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ErrAlreadyAssigned
		}
		return nil, err
	}

	return assignment, nil
}
