package service

import "github.com/Ss09shubh/mock-test/internal/model"

// Storage interfaces consumed by the services. The gorm repositories satisfy
// them; tests exercise the exam lifecycle invariants against in-memory fakes.

type UserStore interface {
	Create(user *model.User) error
	FindByID(id string) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	FindMembers() ([]model.User, error)
}

type CourseStore interface {
	Create(course *model.Course) error
	FindByID(id string) (*model.Course, error)
	FindAll() ([]model.Course, error)
	FindAssignedTo(memberID string) ([]model.Course, error)
}

type AssignmentStore interface {
	Create(assignment *model.CourseAssignment) error
	Exists(courseID, memberID string) (bool, error)
}

type ExaminationStore interface {
	Create(exam *model.Examination) error
	FindByID(id string) (*model.Examination, error)
	FindByCourse(courseID string) ([]model.Examination, error)
}

type ExamResultStore interface {
	Create(result *model.ExamResult) error
	FindByID(id string) (*model.ExamResult, error)
	FindByExamAndMember(examinationID, memberID string) (*model.ExamResult, error)
	Complete(result *model.ExamResult, answers []model.ExamAnswer) error
	FindCompleted() ([]model.ExamResult, error)
	FindCompletedByMember(memberID string) ([]model.ExamResult, error)
	FindCompletedByCourse(courseID string) ([]model.ExamResult, error)
}
