package service

import (
	"time"

	"github.com/Ss09shubh/mock-test/internal/model"
	"github.com/Ss09shubh/mock-test/internal/util"

	"gorm.io/gorm"
)

// In-memory stores for service tests. They mirror the repository contracts:
// gorm.ErrRecordNotFound on lookup misses and gorm.ErrDuplicatedKey on
// unique index conflicts.

type fakeUserStore struct {
	users map[string]*model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*model.User{}}
}

func (f *fakeUserStore) Create(user *model.User) error {
	if user.ID == "" {
		user.ID = model.GenerateUUID()
	}
	for _, u := range f.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserStore) FindByID(id string) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (f *fakeUserStore) FindByEmail(email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserStore) FindMembers() ([]model.User, error) {
	members := []model.User{}
	for _, u := range f.users {
		if u.Role == model.Member {
			members = append(members, *u)
		}
	}
	return members, nil
}

type fakeCourseStore struct {
	courses     map[string]*model.Course
	assignments *fakeAssignmentStore
}

func newFakeCourseStore(assignments *fakeAssignmentStore) *fakeCourseStore {
	return &fakeCourseStore{courses: map[string]*model.Course{}, assignments: assignments}
}

func (f *fakeCourseStore) Create(course *model.Course) error {
	if course.ID == "" {
		course.ID = model.GenerateUUID()
	}
	f.courses[course.ID] = course
	return nil
}

func (f *fakeCourseStore) FindByID(id string) (*model.Course, error) {
	c, ok := f.courses[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (f *fakeCourseStore) FindAll() ([]model.Course, error) {
	all := []model.Course{}
	for _, c := range f.courses {
		all = append(all, *c)
	}
	return all, nil
}

func (f *fakeCourseStore) FindAssignedTo(memberID string) ([]model.Course, error) {
	assigned := []model.Course{}
	for _, a := range f.assignments.rows {
		if a.MemberID == memberID {
			if c, ok := f.courses[a.CourseID]; ok {
				assigned = append(assigned, *c)
			}
		}
	}
	return assigned, nil
}

type fakeAssignmentStore struct {
	rows []*model.CourseAssignment
}

func newFakeAssignmentStore() *fakeAssignmentStore {
	return &fakeAssignmentStore{}
}

func (f *fakeAssignmentStore) Create(assignment *model.CourseAssignment) error {
	for _, a := range f.rows {
		if a.CourseID == assignment.CourseID && a.MemberID == assignment.MemberID {
			return gorm.ErrDuplicatedKey
		}
	}
	if assignment.ID == "" {
		assignment.ID = model.GenerateUUID()
	}
	f.rows = append(f.rows, assignment)
	return nil
}

func (f *fakeAssignmentStore) Exists(courseID, memberID string) (bool, error) {
	for _, a := range f.rows {
		if a.CourseID == courseID && a.MemberID == memberID {
			return true, nil
		}
	}
	return false, nil
}

type fakeExaminationStore struct {
	exams map[string]*model.Examination
}

func newFakeExaminationStore() *fakeExaminationStore {
	return &fakeExaminationStore{exams: map[string]*model.Examination{}}
}

func (f *fakeExaminationStore) Create(exam *model.Examination) error {
	if exam.ID == "" {
		exam.ID = model.GenerateUUID()
	}
	for i := range exam.Questions {
		q := &exam.Questions[i]
		if q.ID == "" {
			q.ID = model.GenerateUUID()
		}
		for j := range q.Options {
			if q.Options[j].ID == "" {
				q.Options[j].ID = model.GenerateUUID()
			}
		}
	}
	f.exams[exam.ID] = exam
	return nil
}

func (f *fakeExaminationStore) FindByID(id string) (*model.Examination, error) {
	e, ok := f.exams[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (f *fakeExaminationStore) FindByCourse(courseID string) ([]model.Examination, error) {
	exams := []model.Examination{}
	for _, e := range f.exams {
		if e.CourseID == courseID {
			exams = append(exams, *e)
		}
	}
	return exams, nil
}

type fakeExamResultStore struct {
	results map[string]*model.ExamResult
}

func newFakeExamResultStore() *fakeExamResultStore {
	return &fakeExamResultStore{results: map[string]*model.ExamResult{}}
}

func (f *fakeExamResultStore) Create(result *model.ExamResult) error {
	for _, r := range f.results {
		if r.ExaminationID == result.ExaminationID && r.MemberID == result.MemberID {
			return gorm.ErrDuplicatedKey
		}
	}
	if result.ID == "" {
		result.ID = model.GenerateUUID()
	}
	f.results[result.ID] = result
	return nil
}

func (f *fakeExamResultStore) FindByID(id string) (*model.ExamResult, error) {
	r, ok := f.results[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r, nil
}

func (f *fakeExamResultStore) FindByExamAndMember(examinationID, memberID string) (*model.ExamResult, error) {
	for _, r := range f.results {
		if r.ExaminationID == examinationID && r.MemberID == memberID {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeExamResultStore) Complete(result *model.ExamResult, answers []model.ExamAnswer) error {
	stored, ok := f.results[result.ID]
	if !ok || stored.Status != model.StatusInProgress {
		return util.ErrAttemptNotInProgress
	}

	now := time.Now()
	for i := range answers {
		answers[i].ResultID = result.ID
		if answers[i].ID == "" {
			answers[i].ID = model.GenerateUUID()
		}
	}

	stored.Status = model.StatusCompleted
	stored.EndTime = &now
	stored.TotalMarksObtained = result.TotalMarksObtained
	stored.IsPassed = result.IsPassed
	stored.Answers = answers

	result.Status = stored.Status
	result.EndTime = stored.EndTime
	result.Answers = answers
	return nil
}

func (f *fakeExamResultStore) FindCompleted() ([]model.ExamResult, error) {
	return f.filter(func(r *model.ExamResult) bool { return r.Status.Terminal() })
}

func (f *fakeExamResultStore) FindCompletedByMember(memberID string) ([]model.ExamResult, error) {
	return f.filter(func(r *model.ExamResult) bool {
		return r.Status.Terminal() && r.MemberID == memberID
	})
}

func (f *fakeExamResultStore) FindCompletedByCourse(courseID string) ([]model.ExamResult, error) {
	return f.filter(func(r *model.ExamResult) bool {
		return r.Status.Terminal() && r.CourseID == courseID
	})
}

func (f *fakeExamResultStore) filter(keep func(*model.ExamResult) bool) ([]model.ExamResult, error) {
	out := []model.ExamResult{}
	for _, r := range f.results {
		if keep(r) {
			out = append(out, *r)
		}
	}
	return out, nil
}
