package service

import (
	"testing"

	"github.com/Ss09shubh/mock-test/internal/model"
	"github.com/Ss09shubh/mock-test/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type courseFixture struct {
	users       *fakeUserStore
	courses     *fakeCourseStore
	assignments *fakeAssignmentStore
	service     *CourseService
	course      *model.Course
	member      *model.User
}

func newCourseFixture(t *testing.T) *courseFixture {
	t.Helper()

	users := newFakeUserStore()
	assignments := newFakeAssignmentStore()
	courses := newFakeCourseStore(assignments)

	course := &model.Course{Name: "Databases", Description: "storage", CreatedByID: "admin1"}
	require.NoError(t, courses.Create(course))

	member := &model.User{Name: "Asha", Email: "asha@example.com", Role: model.Member}
	require.NoError(t, users.Create(member))

	return &courseFixture{
		users:       users,
		courses:     courses,
		assignments: assignments,
		service:     NewCourseService(courses, assignments, users),
		course:      course,
		member:      member,
	}
}

func TestAssignCourse(t *testing.T) {
	fx := newCourseFixture(t)

	assignment, err := fx.service.AssignCourse(fx.course.ID, fx.member.ID, "admin1")

	require.NoError(t, err)
	assert.Equal(t, fx.course.ID, assignment.CourseID)
	assert.Equal(t, fx.member.ID, assignment.MemberID)
	assert.Equal(t, "admin1", assignment.AssignedByID)
	assert.False(t, assignment.AssignedAt.IsZero())
}

func TestAssignCourseTwiceConflicts(t *testing.T) {
	fx := newCourseFixture(t)

	_, err := fx.service.AssignCourse(fx.course.ID, fx.member.ID, "admin1")
	require.NoError(t, err)

	_, err = fx.service.AssignCourse(fx.course.ID, fx.member.ID, "admin1")

	assert.ErrorIs(t, err, util.ErrAlreadyAssigned)
	assert.Len(t, fx.assignments.rows, 1)
}

func TestAssignCourseUnknownCourse(t *testing.T) {
	fx := newCourseFixture(t)

	_, err := fx.service.AssignCourse("missing", fx.member.ID, "admin1")

	assert.ErrorIs(t, err, util.ErrCourseNotFound)
}

func TestAssignCourseUnknownMember(t *testing.T) {
	fx := newCourseFixture(t)

	_, err := fx.service.AssignCourse(fx.course.ID, "missing", "admin1")

	assert.ErrorIs(t, err, util.ErrMemberNotFound)
}

func TestAssignCourseToAdminRejected(t *testing.T) {
	fx := newCourseFixture(t)

	admin := &model.User{Name: "Root", Email: "root@example.com", Role: model.Admin}
	require.NoError(t, fx.users.Create(admin))

	_, err := fx.service.AssignCourse(fx.course.ID, admin.ID, "admin1")

	assert.ErrorIs(t, err, util.ErrNotAMember)
}

func TestListCoursesByRole(t *testing.T) {
	fx := newCourseFixture(t)

	other := &model.Course{Name: "Networks", Description: "wires", CreatedByID: "admin1"}
	require.NoError(t, fx.courses.Create(other))

	_, err := fx.service.AssignCourse(fx.course.ID, fx.member.ID, "admin1")
	require.NoError(t, err)

	admin := &util.Claims{UserID: "admin1", Role: model.Admin}
	all, err := fx.service.ListCourses(admin)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	member := &util.Claims{UserID: fx.member.ID, Role: model.Member}
	assigned, err := fx.service.ListCourses(member)
	require.NoError(t, err)
	require.Len(t, assigned, 1)
	assert.Equal(t, fx.course.ID, assigned[0].ID)
}

func TestGetCourseAssignmentGate(t *testing.T) {
	fx := newCourseFixture(t)
	member := &util.Claims{UserID: fx.member.ID, Role: model.Member}

	_, err := fx.service.GetCourse(fx.course.ID, member)
	assert.ErrorIs(t, err, util.ErrNotAssigned)

	_, err = fx.service.AssignCourse(fx.course.ID, fx.member.ID, "admin1")
	require.NoError(t, err)

	course, err := fx.service.GetCourse(fx.course.ID, member)
	require.NoError(t, err)
	assert.Equal(t, fx.course.ID, course.ID)
}
