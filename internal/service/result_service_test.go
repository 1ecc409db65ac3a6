package service

import (
	"testing"
	"time"

	"github.com/Ss09shubh/mock-test/internal/model"
	"github.com/Ss09shubh/mock-test/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedResult(t *testing.T, store *fakeExamResultStore, examID, courseID, memberID string, status model.ExamResultStatus) *model.ExamResult {
	t.Helper()

	result := &model.ExamResult{
		ExaminationID: examID,
		CourseID:      courseID,
		MemberID:      memberID,
		StartTime:     time.Now(),
		Status:        status,
	}
	require.NoError(t, store.Create(result))
	return result
}

func TestListResultsScopedByRole(t *testing.T) {
	store := newFakeExamResultStore()
	svc := NewResultService(store)

	seedResult(t, store, "exam1", "course1", "member1", model.StatusCompleted)
	seedResult(t, store, "exam2", "course1", "member2", model.StatusCompleted)
	seedResult(t, store, "exam3", "course2", "member1", model.StatusInProgress)

	admin := &util.Claims{UserID: "admin1", Role: model.Admin}
	all, err := svc.ListResults(admin)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	member := &util.Claims{UserID: "member1", Role: model.Member}
	own, err := svc.ListResults(member)
	require.NoError(t, err)
	// The in-progress attempt stays out of result listings.
	require.Len(t, own, 1)
	assert.Equal(t, "exam1", own[0].ExaminationID)
}

func TestGetResultOwnership(t *testing.T) {
	store := newFakeExamResultStore()
	svc := NewResultService(store)

	result := seedResult(t, store, "exam1", "course1", "member1", model.StatusCompleted)

	owner := &util.Claims{UserID: "member1", Role: model.Member}
	got, err := svc.GetResult(result.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, result.ID, got.ID)

	other := &util.Claims{UserID: "member2", Role: model.Member}
	_, err = svc.GetResult(result.ID, other)
	assert.ErrorIs(t, err, util.ErrNotOwner)

	admin := &util.Claims{UserID: "admin1", Role: model.Admin}
	_, err = svc.GetResult(result.ID, admin)
	assert.NoError(t, err)
}

func TestGetResultUnknown(t *testing.T) {
	svc := NewResultService(newFakeExamResultStore())

	_, err := svc.GetResult("missing", &util.Claims{UserID: "member1", Role: model.Member})

	assert.ErrorIs(t, err, util.ErrResultNotFound)
}

func TestListByCourseUnknownCourseEmpty(t *testing.T) {
	store := newFakeExamResultStore()
	svc := NewResultService(store)

	seedResult(t, store, "exam1", "course1", "member1", model.StatusCompleted)

	results, err := svc.ListByCourse("missing")
	require.NoError(t, err)
	assert.Empty(t, results)

	results, err = svc.ListByCourse("course1")
	require.NoError(t, err)
	assert.Len(t, results, 1)
}
