package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Ss09shubh/mock-test/internal/model"
	"github.com/Ss09shubh/mock-test/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func validExamRequest(courseID string) CreateExaminationRequest {
	return CreateExaminationRequest{
		Name:            "Final",
		CourseID:        courseID,
		TotalMarks:      100,
		PassMarks:       50,
		DurationMinutes: 90,
		Questions: []QuestionRequest{
			{
				Text:  "first",
				Marks: 60,
				Options: []OptionRequest{
					{Text: "right", IsCorrect: boolPtr(true)},
					{Text: "wrong", IsCorrect: boolPtr(false)},
				},
			},
			{
				Text:  "second",
				Marks: 40,
				Options: []OptionRequest{
					{Text: "wrong", IsCorrect: boolPtr(false)},
					{Text: "right", IsCorrect: boolPtr(true)},
				},
			},
		},
	}
}

func TestValidateExamination(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateExaminationRequest)
		wantErr error
	}{
		{
			name:   "valid",
			mutate: func(r *CreateExaminationRequest) {},
		},
		{
			name:    "no questions",
			mutate:  func(r *CreateExaminationRequest) { r.Questions = nil },
			wantErr: util.ErrNoQuestions,
		},
		{
			name: "single option",
			mutate: func(r *CreateExaminationRequest) {
				r.Questions[0].Options = r.Questions[0].Options[:1]
			},
			wantErr: util.ErrTooFewOptions,
		},
		{
			name: "no correct option",
			mutate: func(r *CreateExaminationRequest) {
				r.Questions[0].Options[0].IsCorrect = boolPtr(false)
			},
			wantErr: util.ErrNotOneCorrectOption,
		},
		{
			name: "two correct options",
			mutate: func(r *CreateExaminationRequest) {
				r.Questions[0].Options[1].IsCorrect = boolPtr(true)
			},
			wantErr: util.ErrNotOneCorrectOption,
		},
		{
			name: "negative question marks",
			mutate: func(r *CreateExaminationRequest) {
				// Sum still matches totalMarks; the per-question floor must
				// catch it on its own.
				r.Questions[0].Marks = -10
				r.Questions[1].Marks = 110
			},
			wantErr: util.ErrInvalidMarks,
		},
		{
			name: "zero question marks",
			mutate: func(r *CreateExaminationRequest) {
				r.Questions[0].Marks = 0
				r.Questions[1].Marks = 100
			},
			wantErr: util.ErrInvalidMarks,
		},
		{
			name:    "marks do not sum to total",
			mutate:  func(r *CreateExaminationRequest) { r.TotalMarks = 90 },
			wantErr: util.ErrMarksMismatch,
		},
		{
			name: "pass marks above total",
			mutate: func(r *CreateExaminationRequest) {
				r.PassMarks = 101
			},
			wantErr: util.ErrPassMarksTooHigh,
		},
		{
			name: "pass marks equal to total is allowed",
			mutate: func(r *CreateExaminationRequest) {
				r.PassMarks = 100
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validExamRequest("course1")
			tt.mutate(&req)

			err := ValidateExamination(&req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateExaminationRequestBindingValidatesNestedFields(t *testing.T) {
	gin.SetMode(gin.TestMode)

	bind := func(payload string) error {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
		ctx.Request = req

		var body CreateExaminationRequest
		return ctx.ShouldBindJSON(&body)
	}

	valid := `{"name":"Final","courseId":"course1","totalMarks":100,"passMarks":50,"durationMinutes":90,
		"questions":[{"text":"q","marks":100,"options":[{"text":"a","isCorrect":true},{"text":"b","isCorrect":false}]}]}`
	assert.NoError(t, bind(valid))

	negativeMarks := `{"name":"Final","courseId":"course1","totalMarks":100,"passMarks":50,"durationMinutes":90,
		"questions":[{"text":"q","marks":-10,"options":[{"text":"a","isCorrect":true},{"text":"b","isCorrect":false}]}]}`
	assert.Error(t, bind(negativeMarks))

	emptyOptionText := `{"name":"Final","courseId":"course1","totalMarks":100,"passMarks":50,"durationMinutes":90,
		"questions":[{"text":"q","marks":100,"options":[{"text":"","isCorrect":true},{"text":"b","isCorrect":false}]}]}`
	assert.Error(t, bind(emptyOptionText))

	noQuestions := `{"name":"Final","courseId":"course1","totalMarks":100,"passMarks":50,"durationMinutes":90,"questions":[]}`
	assert.Error(t, bind(noQuestions))
}

func newExaminationFixture(t *testing.T) (*ExaminationService, *model.Course, *fakeAssignmentStore) {
	t.Helper()

	assignments := newFakeAssignmentStore()
	courses := newFakeCourseStore(assignments)
	exams := newFakeExaminationStore()

	course := &model.Course{Name: "Algorithms", CreatedByID: "admin1"}
	require.NoError(t, courses.Create(course))

	return NewExaminationService(exams, courses, assignments, nil), course, assignments
}

func TestCreateExaminationAssignsStableIdentifiers(t *testing.T) {
	svc, course, _ := newExaminationFixture(t)

	exam, err := svc.CreateExamination("admin1", validExamRequest(course.ID))

	require.NoError(t, err)
	assert.NotEmpty(t, exam.ID)
	require.Len(t, exam.Questions, 2)
	for i, q := range exam.Questions {
		assert.NotEmpty(t, q.ID)
		assert.Equal(t, i, q.Position)
		require.NotNil(t, q.CorrectOption())
		for j, o := range q.Options {
			assert.NotEmpty(t, o.ID)
			assert.Equal(t, j, o.Position)
		}
	}
}

func TestCreateExaminationUnknownCourse(t *testing.T) {
	svc, _, _ := newExaminationFixture(t)

	_, err := svc.CreateExamination("admin1", validExamRequest("missing"))

	assert.ErrorIs(t, err, util.ErrCourseNotFound)
}

func TestCreateExaminationRejectsInvalidPayload(t *testing.T) {
	svc, course, _ := newExaminationFixture(t)

	req := validExamRequest(course.ID)
	req.Questions = nil

	_, err := svc.CreateExamination("admin1", req)

	assert.ErrorIs(t, err, util.ErrNoQuestions)
}

func TestGetRedactedForMemberRequiresAssignment(t *testing.T) {
	svc, course, assignments := newExaminationFixture(t)

	exam, err := svc.CreateExamination("admin1", validExamRequest(course.ID))
	require.NoError(t, err)

	_, err = svc.GetRedactedForMember(context.Background(), exam.ID, "member1")
	assert.ErrorIs(t, err, util.ErrNotAssigned)

	require.NoError(t, assignments.Create(&model.CourseAssignment{
		CourseID: course.ID,
		MemberID: "member1",
	}))

	view, err := svc.GetRedactedForMember(context.Background(), exam.ID, "member1")
	require.NoError(t, err)
	require.Len(t, view.Questions, 2)
	assert.Equal(t, exam.ID, view.ID)
}

func TestListForCourseSplitsByRole(t *testing.T) {
	svc, course, assignments := newExaminationFixture(t)

	_, err := svc.CreateExamination("admin1", validExamRequest(course.ID))
	require.NoError(t, err)

	admin := &util.Claims{UserID: "admin1", Role: model.Admin}
	exams, views, err := svc.ListForCourse(context.Background(), course.ID, admin)
	require.NoError(t, err)
	assert.Len(t, exams, 1)
	assert.Nil(t, views)

	member := &util.Claims{UserID: "member1", Role: model.Member}
	_, _, err = svc.ListForCourse(context.Background(), course.ID, member)
	assert.ErrorIs(t, err, util.ErrNotAssigned)

	require.NoError(t, assignments.Create(&model.CourseAssignment{
		CourseID: course.ID,
		MemberID: "member1",
	}))

	exams, views, err = svc.ListForCourse(context.Background(), course.ID, member)
	require.NoError(t, err)
	assert.Nil(t, exams)
	require.Len(t, views, 1)
	require.Len(t, views[0].Questions, 2)
}
