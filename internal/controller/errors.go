package controller

import (
	"errors"

	"github.com/Ss09shubh/mock-test/internal/util"

	"github.com/gin-gonic/gin"
)

// respondError maps the service sentinel errors onto the HTTP taxonomy:
// 404 absent entity, 403 not permitted, 409 conflict, 400 domain rule
// violation, 500 everything else.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrUserNotFound),
		errors.Is(err, util.ErrMemberNotFound),
		errors.Is(err, util.ErrCourseNotFound),
		errors.Is(err, util.ErrExamNotFound),
		errors.Is(err, util.ErrResultNotFound):
		util.NotFound(ctx, err.Error())

	case errors.Is(err, util.ErrNotAssigned),
		errors.Is(err, util.ErrNotOwner):
		util.Forbidden(ctx, err.Error())

	case errors.Is(err, util.ErrEmailRegistered),
		errors.Is(err, util.ErrAlreadyAssigned),
		errors.Is(err, util.ErrExamAlreadyTaken),
		errors.Is(err, util.ErrAttemptNotInProgress):
		util.Conflict(ctx, err.Error())

	case errors.Is(err, util.ErrNotAMember),
		errors.Is(err, util.ErrNoQuestions),
		errors.Is(err, util.ErrInvalidMarks),
		errors.Is(err, util.ErrTooFewOptions),
		errors.Is(err, util.ErrNotOneCorrectOption),
		errors.Is(err, util.ErrMarksMismatch),
		errors.Is(err, util.ErrPassMarksTooHigh):
		util.BadRequest(ctx, err.Error())

	default:
		util.LogInternalError(ctx, err)
	}
}
