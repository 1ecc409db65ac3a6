package util

import "errors"

// Sentinel errors for the domain. Services return these; controllers map
// them onto the HTTP status taxonomy.
var (
	// Not found
	ErrUserNotFound   = errors.New("user not found")
	ErrMemberNotFound = errors.New("member not found")
	ErrCourseNotFound = errors.New("course not found")
	ErrExamNotFound   = errors.New("examination not found")
	ErrResultNotFound = errors.New("exam result not found")

	// Forbidden
	ErrNotAssigned = errors.New("course is not assigned to this member")
	ErrNotOwner    = errors.New("result does not belong to this member")

	// Conflict
	ErrEmailRegistered      = errors.New("email is already registered")
	ErrAlreadyAssigned      = errors.New("course already assigned to this member")
	ErrExamAlreadyTaken     = errors.New("examination has already been taken")
	ErrAttemptNotInProgress = errors.New("examination is not in progress")

	// Validation
	ErrNotAMember          = errors.New("user is not a member")
	ErrNoQuestions         = errors.New("at least one question is required")
	ErrInvalidMarks        = errors.New("question marks must be at least 1")
	ErrTooFewOptions       = errors.New("each question must have at least 2 options")
	ErrNotOneCorrectOption = errors.New("each question must have exactly one correct answer")
	ErrMarksMismatch       = errors.New("sum of question marks does not match total marks")
	ErrPassMarksTooHigh    = errors.New("pass marks cannot be greater than total marks")
)
