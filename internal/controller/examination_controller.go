package controller

import (
	"errors"
	"net/http"

	"github.com/Ss09shubh/mock-test/internal/model"
	"github.com/Ss09shubh/mock-test/internal/service"
	"github.com/Ss09shubh/mock-test/internal/util"
	"github.com/Ss09shubh/mock-test/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type ExaminationController struct {
	ExaminationService *service.ExaminationService
	AttemptService     *service.AttemptService
}

func NewExaminationController(examinationService *service.ExaminationService, attemptService *service.AttemptService) *ExaminationController {
	return &ExaminationController{
		ExaminationService: examinationService,
		AttemptService:     attemptService,
	}
}

// CreateExamination godoc
// @Summary Create an examination with its questions and options
// @Tags examinations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CreateExaminationRequest true "examination definition"
// @Success 201 {object} util.Response{data=model.Examination}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/examinations [post]
func (c *ExaminationController) CreateExamination(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CreateExaminationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	exam, err := c.ExaminationService.CreateExamination(claims.UserID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Created(ctx, exam)
}

// GetExamination godoc
// @Summary Get an examination; members receive a redacted view
// @Tags examinations
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "examination id"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/examinations/{id} [get]
func (c *ExaminationController) GetExamination(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if claims.Role == model.Admin {
		exam, err := c.ExaminationService.GetFull(ctx.Param("id"))
		if err != nil {
			respondError(ctx, err)
			return
		}
		util.Success(ctx, exam)
		return
	}

	view, err := c.ExaminationService.GetRedactedForMember(ctx.Request.Context(), ctx.Param("id"), claims.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, view)
}

// ListCourseExaminations godoc
// @Summary List a course's examinations; members receive redacted views
// @Tags examinations
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "course id"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/courses/{id}/examinations [get]
func (c *ExaminationController) ListCourseExaminations(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	exams, views, err := c.ExaminationService.ListForCourse(ctx.Request.Context(), ctx.Param("id"), claims)
	if err != nil {
		respondError(ctx, err)
		return
	}

	if claims.Role == model.Admin {
		util.Success(ctx, gin.H{"count": len(exams), "items": exams})
		return
	}
	util.Success(ctx, gin.H{"count": len(views), "items": views})
}

// StartExamination godoc
// @Summary Start (or idempotently resume) an attempt
// @Tags examinations
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "examination id"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/examinations/{id}/start [post]
func (c *ExaminationController) StartExamination(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	result, exam, err := c.AttemptService.Start(ctx.Param("id"), claims)
	if err != nil {
		if errors.Is(err, util.ErrExamAlreadyTaken) && result != nil {
			// Conflict carries the existing record so the client can show it.
			ctx.JSON(http.StatusConflict, util.Response{
				Code:    http.StatusConflict,
				Message: err.Error(),
				Data:    gin.H{"examResult": result},
			})
			return
		}
		respondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"examination": exam,
		"examResult":  result,
	})
}

type submitExaminationRequest struct {
	ExamResultID string                     `json:"examResultId" binding:"required"`
	Answers      []service.AnswerSubmission `json:"answers" binding:"required,min=1,dive"`
}

// SubmitExamination godoc
// @Summary Submit answers and receive the scored attempt
// @Tags examinations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "examination id"
// @Param body body submitExaminationRequest true "answers"
// @Success 200 {object} util.Response{data=model.ExamResult}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/examinations/{id}/submit [post]
func (c *ExaminationController) SubmitExamination(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req submitExaminationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.AttemptService.Submit(ctx.Param("id"), req.ExamResultID, req.Answers, claims)
	if err != nil {
		respondError(ctx, err)
		return
	}

	outcome := "failed"
	if result.IsPassed {
		outcome = "passed"
	}
	monitoring.ExamSubmissions.WithLabelValues(outcome).Inc()

	util.Success(ctx, result)
}
