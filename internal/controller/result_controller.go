package controller

import (
	"github.com/Ss09shubh/mock-test/internal/service"
	"github.com/Ss09shubh/mock-test/internal/util"

	"github.com/gin-gonic/gin"
)

type ResultController struct {
	ResultService *service.ResultService
}

func NewResultController(resultService *service.ResultService) *ResultController {
	return &ResultController{ResultService: resultService}
}

// ListResults godoc
// @Summary List completed results visible to the principal
// @Tags results
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/results [get]
func (c *ResultController) ListResults(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	results, err := c.ResultService.ListResults(claims)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"count": len(results), "items": results})
}

// GetResult godoc
// @Summary Get a single result
// @Tags results
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "result id"
// @Success 200 {object} util.Response{data=model.ExamResult}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/results/{id} [get]
func (c *ResultController) GetResult(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	result, err := c.ResultService.GetResult(ctx.Param("id"), claims)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, result)
}

// GetMemberResults godoc
// @Summary List a member's completed results
// @Tags results
// @Produce json
// @Security ApiKeyAuth
// @Param memberId path string true "member id"
// @Success 200 {object} util.Response
// @Router /api/results/member/{memberId} [get]
func (c *ResultController) GetMemberResults(ctx *gin.Context) {
	results, err := c.ResultService.ListByMember(ctx.Param("memberId"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"count": len(results), "items": results})
}

// GetCourseResults godoc
// @Summary List a course's completed results
// @Tags results
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "course id"
// @Success 200 {object} util.Response
// @Router /api/results/course/{courseId} [get]
func (c *ResultController) GetCourseResults(ctx *gin.Context) {
	results, err := c.ResultService.ListByCourse(ctx.Param("courseId"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"count": len(results), "items": results})
}
