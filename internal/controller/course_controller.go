package controller

import (
	"github.com/Ss09shubh/mock-test/internal/service"
	"github.com/Ss09shubh/mock-test/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService *service.CourseService
}

func NewCourseController(courseService *service.CourseService) *CourseController {
	return &CourseController{CourseService: courseService}
}

// CreateCourse godoc
// @Summary Create a course
// @Tags courses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CreateCourseRequest true "course details"
// @Success 201 {object} util.Response{data=model.Course}
// @Failure 400 {object} util.Response
// @Router /api/courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CourseService.CreateCourse(claims.UserID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Created(ctx, course)
}

// ListCourses godoc
// @Summary List courses visible to the principal
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	courses, err := c.CourseService.ListCourses(claims)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"count": len(courses), "items": courses})
}

// GetCourse godoc
// @Summary Get a course
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "course id"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	course, err := c.CourseService.GetCourse(ctx.Param("id"), claims)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, course)
}

type assignCourseRequest struct {
	MemberID string `json:"memberId" binding:"required"`
}

// AssignCourse godoc
// @Summary Assign a course to a member
// @Tags courses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "course id"
// @Param body body assignCourseRequest true "member to assign"
// @Success 201 {object} util.Response{data=model.CourseAssignment}
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/courses/{id}/assign [post]
func (c *CourseController) AssignCourse(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req assignCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	assignment, err := c.CourseService.AssignCourse(ctx.Param("id"), req.MemberID, claims.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Created(ctx, assignment)
}
