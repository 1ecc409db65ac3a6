package controller

import (
	"github.com/Ss09shubh/mock-test/internal/service"
	"github.com/Ss09shubh/mock-test/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// CreateMember godoc
// @Summary Create a member account
// @Tags users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CreateMemberRequest true "member details"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/users [post]
func (c *UserController) CreateMember(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CreateMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	member, err := c.UserService.CreateMember(claims.UserID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{
		"id":    member.ID,
		"name":  member.Name,
		"email": member.Email,
		"role":  member.Role,
	})
}

// ListMembers godoc
// @Summary List member accounts
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/users/members [get]
func (c *UserController) ListMembers(ctx *gin.Context) {
	members, err := c.UserService.ListMembers()
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"count": len(members), "items": members})
}

// GetMember godoc
// @Summary Get a member account
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "member id"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 404 {object} util.Response
// @Router /api/users/members/{id} [get]
func (c *UserController) GetMember(ctx *gin.Context) {
	member, err := c.UserService.GetMember(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, member)
}
