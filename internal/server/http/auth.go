package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Yurisurdi/flats/internal/errs"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "username and password are required")
		return
	}
	sess, token, err := s.auth.Login(req.Username, req.Password)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": sess})
}

type changeUsernameRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewUsername     string `json:"newUsername" binding:"required"`
}

func (s *Server) changeUsername(c *gin.Context) {
	sess := sessionFrom(c)
	var req changeUsernameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "currentPassword and newUsername are required")
		return
	}
	if !s.auth.VerifyPassword(sess.Username, req.CurrentPassword) {
		s.fail(c, errs.ErrUnauthorized)
		return
	}
	if err := s.auth.UpdateUsername(sess.UserID, req.NewUsername); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"username": req.NewUsername})
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

func (s *Server) changePassword(c *gin.Context) {
	sess := sessionFrom(c)
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "currentPassword and newPassword are required")
		return
	}
	if !s.auth.VerifyPassword(sess.Username, req.CurrentPassword) {
		s.fail(c, errs.ErrUnauthorized)
		return
	}
	if err := s.auth.UpdatePassword(sess.UserID, req.NewPassword); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
