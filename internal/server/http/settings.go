package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Yurisurdi/flats/internal/model"
)

func (s *Server) getSettings(c *gin.Context) {
	cfg, err := s.settings.Get(c.Request.Context(), sessionFrom(c).UserID)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

func (s *Server) updateSettings(c *gin.Context) {
	var upd model.SettingsUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		badRequest(c, "invalid settings payload")
		return
	}
	cfg, err := s.settings.Update(c.Request.Context(), sessionFrom(c).UserID, upd)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}
