package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Yurisurdi/flats/internal/model"
	"github.com/Yurisurdi/flats/internal/service"
)

func (s *Server) dashboard(c *gin.Context) {
	stats, err := s.reports.Dashboard(c.Request.Context(), sessionFrom(c).UserID)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) commissions(c *gin.Context) {
	p := service.Period{Kind: c.DefaultQuery("period", service.PeriodWeek)}
	if p.Kind == service.PeriodCustom {
		start, err := model.ParseDate(c.Query("start"))
		if err != nil {
			badRequest(c, "invalid start date")
			return
		}
		end, err := model.ParseDate(c.Query("end"))
		if err != nil {
			badRequest(c, "invalid end date")
			return
		}
		p.Start, p.End = start, end
	}
	summary, err := s.reports.Commissions(c.Request.Context(), sessionFrom(c).UserID, p)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
