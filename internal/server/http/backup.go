package http

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// maxBackupSize caps an import payload at 50 MiB.
const maxBackupSize = 50 << 20

func (s *Server) exportBackup(c *gin.Context) {
	doc, err := s.backup.Export(c.Request.Context(), sessionFrom(c).UserID)
	if err != nil {
		s.fail(c, err)
		return
	}
	name := "flats-backup-" + time.Now().Format("2006-01-02") + ".json"
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.JSON(http.StatusOK, doc)
}

func (s *Server) importBackup(c *gin.Context) {
	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBackupSize))
	if err != nil {
		badRequest(c, "unreadable request body")
		return
	}
	if err := s.backup.Import(c.Request.Context(), sessionFrom(c).UserID, data); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
