package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Yurisurdi/flats/internal/model"
)

// maxVideoSize caps a single upload at 100 MiB.
const maxVideoSize = 100 << 20

func (s *Server) listApartments(c *gin.Context) {
	apartments, err := s.apartments.List(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, apartments)
}

func (s *Server) getApartment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	apt, err := s.apartments.Get(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, apt)
}

func (s *Server) addApartment(c *gin.Context) {
	var apt model.Apartment
	if err := c.ShouldBindJSON(&apt); err != nil {
		badRequest(c, "invalid apartment payload")
		return
	}
	id, err := s.apartments.Add(c.Request.Context(), apt)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (s *Server) updateApartment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var upd model.ApartmentUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		badRequest(c, "invalid apartment payload")
		return
	}
	if err := s.apartments.Update(c.Request.Context(), id, upd); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) deleteApartment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := s.apartments.Delete(c.Request.Context(), id); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listVideos(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	files, err := s.apartments.Videos(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, files)
}

func (s *Server) uploadVideo(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	header, err := c.FormFile("file")
	if err != nil {
		badRequest(c, "multipart field 'file' is required")
		return
	}
	if header.Size > maxVideoSize {
		badRequest(c, "file too large")
		return
	}
	src, err := header.Open()
	if err != nil {
		s.fail(c, err)
		return
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		s.fail(c, err)
		return
	}

	mediaID, err := s.apartments.AttachVideo(c.Request.Context(), id, model.MediaFile{
		Name:     header.Filename,
		MimeType: header.Header.Get("Content-Type"),
		Data:     data,
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": mediaID})
}

func (s *Server) downloadVideo(c *gin.Context) {
	f, err := s.apartments.Video(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+f.Name+`"`)
	c.Data(http.StatusOK, f.MimeType, f.Data)
}

func (s *Server) deleteVideo(c *gin.Context) {
	if err := s.apartments.DetachVideo(c.Request.Context(), c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) mediaUsage(c *gin.Context) {
	total, err := s.apartments.MediaUsage(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"totalSize": total})
}
