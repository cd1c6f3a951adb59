package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid/v5"

	"github.com/Yurisurdi/flats/internal/model"
)

func (s *Server) listBookings(c *gin.Context) {
	sess := sessionFrom(c)
	if raw := c.Query("client"); raw != "" {
		clientID, err := uuid.FromString(raw)
		if err != nil {
			badRequest(c, "invalid client id")
			return
		}
		bookings, err := s.bookings.ByClient(c.Request.Context(), sess.UserID, clientID)
		if err != nil {
			s.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, bookings)
		return
	}
	bookings, err := s.bookings.List(c.Request.Context(), sess.UserID, c.Query("status"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (s *Server) getBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	b, err := s.bookings.Get(c.Request.Context(), sessionFrom(c).UserID, id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (s *Server) addBooking(c *gin.Context) {
	var b model.Booking
	if err := c.ShouldBindJSON(&b); err != nil {
		badRequest(c, "invalid booking payload")
		return
	}
	id, err := s.bookings.Add(c.Request.Context(), sessionFrom(c).UserID, b)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (s *Server) updateBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var upd model.BookingUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		badRequest(c, "invalid booking payload")
		return
	}
	if err := s.bookings.Update(c.Request.Context(), sessionFrom(c).UserID, id, upd); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) deleteBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := s.bookings.Delete(c.Request.Context(), sessionFrom(c).UserID, id); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
