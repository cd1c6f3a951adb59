package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid/v5"

	"github.com/Yurisurdi/flats/internal/model"
)

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.FromString(c.Param("id"))
	if err != nil {
		badRequest(c, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}

func (s *Server) listClients(c *gin.Context) {
	clients, err := s.clients.List(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (s *Server) getClient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	client, err := s.clients.Get(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (s *Server) addClient(c *gin.Context) {
	var client model.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		badRequest(c, "invalid client payload")
		return
	}
	id, err := s.clients.Add(c.Request.Context(), client)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (s *Server) updateClient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var upd model.ClientUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		badRequest(c, "invalid client payload")
		return
	}
	if err := s.clients.Update(c.Request.Context(), id, upd); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) deleteClient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := s.clients.Delete(c.Request.Context(), id); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
