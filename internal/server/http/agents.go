package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Yurisurdi/flats/internal/model"
)

func (s *Server) listAgents(c *gin.Context) {
	agents, err := s.agents.List(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, agents)
}

func (s *Server) getAgent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	agent, err := s.agents.Get(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, agent)
}

func (s *Server) addAgent(c *gin.Context) {
	var agent model.Agent
	if err := c.ShouldBindJSON(&agent); err != nil {
		badRequest(c, "invalid agent payload")
		return
	}
	id, err := s.agents.Add(c.Request.Context(), agent)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (s *Server) updateAgent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var upd model.AgentUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		badRequest(c, "invalid agent payload")
		return
	}
	if err := s.agents.Update(c.Request.Context(), id, upd); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) deleteAgent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := s.agents.Delete(c.Request.Context(), id); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
