package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/solarplan/internal/common"
	"github.com/dmitrijs2005/solarplan/internal/server/models"
	"github.com/gin-gonic/gin"
)

func (s *HTTPServer) root(c *gin.Context) {
	c.String(http.StatusOK, "API funcionando")
}

func (s *HTTPServer) healthz(c *gin.Context) {
	if err := s.db.PingContext(c.Request.Context()); err != nil {
		s.logger.Error(c.Request.Context(), "health check failed", "error", err.Error())
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *HTTPServer) register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}

	u, err := s.users.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.fail(c, err)
		return
	}

	s.logger.Info(c.Request.Context(), "Registered", "user_id", u.ID)
	c.JSON(http.StatusCreated, registerResponse{Message: "Usuário registrado com sucesso", ID: u.ID})
}

func (s *HTTPServer) login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}

	id, err := s.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) || errors.Is(err, common.ErrorUnauthorized) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Error: "invalid email or password"})
			return
		}
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, id)
}

func (s *HTTPServer) listProjects(c *gin.Context) {
	items, err := s.projects.List(c.Request.Context(), c.Query("user_id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	if items == nil {
		items = []*models.Project{}
	}
	c.JSON(http.StatusOK, items)
}

func (s *HTTPServer) createProject(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}

	p, err := s.projects.Create(c.Request.Context(), req.input())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (s *HTTPServer) updateProject(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}

	p, err := s.projects.Update(c.Request.Context(), c.Param("id"), req.input())
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, errorResponse{Error: "project not found"})
			return
		}
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *HTTPServer) deleteProject(c *gin.Context) {
	err := s.projects.Delete(c.Request.Context(), c.Param("id"), c.Query("user_id"))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, errorResponse{Error: "project not found"})
			return
		}
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *HTTPServer) listEstimates(c *gin.Context) {
	items, err := s.estimates.List(c.Request.Context(), c.Query("user_id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	if items == nil {
		items = []*models.SavedEstimate{}
	}
	c.JSON(http.StatusOK, items)
}

func (s *HTTPServer) createEstimate(c *gin.Context) {
	var req estimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}

	e, err := s.estimates.Create(c.Request.Context(), req.UserID, string(req.Consumption))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (r projectRequest) input() models.ProjectInput {
	return models.ProjectInput{
		UserID: r.UserID,
		Name:   r.Name,
		Cost:   string(r.Cost),
		Status: models.Status(r.Status),
	}
}
