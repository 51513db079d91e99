package server

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"personal-assistant/internal/domain"
	"personal-assistant/internal/errors"
	"personal-assistant/internal/services"
)

type deleteProjectResponse struct {
	Message string `json:"message"`
}

// handleListProjects returns all projects.
func (s *Server) handleListProjects(c echo.Context) error {
	projects, err := s.projects.ListProjects(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

// handleGetProject returns one project by id.
func (s *Server) handleGetProject(c echo.Context) error {
	project, err := s.projects.GetProject(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// handleCreateProject creates a new project.
func (s *Server) handleCreateProject(c echo.Context) error {
	var req services.ProjectCreateRequest
	if err := c.Bind(&req); err != nil {
		return errors.NewValidationError("invalid request body", err)
	}

	project, err := s.projects.CreateProject(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// handleUpdateProject applies a partial update to a project.
func (s *Server) handleUpdateProject(c echo.Context) error {
	var update domain.ProjectUpdate
	if err := c.Bind(&update); err != nil {
		return errors.NewValidationError("invalid request body", err)
	}

	project, err := s.projects.UpdateProject(c.Request().Context(), c.Param("id"), update)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// handleDeleteProject removes a project.
func (s *Server) handleDeleteProject(c echo.Context) error {
	title, err := s.projects.DeleteProject(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleteProjectResponse{
		Message: fmt.Sprintf("Project '%s' deleted successfully", title),
	})
}

// handleProjectsByPriority returns projects matching a priority.
func (s *Server) handleProjectsByPriority(c echo.Context) error {
	projects, err := s.projects.ListProjectsByPriority(c.Request().Context(), c.Param("priority"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

// handleProjectsByStatus returns projects matching a status.
func (s *Server) handleProjectsByStatus(c echo.Context) error {
	projects, err := s.projects.ListProjectsByStatus(c.Request().Context(), c.Param("status"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}
