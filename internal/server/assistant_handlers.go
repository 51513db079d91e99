package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"personal-assistant/internal/errors"
	"personal-assistant/internal/mcp"
	"personal-assistant/internal/services"
)

type noActiveSprintResponse struct {
	Message string `json:"message"`
}

// handleStartSprint begins a new focus sprint.
func (s *Server) handleStartSprint(c echo.Context) error {
	var req services.SprintStartRequest
	if err := c.Bind(&req); err != nil {
		return errors.NewValidationError("invalid request body", err)
	}

	sprint, err := s.sprints.StartSprint(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sprint)
}

// handleActiveSprint returns the running sprint, or a sentinel message
// when nothing is active.
func (s *Server) handleActiveSprint(c echo.Context) error {
	sprint, err := s.sprints.GetActiveSprint(c.Request().Context())
	if err != nil {
		return err
	}
	if sprint == nil {
		return c.JSON(http.StatusOK, noActiveSprintResponse{Message: "No active sprint"})
	}
	return c.JSON(http.StatusOK, sprint)
}

// handleListSprints returns all sprints, newest first.
func (s *Server) handleListSprints(c echo.Context) error {
	sprints, err := s.sprints.ListSprints(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sprints)
}

// handleNudge sends a mid-sprint focus reminder.
func (s *Server) handleNudge(c echo.Context) error {
	nudge, err := s.sprints.Nudge(c.Request().Context(), c.Param("id"), c.QueryParam("message"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, nudge)
}

// handleLogDistraction records a distraction against a sprint.
func (s *Server) handleLogDistraction(c echo.Context) error {
	distraction, err := s.sprints.LogDistraction(c.Request().Context(), c.Param("id"), c.QueryParam("distraction"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, distraction)
}

// handleCompleteSprint marks a sprint completed with the caller's retrospective.
func (s *Server) handleCompleteSprint(c echo.Context) error {
	if !c.QueryParams().Has("retro") {
		return errors.NewValidationError("retro query parameter is required", nil)
	}

	sprint, err := s.sprints.CompleteSprint(c.Request().Context(), c.Param("id"), c.QueryParam("retro"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sprint)
}

// handleMCPTool proxies a tool invocation to the external MCP server.
func (s *Server) handleMCPTool(c echo.Context) error {
	var req mcp.ToolRequest
	if err := c.Bind(&req); err != nil {
		return errors.NewValidationError("invalid request body", err)
	}

	result, err := s.mcpClient.ExecuteTool(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSONBlob(http.StatusOK, result)
}

// handleRitual returns the named ritual's checklist.
func (s *Server) handleRitual(c echo.Context) error {
	checklist, err := s.rituals.GetChecklist(c.Request().Context(), c.Param("name"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, checklist)
}

type familyReminders struct {
	DailyTasks    []string            `json:"daily_tasks"`
	FamilyMembers map[string][]string `json:"family_members"`
}

// handleFamilyReminders serves the static family reminder payload.
func (s *Server) handleFamilyReminders(c echo.Context) error {
	return c.JSON(http.StatusOK, familyReminders{
		DailyTasks: []string{
			"6:00 PM: Reach out to kids (Daniel, Mira, Alyssa) and granddaughter Kaya",
		},
		FamilyMembers: map[string][]string{
			"children":      {"Dana", "Mira", "Alyssa"},
			"grandchildren": {"Kyra", "Siena", "Kaya", "Luke", "Taz", "Michael", "Sylvia"},
			"siblings":      {"Mark", "Zorina"},
		},
	})
}
