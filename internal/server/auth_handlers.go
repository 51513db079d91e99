package server

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"personal-assistant/internal/errors"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// handleRegister echoes the submitted identity. There is no user store;
// registration is a stub the frontend can exercise.
func (s *Server) handleRegister(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return errors.NewValidationError("invalid request body", err)
	}
	if strings.TrimSpace(req.Username) == "" {
		return errors.NewValidationError("username is required", nil)
	}

	return c.JSON(http.StatusOK, userResponse{
		Username: req.Username,
		Email:    req.Email,
		IsActive: true,
	})
}

// handleLogin issues an access token for any credentials.
func (s *Server) handleLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return errors.NewValidationError("invalid request body", err)
	}

	token, err := s.tokenService.IssueToken(req.Username)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// handleMe returns the identity behind the bearer token.
func (s *Server) handleMe(c echo.Context) error {
	token, err := bearerToken(c)
	if err != nil {
		return err
	}

	username, err := s.tokenService.VerifyToken(token)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userResponse{
		Username: username,
		Email:    username + "@example.com",
		IsActive: true,
	})
}

func bearerToken(c echo.Context) (string, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", errors.NewUnauthorizedError("could not validate credentials", nil)
	}
	return strings.TrimSpace(header[len(prefix):]), nil
}
