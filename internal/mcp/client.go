// Package mcp proxies tool invocations to an external MCP server
// speaking a simple JSON-over-HTTP protocol.
package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"personal-assistant/internal/errors"
)

// ToolRequest is a tool invocation forwarded to the MCP server.
type ToolRequest struct {
	ToolName   string         `json:"tool_name"`
	Parameters map[string]any `json:"parameters"`
}

// Client forwards tool invocations to the configured MCP server.
type Client struct {
	serverURL  string
	authToken  string
	httpClient *http.Client
}

// NewClient creates an MCP client for the given server.
// authToken may be empty, in which case no Authorization header is sent.
func NewClient(serverURL, authToken string, timeout time.Duration) *Client {
	return &Client{
		serverURL:  serverURL,
		authToken:  authToken,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// wireRequest is the shape the MCP server expects on its /tool endpoint.
type wireRequest struct {
	Tool       string         `json:"tool"`
	Parameters map[string]any `json:"parameters"`
}

// ExecuteTool posts a tool invocation and returns the server's raw JSON
// response. Non-2xx responses surface as upstream errors carrying the
// server's status code and body.
func (c *Client) ExecuteTool(ctx context.Context, req ToolRequest) (json.RawMessage, error) {
	if req.ToolName == "" {
		return nil, errors.NewValidationError("tool_name is required", nil)
	}

	payload, err := json.Marshal(wireRequest{Tool: req.ToolName, Parameters: req.Parameters})
	if err != nil {
		return nil, errors.NewInternalError("encode tool request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.serverURL+"/tool", bytes.NewReader(payload))
	if err != nil {
		return nil, errors.NewInternalError("build tool request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.authToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.NewInternalError("execute MCP tool", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewInternalError("read MCP response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.NewUpstreamError(resp.StatusCode, string(body))
	}
	return json.RawMessage(body), nil
}
