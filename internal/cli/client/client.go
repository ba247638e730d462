package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/network/standard"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/westmead-kiosk/kiosk-apiserver/internal/cli/types"
)

// APIClient wraps Hertz Client for HTTP communication with the kiosk API server
type APIClient struct {
	client *client.Client
	server string
	token  string
}

// NewAPIClient creates a new API client
func NewAPIClient(server, token string) (*APIClient, error) {
	// Normalize server URL
	normalizedServer, err := normalizeServerURL(server)
	if err != nil {
		return nil, fmt.Errorf("invalid server URL: %w", err)
	}

	c, err := client.NewClient(
		client.WithDialTimeout(10*time.Second),
		client.WithMaxIdleConnDuration(60*time.Second),
		client.WithDialer(standard.NewDialer()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}

	return &APIClient{
		client: c,
		server: normalizedServer,
		token:  token,
	}, nil
}

// normalizeServerURL normalizes server URL to ensure it has a scheme and no trailing slash
func normalizeServerURL(server string) (string, error) {
	// Add scheme if missing
	if !strings.Contains(server, "://") {
		server = "http://" + server
	}

	// Parse and validate
	u, err := url.Parse(server)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("invalid server URL")
	}

	// Return scheme://host (no path, no trailing slash)
	return fmt.Sprintf("%s://%s", u.Scheme, u.Host), nil
}

// Login performs admin login
func (c *APIClient) Login(ctx context.Context, username, password string) (*types.APIResponse[types.LoginData], error) {
	reqBody := types.LoginRequest{
		Username: username,
		Password: password,
	}
	bodyBytes, err := sonic.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(consts.MethodPost)
	req.SetRequestURI(c.server + endpointLogin)
	req.Header.SetContentTypeBytes([]byte("application/json"))
	req.SetBody(bodyBytes)

	if err := c.client.Do(ctx, req, resp); err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("login failed with HTTP status: %d", resp.StatusCode())
	}

	var loginResp types.APIResponse[types.LoginData]
	if err := sonic.Unmarshal(resp.Body(), &loginResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &loginResp, nil
}

// Chat sends one kiosk question and returns the assistant reply
func (c *APIClient) Chat(ctx context.Context, sessionID, message, language string) (*types.ChatData, error) {
	reqBody := types.ChatRequest{
		SessionID: sessionID,
		Message:   message,
		Language:  language,
	}
	bodyBytes, err := sonic.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(consts.MethodPost)
	req.SetRequestURI(c.server + endpointChat)
	req.Header.SetContentTypeBytes([]byte("application/json"))
	req.SetBody(bodyBytes)

	if err := c.client.Do(ctx, req, resp); err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode() != 200 {
		return nil, decodeAPIError("chat", resp.StatusCode(), resp.Body())
	}

	var chatResp types.APIResponse[types.ChatData]
	if err := sonic.Unmarshal(resp.Body(), &chatResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &chatResp.Data, nil
}

// History returns the transcript of a kiosk session in chronological order
func (c *APIClient) History(ctx context.Context, sessionID string) ([]types.ChatMessage, error) {
	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(consts.MethodGet)
	req.SetRequestURI(fmt.Sprintf("%s"+endpointChatHistory, c.server, sessionID))

	if err := c.client.Do(ctx, req, resp); err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode() != 200 {
		return nil, decodeAPIError("history", resp.StatusCode(), resp.Body())
	}

	var historyResp types.APIResponse[[]types.ChatMessage]
	if err := sonic.Unmarshal(resp.Body(), &historyResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return historyResp.Data, nil
}

// Reset marks the end of a kiosk session
func (c *APIClient) Reset(ctx context.Context, sessionID string) error {
	reqBody := types.ResetRequest{SessionID: sessionID}
	bodyBytes, err := sonic.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(consts.MethodPost)
	req.SetRequestURI(c.server + endpointChatReset)
	req.Header.SetContentTypeBytes([]byte("application/json"))
	req.SetBody(bodyBytes)

	if err := c.client.Do(ctx, req, resp); err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode() != 200 {
		return decodeAPIError("reset", resp.StatusCode(), resp.Body())
	}

	return nil
}

// TopFaqs returns the most frequently asked questions
func (c *APIClient) TopFaqs(ctx context.Context, limit int) ([]types.FaqEntry, error) {
	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	uri := c.server + endpointFaqs
	if limit > 0 {
		uri = fmt.Sprintf("%s?limit=%d", uri, limit)
	}

	req.SetMethod(consts.MethodGet)
	req.SetRequestURI(uri)

	if err := c.client.Do(ctx, req, resp); err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode() != 200 {
		return nil, decodeAPIError("faqs", resp.StatusCode(), resp.Body())
	}

	var faqResp types.APIResponse[[]types.FaqEntry]
	if err := sonic.Unmarshal(resp.Body(), &faqResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return faqResp.Data, nil
}

// UpcomingEvents returns events whose date is today or later
func (c *APIClient) UpcomingEvents(ctx context.Context) ([]types.Event, error) {
	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(consts.MethodGet)
	req.SetRequestURI(c.server + endpointUpcomingEvents)

	if err := c.client.Do(ctx, req, resp); err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode() != 200 {
		return nil, decodeAPIError("events", resp.StatusCode(), resp.Body())
	}

	var eventsResp types.APIResponse[[]types.Event]
	if err := sonic.Unmarshal(resp.Body(), &eventsResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return eventsResp.Data, nil
}

// decodeAPIError extracts the server's message from an error envelope.
// Falls back to the raw status code when the body is not an envelope.
func decodeAPIError(op string, status int, body []byte) error {
	var envelope types.APIResponse[any]
	if err := sonic.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		return fmt.Errorf("%s failed: %s (HTTP %d)", op, envelope.Message, status)
	}
	return fmt.Errorf("%s failed with HTTP status: %d", op, status)
}
