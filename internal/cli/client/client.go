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

	"github.com/Raeus1901/wine-bot/internal/cli/types"
)

// APIClient wraps a Hertz client for HTTP communication with the wine
// recommender API. The user ID given at construction is sent as the user_id
// query parameter on every call.
type APIClient struct {
	client *client.Client
	server string
	userID string
}

// NewAPIClient creates a new API client
func NewAPIClient(server, userID string) (*APIClient, error) {
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
		userID: userID,
	}, nil
}

// normalizeServerURL normalizes server URL to ensure it has a scheme and no trailing slash
func normalizeServerURL(server string) (string, error) {
	if !strings.Contains(server, "://") {
		server = "http://" + server
	}

	u, err := url.Parse(server)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("invalid server URL")
	}

	return fmt.Sprintf("%s://%s", u.Scheme, u.Host), nil
}

// Converse sends one free-text message on the structured API.
func (c *APIClient) Converse(ctx context.Context, message string) (*types.ConversationResponse, error) {
	body, err := sonic.Marshal(types.ConversationRequest{Message: message})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	var out types.ConversationResponse
	if err := c.do(ctx, consts.MethodPost, endpointConversation, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// NextQuestion fetches the current wizard question.
func (c *APIClient) NextQuestion(ctx context.Context) (*types.QuestionResponse, error) {
	var out types.QuestionResponse
	if err := c.do(ctx, consts.MethodGet, endpointNextQuestion, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitAnswer submits an answer to the current wizard question.
func (c *APIClient) SubmitAnswer(ctx context.Context, answer string) (*types.AnswerResponse, error) {
	body, err := sonic.Marshal(types.AnswerRequest{Answer: answer})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	var out types.AnswerResponse
	if err := c.do(ctx, consts.MethodPost, endpointAnswer, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Reset discards the server-side wizard session.
func (c *APIClient) Reset(ctx context.Context) (*types.ResetResponse, error) {
	var out types.ResetResponse
	if err := c.do(ctx, consts.MethodPost, endpointReset, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do sends one request and decodes the JSON reply into out. The server
// reports logical failures as a JSON body with an "error" field and a 4xx
// status; those decode fine and are surfaced through the response struct,
// not as a Go error. Only transport failures and undecodable replies
// return an error.
func (c *APIClient) do(ctx context.Context, method, endpoint string, body []byte, out interface{}) error {
	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(method)
	req.SetRequestURI(c.server + endpoint + "?user_id=" + url.QueryEscape(c.userID))
	if body != nil {
		req.Header.SetContentTypeBytes([]byte("application/json"))
		req.SetBody(body)
	}

	if err := c.client.Do(ctx, req, resp); err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	if err := sonic.Unmarshal(resp.Body(), out); err != nil {
		if resp.StatusCode() != consts.StatusOK {
			return fmt.Errorf("request failed with HTTP status: %d", resp.StatusCode())
		}
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return nil
}
