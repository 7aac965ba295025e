package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/preston-bernstein/nba-stats-viewer/internal/logging"
)

const (
	defaultHTTPTimeout = 10 * time.Second
	maxResponseBytes   = 1 << 20
)

// Result is the outcome of a login, signup or logout attempt. Failures are
// reported through Message rather than an error.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	User    *User  `json:"user,omitempty"`
}

// Verification is the outcome of checking the stored token with the backend.
type Verification struct {
	Authenticated bool  `json:"authenticated"`
	User          *User `json:"user,omitempty"`
}

// Config controls how the client reaches the backend.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client calls the backend auth endpoints and updates the Session.
type Client struct {
	baseURL    string
	httpClient httpDoer
	session    *Session
	logger     *slog.Logger
}

// NewClient constructs an auth client that stores sessions in session.
func NewClient(cfg Config, session *Session, logger *slog.Logger) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultHTTPTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:    strings.TrimSuffix(strings.TrimSpace(cfg.BaseURL), "/"),
		httpClient: httpClient,
		session:    session,
		logger:     logger,
	}
}

// Session exposes the persisted session.
func (c *Client) Session() *Session {
	return c.session
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type authResponse struct {
	Success       bool   `json:"success"`
	Authenticated bool   `json:"authenticated"`
	Message       string `json:"message"`
	Token         string `json:"token"`
	User          *User  `json:"user"`
}

// Login authenticates and stores the session on success.
func (c *Client) Login(ctx context.Context, email, password string) Result {
	status, data, err := c.do(ctx, http.MethodPost, "/auth/login", "", loginRequest{Email: email, Password: password})
	if err != nil {
		return failure(status, err)
	}
	if status < 200 || status >= 300 {
		return Result{Message: messageOr(data.Message, fmt.Sprintf("Login failed (%d)", status))}
	}
	if !data.Success || data.User == nil || data.Token == "" {
		return Result{Message: messageOr(data.Message, "Login failed")}
	}
	if err := c.session.Set(ctx, data.Token, *data.User); err != nil {
		logging.Error(c.logger, "auth session write failed", err)
		return Result{Message: "Could not save session"}
	}
	return Result{Success: true, User: data.User, Message: messageOr(data.Message, "Login successful")}
}

// Signup creates an account. The session is stored only when the backend
// returns both a token and a user.
func (c *Client) Signup(ctx context.Context, firstName, lastName, email, password string) Result {
	body := signupRequest{FirstName: firstName, LastName: lastName, Email: email, Password: password}
	status, data, err := c.do(ctx, http.MethodPost, "/auth/signup", "", body)
	if err != nil {
		return failure(status, err)
	}
	if status < 200 || status >= 300 {
		return Result{Message: messageOr(data.Message, fmt.Sprintf("Signup failed (%d)", status))}
	}
	if !data.Success {
		return Result{Message: messageOr(data.Message, "Signup failed")}
	}
	if data.User != nil && data.Token != "" {
		if err := c.session.Set(ctx, data.Token, *data.User); err != nil {
			logging.Error(c.logger, "auth session write failed", err)
		}
	}
	return Result{Success: true, User: data.User, Message: messageOr(data.Message, "Account created successfully")}
}

// Logout notifies the backend when a token is held, then always clears the
// stored session. Backend failures are logged and otherwise ignored.
func (c *Client) Logout(ctx context.Context) error {
	if token := c.session.Token(ctx); token != "" {
		if _, _, err := c.do(ctx, http.MethodPost, "/auth/logout", token, nil); err != nil {
			logging.Warn(c.logger, "logout request failed", "error", err)
		}
	}
	return c.session.Clear(ctx)
}

// Verify checks the stored token. Success refreshes the stored user; any
// rejection clears the session. Transport or decode failures leave it as is.
func (c *Client) Verify(ctx context.Context) Verification {
	token := c.session.Token(ctx)
	if token == "" {
		return Verification{}
	}

	status, data, err := c.do(ctx, http.MethodGet, "/auth/verify", token, nil)
	if err != nil {
		logging.Warn(c.logger, "auth verify failed", "error", err, logging.FieldStatusCode, status)
		return Verification{}
	}
	if status == http.StatusOK && data.Authenticated {
		user := data.User
		if user != nil {
			if err := c.session.Set(ctx, token, *user); err != nil {
				logging.Error(c.logger, "auth session write failed", err)
			}
		} else {
			user = c.session.User(ctx)
		}
		return Verification{Authenticated: true, User: user}
	}

	if err := c.session.Clear(ctx); err != nil {
		logging.Error(c.logger, "auth session clear failed", err)
	}
	return Verification{}
}

// do sends one request and decodes the JSON reply. status is 0 when the
// request never produced a response.
func (c *Client) do(ctx context.Context, method, path, token string, body any) (int, authResponse, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, authResponse{}, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, authResponse{}, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, authResponse{}, err
	}
	defer resp.Body.Close()

	var data authResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&data); err != nil {
		return resp.StatusCode, authResponse{}, errDecode
	}
	return resp.StatusCode, data, nil
}

var errDecode = errors.New("auth: undecodable response")

func failure(status int, err error) Result {
	if errors.Is(err, errDecode) {
		return Result{Message: fmt.Sprintf("Server error (%d). Please check if the backend server is running.", status)}
	}
	return Result{Message: fmt.Sprintf("Cannot connect to server: %v", err)}
}

func messageOr(msg, fallback string) string {
	if msg != "" {
		return msg
	}
	return fallback
}
