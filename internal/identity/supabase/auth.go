package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// User is the authenticated identity as Supabase reports it.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	User         User   `json:"user"`
}

// SignUpResult carries a session only when e-mail confirmation is off.
type SignUpResult struct {
	User    User     `json:"user"`
	Session *Session `json:"session,omitempty"`
}

type userResponse struct {
	ID           string                 `json:"id"`
	Email        string                 `json:"email"`
	Sub          string                 `json:"sub"`
	UserMetadata map[string]interface{} `json:"user_metadata"`
	User         struct {
		ID  string `json:"id"`
		Sub string `json:"sub"`
	} `json:"user"`
}

func (r userResponse) toUser() User {
	return User{
		ID:    firstNonEmpty(r.ID, r.Sub, r.User.ID, r.User.Sub),
		Email: r.Email,
		Name:  firstNonEmpty(stringFromMap(r.UserMetadata, "name"), stringFromMap(r.UserMetadata, "full_name")),
	}
}

type sessionResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int          `json:"expires_in"`
	User         userResponse `json:"user"`
}

func (r sessionResponse) toSession() *Session {
	return &Session{
		AccessToken:  r.AccessToken,
		RefreshToken: r.RefreshToken,
		TokenType:    r.TokenType,
		ExpiresIn:    r.ExpiresIn,
		User:         r.User.toUser(),
	}
}

// User returns the owner of token. When a JWT secret is configured the
// token is verified locally and no request is made.
func (c *Client) User(ctx context.Context, token string) (User, error) {
	if len(c.jwtSecret) > 0 {
		return c.Verify(token)
	}

	var payload userResponse
	if err := c.do(ctx, http.MethodGet, "/auth/v1/user", token, nil, nil, &payload); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && (apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden) {
			return User{}, ErrUnauthorized
		}
		return User{}, err
	}

	user := payload.toUser()
	if user.ID == "" {
		return User{}, ErrUnauthorized
	}
	return user, nil
}

// Verify checks an HS256 access token signed with the project JWT secret.
func (c *Client) Verify(token string) (User, error) {
	if len(c.jwtSecret) == 0 {
		return User{}, ErrNotConfigured
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return c.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return User{}, ErrUnauthorized
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return User{}, ErrUnauthorized
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return User{}, ErrUnauthorized
	}
	email, _ := claims["email"].(string)
	metadata, _ := claims["user_metadata"].(map[string]interface{})

	return User{
		ID:    sub,
		Email: email,
		Name:  firstNonEmpty(stringFromMap(metadata, "name"), stringFromMap(metadata, "full_name")),
	}, nil
}

type credentials struct {
	Email    string         `json:"email"`
	Password string         `json:"password"`
	Data     map[string]any `json:"data,omitempty"`
}

func (c *Client) SignIn(ctx context.Context, email, password string) (*Session, error) {
	var payload sessionResponse
	err := c.do(ctx, http.MethodPost, "/auth/v1/token?grant_type=password", "", credentials{
		Email:    email,
		Password: password,
	}, nil, &payload)
	if err != nil {
		return nil, classifyAuthError(err)
	}
	return payload.toSession(), nil
}

func (c *Client) SignUp(ctx context.Context, email, password, name string) (*SignUpResult, error) {
	body := credentials{Email: email, Password: password}
	if strings.TrimSpace(name) != "" {
		body.Data = map[string]any{"name": name}
	}

	var raw json.RawMessage
	if err := c.do(ctx, http.MethodPost, "/auth/v1/signup", "", body, nil, &raw); err != nil {
		return nil, classifyAuthError(err)
	}

	// a session comes back only when e-mail confirmation is disabled
	var session sessionResponse
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("decode signup: %w", err)
	}
	if session.AccessToken != "" {
		out := session.toSession()
		return &SignUpResult{User: out.User, Session: out}, nil
	}

	var user userResponse
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("decode signup: %w", err)
	}
	return &SignUpResult{User: user.toUser()}, nil
}

func (c *Client) SignOut(ctx context.Context, token string) error {
	err := c.do(ctx, http.MethodPost, "/auth/v1/logout", token, nil, nil, nil)
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
		return nil
	}
	return err
}

func classifyAuthError(err error) error {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return err
	}
	message := strings.ToLower(apiErr.Message)
	switch {
	case strings.Contains(message, "invalid login"):
		return ErrInvalidCredentials
	case strings.Contains(message, "already registered"):
		return ErrUserExists
	default:
		return err
	}
}
