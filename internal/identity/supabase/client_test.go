package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"aurora-app-go/internal/config"
	"aurora-app-go/internal/domain/subscription"
	"aurora-app-go/internal/domain/user"
	"github.com/golang-jwt/jwt/v5"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, secret string) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(config.SupabaseConfig{
		URL:            server.URL,
		PublishableKey: "anon-key",
		JWTSecret:      secret,
		AuthTimeout:    time.Second,
	})
}

func TestUserFromAuthEndpoint(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/user" || r.Header.Get("apikey") != "anon-key" {
			t.Errorf("unexpected request %s apikey=%q", r.URL.Path, r.Header.Get("apikey"))
		}
		if r.Header.Get("Authorization") != "Bearer good" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":            "u-1",
			"email":         "ana@example.com",
			"user_metadata": map[string]any{"full_name": "Ana Souza"},
		})
	}, "")

	got, err := client.User(context.Background(), "good")
	if err != nil {
		t.Fatalf("user: %v", err)
	}
	if got.ID != "u-1" || got.Email != "ana@example.com" || got.Name != "Ana Souza" {
		t.Fatalf("unexpected user %+v", got)
	}

	if _, err := client.User(context.Background(), "bad"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestVerifyLocalJWT(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("no request expected when verifying locally")
	}, "secret")

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":           "u-1",
		"email":         "ana@example.com",
		"user_metadata": map[string]any{"name": "Ana"},
		"exp":           time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	got, err := client.User(context.Background(), signed)
	if err != nil || got.ID != "u-1" || got.Name != "Ana" {
		t.Fatalf("verify: %+v %v", got, err)
	}

	forged, _ := token.SignedString([]byte("other"))
	if _, err := client.User(context.Background(), forged); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for a forged token, got %v", err)
	}

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "u-1", "exp": time.Now().Add(-time.Hour).Unix()})
	stale, _ := expired.SignedString([]byte("secret"))
	if _, err := client.User(context.Background(), stale); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for an expired token, got %v", err)
	}
}

func TestSignInErrors(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("grant_type") != "password" {
			t.Errorf("unexpected grant type %q", r.URL.RawQuery)
		}
		var body credentials
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Password != "right" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"Invalid login credentials"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok",
			"token_type":   "bearer",
			"expires_in":   3600,
			"user":         map[string]any{"id": "u-1", "email": body.Email},
		})
	}, "")

	if _, err := client.SignIn(context.Background(), "ana@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	session, err := client.SignIn(context.Background(), "ana@example.com", "right")
	if err != nil || session.AccessToken != "tok" || session.User.ID != "u-1" {
		t.Fatalf("sign in: %+v %v", session, err)
	}
}

func TestSignUp(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body credentials
		_ = json.NewDecoder(r.Body).Decode(&body)
		switch body.Email {
		case "taken@example.com":
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"code":422,"msg":"User already registered"}`))
		case "confirm@example.com":
			_ = json.NewEncoder(w).Encode(map[string]any{"id": "u-2", "email": body.Email, "user_metadata": body.Data})
		default:
			_ = json.NewEncoder(w).Encode(map[string]any{
				"access_token": "tok",
				"user":         map[string]any{"id": "u-3", "email": body.Email},
			})
		}
	}, "")

	ctx := context.Background()
	if _, err := client.SignUp(ctx, "taken@example.com", "pw", ""); !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	pending, err := client.SignUp(ctx, "confirm@example.com", "pw", "Bia")
	if err != nil || pending.Session != nil || pending.User.ID != "u-2" || pending.User.Name != "Bia" {
		t.Fatalf("unexpected pending signup %+v %v", pending, err)
	}
	active, err := client.SignUp(ctx, "new@example.com", "pw", "")
	if err != nil || active.Session == nil || active.User.ID != "u-3" {
		t.Fatalf("unexpected active signup %+v %v", active, err)
	}
}

func TestProfileStore(t *testing.T) {
	rows := map[string]user.Profile{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer user-token" {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"message":"permission denied for table profiles"}`))
			return
		}
		switch r.Method {
		case http.MethodGet:
			id := r.URL.Query().Get("id")[len("eq."):]
			out := []user.Profile{}
			if row, ok := rows[id]; ok {
				out = append(out, row)
			}
			_ = json.NewEncoder(w).Encode(out)
		case http.MethodPost:
			var p user.Profile
			_ = json.NewDecoder(r.Body).Decode(&p)
			rows[p.ID] = p
			w.WriteHeader(http.StatusCreated)
		case http.MethodPatch:
			if r.Header.Get("Prefer") != "return=representation" {
				t.Errorf("updates must ask for the changed rows, got Prefer=%q", r.Header.Get("Prefer"))
			}
			id := r.URL.Query().Get("id")[len("eq."):]
			var patch map[string]subscription.Plan
			_ = json.NewDecoder(r.Body).Decode(&patch)
			out := []user.Profile{}
			if row, ok := rows[id]; ok {
				row.Subscription = patch["subscription"]
				rows[id] = row
				out = append(out, row)
			}
			_ = json.NewEncoder(w).Encode(out)
		}
	}, "")
	store := NewProfileStore(client)

	var apiErr *APIError
	if _, err := store.GetProfile(context.Background(), "u-1"); !errors.As(err, &apiErr) || apiErr.Status != http.StatusForbidden {
		t.Fatalf("expected permission error, got %v", err)
	}

	ctx := WithAccessToken(context.Background(), "user-token")
	if _, err := store.GetProfile(ctx, "u-1"); !errors.Is(err, user.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
	if err := store.CreateProfile(ctx, &user.Profile{ID: "u-1", Name: "Ana", Subscription: subscription.PlanFree}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := store.UpdateSubscription(ctx, "u-9", subscription.PlanPro); !errors.Is(err, user.ErrProfileNotFound) {
		t.Fatalf("an update matching no row must fail, got %v", err)
	}
	if err := store.UpdateSubscription(ctx, "u-1", subscription.PlanPro); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := store.GetProfile(ctx, "u-1")
	if err != nil || got.Name != "Ana" || got.Subscription != subscription.PlanPro {
		t.Fatalf("unexpected profile %+v %v", got, err)
	}
}

func TestUpdateSubscriptionHiddenRow(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// row-level security filters the row out, PostgREST still answers 2xx
		if r.Header.Get("Prefer") == "return=minimal" {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}, "")
	store := NewProfileStore(client)

	ctx := WithAccessToken(context.Background(), "user-token")
	if err := store.UpdateSubscription(ctx, "u-1", subscription.PlanPro); !errors.Is(err, user.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestNotConfigured(t *testing.T) {
	client := New(config.SupabaseConfig{})
	if _, err := client.SignIn(context.Background(), "a@b.c", "pw"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
