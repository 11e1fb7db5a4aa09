package api

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airiskcouncil/arcctl/internal/authz"
	cerrors "github.com/airiskcouncil/arcctl/internal/errors"
)

func TestLoginShortPasswordRejectedBeforeNetwork(t *testing.T) {
	var hits int32
	server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		writeEnvelope(w, nil)
	}))

	client := newTestClient(t, server)

	// 7 characters: one short of the minimum.
	_, err := client.Login(context.Background(), "a@b.com", "short12")
	require.Error(t, err)

	assert.True(t, cerrors.IsCode(err, cerrors.ErrCodeValidation))
	assert.Equal(t, "Password must be at least 8 characters.", ErrorMessage(err))
	assert.Equal(t, int32(0), atomic.LoadInt32(&hits), "validation must reject before any network call")
}

func TestLoginValidation(t *testing.T) {
	server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, nil)
	}))
	client := newTestClient(t, server)

	tests := []struct {
		name     string
		email    string
		password string
		message  string
	}{
		{"empty email", "", "password123", "Email is required."},
		{"malformed email", "not-an-email", "password123", "Please enter a valid email address."},
		{"empty password", "a@b.com", "", "Password is required."},
		{"short password", "a@b.com", "1234567", "Password must be at least 8 characters."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.Login(context.Background(), tt.email, tt.password)
			require.Error(t, err)
			assert.Equal(t, tt.message, ErrorMessage(err))
		})
	}
}

func TestLoginSuccess(t *testing.T) {
	server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)
		writeEnvelope(w, map[string]any{
			"id":    "u1",
			"name":  "Ada",
			"email": "a@b.com",
			"role":  "paid_member",
		})
	}))

	client := newTestClient(t, server)
	user, err := client.Login(context.Background(), "a@b.com", "password123")
	require.NoError(t, err)

	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, authz.RolePaidMember, user.Role)
}

func TestLoginPendingApproval(t *testing.T) {
	server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusUnauthorized, "Your account is pending approval")
	}))

	client := newTestClient(t, server)
	_, err := client.Login(context.Background(), "a@b.com", "password123")
	require.Error(t, err)

	// Pending approval is a distinct sub-case rendered as a warning, not a
	// generic credential failure.
	assert.True(t, cerrors.IsCode(err, cerrors.ErrCodePendingApproval))
	assert.Equal(t, "Your account is pending approval", ErrorMessage(err))
}

func TestLoginBadCredentials(t *testing.T) {
	server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusUnauthorized, "")
	}))

	client := newTestClient(t, server)
	_, err := client.Login(context.Background(), "a@b.com", "password123")
	require.Error(t, err)
	assert.Equal(t, "Invalid email or password.", ErrorMessage(err))
}

func TestRegisterValidation(t *testing.T) {
	server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, nil)
	}))
	client := newTestClient(t, server)

	_, err := client.Register(context.Background(), RegisterInput{Email: "a@b.com", Password: "password123"})
	require.Error(t, err)
	assert.Equal(t, "Name is required.", ErrorMessage(err))
}

func TestRegisterSuccess(t *testing.T) {
	server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/register", r.URL.Path)
		writeEnvelope(w, map[string]any{
			"id":       "u2",
			"name":     "Grace",
			"email":    "g@b.com",
			"role":     "free_member",
			"approved": false,
		})
	}))

	client := newTestClient(t, server)
	user, err := client.Register(context.Background(), RegisterInput{
		Name:     "Grace",
		Email:    "g@b.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.False(t, user.Approved)
}

func TestMeAnonymous(t *testing.T) {
	server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusUnauthorized, "not logged in")
	}))

	client := newTestClient(t, server)
	_, err := client.Me(context.Background())
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, StatusOf(err))
}

func TestLogout(t *testing.T) {
	var path string
	server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		writeEnvelope(w, nil)
	}))

	client := newTestClient(t, server)
	require.NoError(t, client.Logout(context.Background()))
	assert.Equal(t, "/auth/logout", path)
}
