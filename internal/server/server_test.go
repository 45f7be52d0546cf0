package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/needlesync/needlesync/internal/auth"
	"github.com/needlesync/needlesync/internal/server"
	"github.com/needlesync/needlesync/internal/store"
)

type fakeUsers struct {
	users  map[string]*store.User
	nextID int64
}

func (f *fakeUsers) FindByIdentifier(_ context.Context, identifier string) (*store.User, error) {
	user, ok := f.users[identifier]
	if !ok {
		return nil, store.ErrNotFound
	}
	return user, nil
}

func (f *fakeUsers) Create(_ context.Context, user *store.User) (*store.User, error) {
	for _, existing := range f.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return nil, store.ErrConflict
		}
	}
	user.ID = f.nextID
	f.nextID++
	f.users[user.Email] = user
	return user, nil
}

type fakeProjects struct {
	projects []store.Project
	nextID   int64
}

func (f *fakeProjects) ListByOwner(_ context.Context, userID int64) ([]store.Project, error) {
	owned := make([]store.Project, 0)
	for _, p := range f.projects {
		if p.UserID == userID {
			owned = append(owned, p)
		}
	}
	return owned, nil
}

func (f *fakeProjects) Create(_ context.Context, project *store.Project) (*store.Project, error) {
	project.ID = f.nextID
	f.nextID++
	f.projects = append(f.projects, *project)
	return project, nil
}

type testEnv struct {
	srv    *server.Server
	tokens *auth.TokenService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	tokens := auth.NewTokenService([]byte("test-secret"), 15*time.Minute, "needlesync", nil)
	users := &fakeUsers{users: map[string]*store.User{}, nextID: 1}

	srv := server.New(server.Options{
		Authenticator: auth.NewAuthenticator(users, tokens, nil),
		Guard:         auth.NewGuard(tokens, nil),
		Projects:      &fakeProjects{nextID: 1},
		Logger:        nil,
	})

	return &testEnv{srv: srv, tokens: tokens}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var buf io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.srv.App().Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestRegisterLoginProjectFlow(t *testing.T) {
	env := newTestEnv(t)

	// Register.
	resp := env.do(t, http.MethodPost, "/register", "", map[string]any{
		"email": "a@x.com", "username": "a", "password": "pw123456",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		ID int64 `json:"id"`
	}
	decodeJSON(t, resp, &created)
	require.Equal(t, int64(1), created.ID)

	// Same identifier again conflicts.
	resp = env.do(t, http.MethodPost, "/register", "", map[string]any{
		"email": "a@x.com", "username": "a2", "password": "pw123456",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Login with the right password.
	resp = env.do(t, http.MethodPost, "/login", "", map[string]any{
		"email": "a@x.com", "password": "pw123456",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var login struct {
		ID    int64  `json:"id"`
		Email string `json:"email"`
		Token string `json:"token"`
	}
	decodeJSON(t, resp, &login)
	assert.Equal(t, created.ID, login.ID)
	assert.Equal(t, "a@x.com", login.Email)

	claims, err := env.tokens.Validate(login.Token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, claims.UserID)

	// Login with the wrong password: 401 and a generic message.
	resp = env.do(t, http.MethodPost, "/login", "", map[string]any{
		"email": "a@x.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var loginErr struct {
		Error string `json:"error"`
	}
	decodeJSON(t, resp, &loginErr)
	assert.Equal(t, "invalid credentials", loginErr.Error)

	// Login with an unknown account: exact same message.
	resp = env.do(t, http.MethodPost, "/login", "", map[string]any{
		"email": "nobody@x.com", "password": "pw123456",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var unknownErr struct {
		Error string `json:"error"`
	}
	decodeJSON(t, resp, &unknownErr)
	assert.Equal(t, loginErr.Error, unknownErr.Error)

	// Create a project owned by the token subject.
	resp = env.do(t, http.MethodPost, "/projects", login.Token, map[string]any{
		"user_id": created.ID, "name": "rewrite backend", "completed": false, "time": 0,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var project store.Project
	decodeJSON(t, resp, &project)
	assert.Equal(t, created.ID, project.UserID)
	assert.Equal(t, "rewrite backend", project.Name)

	// Creating for a different owner is forbidden even with a valid token.
	resp = env.do(t, http.MethodPost, "/projects", login.Token, map[string]any{
		"user_id": created.ID + 1, "name": "sneaky", "completed": false, "time": 0,
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Listing own projects works.
	resp = env.do(t, http.MethodGet, "/projects/1", login.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var projects []store.Project
	decodeJSON(t, resp, &projects)
	require.Len(t, projects, 1)
	assert.Equal(t, "rewrite backend", projects[0].Name)

	// Listing someone else's is forbidden.
	resp = env.do(t, http.MethodGet, "/projects/2", login.Token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing email", map[string]any{"username": "a", "password": "pw123456"}},
		{"bad email", map[string]any{"email": "nope", "username": "a", "password": "pw123456"}},
		{"empty password", map[string]any{"email": "a@x.com", "username": "a", "password": ""}},
		{"short password", map[string]any{"email": "a@x.com", "username": "a", "password": "short"}},
		{"missing username", map[string]any{"email": "a@x.com", "password": "pw123456"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := env.do(t, http.MethodPost, "/register", "", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestProtectedRoutes(t *testing.T) {
	env := newTestEnv(t)

	token, err := env.tokens.Issue(7)
	require.NoError(t, err)

	t.Run("no token is unauthorized", func(t *testing.T) {
		resp := env.do(t, http.MethodGet, "/projects/7", "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("empty bearer token is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/projects/7", nil)
		req.Header.Set("Authorization", "Bearer ")
		resp, err := env.srv.App().Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("garbage token is unauthorized", func(t *testing.T) {
		resp := env.do(t, http.MethodGet, "/projects/7", "garbage", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("expired token is unauthorized", func(t *testing.T) {
		expired, err := env.tokens.IssueWithTTL(7, -time.Minute)
		require.NoError(t, err)

		resp := env.do(t, http.MethodGet, "/projects/7", expired, nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("listing an owner with no projects returns an empty array", func(t *testing.T) {
		resp := env.do(t, http.MethodGet, "/projects/7", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var projects []store.Project
		decodeJSON(t, resp, &projects)
		assert.Empty(t, projects)
		assert.NotNil(t, projects)
	})

	t.Run("empty project name is a 400", func(t *testing.T) {
		resp := env.do(t, http.MethodPost, "/projects", token, map[string]any{
			"user_id": int64(7), "name": "", "completed": false, "time": 0,
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("negative time is a 400", func(t *testing.T) {
		resp := env.do(t, http.MethodPost, "/projects", token, map[string]any{
			"user_id": int64(7), "name": "p", "completed": false, "time": -5,
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
