package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/YatruSathi/-yatrusathi-backend/internal/server"
)

type testEnv struct {
	t      *testing.T
	router *gin.Engine
	store  *memStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	store := newMemStore()
	repos := server.Repositories{
		Users:         &fakeUserRepo{store},
		Tokens:        &fakeTokenRepo{store},
		Events:        &fakeEventRepo{store},
		Bookings:      &fakeBookingRepo{store},
		Favorites:     &fakeFavoriteRepo{store},
		Reviews:       &fakeReviewRepo{store},
		ChatMessages:  &fakeChatRepo{store},
		Notifications: &fakeNotificationRepo{store},
		Profiles:      &fakeProfileRepo{store},
	}

	r := gin.New()
	server.SetupRoutes(r, repos)
	return &testEnv{t: t, router: r, store: store}
}

func (env *testEnv) requestJSON(method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	env.t.Helper()

	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(env.t, err)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func (env *testEnv) requestForm(method, path, token string, form url.Values) *httptest.ResponseRecorder {
	env.t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func (env *testEnv) decode(w *httptest.ResponseRecorder, out interface{}) {
	env.t.Helper()
	require.NoError(env.t, json.Unmarshal(w.Body.Bytes(), out))
}

func (env *testEnv) signup(username, email string) (string, uuid.UUID) {
	env.t.Helper()

	w := env.requestJSON(http.MethodPost, "/v1/auth/signup", "", gin.H{
		"username": username,
		"email":    email,
		"password": "secret123",
	})
	require.Equal(env.t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID uuid.UUID `json:"id"`
		} `json:"user"`
	}
	env.decode(w, &resp)
	require.NotEmpty(env.t, resp.Token)
	return resp.Token, resp.User.ID
}

func (env *testEnv) createEvent(token, title, date string) uuid.UUID {
	env.t.Helper()

	form := url.Values{}
	form.Set("title", title)
	form.Set("description", "A fine outing.")
	form.Set("date", date)
	form.Set("location", "Kathmandu")

	w := env.requestForm(http.MethodPost, "/v1/events", token, form)
	require.Equal(env.t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Event struct {
			ID uuid.UUID `json:"id"`
		} `json:"event"`
	}
	env.decode(w, &resp)
	return resp.Event.ID
}
