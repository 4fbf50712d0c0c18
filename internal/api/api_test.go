package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/clubregistry/internal/api"
	"github.com/mcoot/clubregistry/internal/api/response"
	"github.com/mcoot/clubregistry/internal/factory"
	"github.com/mcoot/clubregistry/internal/model"
	"github.com/mcoot/clubregistry/internal/testutil"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	app     *factory.App
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	// API tests are integration tests - use production factory with real uuids
	app, err := factory.New(t.Context(), factory.Config{})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:   testutil.NopLogger(),
		Registry: app.Registry,
	})

	return &testServer{
		handler: router,
		app:     app,
	}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	switch b := body.(type) {
	case nil:
		reqBody = bytes.NewBuffer(nil)
	case string:
		reqBody = bytes.NewBufferString(b)
	default:
		data, _ := json.Marshal(b)
		reqBody = bytes.NewBuffer(data)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func (ts *testServer) listUsers(t *testing.T) []response.User {
	t.Helper()
	rr := ts.request(http.MethodGet, "/user", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var users []response.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &users))
	return users
}

func validBody() map[string]any {
	return map[string]any{
		"username":     "newStudent1",
		"password":     "abc12345",
		"favoriteClub": "Ogden Curling Club",
	}
}

func TestGetRoot(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "A GET request", rr.Body.String())
}

func TestPostRoot(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/", map[string]string{"anything": "goes"})
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "POST request received.", rr.Body.String())
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestListReturnsFixtures(t *testing.T) {
	ts := newTestServer(t)

	users := ts.listUsers(t)
	require.Len(t, users, 2)
	assert.Equal(t, "sallyStudent", users[0].Username)
	assert.Equal(t, "c00d1ng1sc00l", users[0].Password)
	assert.Equal(t, "true", users[0].NewsLetter)
	assert.Equal(t, "johnBlocton", users[1].Username)
}

func TestRegisterUser(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/user", validBody())
	require.Equal(t, http.StatusCreated, rr.Code)

	var created response.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))

	parsed, err := uuid.Parse(created.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
	assert.Equal(t, "newStudent1", created.Username)
	assert.Equal(t, "abc12345", created.Password)
	assert.Equal(t, "Ogden Curling Club", created.FavoriteClub)
	assert.Equal(t, false, created.NewsLetter)
	assert.Equal(t, "/user/"+created.ID, rr.Header().Get("Location"))

	for _, fixture := range model.FixtureUsers() {
		assert.NotEqual(t, string(fixture.ID), created.ID)
	}
}

func TestRegisterLocationUsesPublicURL(t *testing.T) {
	app := factory.NewTestApp()
	app.MockIDs.Queue("fixed-id")
	router := api.NewRouter(api.RouterConfig{
		Logger:    testutil.NopLogger(),
		Registry:  app.Registry,
		PublicURL: "http://localhost:8000/",
	})

	data, _ := json.Marshal(validBody())
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/user", bytes.NewReader(data)))

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "http://localhost:8000/user/fixed-id", rr.Header().Get("Location"))
}

func TestRegisterNewsLetterPassesThrough(t *testing.T) {
	ts := newTestServer(t)

	body := validBody()
	body["newsLetter"] = "true"
	rr := ts.request(http.MethodPost, "/user", body)
	require.Equal(t, http.StatusCreated, rr.Code)

	var created response.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, "true", created.NewsLetter)

	body["newsLetter"] = true
	rr = ts.request(http.MethodPost, "/user", body)
	require.Equal(t, http.StatusCreated, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, true, created.NewsLetter)
}

func TestRegisterMissingFields(t *testing.T) {
	tests := []struct {
		field   string
		message string
	}{
		{"username", "Username required"},
		{"password", "Password required"},
		{"favoriteClub", "favorite Club required"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			ts := newTestServer(t)

			body := validBody()
			delete(body, tt.field)
			rr := ts.request(http.MethodPost, "/user", body)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, tt.message, rr.Body.String())
			assert.Len(t, ts.listUsers(t), 2)

			body = validBody()
			body[tt.field] = ""
			rr = ts.request(http.MethodPost, "/user", body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, tt.message, rr.Body.String())

			body = validBody()
			body[strings.ToUpper(tt.field)] = body[tt.field]
			delete(body, tt.field)
			rr = ts.request(http.MethodPost, "/user", body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, tt.message, rr.Body.String())
			assert.Len(t, ts.listUsers(t), 2)
		})
	}
}

func TestRegisterFieldNamesAreCaseSensitive(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/user", map[string]any{
		"USERNAME":     "newStudent1",
		"Password":     "abc12345",
		"FavoriteClub": "Ogden Curling Club",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Username required", rr.Body.String())
	assert.Len(t, ts.listUsers(t), 2)

	body := validBody()
	delete(body, "favoriteClub")
	body["favoriteclub"] = "Ogden Curling Club"
	rr = ts.request(http.MethodPost, "/user", body)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "favorite Club required", rr.Body.String())
	assert.Len(t, ts.listUsers(t), 2)
}

func TestRegisterTrailingData(t *testing.T) {
	ts := newTestServer(t)

	data, err := json.Marshal(validBody())
	require.NoError(t, err)

	for _, suffix := range []string{" trailing-garbage", " {}", "}"} {
		rr := ts.request(http.MethodPost, "/user", string(data)+suffix)
		assert.Equal(t, http.StatusBadRequest, rr.Code, suffix)
		assert.Equal(t, "Invalid request body", rr.Body.String(), suffix)
	}
	assert.Len(t, ts.listUsers(t), 2)

	rr := ts.request(http.MethodPost, "/user", string(data)+"\n  ")
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestRegisterEmptyBody(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/user", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Username required", rr.Body.String())
}

func TestRegisterMalformedBody(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/user", `{"username": `)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid request body", rr.Body.String())
	assert.Len(t, ts.listUsers(t), 2)
}

func TestRegisterUsernameBoundaries(t *testing.T) {
	tests := []struct {
		length int
		status int
	}{
		{5, http.StatusBadRequest},
		{6, http.StatusCreated},
		{20, http.StatusCreated},
		{21, http.StatusBadRequest},
	}

	ts := newTestServer(t)
	for _, tt := range tests {
		body := validBody()
		body["username"] = strings.Repeat("u", tt.length)
		rr := ts.request(http.MethodPost, "/user", body)
		assert.Equal(t, tt.status, rr.Code, "username length %d", tt.length)
		if tt.status == http.StatusBadRequest {
			assert.Equal(t, "Username must be between 6 and 20 characters", rr.Body.String())
		}
	}
}

func TestRegisterPasswordRules(t *testing.T) {
	tests := []struct {
		password string
		status   int
		message  string
	}{
		{"abc1234", http.StatusBadRequest, "Password must be between 8 and 36 characters"},
		{"abcd1234", http.StatusCreated, ""},
		{"alllettersnodigits", http.StatusBadRequest, "Password must be contain at least one digit"},
		{"letters1234", http.StatusCreated, ""},
		{"12345678", http.StatusBadRequest, "Password must be contain at least one digit"},
		{"pass word1", http.StatusBadRequest, "Password must be contain at least one digit"},
	}

	ts := newTestServer(t)
	for _, tt := range tests {
		body := validBody()
		body["password"] = tt.password
		rr := ts.request(http.MethodPost, "/user", body)
		assert.Equal(t, tt.status, rr.Code, "password %q", tt.password)
		if tt.message != "" {
			assert.Equal(t, tt.message, rr.Body.String())
		}
	}
}

func TestRegisterClubs(t *testing.T) {
	ts := newTestServer(t)

	body := validBody()
	body["favoriteClub"] = "Not A Club"
	rr := ts.request(http.MethodPost, "/user", body)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Not a valid club", rr.Body.String())

	for _, club := range model.Clubs {
		body["favoriteClub"] = club
		rr = ts.request(http.MethodPost, "/user", body)
		assert.Equal(t, http.StatusCreated, rr.Code, club)
	}
	assert.Len(t, ts.listUsers(t), 2+len(model.Clubs))
}

func TestGetUser(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/user/ce20079c-2326-4f17-8ac4-f617bfd28b7f", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var user response.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &user))
	assert.Equal(t, "johnBlocton", user.Username)

	rr = ts.request(http.MethodGet, "/user/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "User not found", rr.Body.String())
}

func TestDeleteUser(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodDelete, "/user/3c8da4d5-1597-46e7-baa1-e402aed70d80", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())

	users := ts.listUsers(t)
	require.Len(t, users, 1)
	assert.Equal(t, "johnBlocton", users[0].Username)
}

func TestDeleteUnknownUser(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodDelete, "/user/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "User not found", rr.Body.String())
	assert.Len(t, ts.listUsers(t), 2)
}

func TestListAfterRegistrationsKeepsOrder(t *testing.T) {
	ts := newTestServer(t)

	var ids []string
	for _, name := range []string{"firstUser", "secondUser", "thirdUser"} {
		body := validBody()
		body["username"] = name
		rr := ts.request(http.MethodPost, "/user", body)
		require.Equal(t, http.StatusCreated, rr.Code)

		var created response.User
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
		ids = append(ids, created.ID)
	}

	users := ts.listUsers(t)
	require.Len(t, users, 5)
	assert.Equal(t, "sallyStudent", users[0].Username)
	assert.Equal(t, "johnBlocton", users[1].Username)
	for i, id := range ids {
		assert.Equal(t, id, users[2+i].ID)
	}
}

func TestRegisterListDeleteScenario(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/user", `{"username":"newStudent1","password":"abc12345","favoriteClub":"Ogden Curling Club"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	var created map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.NotEmpty(t, created["id"])
	assert.Equal(t, "newStudent1", created["username"])
	assert.Equal(t, false, created["newsLetter"])

	assert.Len(t, ts.listUsers(t), 3)

	rr = ts.request(http.MethodDelete, "/user/"+created["id"].(string), nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	assert.Len(t, ts.listUsers(t), 2)
}

func TestUnknownRoute(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
}

func TestResponsesCarryCORSAndSecurityHeaders(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/user", nil)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "SAMEORIGIN", rr.Header().Get("X-Frame-Options"))
}
