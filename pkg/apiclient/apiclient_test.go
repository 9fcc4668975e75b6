package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meeting-room-booking/pkg/log"
)

type fakeAPI struct {
	mu        sync.Mutex
	validTok  string
	refreshOK bool
	refreshes int
	logouts   int
	hits      map[string]int
	lastQuery map[string]string
	lastBody  map[string]any
	lastEnv   string
	block     chan struct{}
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{validTok: "access-1", refreshOK: true, hits: map[string]int{}}
}

func writeEnv(w http.ResponseWriter, code int, status, msg string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]any{"status": status, "message": msg, "data": data})
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.hits[r.Method+" "+r.URL.Path]++
	f.lastEnv = r.Header.Get(HeaderClientEnv)
	f.lastQuery = map[string]string{}
	for k := range r.URL.Query() {
		f.lastQuery[k] = r.URL.Query().Get(k)
	}
	f.lastBody = nil
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&f.lastBody)
	}
	authorized := r.Header.Get("Authorization") == "Bearer "+f.validTok
	block := f.block
	f.mu.Unlock()

	switch r.URL.Path {
	case "/auth/refresh-token":
		f.mu.Lock()
		f.refreshes++
		ok := f.refreshOK
		if ok {
			f.validTok = "access-2"
		}
		f.mu.Unlock()
		if !ok {
			writeEnv(w, http.StatusUnauthorized, "error", "Unauthorized", nil)
			return
		}
		writeEnv(w, http.StatusOK, "success", "", TokenPair{AccessToken: "access-2", RefreshToken: "refresh-2", ExpiresIn: 900})
		return
	case "/auth/oauth-url":
		writeEnv(w, http.StatusOK, "success", "", map[string]string{"url": "https://accounts.example.com/auth?state=st-1&client=" + r.URL.Query().Get("client")})
		return
	case "/auth/oauth/callback":
		if f.lastBody["code"] != "good-code" {
			writeEnv(w, http.StatusBadRequest, "error", "Invalid authorization code", nil)
			return
		}
		writeEnv(w, http.StatusOK, "success", "", LoginResult{TokenPair: TokenPair{AccessToken: "access-1", RefreshToken: "refresh-1"}, Email: "ann@example.com"})
		return
	case "/auth/logout":
		f.mu.Lock()
		f.logouts++
		f.mu.Unlock()
		writeEnv(w, http.StatusOK, "success", "", nil)
		return
	}

	if !authorized {
		writeEnv(w, http.StatusUnauthorized, "error", "Unauthorized", nil)
		return
	}

	switch r.URL.Path {
	case "/auth/validate-session":
		writeEnv(w, http.StatusOK, "success", "", true)
	case "/highest-seat-count":
		writeEnv(w, http.StatusOK, "success", "", 16)
	case "/floors":
		writeEnv(w, http.StatusOK, "success", "", []string{"1", "2"})
	case "/available-rooms":
		if block != nil {
			select {
			case <-block:
			case <-r.Context().Done():
				return
			}
		}
		writeEnv(w, http.StatusOK, "success", "", []Room{{Email: "focus@example.com", Name: "Focus", Seats: 4}})
	case "/room":
		switch r.Method {
		case http.MethodDelete:
			writeEnv(w, http.StatusOK, "success", "", DeleteResult{EventID: r.URL.Query().Get("id"), Deleted: true})
		case http.MethodPut:
			writeEnv(w, http.StatusForbidden, "error", "You can only change events you organize", nil)
		default:
			writeEnv(w, http.StatusOK, "success", "", Event{EventID: "ev-1", Room: "Focus"})
		}
	default:
		writeEnv(w, http.StatusInternalServerError, "error", "", nil)
	}
}

type recordingNav struct {
	mu      sync.Mutex
	targets []string
}

func (n *recordingNav) Navigate(target string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.targets = append(n.targets, target)
}

func newTestClient(t *testing.T, api *fakeAPI, signedIn bool) (*Client, *MemoryTokenStore, *recordingNav) {
	t.Helper()
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	store := &MemoryTokenStore{}
	if signedIn {
		require.NoError(t, store.SetTokens(TokenPair{AccessToken: "access-1", RefreshToken: "refresh-1"}))
	}
	nav := &recordingNav{}
	c := New(Config{BaseURL: srv.URL + "/", Environment: "test"}, store, nav, log.NewNop())
	return c, store, nav
}

func TestDomainOperations(t *testing.T) {
	api := newFakeAPI()
	c, _, _ := newTestClient(t, api, true)
	ctx := context.Background()

	seats := c.GetMaxSeatCount(ctx)
	require.True(t, seats.OK(), seats.Message)
	assert.Equal(t, 16, seats.Data)
	assert.Equal(t, "test", api.lastEnv)

	floors := c.GetFloors(ctx)
	assert.Equal(t, []string{"1", "2"}, floors.Data)

	rooms := c.GetAvailableRooms(ctx, AvailableRoomsQuery{StartTime: "2024-01-15T14:00:00+05:30", Duration: 30, TimeZone: "Asia/Kolkata", Seats: 2, Floor: "1"})
	require.True(t, rooms.OK())
	assert.Len(t, rooms.Data, 1)
	assert.Equal(t, "30", api.lastQuery["duration"])
	assert.Equal(t, "1", api.lastQuery["floor"])
	_, hasEventID := api.lastQuery["eventId"]
	assert.False(t, hasEventID)

	ev := c.CreateEvent(ctx, BookingPayload{Room: "focus@example.com", Duration: 30, Seats: 2})
	require.True(t, ev.OK())
	assert.Equal(t, "ev-1", ev.Data.EventID)
	assert.Equal(t, "focus@example.com", api.lastBody["room"])

	del := c.DeleteEvent(ctx, "ev-1")
	assert.Equal(t, DeleteResult{EventID: "ev-1", Deleted: true}, del.Data)
}

func TestServerErrorEnvelope(t *testing.T) {
	api := newFakeAPI()
	c, _, _ := newTestClient(t, api, true)

	env := c.UpdateEvent(context.Background(), "ev-1", BookingPayload{Room: "focus@example.com"})
	assert.Equal(t, StatusError, env.Status)
	assert.Equal(t, http.StatusForbidden, env.Code)
	assert.Equal(t, "You can only change events you organize", env.Message)
	assert.Equal(t, "ev-1", api.lastBody["eventId"])
}

func TestUnauthorizedRefreshesOnce(t *testing.T) {
	api := newFakeAPI()
	api.validTok = "rotated"
	api.refreshOK = true
	c, store, nav := newTestClient(t, api, true)

	env := c.GetFloors(context.Background())
	require.True(t, env.OK(), env.Message)

	assert.Equal(t, 1, api.refreshes)
	assert.Equal(t, 2, api.hits["GET /floors"], "original request is replayed once")
	pair, _ := store.Tokens()
	assert.Equal(t, "access-2", pair.AccessToken)
	assert.Empty(t, nav.targets)
}

func TestUnauthorizedRefreshFailureSignsOut(t *testing.T) {
	api := newFakeAPI()
	api.validTok = "rotated"
	api.refreshOK = false
	c, store, nav := newTestClient(t, api, true)

	env := c.GetFloors(context.Background())
	assert.Equal(t, StatusError, env.Status)
	assert.Equal(t, http.StatusUnauthorized, env.Code)

	assert.Equal(t, 1, api.refreshes)
	assert.Equal(t, 1, api.hits["GET /floors"])
	assert.Equal(t, 1, api.logouts)
	_, ok := store.Tokens()
	assert.False(t, ok)
	assert.Equal(t, []string{RouteSignIn}, nav.targets)
}

func TestCancelledRequestIsIgnored(t *testing.T) {
	api := newFakeAPI()
	api.block = make(chan struct{})
	defer close(api.block)
	c, _, _ := newTestClient(t, api, true)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	env := c.GetAvailableRooms(ctx, AvailableRoomsQuery{StartTime: "x", Duration: 15, Seats: 1})
	assert.Equal(t, StatusIgnore, env.Status)
	assert.Empty(t, env.Message)
}

func TestTransportFailureIsGenericError(t *testing.T) {
	c := New(Config{BaseURL: "http://127.0.0.1:1"}, nil, nil, nil)

	env := c.GetFloors(context.Background())
	assert.Equal(t, StatusError, env.Status)
	assert.Equal(t, genericError, env.Message)
	assert.Zero(t, env.Code)
}

func TestSessionLifecycle(t *testing.T) {
	api := newFakeAPI()
	c, store, nav := newTestClient(t, api, false)
	ctx := context.Background()

	assert.False(t, c.ValidateSession(ctx), "no tokens stored")

	login := c.Login(ctx)
	require.True(t, login.OK())
	require.Len(t, nav.targets, 1)
	assert.Contains(t, nav.targets[0], "client=web")

	bad := c.HandleOAuthCallback(ctx, "bad-code", "st-1")
	assert.Equal(t, "Invalid authorization code", bad.Message)

	res := c.HandleOAuthCallback(ctx, "good-code", "st-1")
	require.True(t, res.OK())
	assert.Equal(t, "ann@example.com", res.Data.Email)
	assert.True(t, c.ValidateSession(ctx))

	c.Logout(ctx)
	assert.Equal(t, 1, api.logouts)
	_, ok := store.Tokens()
	assert.False(t, ok)
}

type bridgeFunc func(ctx context.Context, authURL string) (string, error)

func (f bridgeFunc) Authorize(ctx context.Context, authURL string) (string, error) {
	return f(ctx, authURL)
}

func TestLoginViaBridge(t *testing.T) {
	api := newFakeAPI()
	c, _, _ := newTestClient(t, api, false)

	var seen string
	env := c.LoginViaBridge(context.Background(), bridgeFunc(func(ctx context.Context, authURL string) (string, error) {
		seen = authURL
		return "good-code", nil
	}))
	require.True(t, env.OK(), env.Message)
	assert.Contains(t, seen, "client=extension")
	assert.Equal(t, "st-1", api.lastBody["state"])
}

func TestDevelopmentTimeout(t *testing.T) {
	c := New(Config{BaseURL: "http://x", Environment: "development"}, nil, nil, nil)
	assert.Equal(t, defaultDevTimeout, c.http.Timeout)

	c = New(Config{BaseURL: "http://x", Timeout: time.Second}, nil, nil, nil)
	assert.Equal(t, time.Second, c.http.Timeout)
}
