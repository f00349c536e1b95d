package sentry

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sentrygo "github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingTransport struct {
	events []*sentrygo.Event
}

func (t *recordingTransport) Configure(sentrygo.ClientOptions) {}

func (t *recordingTransport) SendEvent(event *sentrygo.Event) {
	t.events = append(t.events, event)
}

func (t *recordingTransport) Flush(time.Duration) bool { return true }

func newTestHub(t *testing.T) (*sentrygo.Hub, *recordingTransport) {
	t.Helper()

	transport := new(recordingTransport)
	client, err := sentrygo.NewClient(sentrygo.ClientOptions{
		Dsn:       "https://public@example.com/1",
		Transport: transport,
	})
	require.NoError(t, err)

	return sentrygo.NewHub(client, sentrygo.NewScope()), transport
}

// withCurrentHub swaps the global hub's client for the duration of the test.
func withCurrentHub(t *testing.T) *recordingTransport {
	t.Helper()

	hub, transport := newTestHub(t)
	previous := sentrygo.CurrentHub().Client()
	sentrygo.CurrentHub().BindClient(hub.Client())
	t.Cleanup(func() { sentrygo.CurrentHub().BindClient(previous) })

	return transport
}

func enable(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("SENTRY_DSN", "https://public@example.com/1")
}

func TestSentry_Builder(t *testing.T) {
	err := errors.New("catalog down")
	extras := map[string]interface{}{"url": "http://catalog"}
	tags := map[string]string{"request_id": "abc"}

	s := new(Sentry).
		WithError(err).
		WithMessage("msg").
		WithLevel(sentrygo.LevelWarning).
		WithExtras(extras).
		WithTags(tags)

	assert.Equal(t, err, s.error)
	assert.Equal(t, "msg", s.message)
	assert.Equal(t, sentrygo.LevelWarning, s.level)
	assert.Equal(t, extras, s.extras)
	assert.Equal(t, tags, s.tags)

	assert.Equal(t, tags, WithTags(tags).tags)
}

func TestEnabled(t *testing.T) {
	tests := []struct {
		name   string
		appEnv string
		dsn    string
		want   bool
	}{
		{name: "local environment", appEnv: "local", dsn: "https://public@example.com/1", want: false},
		{name: "missing dsn", appEnv: "production", dsn: "", want: false},
		{name: "configured", appEnv: "production", dsn: "https://public@example.com/1", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APP_ENV", tt.appEnv)
			t.Setenv("SENTRY_DSN", tt.dsn)

			assert.Equal(t, tt.want, enabled())
		})
	}
}

func TestSentry_Disabled(t *testing.T) {
	transport := withCurrentHub(t)
	t.Setenv("APP_ENV", "local")
	t.Setenv("SENTRY_DSN", "https://public@example.com/1")

	new(Sentry).Error(errors.New("ignored"))
	new(Sentry).Warning("ignored")

	assert.Empty(t, transport.events)
}

func TestSentry_Error(t *testing.T) {
	transport := withCurrentHub(t)
	enable(t)

	WithTags(map[string]string{"driver": "postgres"}).
		WithExtras(map[string]interface{}{"attempt": 1}).
		Error(errors.New("comment store unavailable"))

	require.Len(t, transport.events, 1)
	event := transport.events[0]
	assert.Equal(t, sentrygo.LevelError, event.Level)
	assert.Equal(t, "postgres", event.Tags["driver"])
	assert.Equal(t, 1, event.Extra["attempt"])
	require.NotEmpty(t, event.Exception)
	assert.Equal(t, "comment store unavailable", event.Exception[len(event.Exception)-1].Value)
}

func TestSentry_Warning(t *testing.T) {
	transport := withCurrentHub(t)
	enable(t)

	WithTags(map[string]string{"breaker": "movie-catalog"}).
		Warningf("circuit breaker %s opened", "movie-catalog")

	require.Len(t, transport.events, 1)
	assert.Equal(t, "circuit breaker movie-catalog opened", transport.events[0].Message)
	assert.Equal(t, sentrygo.LevelWarning, transport.events[0].Level)
	assert.Equal(t, "movie-catalog", transport.events[0].Tags["breaker"])
}

func TestSentry_EmptyEventIsDropped(t *testing.T) {
	transport := withCurrentHub(t)
	enable(t)

	new(Sentry).Error(nil)
	new(Sentry).Warning("")

	assert.Empty(t, transport.events)
}

func TestSentry_Fatal(t *testing.T) {
	transport := withCurrentHub(t)
	enable(t)

	Fatalf("cannot start: %s", "port in use")

	require.Len(t, transport.events, 1)
	assert.Equal(t, sentrygo.LevelFatal, transport.events[0].Level)
}

func TestSentry_UsesRequestHub(t *testing.T) {
	global := withCurrentHub(t)
	enable(t)

	hub, requestTransport := newTestHub(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/movies", nil)
	req = req.WithContext(sentrygo.SetHubOnContext(context.Background(), hub))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := sentryecho.New(sentryecho.Options{})(func(c echo.Context) error {
		WithContext(c).Error(errors.New("handler failed"))
		return nil
	})

	require.NoError(t, handler(c))
	assert.Len(t, requestTransport.events, 1)
	assert.Empty(t, global.events)
}

func TestSentry_FallsBackToCurrentHub(t *testing.T) {
	transport := withCurrentHub(t)
	enable(t)

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	WithContext(c).Error(errors.New("no request hub"))

	assert.Len(t, transport.events, 1)
}
