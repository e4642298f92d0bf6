package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID_GeneratesWhenAbsent(t *testing.T) {
	e := echo.New()
	e.Use(RequestID())
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, GetRequestID(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	header := rec.Header().Get(RequestIDHeader)
	require.NotEmpty(t, header)
	_, err := uuid.Parse(header)
	assert.NoError(t, err, "generated request IDs are UUIDs")
	assert.Equal(t, header, rec.Body.String(), "context and header carry the same ID")
}

func TestRequestID_PropagatesIncoming(t *testing.T) {
	e := echo.New()
	e.Use(RequestID())
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "client-supplied-id")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "client-supplied-id", rec.Header().Get(RequestIDHeader))
}

func TestGetRequestID_EmptyWithoutMiddleware(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Equal(t, "", GetRequestID(c))
}

func TestRequestLogger_LogsCompletion(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	e := echo.New()
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.GET("/things", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/things?limit=3", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	out := buf.String()
	assert.Contains(t, out, `"level":"info"`)
	assert.Contains(t, out, `"method":"GET"`)
	assert.Contains(t, out, `"path":"/things"`)
	assert.Contains(t, out, `"query":"limit=3"`)
	assert.Contains(t, out, `"status":200`)
	assert.Contains(t, out, "request_id")
}

func TestRequestLogger_LevelFollowsStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{name: "server error logs at error", status: http.StatusInternalServerError, wantLevel: `"level":"error"`},
		{name: "client error logs at warn", status: http.StatusBadRequest, wantLevel: `"level":"warn"`},
		{name: "success logs at info", status: http.StatusOK, wantLevel: `"level":"info"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := zerolog.New(&buf)

			e := echo.New()
			e.Use(RequestLogger(log))
			e.GET("/", func(c echo.Context) error {
				return c.NoContent(tt.status)
			})

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Contains(t, buf.String(), tt.wantLevel)
		})
	}
}

func TestRecover_PanicReturns500(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	e := echo.New()
	e.Use(Recover(log))
	e.GET("/", func(c echo.Context) error {
		panic("handler exploded")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal_error")
	assert.NotContains(t, rec.Body.String(), "handler exploded", "panic details never leak to clients")

	out := buf.String()
	assert.Contains(t, out, "Panic recovered")
	assert.Contains(t, out, "handler exploded")
	assert.Contains(t, out, "stack")
}

func TestRecover_StackCanBeDisabled(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	e := echo.New()
	e.Use(RecoverWithConfig(log, RecoveryConfig{DisablePrintStack: true}))
	e.GET("/", func(c echo.Context) error {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, buf.String(), `"stack"`)
}

func TestSetup_RegistersFullChain(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	e := echo.New()
	Setup(e, log)
	e.GET("/", func(c echo.Context) error {
		panic("late panic")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	// The panic is recovered, the request logged, and the ID header set.
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
	assert.Contains(t, buf.String(), "Panic recovered")
	assert.Contains(t, buf.String(), "HTTP request")
}
