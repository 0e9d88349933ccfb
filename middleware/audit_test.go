package middleware

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/blogem/audit-gateway/activity"
	"github.com/blogem/audit-gateway/metrics"
	"github.com/blogem/audit-gateway/models"
	repomocks "github.com/blogem/audit-gateway/repositories/mocks"
	"github.com/blogem/audit-gateway/services"
	"github.com/blogem/audit-gateway/services/mocks"
	"github.com/blogem/audit-gateway/userctx"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// events records the order in which the sink and handlers run.
type events struct {
	mu   sync.Mutex
	list []string
}

func (e *events) add(s string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.list = append(e.list, s)
}

func withUser(id int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if id != 0 {
				r = r.WithContext(userctx.WithIdentity(r.Context(), userctx.NewIdentity(id, nil)))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func newAuditRouter(sink services.AuditSink, userID int, ev *events) *chi.Mux {
	r := chi.NewRouter()
	endpoints := NewEndpoints()
	interceptor := NewAuditInterceptor(endpoints, activity.NewResolver(nil), sink, metrics.New(prometheus.NewRegistry()), discard)

	r.Use(RequestID)
	r.Use(withUser(userID))
	r.Use(interceptor.Handler)

	echo := func(status int) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			ev.add("handler")
			w.WriteHeader(status)
			w.Write(body)
		}
	}

	endpoints.Handle(r, http.MethodGet, "/role", "Role", "List", echo(http.StatusOK))
	endpoints.Handle(r, http.MethodPost, "/role", "Role", "Create", echo(http.StatusCreated))
	endpoints.Handle(r, http.MethodPut, "/role/{id}", "Role", "Update", echo(http.StatusOK))
	endpoints.Handle(r, http.MethodPost, "/log/activities", "Log", "Activities", echo(http.StatusOK))
	endpoints.Handle(r, http.MethodPost, "/panic", "Debug", "Panic", func(w http.ResponseWriter, r *http.Request) {
		panic(fmt.Errorf("handler failed: %w", errors.New("inner cause")))
	})
	endpoints.Handle(r, http.MethodPost, "/panic-late", "Debug", "PanicLate", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		panic("late failure")
	})
	endpoints.Handle(r, http.MethodPost, "/abort", "Debug", "Abort", func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	})
	r.Post("/unnamed", echo(http.StatusOK))

	return r
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAuditRecordsActivityBeforeHandler(t *testing.T) {
	sink := mocks.NewMockAuditSink(t)
	ev := &events{}
	body := `[{"Id":"1"},{"Id":"2"}]`

	var saved *models.ActivityRecord
	sink.EXPECT().SaveActivity(mock.Anything, mock.Anything).Run(func(_ context.Context, record *models.ActivityRecord) {
		saved = record
		ev.add("audit")
	}).Return().Once()

	rec := serve(newAuditRouter(sink, 7, ev), http.MethodPost, "/role", body)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, body, rec.Body.String(), "handler must read the original body")
	assert.Equal(t, []string{"audit", "handler"}, ev.list)

	require.NotNil(t, saved)
	assert.Equal(t, "/role", saved.URL)
	assert.Equal(t, http.MethodPost, saved.HTTPMethod)
	assert.Equal(t, "Role", saved.ControllerName)
	assert.Equal(t, "Create", saved.ActionName)
	assert.Equal(t, 7, saved.UserID)
	assert.Equal(t, "1,2", saved.ObjectID)
	assert.Equal(t, body, saved.RawBody)
	assert.Equal(t, "192.0.2.1", saved.ClientIP)
	assert.Equal(t, rec.Header().Get(RequestIDHeader), saved.RequestID)
	assert.False(t, saved.Timestamp.IsZero())
}

func TestAuditIgnoreListMatchesRawPath(t *testing.T) {
	sink := mocks.NewMockAuditSink(t)
	var saved *models.ActivityRecord
	sink.EXPECT().SaveActivity(mock.Anything, mock.Anything).Run(func(_ context.Context, record *models.ActivityRecord) {
		saved = record
	}).Return().Once()

	rec := serve(newAuditRouter(sink, 7, &events{}), http.MethodPut, "/role/x%2Flog", `{}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, saved, "an escaped slash is not the /log fragment")
	assert.Equal(t, "Update", saved.ActionName)
}

func TestAuditRouteValueTakesPrecedence(t *testing.T) {
	sink := mocks.NewMockAuditSink(t)
	var saved *models.ActivityRecord
	sink.EXPECT().SaveActivity(mock.Anything, mock.Anything).Run(func(_ context.Context, record *models.ActivityRecord) {
		saved = record
	}).Return().Once()

	rec := serve(newAuditRouter(sink, 7, &events{}), http.MethodPut, "/role/17", `{"Id": 42}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, saved)
	assert.Equal(t, "17", saved.ObjectID)
	assert.Equal(t, "Update", saved.ActionName)
}

func TestAuditSkips(t *testing.T) {
	tests := []struct {
		name   string
		userID int
		method string
		target string
		status int
	}{
		{"unknown user", 0, http.MethodPost, "/role", http.StatusCreated},
		{"get request", 7, http.MethodGet, "/role", http.StatusOK},
		{"ignored path", 7, http.MethodPost, "/log/activities", http.StatusOK},
		{"route without endpoint metadata", 7, http.MethodPost, "/unnamed", http.StatusOK},
		{"no route", 7, http.MethodPost, "/missing", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No expectations: any SaveActivity call fails the test.
			sink := mocks.NewMockAuditSink(t)
			ev := &events{}

			rec := serve(newAuditRouter(sink, tt.userID, ev), tt.method, tt.target, `{"Id":1}`)

			assert.Equal(t, tt.status, rec.Code)
			sink.AssertNotCalled(t, "SaveActivity", mock.Anything, mock.Anything)
		})
	}
}

func TestAuditPersistenceFailureDoesNotAlterResponse(t *testing.T) {
	scopes := repomocks.NewMockScopeFactory(t)
	reporter := mocks.NewMockReporter(t)
	scopes.EXPECT().Begin(mock.Anything).Return(nil, errors.New("database is locked")).Once()
	reporter.EXPECT().Capture(mock.Anything, mock.Anything).Return().Once()

	sink := services.NewAuditService(scopes, nil, nil, reporter, nil, discard)
	body := `{"Id": 3, "Code": "A"}`

	rec := serve(newAuditRouter(sink, 7, &events{}), http.MethodPost, "/role", body)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, body, rec.Body.String())
}

func TestAuditPanicWithKnownUser(t *testing.T) {
	sink := mocks.NewMockAuditSink(t)
	sink.EXPECT().SaveActivity(mock.Anything, mock.Anything).Return()

	var saved *models.ExceptionRecord
	sink.EXPECT().SaveException(mock.Anything, mock.Anything).Run(func(_ context.Context, record *models.ExceptionRecord) {
		saved = record
	}).Return(nil).Once()

	rec := serve(newAuditRouter(sink, 9, &events{}), http.MethodPost, "/panic", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())

	require.NotNil(t, saved)
	assert.Equal(t, 9, saved.UserID)
	assert.Equal(t, "handler failed: inner cause", saved.Message)
	assert.Equal(t, "inner cause", saved.InnerMessage)
	assert.Contains(t, saved.StackTrace, "goroutine")
	assert.NotEmpty(t, saved.RequestID)
}

func TestAuditPanicAfterHeadersKeepsStatus(t *testing.T) {
	sink := mocks.NewMockAuditSink(t)
	sink.EXPECT().SaveActivity(mock.Anything, mock.Anything).Return()
	sink.EXPECT().SaveException(mock.Anything, mock.MatchedBy(func(r *models.ExceptionRecord) bool {
		return r.Message == "late failure" && r.InnerMessage == ""
	})).Return(nil).Once()

	rec := serve(newAuditRouter(sink, 9, &events{}), http.MethodPost, "/panic-late", "")

	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestAuditExceptionSaveFailureStillResponds(t *testing.T) {
	sink := mocks.NewMockAuditSink(t)
	sink.EXPECT().SaveActivity(mock.Anything, mock.Anything).Return()
	sink.EXPECT().SaveException(mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()

	rec := serve(newAuditRouter(sink, 9, &events{}), http.MethodPost, "/panic", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestAuditPanicWithUnknownUserIsSwallowed(t *testing.T) {
	sink := mocks.NewMockAuditSink(t)

	var rec *httptest.ResponseRecorder
	assert.NotPanics(t, func() {
		rec = serve(newAuditRouter(sink, 0, &events{}), http.MethodPost, "/panic", "")
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
	sink.AssertNotCalled(t, "SaveException", mock.Anything, mock.Anything)
}

func TestAuditAbortHandlerPropagates(t *testing.T) {
	sink := mocks.NewMockAuditSink(t)
	sink.EXPECT().SaveActivity(mock.Anything, mock.Anything).Return()

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		serve(newAuditRouter(sink, 9, &events{}), http.MethodPost, "/abort", "")
	})
	sink.AssertNotCalled(t, "SaveException", mock.Anything, mock.Anything)
}

func TestAuditWriteIgnoresClientCancellation(t *testing.T) {
	sink := mocks.NewMockAuditSink(t)
	sink.EXPECT().SaveActivity(mock.Anything, mock.Anything).Run(func(ctx context.Context, _ *models.ActivityRecord) {
		assert.NoError(t, ctx.Err())
	}).Return().Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodPost, "/role", strings.NewReader(`{}`)).WithContext(ctx)
	newAuditRouter(sink, 7, &events{}).ServeHTTP(httptest.NewRecorder(), req)
}
