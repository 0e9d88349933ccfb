package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/blogem/audit-gateway/activity"
	"github.com/blogem/audit-gateway/metrics"
	"github.com/blogem/audit-gateway/models"
	"github.com/blogem/audit-gateway/services"
	"github.com/blogem/audit-gateway/userctx"
)

// AuditInterceptor records an activity for every eligible mutating request
// before the handler runs, and turns handler panics into exception records
// and a 500 response.
type AuditInterceptor struct {
	endpoints EndpointResolver
	resolver  *activity.Resolver
	sink      services.AuditSink
	metrics   *metrics.Metrics
	logger    *slog.Logger
	now       func() time.Time
}

// NewAuditInterceptor creates a new audit interceptor
func NewAuditInterceptor(
	endpoints EndpointResolver,
	resolver *activity.Resolver,
	sink services.AuditSink,
	m *metrics.Metrics,
	logger *slog.Logger,
) *AuditInterceptor {
	return &AuditInterceptor{
		endpoints: endpoints,
		resolver:  resolver,
		sink:      sink,
		metrics:   m,
		logger:    logger,
		now:       time.Now,
	}
}

// Handler installs the interceptor as a chi middleware. It must run after the
// identity middleware so the caller is known.
func (a *AuditInterceptor) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		userID := userctx.UserID(r.Context())

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			a.recovered(ww, r, userID, rec, debug.Stack())
		}()

		endpoint, matched := a.endpoints.Resolve(r)
		if a.resolver.Eligible(r.Method, r.URL.EscapedPath(), userID, matched) {
			a.record(r, userID, endpoint)
		} else {
			a.metrics.Skipped()
		}

		next.ServeHTTP(ww, r)
	})
}

// record buffers the body, swaps in a replayable copy and saves the activity.
// The write is detached from request cancellation so a client hang-up does
// not abort it.
func (a *AuditInterceptor) record(r *http.Request, userID int, endpoint activity.Endpoint) {
	text, body, err := activity.Capture(r.Body)
	r.Body = body
	if err != nil {
		a.logger.WarnContext(r.Context(), "failed to read request body for audit", "error", err)
	}

	act := a.resolver.Resolve(endpoint, text)
	record := &models.ActivityRecord{
		RequestID:      userctx.RequestID(r.Context()),
		URL:            r.URL.Path,
		HTTPMethod:     r.Method,
		ControllerName: act.Controller,
		ActionName:     act.Action,
		UserID:         userID,
		ObjectID:       act.ObjectID,
		RawBody:        text,
		ClientIP:       ClientIP(r),
		Timestamp:      a.now().UTC(),
	}

	a.sink.SaveActivity(context.WithoutCancel(r.Context()), record)
}

// recovered handles a panic raised anywhere below the interceptor.
func (a *AuditInterceptor) recovered(w chimw.WrapResponseWriter, r *http.Request, userID int, rec any, stack []byte) {
	ctx := r.Context()

	if userID == 0 {
		// No record and no distinguishing response for anonymous callers.
		a.logger.DebugContext(ctx, "panic for unknown user swallowed", "panic", rec)
		return
	}

	err, ok := rec.(error)
	if !ok {
		err = fmt.Errorf("%v", rec)
	}
	record := &models.ExceptionRecord{
		RequestID:  userctx.RequestID(ctx),
		UserID:     userID,
		Message:    err.Error(),
		StackTrace: string(stack),
		Timestamp:  a.now().UTC(),
	}
	if inner := errors.Unwrap(err); inner != nil {
		record.InnerMessage = inner.Error()
	}

	if saveErr := a.sink.SaveException(context.WithoutCancel(ctx), record); saveErr != nil {
		a.logger.ErrorContext(ctx, "failed to record exception",
			"error", saveErr,
			"panic", record.Message,
			"user_id", userID,
		)
	}

	if w.Status() != 0 {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(map[string]string{"error": "Internal server error"})
}
