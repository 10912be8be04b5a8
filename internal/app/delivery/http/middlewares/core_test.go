package middlewares

import (
	"net/http"
	"net/http/httptest"
	"patientdesk-service/internal/app/config"
	"patientdesk-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRequestIDMiddleware(t *testing.T) {
	middlewares := &Middlewares{
		Log:            zap.NewNop(),
		InternalConfig: &config.InternalConfig{},
	}

	t.Run("Generates Request ID When Missing", func(t *testing.T) {
		var seenRequestID string
		testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			assert.True(t, ok, "request id should be set in context")
			seenRequestID = requestID
		})

		req := httptest.NewRequest("GET", "/api/v1/patients", nil)
		rr := httptest.NewRecorder()
		middlewares.RequestIDMiddleware(testHandler).ServeHTTP(rr, req)

		assert.NotEmpty(t, seenRequestID)
		assert.Equal(t, seenRequestID, rr.Header().Get(constvars.HeaderXRequestID), "generated id should be echoed back")
	})

	t.Run("Keeps Client Request ID", func(t *testing.T) {
		testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			assert.Equal(t, "client-supplied-id", requestID)
		})

		req := httptest.NewRequest("GET", "/api/v1/patients", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-supplied-id")
		rr := httptest.NewRecorder()
		middlewares.RequestIDMiddleware(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, "client-supplied-id", rr.Header().Get(constvars.HeaderXRequestID))
	})
}
