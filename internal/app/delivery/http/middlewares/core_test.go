package middlewares

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"medibook-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
)

func TestRequestIDMiddleware(t *testing.T) {
	mw := newTestMiddlewares(nil)

	t.Run("Generated Request ID", func(t *testing.T) {
		var seenRequestID string
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			assert.True(t, ok)
			isClient, ok := r.Context().Value(constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY).(bool)
			assert.True(t, ok)
			assert.False(t, isClient, "a generated id is not a client id")
			seenRequestID = requestID
		})

		req := httptest.NewRequest("GET", "/api/doctor/list", nil)
		rr := httptest.NewRecorder()

		mw.RequestIDMiddleware(handler).ServeHTTP(rr, req)

		assert.True(t, strings.HasPrefix(seenRequestID, constvars.REQUEST_ID_PREFIX))
		assert.Equal(t, seenRequestID, rr.Header().Get(constvars.HeaderXRequestID), "the request id is echoed back")
	})

	t.Run("Client Supplied Request ID Is Kept", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			assert.Equal(t, "client-id-42", requestID)
			isClient, _ := r.Context().Value(constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY).(bool)
			assert.True(t, isClient)
		})

		req := httptest.NewRequest("GET", "/api/doctor/list", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-id-42")
		rr := httptest.NewRecorder()

		mw.RequestIDMiddleware(handler).ServeHTTP(rr, req)

		assert.Equal(t, "client-id-42", rr.Header().Get(constvars.HeaderXRequestID))
	})
}
