package middleware_test

import (
	"net/http"
	"net/http/httptest"

	"tokenledger/internal/http/handler/middleware"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var _ = Describe("Middleware", func() {
	var (
		seen string
		next http.Handler
		w    *httptest.ResponseRecorder
		req  *http.Request
	)

	BeforeEach(func() {
		seen = ""
		next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = middleware.RequestID(r.Context())
			w.WriteHeader(http.StatusTeapot)
		})
		w = httptest.NewRecorder()
		req = httptest.NewRequest("GET", "/token/info", nil)
	})

	Describe("RequestID", func() {
		It("generates an id when the client sends none", func() {
			middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(w, req)

			_, err := uuid.Parse(seen)
			Expect(err).NotTo(HaveOccurred())
			Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal(seen))
		})

		It("keeps the id sent by the client", func() {
			req.Header.Set(middleware.RequestIDHeader, "req-1")
			middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(w, req)

			Expect(seen).To(Equal("req-1"))
			Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal("req-1"))
		})

		It("is empty outside of the middleware", func() {
			Expect(middleware.RequestID(req.Context())).To(BeEmpty())
		})
	})

	Describe("Logging", func() {
		It("logs the served request", func() {
			core, logs := observer.New(zap.InfoLevel)
			logger := zap.New(core).Sugar()

			handler := middleware.NewRequestIDMiddleware().RequestID(
				middleware.NewLoggingMiddleware(logger).Logging(next))
			req.Header.Set(middleware.RequestIDHeader, "req-2")
			handler.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusTeapot))
			Expect(logs.Len()).To(Equal(1))
			fields := logs.All()[0].ContextMap()
			Expect(fields).To(HaveKeyWithValue("status", int64(http.StatusTeapot)))
			Expect(fields).To(HaveKeyWithValue("path", "/token/info"))
			Expect(fields).To(HaveKeyWithValue("request_id", "req-2"))
		})
	})

	Describe("RateLimit", func() {
		It("throttles once the burst is spent", func() {
			handler := middleware.NewRateLimitMiddleware(zap.NewNop().Sugar(), 2).RateLimit(next)

			for range 2 {
				rec := httptest.NewRecorder()
				handler.ServeHTTP(rec, httptest.NewRequest("GET", "/token/info", nil))
				Expect(rec.Code).To(Equal(http.StatusTeapot))
			}

			handler.ServeHTTP(w, req)
			Expect(w.Code).To(Equal(http.StatusTooManyRequests))
			Expect(w.Body.String()).To(ContainSubstring("Too many requests"))
		})
	})
})
