package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"maxitask/internal/middleware"
)

// nopLogger keeps tests quiet.
type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                  {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Info(ctx context.Context, args ...any)                   {}
func (nopLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (nopLogger) Warn(ctx context.Context, args ...any)                   {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (nopLogger) Error(ctx context.Context, args ...any)                  {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) DPanic(ctx context.Context, args ...any)                 {}
func (nopLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Panic(ctx context.Context, args ...any)                  {}
func (nopLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                  {}
func (nopLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(perMin int) *gin.Engine {
		mw := middleware.New(nopLogger{})
		r := gin.New()
		r.POST("/limited", mw.RateLimit(perMin), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return r
	}

	t.Run("Burst Beyond Limit Gets 429", func(t *testing.T) {
		r := newRouter(3)

		statuses := make([]int, 0, 5)
		for i := 0; i < 5; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/limited", nil)
			r.ServeHTTP(w, req)
			statuses = append(statuses, w.Code)
		}

		for i := 0; i < 3; i++ {
			if statuses[i] != http.StatusOK {
				t.Fatalf("request %d: expected 200 within burst, got %d", i, statuses[i])
			}
		}
		for i := 3; i < 5; i++ {
			if statuses[i] != http.StatusTooManyRequests {
				t.Fatalf("request %d: expected 429 past burst, got %d", i, statuses[i])
			}
		}
	})

	t.Run("Non Positive Limit Disables", func(t *testing.T) {
		r := newRouter(0)

		for i := 0; i < 10; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/limited", nil)
			r.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Fatalf("request %d: expected 200, got %d", i, w.Code)
			}
		}
	})
}
