package usecase_test

import (
	"context"

	"maxitask/internal/extraction"
	"maxitask/pkg/gemini"
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

// factoryFor builds a GeneratorFactory that targets a test server.
func factoryFor(apiURL string) extraction.GeneratorFactory {
	return func(apiKey string) extraction.Generator {
		c := gemini.NewClient(apiKey)
		c.SetAPIURL(apiURL)
		return c
	}
}

// panicFactory fails the test hard if a model call is attempted.
func panicFactory() extraction.GeneratorFactory {
	return func(apiKey string) extraction.Generator {
		panic("model call attempted without a credential")
	}
}

func testContext(apiKey string) extraction.Context {
	return extraction.Context{
		ActiveCategory: "Personal",
		Categories:     []string{"Personal", "Work", "Hobbies", "Other"},
		CurrentDate:    "2024-06-10",
		APIKey:         apiKey,
	}
}
