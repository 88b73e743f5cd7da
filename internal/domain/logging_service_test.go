package domain

import (
	"context"
	"errors"
	"log/slog"
	"testing"
)

type captureHandler struct {
	records []slog.Record
}

func (h *captureHandler) Enabled(context.Context, slog.Level) bool {
	return true
}

func (h *captureHandler) Handle(_ context.Context, record slog.Record) error {
	clone := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	record.Attrs(func(attr slog.Attr) bool {
		clone.AddAttrs(attr)
		return true
	})
	h.records = append(h.records, clone)
	return nil
}

func (h *captureHandler) WithAttrs([]slog.Attr) slog.Handler {
	return h
}

func (h *captureHandler) WithGroup(string) slog.Handler {
	return h
}

type stubAccountService struct {
	registerFn func(context.Context, RegisterInput) (User, error)
}

func (s stubAccountService) Register(ctx context.Context, input RegisterInput) (User, error) {
	if s.registerFn == nil {
		return User{}, nil
	}
	return s.registerFn(ctx, input)
}

func TestLoggingAccountServiceLogsRegistration(t *testing.T) {
	handler := &captureHandler{}
	logger := slog.New(handler)
	service := NewLoggingAccountService(logger, stubAccountService{
		registerFn: func(_ context.Context, input RegisterInput) (User, error) {
			return User{ID: 7, Username: input.Username}, nil
		},
	})

	_, err := service.Register(context.Background(), RegisterInput{Username: "toto"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(handler.records) != 1 {
		t.Fatalf("expected 1 log record, got %d", len(handler.records))
	}
	if handler.records[0].Level != slog.LevelInfo || handler.records[0].Message != "user registered" {
		t.Fatalf("unexpected log record: level=%v message=%q", handler.records[0].Level, handler.records[0].Message)
	}
}

func TestLoggingAccountServiceLogsErrors(t *testing.T) {
	handler := &captureHandler{}
	logger := slog.New(handler)
	service := NewLoggingAccountService(logger, stubAccountService{
		registerFn: func(context.Context, RegisterInput) (User, error) {
			return User{}, ErrConflict
		},
	})

	_, err := service.Register(context.Background(), RegisterInput{Username: "toto"})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	if len(handler.records) != 1 {
		t.Fatalf("expected 1 log record, got %d", len(handler.records))
	}
	if handler.records[0].Level != slog.LevelError || handler.records[0].Message != "register failed" {
		t.Fatalf("unexpected log record: level=%v message=%q", handler.records[0].Level, handler.records[0].Message)
	}
}

func TestNewLoggingAccountServiceReturnsNextWhenLoggerNil(t *testing.T) {
	called := false
	next := stubAccountService{
		registerFn: func(context.Context, RegisterInput) (User, error) {
			called = true
			return User{ID: 99}, nil
		},
	}
	wrapped := NewLoggingAccountService(nil, next)
	user, err := wrapped.Register(context.Background(), RegisterInput{Username: "toto"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !called {
		t.Fatal("expected wrapped service to delegate to next")
	}
	if user.ID != 99 {
		t.Fatalf("unexpected user id: %d", user.ID)
	}
}
