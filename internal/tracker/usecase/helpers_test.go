package usecase_test

import (
	"context"
	"testing"

	"apply-tracker/internal/model"
	"apply-tracker/internal/tracker/repository"
	"apply-tracker/internal/tracker/repository/memgrid"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// recordNotifier captures completion notices for assertions.
type recordNotifier struct {
	messages []string
}

func (n *recordNotifier) Notify(ctx context.Context, message string) error {
	n.messages = append(n.messages, message)
	return nil
}

// buildSheet creates an in-memory sheet and returns its store, handle and ID.
func buildSheet(t *testing.T, headers []string, rows [][]model.Cell) (*memgrid.Store, *memgrid.Sheet, string, *recordNotifier) {
	t.Helper()

	store := memgrid.NewStore(&mockLogger{})
	sh, id, err := store.CreateSheet(context.Background(), repository.CreateSheetOptions{
		Headers: headers,
		Rows:    rows,
	})
	if err != nil {
		t.Fatalf("CreateSheet: %v", err)
	}
	return store, sh.(*memgrid.Sheet), id, &recordNotifier{}
}
