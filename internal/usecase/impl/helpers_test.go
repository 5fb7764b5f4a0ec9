package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/TimDev9492/chad-website/internal/domain/repository"
	mockRepo "github.com/TimDev9492/chad-website/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectTransaction runs the callback passed to Execute against a fresh factory mock
// and returns whatever the callback returns, like the real transaction manager.
func expectTransaction(
	t *testing.T,
	txManager *mockRepo.MockTransactionManager,
	setup func(factory *mockRepo.MockRepositoryFactory),
) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		})
}

func ptr[T any](v T) *T {
	return &v
}
