package pgsql

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/walleto/internal/apperrors"
	portsrepo "github.com/SscSPs/walleto/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// stubTx satisfies pgx.Tx; only Commit and Rollback are exercised.
type stubTx struct {
	pgx.Tx
	commitErr   error
	rollbackErr error
}

func (t *stubTx) Commit(context.Context) error   { return t.commitErr }
func (t *stubTx) Rollback(context.Context) error { return t.rollbackErr }

type MockTransactionManager struct {
	mock.Mock
}

func (m *MockTransactionManager) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockTransactionManager) Commit(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockTransactionManager) Rollback(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

var _ portsrepo.TransactionManager = (*MockTransactionManager)(nil)

func TestWithTx_CommitsOnSuccess(t *testing.T) {
	ctx := context.Background()
	tx := &stubTx{}
	tm := new(MockTransactionManager)
	tm.On("Begin", ctx).Return(tx, nil).Once()
	tm.On("Commit", ctx, tx).Return(nil).Once()
	tm.On("Rollback", ctx, tx).Return(nil).Once()

	var got pgx.Tx
	err := withTx(ctx, tm, func(inner pgx.Tx) error {
		got = inner
		return nil
	})

	require.NoError(t, err)
	assert.Same(t, tx, got)
	tm.AssertExpectations(t)
}

func TestWithTx_RollsBackWhenWorkFails(t *testing.T) {
	ctx := context.Background()
	tx := &stubTx{}
	tm := new(MockTransactionManager)
	tm.On("Begin", ctx).Return(tx, nil).Once()
	tm.On("Rollback", ctx, tx).Return(nil).Once()
	boom := errors.New("insert failed")

	err := withTx(ctx, tm, func(pgx.Tx) error { return boom })

	assert.ErrorIs(t, err, boom)
	tm.AssertExpectations(t)
	tm.AssertNotCalled(t, "Commit", mock.Anything, mock.Anything)
}

func TestWithTx_BeginFailureSkipsWork(t *testing.T) {
	ctx := context.Background()
	tm := new(MockTransactionManager)
	beginErr := apperrors.NewAppError(500, "failed to begin transaction", errors.New("pool closed"))
	tm.On("Begin", ctx).Return(nil, beginErr).Once()

	ran := false
	err := withTx(ctx, tm, func(pgx.Tx) error {
		ran = true
		return nil
	})

	assert.ErrorIs(t, err, beginErr)
	assert.False(t, ran)
	tm.AssertExpectations(t)
}

func TestBaseRepository_CommitAndRollbackErrors(t *testing.T) {
	ctx := context.Background()
	repo := &BaseRepository{}

	assert.NoError(t, repo.Rollback(ctx, &stubTx{rollbackErr: pgx.ErrTxClosed}), "rollback after commit")

	var appErr *apperrors.AppError
	err := repo.Rollback(ctx, &stubTx{rollbackErr: errors.New("conn reset")})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.Code)

	err = repo.Commit(ctx, &stubTx{commitErr: errors.New("serialization failure")})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "failed to commit transaction", appErr.Message)

	assert.NoError(t, repo.Commit(ctx, &stubTx{}))
}

func TestPgxRepositories_ManageTheirTransactions(t *testing.T) {
	var accounts any = newPgxBankAccountRepository(nil)
	var categories any = newPgxCategoryRepository(nil)

	_, ok := accounts.(portsrepo.BankAccountRepositoryWithTx)
	assert.True(t, ok)
	_, ok = categories.(portsrepo.CategoryRepositoryWithTx)
	assert.True(t, ok)
}
