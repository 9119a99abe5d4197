package errors

import (
	"net/http"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesCategory(t *testing.T) {
	assert.ErrorIs(t, ErrShiftNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrWorkerNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrCancellationFailed, ErrInternalError)
	assert.ErrorIs(t, ErrShiftAlreadyCompleted, ErrConflict)

	assert.NotErrorIs(t, ErrShiftNotFound, ErrWorkerNotFound)
	assert.NotErrorIs(t, ErrNotFound, ErrShiftNotFound)
	assert.NotErrorIs(t, ErrCancellationFailed, ErrNotFound)
}

func TestBaseError_IsThroughWrapping(t *testing.T) {
	wrapped := pkgerrors.Wrap(ErrShiftNotFound.WithDetails("shift 42"), "cancel shift")

	assert.ErrorIs(t, wrapped, ErrShiftNotFound)
	assert.ErrorIs(t, wrapped, ErrNotFound)

	var appErr AppError
	assert.ErrorAs(t, wrapped, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "SHIFT_NOT_FOUND", appErr.ErrorCode())
	assert.Equal(t, "shift 42", appErr.Details())
}

func TestDatabaseExecuteError(t *testing.T) {
	err := NewDatabaseExecuteError(pkgerrors.New("connection reset"), "failed to delete shift")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Contains(t, err.Error(), "connection reset")
	assert.Equal(t, "failed to delete shift", err.Details())
}
