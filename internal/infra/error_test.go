//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"pet-order/internal/infra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapRepoErr(t *testing.T) {
	t.Run("defaults to a database failure", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := infra.WrapRepoErr("failed to record transaction", cause)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.ErrorIs(t, err, cause, "the low-level cause stays in the chain")
		assert.Contains(t, err.Error(), "DB_FAILURE")
		assert.Contains(t, err.Error(), "failed to record transaction")
	})

	t.Run("explicit kind wins", func(t *testing.T) {
		const kindTimeout infra.RepositoryErrorKind = "TIMEOUT"
		err := infra.WrapRepoErr("query timed out", errors.New("context deadline exceeded"), kindTimeout)

		assert.True(t, infra.IsKind(err, kindTimeout))
		assert.False(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("nil cause still carries the kind", func(t *testing.T) {
		err := infra.WrapRepoErr("no pool configured", nil)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("unrelated errors have no kind", func(t *testing.T) {
		assert.False(t, infra.IsKind(errors.New("plain"), infra.KindDBFailure))
	})
}
