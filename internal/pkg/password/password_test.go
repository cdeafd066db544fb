//go:build unit

package password_test

import (
	"testing"

	"barberpro/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	t.Run("ハッシュと照合が往復する", func(t *testing.T) {
		hashed, err := password.Hash("s3cret-pass")
		require.NoError(t, err)
		require.NotEqual(t, "s3cret-pass", hashed)

		assert.NoError(t, password.Compare(hashed, "s3cret-pass"))
	})

	t.Run("不一致はErrMismatch", func(t *testing.T) {
		hashed, err := password.Hash("s3cret-pass")
		require.NoError(t, err)

		assert.ErrorIs(t, password.Compare(hashed, "wrong-pass"), password.ErrMismatch)
	})

	t.Run("空パスワードは拒否される", func(t *testing.T) {
		_, err := password.Hash("")
		assert.ErrorIs(t, err, password.ErrEmptyPassword)

		assert.ErrorIs(t, password.Compare("", "s3cret-pass"), password.ErrEmptyPassword)
	})
}
