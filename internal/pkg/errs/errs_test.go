//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"acacia-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	cause := errors.New("capacity must be positive")
	mark := errs.New("validation error")

	t.Run("errors.Is matches the mark", func(t *testing.T) {
		err := errs.Mark(cause, mark)
		assert.ErrorIs(t, err, mark)
	})

	t.Run("errors.Is still matches the cause", func(t *testing.T) {
		err := errs.Mark(cause, mark)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("message comes from the cause alone", func(t *testing.T) {
		err := errs.Mark(cause, mark)
		assert.Equal(t, "capacity must be positive", err.Error())
	})

	t.Run("mark survives further wrapping", func(t *testing.T) {
		err := errs.Wrap(errs.Mark(cause, mark), "create room")
		assert.ErrorIs(t, err, mark)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("nil cause yields the mark itself", func(t *testing.T) {
		err := errs.Mark(nil, mark)
		require.ErrorIs(t, err, mark)
		assert.Equal(t, "validation error", err.Error())
	})
}
