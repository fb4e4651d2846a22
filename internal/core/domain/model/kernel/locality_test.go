package kernel_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocality(t *testing.T) {
	t.Run("normalizes case and whitespace", func(t *testing.T) {
		loc := kernel.NewLocality("  Rotterdam \t")

		require.NoError(t, loc.Validate())
		assert.Equal(t, "rotterdam", loc.Value())
		assert.False(t, loc.IsZero())
	})

	t.Run("empty input means no preference", func(t *testing.T) {
		loc := kernel.NewLocality("   ")

		require.NoError(t, loc.Validate())
		assert.True(t, loc.IsZero())
	})

	t.Run("identical input yields equal localities", func(t *testing.T) {
		a := kernel.NewLocality("Utrecht")
		b := kernel.NewLocality("utrecht ")

		assert.True(t, a.IsEqual(b))
	})
}

func TestLocality_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var loc kernel.Locality

		require.Error(t, loc.Validate())
	})
}
