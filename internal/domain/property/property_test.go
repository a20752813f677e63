package property

import (
	"testing"

	"github.com/propertym/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProperty(t *testing.T) *Property {
	t.Helper()
	p, err := NewProperty("Sunrise Court", "Ngong Road", "Nairobi", "Nairobi", TypeApartment)
	require.NoError(t, err)
	return p
}

func TestNewProperty(t *testing.T) {
	t.Run("valid property starts active", func(t *testing.T) {
		p := newTestProperty(t)
		assert.True(t, p.IsActive)
		assert.Equal(t, "Sunrise Court", p.Name)
	})

	t.Run("requires name", func(t *testing.T) {
		_, err := NewProperty("  ", "Ngong Road", "Nairobi", "", TypeApartment)
		require.Error(t, err)
		assert.Equal(t, shared.CodeValidation, err.(*shared.DomainError).Code)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := NewProperty("Sunrise Court", "Ngong Road", "Nairobi", "", Type("CASTLE"))
		assert.Error(t, err)
	})
}

func TestProperty_Deactivate(t *testing.T) {
	t.Run("active property is retired", func(t *testing.T) {
		p := newTestProperty(t)
		require.NoError(t, p.Deactivate())
		assert.False(t, p.IsActive)
	})

	t.Run("already inactive", func(t *testing.T) {
		p := newTestProperty(t)
		require.NoError(t, p.Deactivate())
		err := p.Deactivate()
		require.Error(t, err)
		assert.Equal(t, shared.CodeValidation, err.(*shared.DomainError).Code)
	})

	t.Run("reactivation restores the property", func(t *testing.T) {
		p := newTestProperty(t)
		require.NoError(t, p.Deactivate())
		require.NoError(t, p.Activate())
		assert.True(t, p.IsActive)
	})

	t.Run("activating an active property fails", func(t *testing.T) {
		p := newTestProperty(t)
		assert.Error(t, p.Activate())
	})
}
