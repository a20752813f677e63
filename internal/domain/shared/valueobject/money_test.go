package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyFromString(t *testing.T) {
	t.Run("parses valid decimal", func(t *testing.T) {
		m, err := NewMoneyFromString("25000.50")
		require.NoError(t, err)
		assert.Equal(t, "25000.50", m.StringFixed())
		assert.Equal(t, KES, m.Currency())
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := NewMoneyFromString("not-a-number")
		assert.Error(t, err)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	a := NewMoneyFromFloat(20000)
	b := NewMoneyFromFloat(5000)

	assert.Equal(t, "25000.00", a.Add(b).StringFixed())
	assert.Equal(t, "15000.00", a.Subtract(b).StringFixed())
	assert.Equal(t, "-20000.00", a.Negate().StringFixed())
}

func TestMoney_NoFloatDrift(t *testing.T) {
	// 0.1 + 0.2 must be exactly 0.3 with decimal arithmetic
	sum := NewMoneyFromFloat(0.1).Add(NewMoneyFromFloat(0.2))
	assert.True(t, sum.Equals(NewMoneyFromFloat(0.3)))

	// Summing 10 cents a hundred times is exactly ten shillings
	total := Zero()
	for range 100 {
		total = total.Add(NewMoneyFromFloat(0.10))
	}
	assert.Equal(t, "10.00", total.StringFixed())
}

func TestMoney_Comparisons(t *testing.T) {
	a := NewMoneyFromFloat(100)
	b := NewMoneyFromFloat(200)

	assert.True(t, a.LessThan(b))
	assert.True(t, b.GreaterThan(a))
	assert.True(t, a.LessThanOrEqual(a))
	assert.True(t, a.GreaterThanOrEqual(a))
	assert.False(t, a.Equals(b))
	assert.True(t, Zero().IsZero())
	assert.True(t, b.IsPositive())
	assert.True(t, a.Negate().IsNegative())
}

func TestMoney_JSONRoundTrip(t *testing.T) {
	m := NewMoney(decimal.RequireFromString("18000.25"))

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `"18000.25"`, string(data))

	var out Money
	require.NoError(t, json.Unmarshal(data, &out))
	assert.True(t, m.Equals(out))
}

func TestMoney_UnmarshalBareNumber(t *testing.T) {
	var m Money
	require.NoError(t, json.Unmarshal([]byte(`25000`), &m))
	assert.Equal(t, "25000.00", m.StringFixed())
}

func TestMoney_Scan(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string", "1234.56", "1234.56"},
		{"bytes", []byte("78.90"), "78.90"},
		{"float64", float64(45000), "45000.00"},
		{"int64", int64(300), "300.00"},
		{"nil", nil, "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Money
			require.NoError(t, m.Scan(tt.value))
			assert.Equal(t, tt.want, m.StringFixed())
		})
	}

	t.Run("unsupported type", func(t *testing.T) {
		var m Money
		assert.Error(t, m.Scan(struct{}{}))
	})
}
