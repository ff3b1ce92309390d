package turn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactoryUnknownType(t *testing.T) {
	sel, err := New("priority_queue", nil)
	assert.Nil(t, sel)

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Message, TypeRoundRobin)
	assert.Contains(t, cfgErr.Message, TypeRandomWeighted)
}

func TestFactoryCaseInsensitive(t *testing.T) {
	sel, err := New("Round_Robin", nil)
	require.NoError(t, err)
	assert.IsType(t, &RoundRobin{}, sel)

	sel, err = New("RANDOM_WEIGHTED", map[string]float64{"respond_probability": 0.3})
	require.NoError(t, err)
	assert.IsType(t, &RandomWeighted{}, sel)
}

func TestRoundRobinCycles(t *testing.T) {
	sel := NewRoundRobin()
	require.NoError(t, sel.Initialize([]string{"a", "b", "c"}))

	want := []string{"a", "b", "c", "a", "b", "c", "a"}
	for i, expected := range want {
		name, err := sel.Next()
		require.NoError(t, err)
		assert.Equal(t, expected, name, "call %d", i)
	}
}

func TestRoundRobinDeterministic(t *testing.T) {
	first := NewRoundRobin()
	second := NewRoundRobin()
	require.NoError(t, first.Initialize([]string{"x", "y"}))
	require.NoError(t, second.Initialize([]string{"x", "y"}))

	for i := 0; i < 10; i++ {
		a, err := first.Next()
		require.NoError(t, err)
		b, err := second.Next()
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}

func TestRoundRobinNotInitialized(t *testing.T) {
	sel := NewRoundRobin()
	_, err := sel.Next()
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestRoundRobinDoubleInitialize(t *testing.T) {
	sel := NewRoundRobin()
	require.NoError(t, sel.Initialize([]string{"a"}))

	err := sel.Initialize([]string{"b"})
	var cfgErr *ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestRoundRobinRejectsDuplicates(t *testing.T) {
	sel := NewRoundRobin()
	err := sel.Initialize([]string{"a", "b", "a"})

	var cfgErr *ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestRoundRobinRejectsEmpty(t *testing.T) {
	sel := NewRoundRobin()
	err := sel.Initialize(nil)

	var cfgErr *ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}
