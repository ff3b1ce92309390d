package turn

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Interface compliance (compile-time assertion)
var (
	_ Selector = (*RoundRobin)(nil)
	_ Selector = (*RandomWeighted)(nil)
)

// recordingLogger captures warnings for assertions on diagnostics.
type recordingLogger struct {
	warnings []string
}

func (l *recordingLogger) Debug(string, ...any)      {}
func (l *recordingLogger) Info(string, ...any)       {}
func (l *recordingLogger) Warn(msg string, _ ...any) { l.warnings = append(l.warnings, msg) }
func (l *recordingLogger) Error(string, ...any)      {}

func TestRandomWeightedBoundaryProbabilitiesRejected(t *testing.T) {
	for _, prob := range []float64{0.0, 1.0, -0.1, 1.5} {
		sel, err := NewRandomWeighted(map[string]float64{"respond_probability": prob})
		assert.Nil(t, sel, "probability %v", prob)

		var cfgErr *ConfigurationError
		require.ErrorAs(t, err, &cfgErr, "probability %v", prob)
		assert.Equal(t, "respond_probability", cfgErr.Field)
	}
}

func TestRandomWeightedDefaultProbabilityDiagnostic(t *testing.T) {
	logger := &recordingLogger{}
	sel, err := NewRandomWeighted(nil, func(o *RandomWeightedOptions) {
		o.Logger = logger
	})
	require.NoError(t, err)

	assert.InDelta(t, DefaultRespondProbability, sel.RespondProbability(), 1e-9)
	assert.Len(t, logger.warnings, 1)
}

func TestRandomWeightedExplicitProbabilityIsSilent(t *testing.T) {
	logger := &recordingLogger{}
	sel, err := NewRandomWeighted(map[string]float64{"respond_probability": 0.7}, func(o *RandomWeightedOptions) {
		o.Logger = logger
	})
	require.NoError(t, err)

	assert.InDelta(t, 0.7, sel.RespondProbability(), 1e-9)
	assert.Empty(t, logger.warnings)
}

func TestRandomWeightedNotInitialized(t *testing.T) {
	sel, err := NewRandomWeighted(map[string]float64{"respond_probability": 0.5})
	require.NoError(t, err)

	_, err = sel.Next()
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestRandomWeightedSingleUsernameRejected(t *testing.T) {
	sel, err := NewRandomWeighted(map[string]float64{"respond_probability": 0.5})
	require.NoError(t, err)

	err = sel.Initialize([]string{"only"})
	var cfgErr *ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestRandomWeightedStaysWithinNameSet(t *testing.T) {
	sel, err := NewRandomWeighted(map[string]float64{"respond_probability": 0.5}, func(o *RandomWeightedOptions) {
		o.Rand = rand.New(rand.NewSource(42))
	})
	require.NoError(t, err)
	require.NoError(t, sel.Initialize([]string{"a", "b", "c"}))

	valid := map[string]bool{"a": true, "b": true, "c": true}
	for i := 0; i < 200; i++ {
		name, err := sel.Next()
		require.NoError(t, err)
		assert.True(t, valid[name], "unexpected username %q", name)
	}
}

func TestRandomWeightedHighProbabilityContinues(t *testing.T) {
	// With the respond probability this close to 1 the last speaker keeps
	// the floor on every draw.
	sel, err := NewRandomWeighted(map[string]float64{"respond_probability": 0.999999999}, func(o *RandomWeightedOptions) {
		o.Rand = rand.New(rand.NewSource(7))
	})
	require.NoError(t, err)
	require.NoError(t, sel.Initialize([]string{"u1", "u2", "u3"}))

	first, err := sel.Next()
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		name, err := sel.Next()
		require.NoError(t, err)
		assert.Equal(t, first, name)
	}
}

func TestRandomWeightedLowProbabilityAlternates(t *testing.T) {
	// With two participants and a respond probability this close to 0 every
	// call switches, so the sequence strictly alternates.
	sel, err := NewRandomWeighted(map[string]float64{"respond_probability": 0.000000001}, func(o *RandomWeightedOptions) {
		o.Rand = rand.New(rand.NewSource(7))
	})
	require.NoError(t, err)
	require.NoError(t, sel.Initialize([]string{"u1", "u2"}))

	prev, err := sel.Next()
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		name, err := sel.Next()
		require.NoError(t, err)
		assert.NotEqual(t, prev, name)
		prev = name
	}
}
