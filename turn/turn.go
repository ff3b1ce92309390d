package turn

import (
	"fmt"
	"strings"
)

// Selector type identifiers accepted by New.
const (
	// TypeRoundRobin identifies the deterministic cycling selector.
	TypeRoundRobin = "round_robin"
	// TypeRandomWeighted identifies the probabilistic continuation selector.
	TypeRandomWeighted = "random_weighted"
)

// ErrNotInitialized is returned when Next is called before Initialize has
// provided the participant usernames.
var ErrNotInitialized = fmt.Errorf("no usernames have been provided for the turn selector; call Initialize first")

// ConfigurationError represents an invalid selector type or configuration
// value detected at construction or initialization time. It is never retried.
type ConfigurationError struct {
	Field   string `json:"field"`   // Configuration field that failed validation
	Value   any    `json:"value"`   // Value that was provided
	Message string `json:"message"` // Human-readable error message
}

// Error implements the error interface for ConfigurationError.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("turn selector configuration error for '%s': %s", e.Field, e.Message)
}

// Selector decides, on each call, which registered username speaks next.
//
// Contract:
//   - Initialize must be called exactly once before any selection
//   - Next never returns a name outside the initialized set
//   - Selectors know usernames only; they are agnostic to what a speaker is
type Selector interface {
	// Initialize provides the distinct participant usernames. Calling it a
	// second time is a caller bug and fails.
	Initialize(usernames []string) error

	// Next returns the username of the next speaker.
	Next() (string, error)
}

// New constructs a Selector for the given type identifier (case-insensitive).
// The config mapping carries variant specific settings such as
// "respond_probability" for the random weighted selector. An unrecognized
// identifier fails with a *ConfigurationError naming the valid choices.
func New(selectorType string, config map[string]float64, optFns ...func(o *RandomWeightedOptions)) (Selector, error) {
	switch strings.ToLower(selectorType) {
	case TypeRoundRobin:
		return NewRoundRobin(), nil
	case TypeRandomWeighted:
		return NewRandomWeighted(config, optFns...)
	default:
		return nil, &ConfigurationError{
			Field:   "selector_type",
			Value:   selectorType,
			Message: fmt.Sprintf("unknown turn selector type %q, valid values: %s, %s", selectorType, TypeRoundRobin, TypeRandomWeighted),
		}
	}
}

// checkUsernames validates the initialization name set shared by all variants.
func checkUsernames(usernames []string) error {
	if len(usernames) == 0 {
		return &ConfigurationError{Field: "usernames", Message: "at least one username is required"}
	}
	seen := make(map[string]struct{}, len(usernames))
	for _, name := range usernames {
		if _, ok := seen[name]; ok {
			return &ConfigurationError{Field: "usernames", Value: name, Message: fmt.Sprintf("duplicate username %q", name)}
		}
		seen[name] = struct{}{}
	}
	return nil
}
