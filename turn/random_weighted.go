package turn

import (
	"math/rand"

	"github.com/hupe1980/convomesh/logging"
)

// DefaultRespondProbability is used when no "respond_probability" entry is
// present in the configuration mapping. The substitution is surfaced as a
// non-fatal diagnostic through the injected logger.
const DefaultRespondProbability = 0.5

// RandomWeightedOptions configures a RandomWeighted selector instance.
//
// Use functional options with NewRandomWeighted to override defaults.
type RandomWeightedOptions struct {
	// Logger receives the non-fatal diagnostic emitted when the respond
	// probability default is silently substituted.
	Logger logging.Logger
	// Rand supplies the randomness source. Override in tests for
	// deterministic selection sequences.
	Rand *rand.Rand
}

// RandomWeighted lets the previous speaker continue with a set probability,
// otherwise it uniformly selects one of the other participants.
//
// State transitions per call:
//   - first call: uniform selection over the full name set (there is no
//     prior speaker to exclude)
//   - later calls: a uniform draw in [0,1) below the respond probability
//     keeps the last speaker, otherwise a uniform pick excludes it
//
// The "exclude current speaker" pool must never be empty, so Initialize
// requires at least two distinct usernames.
type RandomWeighted struct {
	respondProbability float64
	usernames          []string
	lastSpeaker        string
	previousSpeaker    string // informational only, not used in the decision
	rand               *rand.Rand
	ready              bool
}

// NewRandomWeighted creates a random weighted selector from the configuration
// mapping. A "respond_probability" outside the exclusive (0, 1) interval
// fails with a *ConfigurationError; a missing entry falls back to
// DefaultRespondProbability with a logged warning.
func NewRandomWeighted(config map[string]float64, optFns ...func(o *RandomWeightedOptions)) (*RandomWeighted, error) {
	opts := RandomWeightedOptions{
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	prob, ok := config["respond_probability"]
	if !ok {
		opts.Logger.Warn("No respond_probability set for random weighted turn selector, using default",
			"default", DefaultRespondProbability)
		prob = DefaultRespondProbability
	} else if prob <= 0 || prob >= 1 {
		return nil, &ConfigurationError{
			Field:   "respond_probability",
			Value:   prob,
			Message: "respond probability must be strictly between 0 and 1",
		}
	}

	r := opts.Rand
	if r == nil {
		r = rand.New(rand.NewSource(rand.Int63()))
	}

	return &RandomWeighted{respondProbability: prob, rand: r}, nil
}

// RespondProbability returns the configured continuation probability.
func (s *RandomWeighted) RespondProbability() float64 { return s.respondProbability }

// Initialize implements Selector. It requires at least two distinct
// usernames; with a single participant the selector could never produce a
// valid "switch" outcome.
func (s *RandomWeighted) Initialize(usernames []string) error {
	if s.ready {
		return &ConfigurationError{Field: "usernames", Message: "selector is already initialized"}
	}
	if err := checkUsernames(usernames); err != nil {
		return err
	}
	if len(usernames) < 2 {
		return &ConfigurationError{
			Field:   "usernames",
			Value:   usernames,
			Message: "random weighted selection requires at least two distinct usernames",
		}
	}
	s.usernames = append([]string{}, usernames...)
	s.ready = true
	return nil
}

// Next implements Selector.
func (s *RandomWeighted) Next() (string, error) {
	if !s.ready {
		return "", ErrNotInitialized
	}

	// First call: no prior speaker, uniform over the full set.
	if s.lastSpeaker == "" {
		s.lastSpeaker = s.usernames[s.rand.Intn(len(s.usernames))]
		return s.lastSpeaker, nil
	}

	next := s.lastSpeaker
	if s.rand.Float64() >= s.respondProbability {
		next = s.selectOtherSpeaker()
	}

	s.previousSpeaker = s.lastSpeaker
	s.lastSpeaker = next
	return next, nil
}

// selectOtherSpeaker uniformly picks a username excluding the last speaker.
func (s *RandomWeighted) selectOtherSpeaker() string {
	others := make([]string, 0, len(s.usernames)-1)
	for _, name := range s.usernames {
		if name != s.lastSpeaker {
			others = append(others, name)
		}
	}
	return others[s.rand.Intn(len(others))]
}
