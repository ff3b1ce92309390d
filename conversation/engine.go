package conversation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hupe1980/convomesh/internal/fileutil"
	"github.com/hupe1980/convomesh/logging"
	"github.com/hupe1980/convomesh/turn"
)

// DefaultTurnCount is the number of generated turns used when none is
// configured.
const DefaultTurnCount = 4

// runState tracks the strictly linear engine lifecycle. A failure during
// seeding or turning leaves the engine in a non-resumable state; callers
// must discard it.
type runState int

const (
	stateUnstarted runState = iota
	stateSeeding
	stateTurning
	stateDone
	stateFailed
)

// Options configures an Engine instance.
//
// Use functional options with NewEngine to override defaults.
type Options struct {
	// Moderator is an optional additional speaker registered alongside the
	// regular participants. It takes part in the turn rotation like any
	// other registered name.
	Moderator Speaker

	// SeedOpinions are pre-written texts inserted before any turn runs.
	// Parallel to SeedOpinionUsers.
	SeedOpinions []string

	// SeedOpinionUsers attributes each seed text to a name. The names need
	// not belong to a registered speaker.
	SeedOpinionUsers []string

	// TurnCount is the number of generated (non-seed) turns to run.
	TurnCount int

	// WindowCapacity is the fixed context window capacity.
	WindowCapacity int

	// Logger receives verbose turn emission and run diagnostics.
	Logger logging.Logger
}

// Engine drives a fixed number of conversation turns, maintaining the full
// transcript and the bounded context window, and exposes the complete state
// for inspection and persistence afterward.
//
// The engine owns a turn.Selector and a registry of speakers keyed by unique
// name. It is constructed once per conversation, seeded, driven through its
// turns and then discarded. It is not safe for concurrent use.
type Engine struct {
	selector   turn.Selector
	speakers   map[string]Speaker
	moderator  Speaker
	seeds      []string
	seedUsers  []string
	turnCount  int
	window     *Window
	transcript []Utterance
	logger     logging.Logger
	state      runState
}

// NewEngine creates a conversation engine from a constructed (but not yet
// initialized) selector and the participating speakers. The selector is
// initialized exactly once here with the set of all registered usernames,
// moderator included.
func NewEngine(selector turn.Selector, speakers []Speaker, optFns ...func(o *Options)) (*Engine, error) {
	opts := Options{
		TurnCount:      DefaultTurnCount,
		WindowCapacity: DefaultWindowCapacity,
		Logger:         logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if selector == nil {
		return nil, &ValidationError{Field: "selector", Message: "turn selector is required"}
	}
	if len(speakers) == 0 {
		return nil, &ValidationError{Field: "speakers", Message: "at least one speaker is required"}
	}
	if opts.TurnCount < 0 {
		return nil, &ValidationError{Field: "turn_count", Value: opts.TurnCount, Message: "turn count must not be negative"}
	}
	if len(opts.SeedOpinions) != len(opts.SeedOpinionUsers) {
		return nil, &ValidationError{
			Field:   "seed_opinions",
			Value:   len(opts.SeedOpinions),
			Message: fmt.Sprintf("number of seed opinions (%d) and seed opinion users (%d) must be the same", len(opts.SeedOpinions), len(opts.SeedOpinionUsers)),
		}
	}
	if len(opts.SeedOpinions) > opts.WindowCapacity {
		return nil, &ValidationError{
			Field:   "seed_opinions",
			Value:   len(opts.SeedOpinions),
			Message: fmt.Sprintf("%d seed opinions cannot fit in a context window of capacity %d", len(opts.SeedOpinions), opts.WindowCapacity),
		}
	}

	window, err := NewWindow(opts.WindowCapacity)
	if err != nil {
		return nil, err
	}

	registry := make(map[string]Speaker, len(speakers)+1)
	usernames := make([]string, 0, len(speakers)+1)
	for _, sp := range speakers {
		if _, exists := registry[sp.Name()]; exists {
			return nil, &ValidationError{Field: "speakers", Value: sp.Name(), Message: fmt.Sprintf("duplicate speaker name %q", sp.Name())}
		}
		registry[sp.Name()] = sp
		usernames = append(usernames, sp.Name())
	}
	if opts.Moderator != nil {
		if _, exists := registry[opts.Moderator.Name()]; exists {
			return nil, &ValidationError{Field: "moderator", Value: opts.Moderator.Name(), Message: fmt.Sprintf("moderator name %q collides with a speaker", opts.Moderator.Name())}
		}
		registry[opts.Moderator.Name()] = opts.Moderator
		usernames = append(usernames, opts.Moderator.Name())
	}

	if err := selector.Initialize(usernames); err != nil {
		return nil, err
	}

	return &Engine{
		selector:  selector,
		speakers:  registry,
		moderator: opts.Moderator,
		seeds:     append([]string{}, opts.SeedOpinions...),
		seedUsers: append([]string{}, opts.SeedOpinionUsers...),
		turnCount: opts.TurnCount,
		window:    window,
		logger:    opts.Logger,
		state:     stateUnstarted,
	}, nil
}

// Run seeds the conversation and then drives the configured number of turns.
// The transitions are strictly linear: seeding, then each turn in order. Any
// failure aborts the whole run and leaves the engine non-resumable.
//
// Run may be called at most once; a second call fails with a
// *ValidationError rather than appending further turns.
//
// If verbose is true every new utterance is emitted to the logger as a side
// effect; it is not part of the archived result.
func (e *Engine) Run(ctx context.Context, verbose bool) error {
	if e.state != stateUnstarted {
		return &ValidationError{Field: "run", Message: "conversation has already been run; construct a new engine"}
	}

	start := time.Now()

	e.state = stateSeeding
	for i, text := range e.seeds {
		e.archive(Utterance{Name: e.seedUsers[i], Text: text, Model: nil})
		if verbose {
			e.logger.Info("Seed opinion archived", "user", e.seedUsers[i], "text", text)
		}
	}

	e.state = stateTurning
	for i := 0; i < e.turnCount; i++ {
		if err := e.runTurn(ctx, i, verbose); err != nil {
			e.state = stateFailed
			return err
		}
	}

	e.state = stateDone
	e.logger.Debug("Conversation run completed",
		"turns", e.turnCount, "seeds", len(e.seeds), "duration", time.Since(start))
	return nil
}

// runTurn executes a single selection / resolution / generation step.
func (e *Engine) runTurn(ctx context.Context, index int, verbose bool) error {
	username, err := e.selector.Next()
	if err != nil {
		return err
	}

	speaker, ok := e.speakers[username]
	if !ok {
		// The selector was initialized with a different name set than the
		// registry; this is fatal.
		return &ResolutionError{Username: username}
	}

	text, err := speaker.Speak(ctx, e.window.Join())
	if err != nil {
		return &SpeakerError{Speaker: username, Err: err}
	}

	modelID := speaker.ModelID()
	e.archive(Utterance{Name: username, Text: text, Model: &modelID})

	if verbose {
		e.logger.Info("Turn completed", "turn", index+1, "speaker", username, "text", text)
	}
	return nil
}

// archive appends the utterance to the transcript and pushes its formatted
// form into the context window under the FIFO eviction rule.
func (e *Engine) archive(utt Utterance) {
	e.transcript = append(e.transcript, utt)
	e.window.Push(FormatChatMessage(utt.Name, utt.Text))
}

// Transcript returns a defensive copy of the full ordered utterance record.
func (e *Engine) Transcript() []Utterance {
	transcript := make([]Utterance, len(e.transcript))
	copy(transcript, e.transcript)
	return transcript
}

// WindowEntries returns a copy of the current context window content.
func (e *Engine) WindowEntries() []string { return e.window.Entries() }

// Done reports whether a run has completed successfully.
func (e *Engine) Done() bool { return e.state == stateDone }

// WriteJSON writes the full transcript as an indented JSON array of
// {name, text, model} records, model null for seeded entries.
func (e *Engine) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(e.transcript)
}

// SaveJSON persists the transcript to the given path, creating parent
// directories as needed. It is intended to be called after a completed run;
// the transcript is written in full, not streamed.
func (e *Engine) SaveJSON(path string) error {
	if err := fileutil.EnsureParentDirs(path); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create transcript file: %w", err)
	}
	defer f.Close()

	if err := e.WriteJSON(f); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}
	return nil
}
