// Package conversation implements the orchestration engine that generates
// synthetic multi-party dialogues. An Engine repeatedly asks its turn
// selector for the next username, resolves it to a registered Speaker,
// invokes it with a rolling window of prior conversation and archives the
// produced utterance.
//
// Two pieces of state evolve during a run:
//
//   - the transcript: an unbounded, append-only record of every utterance
//     (seeded and generated), the externally visible result of a run
//   - the context window: a bounded FIFO buffer of formatted "name: text"
//     lines used to condition each speaker call
//
// Conversations may be seeded with pre-written opening statements attributed
// to arbitrary names before any turn runs. The engine has no retry state and
// no pause/resume; a failed step aborts the whole run and the engine must be
// discarded. Batch drivers run one engine per conversation and isolate
// failures per run.
package conversation
