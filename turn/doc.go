// Package turn contains the turn-selection policies deciding which
// participant speaks next in a generated conversation. The package exposes a
// single capability interface (Selector) with two concrete strategies:
//
//   - RoundRobin: deterministic, cycles through usernames in order
//   - RandomWeighted: the previous speaker continues with a configured
//     probability, otherwise another participant is drawn uniformly
//
// Selectors operate on usernames only; resolving a username to an actual
// speaker is the conversation engine's concern. Instances are selected at
// construction by the New factory keyed on a type tag.
package turn
