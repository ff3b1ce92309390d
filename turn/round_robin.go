package turn

// RoundRobin cycles through the initialized usernames in the exact order
// given, indefinitely. Two selectors initialized with the same ordered list
// produce identical infinite sequences.
//
// The cycle is an explicit index incremented modulo the list length rather
// than a hidden iterator, so the full selector state is inspectable.
type RoundRobin struct {
	usernames []string
	next      int
	ready     bool
}

// NewRoundRobin creates an uninitialized round robin selector. It takes no
// configuration.
func NewRoundRobin() *RoundRobin { return &RoundRobin{} }

// Initialize implements Selector.
func (s *RoundRobin) Initialize(usernames []string) error {
	if s.ready {
		return &ConfigurationError{Field: "usernames", Message: "selector is already initialized"}
	}
	if err := checkUsernames(usernames); err != nil {
		return err
	}
	s.usernames = append([]string{}, usernames...)
	s.ready = true
	return nil
}

// Next implements Selector.
func (s *RoundRobin) Next() (string, error) {
	if !s.ready {
		return "", ErrNotInitialized
	}
	name := s.usernames[s.next]
	s.next = (s.next + 1) % len(s.usernames)
	return name, nil
}
