package resolver

import "fmt"

// Quality describes how a description was resolved.
type Quality int

const (
	ExactMatch    Quality = iota // whole text matched a keyword
	ModifiedMatch                // base phrase matched, zero or more modifiers applied
	FallbackGray                 // nothing matched
	Transparent                  // base phrase is transparent; modifiers ignored
)

func (q Quality) String() string {
	switch q {
	case ExactMatch:
		return "exact"
	case ModifiedMatch:
		return "modified"
	case FallbackGray:
		return "fallback"
	case Transparent:
		return "transparent"
	default:
		return "unknown"
	}
}

func (q Quality) MarshalText() ([]byte, error) {
	if q < ExactMatch || q > Transparent {
		return nil, fmt.Errorf("unknown quality %d", int(q))
	}
	return []byte(q.String()), nil
}

func (q *Quality) UnmarshalText(b []byte) error {
	for c := ExactMatch; c <= Transparent; c++ {
		if c.String() == string(b) {
			*q = c
			return nil
		}
	}
	return fmt.Errorf("unknown quality %q", string(b))
}
