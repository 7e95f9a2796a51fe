package storage

// Outcome tells whether a resolve-or-create call matched an existing row.
type Outcome int

const (
	Found Outcome = iota
	Created
)

func (o Outcome) String() string {
	if o == Created {
		return "created"
	}
	return "found"
}

// Resolved pairs a reference row with how it was obtained.
type Resolved[T any] struct {
	Value   T
	Outcome Outcome
}

// Values strips the outcomes.
func Values[T any](rs []Resolved[T]) []T {
	out := make([]T, len(rs))
	for i, r := range rs {
		out[i] = r.Value
	}
	return out
}

// CreatedCount returns how many entries were created rather than found.
func CreatedCount[T any](rs []Resolved[T]) int {
	n := 0
	for _, r := range rs {
		if r.Outcome == Created {
			n++
		}
	}
	return n
}
