package testutil

// DefaultEvalID is returned by a FixedIDGenerator built with an empty ID.
const DefaultEvalID = "test-eval-default"

// FixedIDGenerator returns the same evaluation ID every time, so JSON output
// carrying a trace_id can be compared byte for byte.
//
// Safe for concurrent use.
type FixedIDGenerator struct {
	id string
}

// NewFixedIDGenerator returns a generator for id, or DefaultEvalID if id is
// empty.
func NewFixedIDGenerator(id string) *FixedIDGenerator {
	if id == "" {
		id = DefaultEvalID
	}
	return &FixedIDGenerator{id: id}
}

// Generate returns the fixed ID.
func (g *FixedIDGenerator) Generate() string {
	return g.id
}
