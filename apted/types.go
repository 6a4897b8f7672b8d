package apted

// PathType identifies which of the three root-to-leaf decompositions a
// single-path function was invoked for.
type PathType int

const (
	// PathLeft follows the first child at every level (spfL).
	PathLeft PathType = iota
	// PathRight follows the last child at every level (spfR).
	PathRight
	// PathInner follows any other root-to-leaf chain (spfA).
	PathInner
)

// String renders a PathType for diagnostics.
func (p PathType) String() string {
	switch p {
	case PathLeft:
		return "left"
	case PathRight:
		return "right"
	case PathInner:
		return "inner"
	default:
		return "unknown"
	}
}

// Pair is one entry of an edit mapping: postL ids (1-based) into T1 and
// T2 respectively. A zero in either position denotes a delete (Dst==0)
// or an insert (Src==0); otherwise the pair is a rename/match of the two
// named nodes.
type Pair struct {
	Src int // postL id (1-based) in T1, or 0 for an insert
	Dst int // postL id (1-based) in T2, or 0 for a delete
}

// Executor is the capability ExecuteOperations replays a computed mapping
// against: a delete, an insert, and an update (rename) callback, each
// given the concrete node(s) involved.
type Executor interface {
	Delete(n interface{}) error
	Insert(n interface{}) error
	Update(src, dst interface{}) error
}

// Option configures an Apted instance at construction time.
type Option func(*config)

type config struct {
	forcedStrategy pathStrategyOverride
}

type pathStrategyOverride int

const (
	strategyAuto pathStrategyOverride = iota
	strategyForcePostL
	strategyForcePostR
)

// WithPathStrategy makes the strategy computer give every (v, w) cell the
// leftmost (PathLeft) or rightmost (PathRight) path of v's subtree in T1,
// instead of its automatic six-candidate cost minimization; PathInner
// keeps the automatic choice. ComputeEditDistance's result is unaffected
// either way (spec.md §8 property 5 — SPF equivalence), only the work
// done to get there.
func WithPathStrategy(forced PathType) Option {
	return func(c *config) {
		switch forced {
		case PathLeft:
			c.forcedStrategy = strategyForcePostL
		case PathRight:
			c.forcedStrategy = strategyForcePostR
		}
	}
}

func newConfig(opts ...Option) config {
	c := config{forcedStrategy: strategyAuto}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
