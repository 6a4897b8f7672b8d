package oracle

// defaultMaxNodes bounds the brute-force search by default. search tries,
// for every node of t1, a skip branch plus one branch per legal unused
// node of t2, so the number of partial mappings explored is on the order
// of (n2+1)^n1; 7 keeps worst-case invocations in the low millions.
const defaultMaxNodes = 7

// Option configures a Run or Solve call.
type Option func(*config)

type config struct {
	maxNodes int
}

// WithMaxNodes overrides the default node-count ceiling (7) used to
// refuse inputs the brute-force search would take too long to finish.
func WithMaxNodes(n int) Option {
	return func(c *config) {
		c.maxNodes = n
	}
}

func newConfig(opts ...Option) config {
	c := config{maxNodes: defaultMaxNodes}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
