package core

import (
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/casc/index"
)

// Key is the vertex-identifier type, drawn from an IndexAllocator.
type Key = index.Key

// node is a single record in the Hasse diagram. It lives in exactly one
// dimension bucket of Complex.tables, referenced by handles that wrap a
// direct pointer to it — cheap to copy, comparable by identity, and
// ordered by the monotonic seq assigned at creation.
type node struct {
	seq   uint64 // creation order, used for SimplexId ordering and table keys
	dim   int
	alive bool

	payload interface{}

	down     map[Key]*node       // boundary: key -> the (dim-1)-node missing that key
	up       map[Key]*node       // coboundary: key -> the (dim+1)-node containing that key
	edgeData map[Key]interface{} // edge payload, keyed like down

	tag uuid.UUID // optional external-correlation id, set only if WithNodeUUIDs
}

// Complex is a dimension-indexed Hasse diagram of fixed top dimension D.
// It owns every node and edge payload and is the sole point of mutation;
// SimplexId/EdgeId handles obtained from it are only valid until a
// removal or decimation deletes the node(s) they reference.
type Complex struct {
	mu sync.RWMutex

	dim  int // top dimension D
	root *node

	tables []map[uint64]*node // tables[k]: live nodes at dimension k, keyed by seq
	nextSeq uint64

	alloc *index.IndexAllocator

	log       Logger
	tagNodes  bool
}

// Option configures a Complex at construction time.
type Option func(*Complex)

// WithLogger installs a structured logger for diagnostic tracing of
// mutating operations. The default is a no-op logger.
func WithLogger(l Logger) Option {
	return func(c *Complex) {
		if l != nil {
			c.log = l
		}
	}
}

// WithMaxKey overrides the default vertex-key space bound (index.DefaultMax).
func WithMaxKey(max Key) Option {
	return func(c *Complex) {
		c.alloc = index.NewIndexAllocator(max)
	}
}

// WithNodeUUIDs stamps every created node with a random UUID (visible via
// Complex.Tag) for correlating log lines and DOT export ids with an
// external system. Off by default; enabling it costs one RNG draw per
// node creation.
func WithNodeUUIDs() Option {
	return func(c *Complex) { c.tagNodes = true }
}

// New constructs an empty Complex with top dimension dim (dim >= 1) and
// the root node at dimension 0.
func New(dim int, opts ...Option) *Complex {
	if dim < 1 {
		panic("core: top dimension must be >= 1")
	}
	c := &Complex{
		dim:    dim,
		log:    noopLogger{},
		tables: make([]map[uint64]*node, dim+1),
	}
	for k := range c.tables {
		c.tables[k] = make(map[uint64]*node)
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.alloc == nil {
		c.alloc = index.NewDefaultIndexAllocator()
	}
	c.root = c.newNode(0)
	c.log.Debugf("core: new complex, dim=%d max=%d", dim, c.alloc.Max())
	return c
}

// Dim returns the complex's fixed top dimension D.
func (c *Complex) Dim() int { return c.dim }

func (c *Complex) newNode(dim int) *node {
	n := &node{
		seq:   c.nextSeq,
		dim:   dim,
		alive: true,
	}
	c.nextSeq++
	if dim > 0 {
		n.down = make(map[Key]*node, dim)
		n.edgeData = make(map[Key]interface{}, dim)
	}
	if dim < c.dim {
		n.up = make(map[Key]*node)
	}
	if c.tagNodes {
		n.tag = uuid.New()
	}
	c.tables[dim][n.seq] = n
	return n
}

// Tag returns the UUID stamped on the node referenced by h, or the zero
// UUID if WithNodeUUIDs was not enabled.
func (c *Complex) Tag(h SimplexId) uuid.UUID {
	return h.n.tag
}
