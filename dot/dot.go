package dot

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/casc/core"
)

// Option configures Write.
type Option func(*config)

type config struct {
	graphName string
	withUUIDs bool
}

// WithGraphName overrides the default digraph name ("casc").
func WithGraphName(name string) Option {
	return func(c *config) { c.graphName = name }
}

// WithUUIDs adds an id="..." attribute to every node carrying a tag
// stamped by core.WithNodeUUIDs. Nodes with the zero UUID (tagging was
// off, or WithNodeUUIDs was never enabled) get no id attribute.
func WithUUIDs() Option {
	return func(c *config) { c.withUUIDs = true }
}

// Write renders c as a Graphviz digraph: one node per live simplex
// (labeled by its vertex-key name, or "∅" for the dimension-0 root,
// whose node id is "root"), one directed edge per boundary/coboundary incidence,
// labeled by the vertex key that distinguishes parent from child.
func Write(w io.Writer, c *core.Complex, opts ...Option) error {
	cfg := config{graphName: "casc"}
	for _, opt := range opts {
		opt(&cfg)
	}

	if _, err := fmt.Fprintf(w, "digraph %s {\n\trankdir=BT;\n", cfg.graphName); err != nil {
		return err
	}

	for k := 0; k <= c.Dim(); k++ {
		var writeErr error
		c.Iter(k, func(h core.SimplexId) bool {
			writeErr = writeNode(w, c, h, cfg)
			return writeErr == nil
		})
		if writeErr != nil {
			return writeErr
		}
	}

	for k := 0; k < c.Dim(); k++ {
		var writeErr error
		c.Iter(k, func(h core.SimplexId) bool {
			for _, key := range c.Cover(h) {
				edge, ok := c.EdgeUp(h, key)
				if !ok {
					continue
				}
				if _, err := fmt.Fprintf(w, "\t%s -> %s [label=%q];\n", nodeID(c, h), nodeID(c, edge.Up()), strconv.FormatInt(int64(key), 10)); err != nil {
					writeErr = err
					return false
				}
			}
			return true
		})
		if writeErr != nil {
			return writeErr
		}
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}

func writeNode(w io.Writer, c *core.Complex, h core.SimplexId, cfg config) error {
	label := nodeLabel(c, h)
	attrs := fmt.Sprintf("label=%q", label)
	if cfg.withUUIDs {
		if tag := c.Tag(h); tag.String() != "00000000-0000-0000-0000-000000000000" {
			attrs += fmt.Sprintf(", id=%q", tag.String())
		}
	}
	_, err := fmt.Fprintf(w, "\t%s [%s];\n", nodeID(c, h), attrs)
	return err
}

func nodeID(c *core.Complex, h core.SimplexId) string {
	name := c.Name(h)
	if len(name) == 0 {
		return "root"
	}
	parts := make([]string, len(name))
	for i, k := range name {
		parts[i] = strconv.FormatInt(int64(k), 10)
	}
	return "n" + strings.Join(parts, "_")
}

func nodeLabel(c *core.Complex, h core.SimplexId) string {
	name := c.Name(h)
	if len(name) == 0 {
		return "∅"
	}
	parts := make([]string, len(name))
	for i, k := range name {
		parts[i] = strconv.FormatInt(int64(k), 10)
	}
	return "{" + strings.Join(parts, ",") + "}"
}
