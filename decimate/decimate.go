package decimate

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/katalvlaran/casc/core"
	"github.com/katalvlaran/casc/query"
	"github.com/katalvlaran/casc/simplexset"
)

// ComputeClasses computes the effect of collapsing s to a single fresh
// vertex without mutating the complex: it allocates the replacement key
// and partitions every simplex touched by the collapse into equivalence
// classes keyed by the name it will have afterward.
//
// The touched set N is star(closure(s)) rather than the more naive
// closure(star(s)): only the former guarantees every member of N shares
// at least one vertex with s, which is what makes "rewrite each t in N by
// substituting the new vertex for its intersection with s" produce a
// valid (non-degenerate) name for every member.
//
// s must not be the root. Returns ErrRootCollapse otherwise, and
// whatever AllocateKey returns if the vertex-key space is exhausted.
func ComputeClasses(c *core.Complex, s core.SimplexId) (*Classes, error) {
	if s.Dim() == 0 {
		return nil, ErrRootCollapse
	}

	sName := c.Name(s)
	sSet := make(map[core.Key]bool, len(sName))
	for _, k := range sName {
		sSet[k] = true
	}

	v, err := c.AllocateKey()
	if err != nil {
		return nil, err
	}

	cl := &Classes{
		Vertex:      v,
		sVertexKeys: sName,
		sSet:        sSet,
		groups:      simplexset.NewMap(c.Dim()),
	}

	N := query.Star(c, query.ClosureOf(c, s))
	cl.N = N
	N.ForEach(func(t core.SimplexId) bool {
		cl.groups.Add(cl.rewriteName(c, t), t)
		return true
	})

	return cl, nil
}

// Apply runs the callbacks recorded by classes and, once every one that
// must succeed has, destroys every old simplex in classes.N and rebuilds
// the collapsed complex in its place: dimension 1 (the new vertex) first,
// then each higher dimension, so every group's callback-chosen payload is
// the one that survives rather than being defaulted by an earlier
// back-fill. Returns the handle of the new vertex.
//
// By default the first callback error aborts before anything is removed
// or inserted, releasing the reserved vertex key, so the complex is left
// exactly as it was. Under WithContinueOnCallbackError every callback
// runs regardless of earlier failures, failed groups are inserted with no
// payload, and the collapse still completes; the returned error is the
// aggregate of every callback failure (via go.uber.org/multierr).
func Apply(c *core.Complex, classes *Classes, cb CallbackBundle, opts ...Option) (core.SimplexId, error) {
	cfg := newConfig(opts)

	type resolved struct {
		name    []core.Key
		payload interface{}
	}
	plan := make([][]resolved, c.Dim()+1)

	var errs error
	for k := 1; k <= c.Dim(); k++ {
		for _, group := range classes.groups.Groups(k) {
			var rep core.SimplexId
			group.ForEach(func(h core.SimplexId) bool { rep = h; return false })
			newName := classes.rewriteName(c, rep)

			payload, err := cb.Callback(c, k, newName, group)
			if err != nil {
				wrapped := fmt.Errorf("%w: dim=%d name=%v: %v", ErrCallback, k, newName, err)
				if !cfg.continueOnCallbackError {
					_ = c.ReleaseKey(classes.Vertex)
					return core.SimplexId{}, wrapped
				}
				errs = multierr.Append(errs, wrapped)
				payload = nil
			}
			plan[k] = append(plan[k], resolved{name: newName, payload: payload})
		}
	}

	for _, vk := range classes.sVertexKeys {
		h, ok := c.Get([]core.Key{vk})
		if !ok {
			continue
		}
		if _, err := c.Remove(h); err != nil {
			return core.SimplexId{}, err
		}
	}

	var newVertex core.SimplexId
	for k := 1; k <= c.Dim(); k++ {
		for _, r := range plan[k] {
			h, err := c.InsertPayload(r.name, r.payload)
			if err != nil {
				return core.SimplexId{}, err
			}
			if k == 1 && r.name[0] == classes.Vertex {
				newVertex = h
			}
		}
	}

	return newVertex, errs
}

// Decimate is the ComputeClasses+Apply convenience wrapper: collapse s to
// a single fresh vertex, invoking cb once per surviving equivalence
// class.
func Decimate(c *core.Complex, s core.SimplexId, cb CallbackBundle, opts ...Option) (core.SimplexId, error) {
	classes, err := ComputeClasses(c, s)
	if err != nil {
		return core.SimplexId{}, err
	}
	return Apply(c, classes, cb, opts...)
}
