package meshio

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/casc/core"
)

// Vertex is a mesh vertex's spatial coordinates, kept alongside the
// Complex rather than as a payload since not every caller wants the
// import cost of a payload type.
type Vertex struct {
	X, Y, Z float64
}

// ReadOFF parses an ASCII Geomview OFF stream, adding one vertex to c per
// coordinate line (in file order) and one top-dimension simplex per face
// line. c's top dimension must be at least the largest face's vertex
// count. Returns each new vertex's coordinates keyed by its casc key.
func ReadOFF(r io.Reader, c *core.Complex) (map[core.Key]Vertex, error) {
	tok := newTokenizer(r)

	header, ok := tok.next()
	if !ok || header != "OFF" {
		return nil, fmt.Errorf("%w: missing OFF header", ErrFormat)
	}

	nv, err := tok.nextInt()
	if err != nil {
		return nil, fmt.Errorf("%w: vertex count: %v", ErrFormat, err)
	}
	nf, err := tok.nextInt()
	if err != nil {
		return nil, fmt.Errorf("%w: face count: %v", ErrFormat, err)
	}
	if _, err := tok.nextInt(); err != nil { // edge count, unused
		return nil, fmt.Errorf("%w: edge count: %v", ErrFormat, err)
	}

	positions := make(map[core.Key]Vertex, nv)
	localToKey := make([]core.Key, nv)
	for i := 0; i < nv; i++ {
		x, err := tok.nextFloat()
		if err != nil {
			return nil, fmt.Errorf("%w: vertex %d x: %v", ErrFormat, i, err)
		}
		y, err := tok.nextFloat()
		if err != nil {
			return nil, fmt.Errorf("%w: vertex %d y: %v", ErrFormat, i, err)
		}
		z, err := tok.nextFloat()
		if err != nil {
			return nil, fmt.Errorf("%w: vertex %d z: %v", ErrFormat, i, err)
		}
		k, err := c.AddVertex()
		if err != nil {
			return nil, err
		}
		localToKey[i] = k
		positions[k] = Vertex{X: x, Y: y, Z: z}
	}

	for i := 0; i < nf; i++ {
		n, err := tok.nextInt()
		if err != nil {
			return nil, fmt.Errorf("%w: face %d size: %v", ErrFormat, i, err)
		}
		keys := make([]core.Key, n)
		for j := 0; j < n; j++ {
			idx, err := tok.nextInt()
			if err != nil {
				return nil, fmt.Errorf("%w: face %d vertex %d: %v", ErrFormat, i, j, err)
			}
			if idx < 0 || idx >= nv {
				return nil, fmt.Errorf("%w: face %d references out-of-range vertex %d", ErrFormat, i, idx)
			}
			keys[j] = localToKey[idx]
		}
		sort.Slice(keys, func(a, b int) bool { return keys[a] < keys[b] })
		if _, err := c.Insert(keys); err != nil {
			return nil, fmt.Errorf("meshio: face %d: %w", i, err)
		}
	}

	return positions, nil
}

// WriteOFF writes c's top-dimension simplices as OFF faces over its
// dimension-1 vertices, using positions for coordinates (a missing key
// writes as the origin). Vertex order in the output is by ascending
// casc key, which also fixes the 0-based indices used in the face list.
func WriteOFF(w io.Writer, c *core.Complex, positions map[core.Key]Vertex) error {
	var keys []core.Key
	c.Iter(1, func(h core.SimplexId) bool {
		keys = append(keys, c.Name(h)[0])
		return true
	})
	sort.Slice(keys, func(a, b int) bool { return keys[a] < keys[b] })
	index := make(map[core.Key]int, len(keys))
	for i, k := range keys {
		index[k] = i
	}

	var faces [][]core.Key
	c.Iter(c.Dim(), func(h core.SimplexId) bool {
		faces = append(faces, c.Name(h))
		return true
	})

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, "OFF"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(bw, "%d %d 0\n", len(keys), len(faces)); err != nil {
		return err
	}
	for _, k := range keys {
		p := positions[k]
		if _, err := fmt.Fprintf(bw, "%g %g %g\n", p.X, p.Y, p.Z); err != nil {
			return err
		}
	}
	for _, f := range faces {
		if _, err := fmt.Fprintf(bw, "%d", len(f)); err != nil {
			return err
		}
		for _, k := range f {
			if _, err := fmt.Fprintf(bw, " %d", index[k]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(bw); err != nil {
			return err
		}
	}
	return bw.Flush()
}

type tokenizer struct {
	sc    *bufio.Scanner
	queue []string
}

func newTokenizer(r io.Reader) *tokenizer {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	return &tokenizer{sc: sc}
}

func (t *tokenizer) next() (string, bool) {
	for len(t.queue) == 0 {
		if !t.sc.Scan() {
			return "", false
		}
		line := strings.TrimSpace(t.sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		t.queue = strings.Fields(line)
	}
	tok := t.queue[0]
	t.queue = t.queue[1:]
	return tok, true
}

func (t *tokenizer) nextInt() (int, error) {
	tok, ok := t.next()
	if !ok {
		return 0, io.ErrUnexpectedEOF
	}
	return strconv.Atoi(tok)
}

func (t *tokenizer) nextFloat() (float64, error) {
	tok, ok := t.next()
	if !ok {
		return 0, io.ErrUnexpectedEOF
	}
	return strconv.ParseFloat(tok, 64)
}
