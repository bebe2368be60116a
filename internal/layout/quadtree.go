package layout

import "math"

// maxQuadDepth bounds subdivision for nearly coincident points
const maxQuadDepth = 48

// quad is a square cell of the quadtree. Leaves hold point indices;
// internal cells hold up to four children.
type quad struct {
	x0, y0, x1, y1 float64
	internal       bool
	children       [4]*quad
	points         []int

	// Aggregates filled by accumulate/accumulateRadius
	value  float64
	cx, cy float64
	r      float64
}

type quadtree struct {
	root   *quad
	xs, ys []float64
}

// newQuadtree indexes the points (xs[i], ys[i]) in a square extent
func newQuadtree(xs, ys []float64) *quadtree {
	t := &quadtree{xs: xs, ys: ys}
	if len(xs) == 0 {
		return t
	}

	x0, y0 := math.Inf(1), math.Inf(1)
	x1, y1 := math.Inf(-1), math.Inf(-1)
	for i := range xs {
		x0 = math.Min(x0, xs[i])
		y0 = math.Min(y0, ys[i])
		x1 = math.Max(x1, xs[i])
		y1 = math.Max(y1, ys[i])
	}

	size := math.Max(x1-x0, y1-y0)
	if size == 0 {
		size = 1
	}
	// Points on the far edge still need a cell strictly inside the extent
	size *= 1 + 1e-9

	t.root = &quad{x0: x0, y0: y0, x1: x0 + size, y1: y0 + size}
	for i := range xs {
		t.insert(t.root, i, 0)
	}
	return t
}

func (t *quadtree) insert(q *quad, i, depth int) {
	if q.internal {
		t.insertChild(q, i, depth)
		return
	}

	if len(q.points) == 0 {
		q.points = append(q.points, i)
		return
	}

	j := q.points[0]
	if (t.xs[j] == t.xs[i] && t.ys[j] == t.ys[i]) || depth >= maxQuadDepth {
		q.points = append(q.points, i)
		return
	}

	existing := q.points
	q.points = nil
	q.internal = true
	for _, k := range existing {
		t.insertChild(q, k, depth)
	}
	t.insertChild(q, i, depth)
}

func (t *quadtree) insertChild(q *quad, i, depth int) {
	mx := (q.x0 + q.x1) / 2
	my := (q.y0 + q.y1) / 2

	idx := 0
	cx0, cx1 := q.x0, mx
	cy0, cy1 := q.y0, my
	if t.xs[i] >= mx {
		idx |= 1
		cx0, cx1 = mx, q.x1
	}
	if t.ys[i] >= my {
		idx |= 2
		cy0, cy1 = my, q.y1
	}

	child := q.children[idx]
	if child == nil {
		child = &quad{x0: cx0, y0: cy0, x1: cx1, y1: cy1}
		q.children[idx] = child
	}
	t.insert(child, i, depth+1)
}

// visit walks the tree in pre-order; fn returns true to skip a cell's children
func (t *quadtree) visit(fn func(q *quad) bool) {
	if t.root == nil {
		return
	}
	var walk func(q *quad)
	walk = func(q *quad) {
		if fn(q) {
			return
		}
		for _, c := range q.children {
			if c != nil {
				walk(c)
			}
		}
	}
	walk(t.root)
}

// accumulate sums per-point strength into each cell and computes the
// strength-weighted center of every cell
func (t *quadtree) accumulate(strength func(i int) float64) {
	if t.root == nil {
		return
	}
	var acc func(q *quad)
	acc = func(q *quad) {
		var value, weight, cx, cy float64
		if !q.internal {
			for _, i := range q.points {
				s := strength(i)
				w := math.Abs(s)
				value += s
				weight += w
				cx += w * t.xs[i]
				cy += w * t.ys[i]
			}
			if weight == 0 && len(q.points) > 0 {
				cx, cy, weight = t.xs[q.points[0]], t.ys[q.points[0]], 1
			}
		} else {
			for _, c := range q.children {
				if c == nil {
					continue
				}
				acc(c)
				w := math.Abs(c.value)
				value += c.value
				weight += w
				cx += w * c.cx
				cy += w * c.cy
			}
		}
		q.value = value
		if weight > 0 {
			q.cx = cx / weight
			q.cy = cy / weight
		}
	}
	acc(t.root)
}

// accumulateRadius stores the largest point radius found below each cell
func (t *quadtree) accumulateRadius(radius func(i int) float64) {
	if t.root == nil {
		return
	}
	var acc func(q *quad)
	acc = func(q *quad) {
		q.r = 0
		if !q.internal {
			for _, i := range q.points {
				q.r = math.Max(q.r, radius(i))
			}
			return
		}
		for _, c := range q.children {
			if c != nil {
				acc(c)
				q.r = math.Max(q.r, c.r)
			}
		}
	}
	acc(t.root)
}
