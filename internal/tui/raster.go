package tui

import "rdfview/internal/scene"

// Projection maps the logical viewport onto canvas cells
type Projection struct {
	Viewport   scene.Viewport
	Cols, Rows int
}

// ToCell returns the cell holding a viewport point
func (p Projection) ToCell(x, y float64) (int, int) {
	if p.Cols <= 0 || p.Rows <= 0 {
		return 0, 0
	}
	return round(x * float64(p.Cols) / p.Viewport.Width), round(y * float64(p.Rows) / p.Viewport.Height)
}

// ToViewport returns the viewport point at the centre of a cell
func (p Projection) ToViewport(col, row int) (float64, float64) {
	if p.Cols <= 0 || p.Rows <= 0 {
		return 0, 0
	}
	return float64(col) * p.Viewport.Width / float64(p.Cols), float64(row) * p.Viewport.Height / float64(p.Rows)
}

// scaleX and scaleY convert viewport lengths to cell counts
func (p Projection) scaleX(v float64) float64 {
	return v * float64(p.Cols) / p.Viewport.Width
}

func (p Projection) scaleY(v float64) float64 {
	return v * float64(p.Rows) / p.Viewport.Height
}

// Rasterize draws the scene in paint order: link lines, node glyphs,
// annotations, then link labels on top
func Rasterize(s *scene.Scene, c *Canvas) Projection {
	c.Clear()
	cols, rows := c.Size()
	p := Projection{Viewport: s.Viewport, Cols: cols, Rows: rows}
	if cols == 0 || rows == 0 {
		return p
	}

	for _, l := range s.Links() {
		x0, y0 := p.ToCell(l.Line.X1, l.Line.Y1)
		x1, y1 := p.ToCell(l.Line.X2, l.Line.Y2)
		c.Line(x0, y0, x1, y1, '·', l.Line.Stroke)
	}

	for _, n := range s.Nodes() {
		col, row := p.ToCell(n.TX, n.TY)
		switch {
		case n.Rect != nil:
			c0, r0 := p.ToCell(n.TX+n.Rect.X, n.TY+n.Rect.Y)
			c1, r1 := p.ToCell(n.TX+n.Rect.X+n.Rect.Width, n.TY+n.Rect.Y+n.Rect.Height)
			if r1-r0 < 2 {
				r0, r1 = row-1, row+1
			}
			c.Box(c0, r0, c1, r1, n.Rect.Fill)
			c.Text(col, row, n.Label.Content, n.Rect.Fill, true)
		case n.Circle != nil:
			c.Ring(col, row, p.scaleX(n.Circle.R), p.scaleY(n.Circle.R), 'o', n.Circle.Fill)
			_, lr := p.ToCell(n.TX, n.TY+n.Label.DY)
			c.Text(col, lr, n.Label.Content, n.Label.Fill, true)
		}
	}

	for _, a := range s.Annotations() {
		col, row := p.ToCell(a.Text.X, a.Text.Y)
		c.Text(col, row, a.Text.Content, a.Text.Fill, a.Text.Anchor == scene.AnchorMiddle)
	}

	for _, l := range s.Links() {
		col, row := p.ToCell(l.Label.X, l.Label.Y)
		c.Text(col, row, l.Label.Content, l.Label.Fill, l.Label.Anchor == scene.AnchorMiddle)
	}

	return p
}
