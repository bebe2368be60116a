package scene

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"

	svg "github.com/ajstarks/svgo"
)

// WriteSVG writes the scene as a standalone SVG document scaled to fill
// its container. Paint order is links, nodes, annotations, link labels.
func (s *Scene) WriteSVG(w io.Writer) error {
	bw := bufio.NewWriter(w)
	canvas := svg.New(bw)

	canvas.StartviewUnit(100, 100, "%", 0, 0, int(s.Viewport.Width), int(s.Viewport.Height))

	canvas.Gid("links")
	for _, l := range s.links {
		canvas.Line(px(l.Line.X1), px(l.Line.Y1), px(l.Line.X2), px(l.Line.Y2),
			fmt.Sprintf("stroke:%s;stroke-opacity:%s;stroke-width:%s",
				l.Line.Stroke, num(l.Line.StrokeOpacity), num(l.Line.StrokeWidth)))
	}
	canvas.Gend()

	canvas.Gid("nodes")
	for _, n := range s.nodes {
		canvas.Gtransform(fmt.Sprintf("translate(%s,%s)", num(n.TX), num(n.TY)))
		switch {
		case n.Rect != nil:
			r := n.Rect
			canvas.Roundrect(px(r.X), px(r.Y), px(r.Width), px(r.Height), px(r.RX), px(r.RY),
				shapeStyle(r.Fill, r.Stroke, r.StrokeWidth))
		case n.Circle != nil:
			c := n.Circle
			canvas.Circle(0, 0, px(c.R), shapeStyle(c.Fill, c.Stroke, c.StrokeWidth))
		}
		writeText(canvas, n.Label)
		canvas.Gend()
	}
	canvas.Gend()

	if len(s.annotations) > 0 {
		canvas.Gid("annotations")
		for _, a := range s.annotations {
			writeText(canvas, a.Text)
		}
		canvas.Gend()
	}

	canvas.Gid("link-labels")
	for _, l := range s.links {
		writeText(canvas, l.Label)
	}
	canvas.Gend()

	canvas.End()
	return bw.Flush()
}

func writeText(canvas *svg.SVG, t Text) {
	attrs := []string{textStyle(t)}
	if t.DY != 0 {
		attrs = append(attrs, fmt.Sprintf(`dy="%s"`, num(t.DY)))
	}
	canvas.Text(px(t.X), px(t.Y), t.Content, attrs...)
}

func shapeStyle(fill, stroke string, width float64) string {
	return fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%s", fill, stroke, num(width))
}

func textStyle(t Text) string {
	style := fmt.Sprintf("font-size:%dpx;fill:%s", t.FontSize, t.Fill)
	if t.Anchor != "" && t.Anchor != AnchorStart {
		style += ";text-anchor:" + t.Anchor
	}
	return style
}

// px rounds a coordinate to the integer grid used by the svg writer
func px(v float64) int {
	return int(math.Round(v))
}

func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
