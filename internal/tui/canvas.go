package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type cell struct {
	ch    rune
	color string
}

// Canvas is a grid of coloured runes the scene is rasterised into
type Canvas struct {
	cols, rows int
	cells      []cell
	styles     map[string]lipgloss.Style
}

// NewCanvas creates a blank canvas
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{styles: make(map[string]lipgloss.Style)}
	c.Resize(cols, rows)
	return c
}

// Resize changes the canvas size and clears it
func (c *Canvas) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	c.cols, c.rows = cols, rows
	c.cells = make([]cell, cols*rows)
	c.Clear()
}

// Size returns the canvas size in cells
func (c *Canvas) Size() (int, int) {
	return c.cols, c.rows
}

// Clear blanks every cell
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = cell{ch: ' '}
	}
}

// Set writes one cell; out of bounds writes are dropped
func (c *Canvas) Set(col, row int, ch rune, color string) {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return
	}
	c.cells[row*c.cols+col] = cell{ch: ch, color: color}
}

// At returns the rune at a cell, or 0 out of bounds
func (c *Canvas) At(col, row int) rune {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return 0
	}
	return c.cells[row*c.cols+col].ch
}

// Line draws a Bresenham line
func (c *Canvas) Line(x0, y0, x1, y1 int, ch rune, color string) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy

	for {
		c.Set(x0, y0, ch, color)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// Box draws a rounded rectangle border and blanks its inside
func (c *Canvas) Box(col0, row0, col1, row1 int, color string) {
	if col1 < col0 {
		col0, col1 = col1, col0
	}
	if row1 < row0 {
		row0, row1 = row1, row0
	}
	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			ch := ' '
			switch {
			case row == row0 && col == col0:
				ch = '╭'
			case row == row0 && col == col1:
				ch = '╮'
			case row == row1 && col == col0:
				ch = '╰'
			case row == row1 && col == col1:
				ch = '╯'
			case row == row0 || row == row1:
				ch = '─'
			case col == col0 || col == col1:
				ch = '│'
			}
			c.Set(col, row, ch, color)
		}
	}
}

// Ring draws an ellipse outline with radii in cells
func (c *Canvas) Ring(col, row int, rx, ry float64, ch rune, color string) {
	if rx < 0.5 && ry < 0.5 {
		c.Set(col, row, ch, color)
		return
	}
	steps := int(math.Ceil(2 * math.Pi * math.Max(rx, ry) * 2))
	if steps < 8 {
		steps = 8
	}
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		c.Set(col+round(rx*math.Cos(a)), row+round(ry*math.Sin(a)), ch, color)
	}
}

// Text writes a string starting at a cell, or centred on it when centre
// is set
func (c *Canvas) Text(col, row int, s string, color string, centre bool) {
	runes := []rune(s)
	if centre {
		col -= len(runes) / 2
	}
	for i, r := range runes {
		c.Set(col+i, row, r, color)
	}
}

// Render returns the canvas as lines of lipgloss-coloured text
func (c *Canvas) Render() string {
	var b strings.Builder
	for row := 0; row < c.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		line := c.cells[row*c.cols : (row+1)*c.cols]
		for start := 0; start < len(line); {
			end := start + 1
			for end < len(line) && line[end].color == line[start].color {
				end++
			}
			b.WriteString(c.paint(line[start:end]))
			start = end
		}
	}
	return b.String()
}

// String returns the canvas runes without colour
func (c *Canvas) String() string {
	var b strings.Builder
	for row := 0; row < c.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for _, cl := range c.cells[row*c.cols : (row+1)*c.cols] {
			b.WriteRune(cl.ch)
		}
	}
	return b.String()
}

func (c *Canvas) paint(run []cell) string {
	var b strings.Builder
	for _, cl := range run {
		b.WriteRune(cl.ch)
	}
	color := run[0].color
	if color == "" {
		return b.String()
	}
	style, ok := c.styles[color]
	if !ok {
		style = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
		c.styles[color] = style
	}
	return style.Render(b.String())
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func round(v float64) int {
	return int(math.Round(v))
}
