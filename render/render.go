// Package render draws tower states as text, one row per disk level with the
// top of the tallest peg first.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/timewinder-dev/hanoi/tower"
)

const (
	filled = "-"
	rod    = "|"
	base   = "_"
)

// Renderer writes states to Out. With Color set disks and labels are
// colorized for a terminal.
type Renderer struct {
	Out   io.Writer
	Color bool
}

func New(w io.Writer) *Renderer {
	return &Renderer{Out: w}
}

// State draws s aligned to the widest disk it holds.
func (r *Renderer) State(s *tower.State) error {
	_, err := io.WriteString(r.Out, r.format(s))
	return err
}

// History draws every state of h, each labelled with the move that led to it.
func (r *Renderer) History(h *tower.History) error {
	for i, s := range h.States {
		label := "Initial"
		if i > 0 {
			label = fmt.Sprintf("Move %d: %s", i, h.Moves[i-1])
		}
		if r.Color {
			label = color.Cyan.Sprint(label)
		}
		if _, err := fmt.Fprintln(r.Out, label); err != nil {
			return err
		}
		if err := r.State(s); err != nil {
			return err
		}
	}
	return nil
}

// String draws s without color.
func String(s *tower.State) string {
	return (&Renderer{}).format(s)
}

func (r *Renderer) format(s *tower.State) string {
	width := maxWidth(s)
	empty := emptyCell(width)

	var b strings.Builder
	for level := s.DiskCount(); level > 0; level-- {
		b.WriteString(" ")
		for _, id := range tower.AllPegs {
			p := s.Peg(id)
			if len(p) >= level {
				b.WriteString(r.disk(p[level-1], width))
			} else {
				b.WriteString(empty)
			}
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat(base, 4+3*width))
	b.WriteString("\n\n")
	return b.String()
}

func (r *Renderer) disk(d tower.Disk, width int) string {
	pad := strings.Repeat(" ", (width-int(d))/2)
	body := strings.Repeat(filled, int(d))
	if r.Color {
		body = color.Yellow.Sprint(body)
	}
	return pad + body + pad
}

// emptyCell is a bare rod centered in a cell of the given width.
func emptyCell(width int) string {
	var b strings.Builder
	for i := 0; i < width; i++ {
		if i == (width-1)/2 {
			b.WriteString(rod)
		} else {
			b.WriteString(" ")
		}
	}
	return b.String()
}

func maxWidth(s *tower.State) int {
	width := 1
	for _, p := range s.Pegs {
		for _, d := range p {
			width = max(width, int(d))
		}
	}
	return width
}
