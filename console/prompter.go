// Package console reads disk counts and peg choices from a terminal.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/gookit/color"
	"github.com/rs/zerolog/log"
	"github.com/timewinder-dev/hanoi/render"
	"github.com/timewinder-dev/hanoi/tower"
)

const pegOptions = "[ left | middle | right ]: "

// ErrNoInput is returned when the input ends before a valid answer was read.
var ErrNoInput = errors.New("input closed")

// Prompter asks questions on Out and reads whitespace separated answers
// from In. It implements solver.MoveSource.
type Prompter struct {
	Out io.Writer

	words    *bufio.Scanner
	renderer *render.Renderer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	words := bufio.NewScanner(in)
	words.Split(bufio.ScanWords)
	return &Prompter{
		Out:      out,
		words:    words,
		renderer: render.New(out),
	}
}

// SetColor toggles colored drawing of the board.
func (p *Prompter) SetColor(on bool) {
	p.renderer.Color = on
}

func (p *Prompter) next() (string, error) {
	if p.words.Scan() {
		return p.words.Text(), nil
	}
	if err := p.words.Err(); err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return "", ErrNoInput
}

// ReadDiskCount asks for a disk count until it gets a whole number of at
// least one.
func (p *Prompter) ReadDiskCount() (int, error) {
	fmt.Fprint(p.Out, "Enter new disk count (at least one): ")
	for {
		word, err := p.next()
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(word)
		if err == nil && n >= 1 {
			return n, nil
		}
		log.Debug().Str("input", word).Msg("Rejected disk count")
		fmt.Fprint(p.Out, "Invalid number, please try again: ")
	}
}

// ReadPeg asks for a peg, labelling the question with prefix ("from" or
// "to"), until the answer names one.
func (p *Prompter) ReadPeg(prefix string) (tower.PegID, error) {
	fmt.Fprintf(p.Out, "%s %s", prefix, pegOptions)
	for {
		word, err := p.next()
		if err != nil {
			return 0, err
		}
		id, err := tower.ParsePegID(word)
		if err == nil {
			return id, nil
		}
		log.Debug().Err(err).Msg("Rejected peg")
		fmt.Fprint(p.Out, color.Red.Sprint("invalid input! please try again\n"))
		fmt.Fprint(p.Out, pegOptions)
	}
}

// NextMove draws current and asks for the pegs to move between.
func (p *Prompter) NextMove(current *tower.State) (tower.Move, error) {
	fmt.Fprintln(p.Out)
	if err := p.renderer.State(current); err != nil {
		return tower.Move{}, err
	}
	from, err := p.ReadPeg("from")
	if err != nil {
		return tower.Move{}, err
	}
	fmt.Fprintln(p.Out)
	to, err := p.ReadPeg("to")
	if err != nil {
		return tower.Move{}, err
	}
	return tower.Move{From: from, To: to}, nil
}
