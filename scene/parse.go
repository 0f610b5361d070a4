package scene

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gogpu/sketch"
	gl "github.com/rustyoz/genericlexer"
)

// Parse parses a shape description into a scene. name identifies the
// description in error messages. Lines may end in LF, CRLF or CR.
func Parse(name, src string, opts ...Option) (*Scene, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	src = newlines.Replace(src)
	if err := checkInput(name, src); err != nil {
		return nil, err
	}

	// The lexer goroutine blocks on its channel until every item, including
	// a trailing second end-of-input, has been received.
	l, items := gl.Lex(name, src)
	defer func() {
		for range items {
		}
	}()

	p := &parser{
		name:  name,
		lex:   l,
		opts:  o,
		scene: &Scene{},
	}
	if err := p.run(); err != nil {
		return nil, err
	}
	return p.scene, nil
}

type parser struct {
	name  string
	lex   *gl.Lexer
	opts  options
	scene *Scene

	// index of the command being parsed
	index int
}

func (p *parser) run() error {
	for {
		p.lex.ConsumeWhiteSpace()
		i := p.lex.NextItem()
		switch i.Type {
		case gl.ItemEOS:
			return nil
		case gl.ItemError:
			return p.syntaxError("%s", i.Value)
		case gl.ItemLetter:
			if err := p.parseCommand(i.Value); err != nil {
				return err
			}
			p.index++
		default:
			return p.syntaxError("expected command, found %q", i.Value)
		}
	}
}

func (p *parser) parseCommand(cmd string) error {
	var (
		shape sketch.Shape
		err   error
	)

	switch strings.ToUpper(cmd) {
	case "S":
		var pts [2]sketch.Point
		if err := p.parsePoints(pts[:]); err != nil {
			return err
		}
		shape = sketch.NewSegment(pts[0], pts[1])
	case "P":
		pts, perr := p.parsePointList()
		if perr != nil {
			return perr
		}
		shape, err = sketch.NewPolygon(pts...)
	case "C":
		var pts [1]sketch.Point
		if err := p.parsePoints(pts[:]); err != nil {
			return err
		}
		r, perr := p.parseNumber()
		if perr != nil {
			return perr
		}
		shape = sketch.NewCircle(pts[0], r)
	case "A":
		var pts [3]sketch.Point
		if err := p.parsePoints(pts[:]); err != nil {
			return err
		}
		shape, err = sketch.NewArc(pts[0], pts[1], pts[2])
	case "R":
		var pts [2]sketch.Point
		if err := p.parsePoints(pts[:]); err != nil {
			return err
		}
		shape = sketch.NewRectangle(pts[0], pts[1])
	default:
		return p.syntaxError("unknown command %q", cmd)
	}

	if err != nil {
		if !p.opts.skipInvalid {
			return fmt.Errorf("scene: %s: command %d: %w", p.name, p.index, err)
		}
		p.log().Warn("scene: skipping invalid shape",
			slog.String("scene", p.name),
			slog.Int("command", p.index),
			slog.String("op", strings.ToUpper(cmd)),
			slog.Any("error", err))
		return nil
	}

	p.scene.Add(shape)
	return nil
}

// parsePoints fills pts with exactly len(pts) points.
func (p *parser) parsePoints(pts []sketch.Point) error {
	for i := range pts {
		pt, err := p.parsePoint()
		if err != nil {
			return err
		}
		pts[i] = pt
	}
	return nil
}

// parsePointList parses points up to the next command. It may return
// none, which NewPolygon rejects.
func (p *parser) parsePointList() ([]sketch.Point, error) {
	var pts []sketch.Point
	p.lex.ConsumeWhiteSpace()
	for p.lex.PeekItem().Type == gl.ItemNumber {
		pt, err := p.parsePoint()
		if err != nil {
			return nil, err
		}
		pts = append(pts, pt)
		p.lex.ConsumeWhiteSpace()
	}
	return pts, nil
}

// parsePoint parses an "x,y" pair. The comma is optional.
func (p *parser) parsePoint() (sketch.Point, error) {
	x, err := p.parseNumber()
	if err != nil {
		return sketch.Point{}, err
	}
	p.lex.ConsumeWhiteSpace()
	p.lex.ConsumeComma()
	y, err := p.parseNumber()
	if err != nil {
		return sketch.Point{}, err
	}
	return sketch.Pt(x, y), nil
}

func (p *parser) parseNumber() (float64, error) {
	p.lex.ConsumeWhiteSpace()
	i := p.lex.NextItem()
	if i.Type != gl.ItemNumber {
		if i.Type == gl.ItemEOS {
			return 0, p.syntaxError("unexpected end of input, expected number")
		}
		return 0, p.syntaxError("expected number, found %q", i.Value)
	}
	n, err := strconv.ParseFloat(i.Value, 64)
	if err != nil {
		return 0, p.syntaxError("malformed number %q", i.Value)
	}
	return n, nil
}

func (p *parser) syntaxError(format string, args ...any) error {
	return fmt.Errorf("%w: %s: command %d: %s", ErrSyntax, p.name, p.index, fmt.Sprintf(format, args...))
}

func (p *parser) log() *slog.Logger {
	if p.opts.logger != nil {
		return p.opts.logger
	}
	return sketch.Logger()
}
