package svgpath

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrParamMismatch is wrapped by a PathError when a command
// does not receive the number of parameters it requires.
var ErrParamMismatch = errors.New("SVG Parse: Param mismatch")

// PathError reports a malformed command of a path data string.
type PathError struct {
	Command byte // the command letter, as written
	Offset  int  // byte offset of the command letter in the path data
	Err     error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("svg path: command %q at offset %d: %s", e.Command, e.Offset, e.Err)
}

func (e *PathError) Unwrap() error { return e.Err }

// command letters of the SVG path grammar; only
// a subset is supported, the others are skipped.
const allCommands = "MmLlHhVvCcSsQqTtAaZz"

func isCommandLetter(c byte) bool { return strings.IndexByte(allCommands, c) != -1 }

// arity returns the number of parameters expected by `c`,
// or false if the command is not supported.
func arity(c byte) (int, bool) {
	switch c {
	case 'M', 'm', 'L', 'l':
		return 2, true
	case 'C', 'c':
		return 6, true
	case 'Z', 'z':
		return 0, true
	default:
		return 0, false
	}
}

// SplitOnCommaOrSpace returns a list of strings after splitting the input on comma and space delimiters
func SplitOnCommaOrSpace(s string) []string {
	return strings.FieldsFunc(s,
		func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f'
		})
}

// pathCursor accumulates the operations while scanning a path string
type pathCursor struct {
	path   Path
	points []float64
}

// getPoints reads the numeric parameters of a command
func (c *pathCursor) getPoints(dataPoints string) error {
	c.points = c.points[:0]
	for _, f := range SplitOnCommaOrSpace(dataPoints) {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return err
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Errorf("non finite number %q", f)
		}
		c.points = append(c.points, v)
	}
	return nil
}

// addSeg emits the operation for the command `cmd`,
// whose parameters are in `params`.
func (c *pathCursor) addSeg(cmd byte, offset int, params string) error {
	n, ok := arity(cmd)
	if !ok { // unsupported command: skipped
		return nil
	}
	if err := c.getPoints(params); err != nil {
		return &PathError{Command: cmd, Offset: offset, Err: errors.Wrapf(err, "invalid parameters %q", strings.TrimSpace(params))}
	}
	if len(c.points) != n {
		return &PathError{Command: cmd, Offset: offset,
			Err: errors.Wrapf(ErrParamMismatch, "expected %d parameters, got %d", n, len(c.points))}
	}
	abs := cmd >= 'A' && cmd <= 'Z'
	p := c.points
	switch cmd {
	case 'M', 'm':
		c.path = append(c.path, MoveTo{X: p[0], Y: p[1], Abs: abs})
	case 'L', 'l':
		c.path = append(c.path, LineTo{X: p[0], Y: p[1], Abs: abs})
	case 'C', 'c':
		c.path = append(c.path, CubicTo{X1: p[0], Y1: p[1], X2: p[2], Y2: p[3], X: p[4], Y: p[5], Abs: abs})
	case 'Z', 'z':
		c.path = append(c.path, Close{})
	}
	return nil
}

// Parse reads the path data `d`, such as "M10 10 L20 20 Z".
// Every command letter produces exactly one operation: implicit
// repetition of the parameters is not supported.
// Commands other than M, L, C and Z (in both cases) are skipped,
// whereas a supported command with missing or invalid parameters
// returns a *PathError.
// The case of a command is preserved in the Abs field of the operations;
// see Path.ToAbsolute.
func Parse(d string) (Path, error) {
	var (
		c      pathCursor
		cmd    byte // 0 before the first command
		offset int
		start  int
	)
	for i := 0; i < len(d); i++ {
		if !isCommandLetter(d[i]) {
			continue
		}
		if cmd != 0 {
			if err := c.addSeg(cmd, offset, d[start:i]); err != nil {
				return nil, err
			}
		}
		cmd, offset, start = d[i], i, i+1
	}
	if cmd != 0 {
		if err := c.addSeg(cmd, offset, d[start:]); err != nil {
			return nil, err
		}
	}
	return c.path, nil
}
