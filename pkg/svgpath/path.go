package svgpath

import (
	"strings"

	"golang.org/x/exp/slog"
)

// Command is one path command letter and the numbers that follow it,
// including implicit repetitions.
type Command struct {
	Letter byte
	Args   []float64
}

// Kind returns the upper case form of the command letter.
func (c Command) Kind() byte {
	if 'a' <= c.Letter && c.Letter <= 'z' {
		return c.Letter - 'a' + 'A'
	}
	return c.Letter
}

// Relative reports whether the command letter is lower case.
func (c Command) Relative() bool {
	return 'a' <= c.Letter && c.Letter <= 'z'
}

// Arity returns how many numbers one repetition of the command takes, or
// -1 for letters outside the path grammar.
func (c Command) Arity() int {
	switch c.Kind() {
	case 'M', 'L', 'T':
		return 2
	case 'H', 'V':
		return 1
	case 'C':
		return 6
	case 'S', 'Q':
		return 4
	case 'A':
		return 7
	case 'Z':
		return 0
	}
	return -1
}

// TransformCommands resolves relative commands against the running cursor,
// maps every coordinate through m and returns the absolute commands. H and
// V become L. Arc radii, rotation and flags are copied unchanged; only the
// arc endpoint moves. Incomplete trailing argument groups are dropped.
func TransformCommands(commands []Command, m Matrix) []Command {
	var out []Command
	// The cursor stays in untransformed coordinates so that relative
	// offsets keep their original meaning.
	var x, y float64

	for _, cmd := range commands {
		arity := cmd.Arity()
		switch {
		case arity < 0:
			out = append(out, Command{Letter: cmd.Letter, Args: append([]float64(nil), cmd.Args...)})
			continue
		case arity == 0:
			out = append(out, Command{Letter: cmd.Letter})
			continue
		}

		groups := len(cmd.Args) / arity
		if groups == 0 {
			continue
		}

		kind := cmd.Kind()
		emitted := Command{Letter: kind}
		if kind == 'H' || kind == 'V' {
			emitted.Letter = 'L'
		}
		emit := func(px, py float64) {
			tx, ty := m.TransformPoint(px, py)
			emitted.Args = append(emitted.Args, tx, ty)
		}

		for g := 0; g < groups; g++ {
			args := cmd.Args[g*arity : (g+1)*arity]
			ox, oy := 0.0, 0.0
			if cmd.Relative() {
				ox, oy = x, y
			}

			switch kind {
			case 'M', 'L', 'T':
				x, y = args[0]+ox, args[1]+oy
				emit(x, y)
			case 'H':
				x = args[0] + ox
				emit(x, y)
			case 'V':
				y = args[0] + oy
				emit(x, y)
			case 'C':
				emit(args[0]+ox, args[1]+oy)
				emit(args[2]+ox, args[3]+oy)
				x, y = args[4]+ox, args[5]+oy
				emit(x, y)
			case 'S', 'Q':
				emit(args[0]+ox, args[1]+oy)
				x, y = args[2]+ox, args[3]+oy
				emit(x, y)
			case 'A':
				emitted.Args = append(emitted.Args, args[:5]...)
				x, y = args[5]+ox, args[6]+oy
				emit(x, y)
			}
		}
		out = append(out, emitted)
	}
	return out
}

// FormatCommands renders commands as path data: "x,y" pairs separated by
// spaces, one space between commands.
func FormatCommands(commands []Command) string {
	var buf strings.Builder
	for i, cmd := range commands {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteByte(cmd.Letter)

		switch cmd.Kind() {
		case 'Z':
		case 'M', 'L', 'T', 'C', 'S', 'Q':
			for j := 0; j+1 < len(cmd.Args); j += 2 {
				if j > 0 {
					buf.WriteByte(' ')
				}
				buf.WriteString(FormatNumber(cmd.Args[j]) + "," + FormatNumber(cmd.Args[j+1]))
			}
		case 'A':
			for j := 0; j+7 <= len(cmd.Args); j += 7 {
				a := cmd.Args[j : j+7]
				if j > 0 {
					buf.WriteByte(' ')
				}
				buf.WriteString(FormatNumber(a[0]) + "," + FormatNumber(a[1]) + " " +
					FormatNumber(a[2]) + " " +
					FormatNumber(a[3]) + " " + FormatNumber(a[4]) + " " +
					FormatNumber(a[5]) + "," + FormatNumber(a[6]))
			}
		default:
			for j, n := range cmd.Args {
				if j > 0 {
					buf.WriteByte(' ')
				}
				buf.WriteString(FormatNumber(n))
			}
		}
	}
	return buf.String()
}

// formatCommands is FormatCommands, warning about coordinates that
// overflowed during the transform and are written as 0.
func formatCommands(commands []Command, logger *slog.Logger) string {
	if logger != nil {
		for _, cmd := range commands {
			for _, n := range cmd.Args {
				if !isFinite(n) {
					logger.Warn("coordinate out of range, using 0", "command", string(cmd.Letter), "value", n)
				}
			}
		}
	}
	return FormatCommands(commands)
}

func transformPathData(pathData string, m Matrix, s *state) string {
	if m.IsIdentity() {
		return pathData
	}
	return formatCommands(TransformCommands(s.scanCommands(), m), s.logger)
}

// TransformPathData maps path data through m and re-encodes it with
// absolute commands. The identity matrix returns pathData unchanged.
func TransformPathData(pathData string, m Matrix) string {
	return transformPathData(pathData, m, &state{data: pathData})
}
