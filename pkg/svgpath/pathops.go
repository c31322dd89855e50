package svgpath

import "strings"

// StartPoint returns the first point of the first move or line command.
// It expects absolute commands, as returned by TransformCommands.
func StartPoint(commands []Command) (float64, float64, bool) {
	for _, cmd := range commands {
		switch cmd.Letter {
		case 'M', 'L':
			if len(cmd.Args) >= 2 {
				return cmd.Args[0], cmd.Args[1], true
			}
		}
	}
	return 0, 0, false
}

// PointsToPath reframes polygon or polyline points as path data. A
// trailing odd coordinate is dropped.
func PointsToPath(points string, closed bool) string {
	return pointsToPath(&state{data: points}, closed)
}

func pointsToPath(s *state, closed bool) string {
	var coords []float64
	for {
		s.separators()
		if s.index >= len(s.data) {
			break
		}
		if !isNumberStart(s.peek()) {
			s.warn("skipping unexpected character in points", "char", string(s.peek()))
			s.next()
			continue
		}
		start := s.index
		n, err := s.parseNumber()
		if err != nil {
			s.warn("bad number in points, using 0", "token", s.data[start:s.index], "err", err)
			n = 0
		}
		coords = append(coords, n)
	}

	var buf strings.Builder
	for i := 0; i+1 < len(coords); i += 2 {
		switch i {
		case 0:
			buf.WriteString("M")
		case 2:
			buf.WriteString(" L")
		default:
			buf.WriteString(" ")
		}
		buf.WriteString(FormatNumber(coords[i]) + "," + FormatNumber(coords[i+1]))
	}
	if closed && buf.Len() > 0 {
		buf.WriteString(" Z")
	}
	return buf.String()
}

// PointsToPath is PointsToPath with diagnostics sent to the converter's
// logger.
func (c *Converter) PointsToPath(points string, closed bool) string {
	return pointsToPath(&state{data: points, logger: c.logger}, closed)
}
