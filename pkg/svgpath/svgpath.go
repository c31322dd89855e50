package svgpath

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/slog"
)

// The tokenizer only needs the lexical part of the path grammar; how many
// numbers each command consumes is settled later, per command.
//
// svg-path:
//     wsp* (command-letter | number | comma-wsp)* wsp*
// command-letter:
//     "M" | "m" | "L" | "l" | "H" | "h" | "V" | "v" | "C" | "c"
//     | "S" | "s" | "Q" | "q" | "T" | "t" | "A" | "a" | "Z" | "z"
// flag:
//     "0" | "1"
// number:
//     sign? integer-constant
//     | sign? floating-point-constant
// floating-point-constant:
//     fractional-constant exponent?
//     | digit-sequence exponent
// fractional-constant:
//     digit-sequence? "." digit-sequence
//     | digit-sequence "."
// exponent:
//     ( "e" | "E" ) sign? digit-sequence
// comma-wsp:
//     (wsp+ comma? wsp*) | (comma wsp*)
// wsp:
//     (#x20 | #x9 | #xD | #xA)

type state struct {
	data   string
	index  int
	logger *slog.Logger
}

func (s *state) warn(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Warn(msg, append(args, "offset", s.index)...)
	}
}

func isCommandLetter(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c',
		'S', 's', 'Q', 'q', 'T', 't', 'A', 'a', 'Z', 'z':
		return true
	}
	return false
}

func isNumberStart(c byte) bool {
	return ('0' <= c && c <= '9') || c == '+' || c == '-' || c == '.'
}

// scanCommands splits path data into commands. It never fails: bad
// numbers become 0, and anything it cannot place is skipped.
func (s *state) scanCommands() []Command {
	var commands []Command
	for {
		s.separators()
		if s.index >= len(s.data) {
			return commands
		}

		c := s.peek()
		switch {
		case isCommandLetter(c):
			s.next()
			commands = append(commands, Command{Letter: c})
		case isNumberStart(c):
			var n float64
			var cmd *Command
			if len(commands) > 0 {
				cmd = &commands[len(commands)-1]
			}
			if cmd != nil && cmd.Kind() == 'A' && isFlagSlot(len(cmd.Args)) && (c == '0' || c == '1') {
				// Arc flags are single characters and may run together.
				s.next()
				n = float64(c - '0')
			} else {
				start := s.index
				var err error
				n, err = s.parseNumber()
				if err != nil {
					s.warn("bad number in path data, using 0", "token", s.data[start:s.index], "err", err)
					n = 0
				}
			}
			if cmd == nil {
				s.warn("number before first command dropped", "value", n)
				continue
			}
			cmd.Args = append(cmd.Args, n)
		default:
			s.warn("skipping unexpected character in path data", "char", string(c))
			s.next()
		}
	}
}

// isFlagSlot reports whether the next arc argument is one of the two flags.
func isFlagSlot(argCount int) bool {
	i := argCount % 7
	return i == 3 || i == 4
}

// parseNumber parses a number
func (s *state) parseNumber() (float64, error) {
	// number:
	//     sign? integer-constant
	//     | sign? floating-point-constant
	// sign:
	//     "+" | "-"
	c := s.peek()
	if c == '+' || c == '-' {
		s.next()
		n, err := s.parseNonNegativeNumber()
		if c == '-' {
			n = -n
		}
		return n, err
	}
	return s.parseNonNegativeNumber()
}

func (s *state) parseNonNegativeNumber() (float64, error) {
	number := s.digitSequence()
	if number == "" {
		// Possible fractional constant starting with a decimal point
		if s.peek() != '.' {
			return 0, fmt.Errorf("expected a number, got %q", string(s.peek()))
		}
		s.next()
		number = "." + s.digitSequence()
		if number == "." {
			return 0, fmt.Errorf("expected a number, got only a \".\"")
		}
	} else if s.peek() == '.' {
		s.next()
		number += "." + s.digitSequence()
	}

	// Check for possible exponent
	c := s.peek()
	if c == 'E' || c == 'e' {
		s.next()
		sign := ""
		c = s.peek()
		if c == '+' || c == '-' {
			s.next()
			sign = string(c)
		}
		exponent := s.digitSequence()
		if exponent == "" {
			return 0, fmt.Errorf("expected an exponent in %q", number+"e"+sign)
		}
		number += "E" + sign + exponent
	}

	n, err := strconv.ParseFloat(number, 64)
	if err != nil {
		// Out of range values come back as ±Inf, which would poison every
		// coordinate they touch.
		return 0, err
	}
	return n, nil
}

func (s *state) digitSequence() string {
	start := s.index
	for {
		c := s.peek()
		if '0' <= c && c <= '9' {
			s.next()
		} else {
			break
		}
	}
	return s.data[start:s.index]
}

// whitespace consumes "wsp*", and returns the number of bytes consumed
func (s *state) whitespace() int {
	count := 0
	for {
		switch s.peek() {
		case ' ', '\t', '\n', '\r':
			s.next()
			count++
		default:
			return count
		}
	}
}

// commaWhitespace consumes an optional "(wsp+ comma? wsp*) | (comma wsp*)",
// and returns true if something was consumed
func (s *state) commaWhitespace() bool {
	if s.peek() == ',' {
		s.next()
		s.whitespace()
		return true
	}

	consumed := s.whitespace()
	if consumed > 0 {
		if s.peek() == ',' {
			s.next()
		}
		s.whitespace()
		return true
	}

	return false
}

// separators consumes any run of whitespace and commas.
func (s *state) separators() {
	for s.commaWhitespace() {
	}
}

// peek returns the next byte without consuming it, or 0 if at the end of stream
func (s *state) peek() byte {
	if s.index < len(s.data) {
		return s.data[s.index]
	}
	return 0
}

// next consumes and returns the next byte, or 0 if at the end of stream
func (s *state) next() byte {
	if s.index < len(s.data) {
		i := s.index
		s.index++
		return s.data[i]
	}
	return 0
}

// ParseCommands splits path data into commands, exactly as written:
// relative commands stay relative and argument lists are not checked
// against the command's arity.
func ParseCommands(pathData string) []Command {
	s := &state{data: pathData}
	return s.scanCommands()
}

// Function is one "name(args)" group of a transform expression.
type Function struct {
	Name string
	Args []float64
}

func isIdentStart(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func (s *state) parseFunctions() ([]*Function, error) {
	var functions []*Function
	// wsp* (identifier wsp* "(" wsp* (number (comma-wsp number)*)? wsp* ")" comma-wsp?)*
	s.whitespace()
	for s.peek() != 0 {
		function := &Function{}
		functions = append(functions, function)

		// identifier
		c := s.next()
		if !isIdentStart(c) {
			return functions, fmt.Errorf("identifier must start with a letter, got %q", string(c))
		}
		function.Name += string(c)
		for {
			c := s.peek()
			if isIdentStart(c) || ('0' <= c && c <= '9') || (c == '_') || (c == '-') {
				function.Name += string(s.next())
			} else {
				break
			}
		}

		// Open parenthesis
		s.whitespace()
		c = s.next()
		if c != '(' {
			return functions, fmt.Errorf("expected \"(\" after %q, got %q", function.Name, string(c))
		}

		// First argument (optional)
		s.whitespace()
		oldIndex := s.index
		n, err := s.parseNumber()
		if err != nil {
			s.index = oldIndex
		} else {
			function.Args = append(function.Args, n)
			// Remaining arguments
			for {
				oldIndex = s.index
				s.commaWhitespace()
				n, err = s.parseNumber()
				if err != nil {
					s.index = oldIndex
					break
				}
				function.Args = append(function.Args, n)
			}
		}

		// Close parenthesis
		s.whitespace()
		c = s.next()
		if c != ')' {
			return functions, fmt.Errorf("expected \")\" to close %q, got %q", function.Name, string(c))
		}
		s.commaWhitespace()
	}
	return functions, nil
}

// ParseFunctions splits a transform expression into its function groups.
// Names are not checked.
func ParseFunctions(functions string) ([]*Function, error) {
	s := &state{data: functions}
	return s.parseFunctions()
}
