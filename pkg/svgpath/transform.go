package svgpath

import (
	"golang.org/x/exp/slog"
)

// Matrix returns the transform for one function of a transform expression.
// Unknown names and unusable argument lists give the identity.
func (f *Function) Matrix() Matrix {
	arg := func(i int) float64 {
		if i < len(f.Args) {
			return f.Args[i]
		}
		return 0
	}

	switch f.Name {
	case "matrix":
		if len(f.Args) != 6 {
			return Identity()
		}
		return Matrix{
			A: f.Args[0], C: f.Args[2], E: f.Args[4],
			B: f.Args[1], D: f.Args[3], F: f.Args[5],
		}
	case "translate":
		if len(f.Args) == 0 {
			return Identity()
		}
		return Translate(arg(0), arg(1))
	case "scale":
		if len(f.Args) == 0 {
			return Identity()
		}
		sx := f.Args[0]
		sy := sx
		if len(f.Args) > 1 {
			sy = f.Args[1]
		}
		return Scale(sx, sy)
	case "rotate":
		//  ⎡ cos(θ)  −sin(θ)  −x⋅cos(θ)+y⋅sin(θ)+x ⎤
		//  ⎢ sin(θ)   cos(θ)  −x⋅sin(θ)−y⋅cos(θ)+y |
		//  ⎣   0        0               1          ⎦
		if len(f.Args) == 0 {
			return Identity()
		}
		if len(f.Args) == 1 {
			return Rotate(f.Args[0])
		}
		return RotateAbout(f.Args[0], arg(1), arg(2))
	case "skewX":
		if len(f.Args) == 0 {
			return Identity()
		}
		return SkewX(f.Args[0])
	case "skewY":
		if len(f.Args) == 0 {
			return Identity()
		}
		return SkewY(f.Args[0])
	}
	return Identity()
}

func parseTransform(transform string, logger *slog.Logger) Matrix {
	m := Identity()
	if transform == "" {
		return m
	}

	functions, err := ParseFunctions(transform)
	if err != nil {
		if logger != nil {
			logger.Warn("malformed transform, using identity", "transform", transform, "err", err)
		}
		return m
	}

	for _, function := range functions {
		if logger != nil {
			switch function.Name {
			case "matrix", "translate", "scale", "rotate", "skewX", "skewY":
			default:
				logger.Warn("ignoring unknown transform function", "name", function.Name)
			}
		}
		m = m.Multiply(function.Matrix())
	}

	return m
}

// ParseTransform folds a transform expression such as
// "translate(10,5) rotate(30)" into a single matrix. It never fails: empty
// or malformed expressions give the identity.
func ParseTransform(transform string) Matrix {
	return parseTransform(transform, nil)
}
