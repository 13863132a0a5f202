package edge

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidOperator is returned for operator names other than sobel/prewitt.
var ErrInvalidOperator = errors.New("invalid edge detection operator")

// Kernel is a 3x3 convolution matrix indexed [row][column].
type Kernel [3][3]int

// Operator selects a pair of directional derivative kernels.
type Operator int

const (
	// Sobel weights the center row/column twice as much as its neighbors.
	Sobel Operator = iota
	// Prewitt weights all three rows/columns equally.
	Prewitt
)

var (
	sobelX = Kernel{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	sobelY = Kernel{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
	prewittX = Kernel{
		{-1, 0, 1},
		{-1, 0, 1},
		{-1, 0, 1},
	}
	prewittY = Kernel{
		{-1, -1, -1},
		{0, 0, 0},
		{1, 1, 1},
	}
)

// Operators lists every supported operator.
var Operators = []Operator{Sobel, Prewitt}

// ParseOperator maps a case-insensitive name to an Operator. Surrounding
// whitespace is ignored; any other value is an error wrapping
// ErrInvalidOperator.
func ParseOperator(name string) (Operator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sobel":
		return Sobel, nil
	case "prewitt":
		return Prewitt, nil
	}
	return 0, fmt.Errorf("%w: %q (supported: sobel, prewitt)", ErrInvalidOperator, name)
}

// String returns the lowercase operator name.
func (o Operator) String() string {
	switch o {
	case Sobel:
		return "sobel"
	case Prewitt:
		return "prewitt"
	}
	return fmt.Sprintf("Operator(%d)", int(o))
}

// Kernels returns the horizontal and vertical gradient kernels.
// It panics on a value that is not one of the declared operators.
func (o Operator) Kernels() (x, y Kernel) {
	switch o {
	case Sobel:
		return sobelX, sobelY
	case Prewitt:
		return prewittX, prewittY
	}
	panic(fmt.Sprintf("edge: unknown operator %d", int(o)))
}

// MarshalText implements encoding.TextMarshaler.
func (o Operator) MarshalText() ([]byte, error) {
	switch o {
	case Sobel, Prewitt:
		return []byte(o.String()), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrInvalidOperator, int(o))
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseOperator.
func (o *Operator) UnmarshalText(text []byte) error {
	op, err := ParseOperator(string(text))
	if err != nil {
		return err
	}
	*o = op
	return nil
}
