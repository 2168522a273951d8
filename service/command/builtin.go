package command

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/viant/cpusim/service/parallel"
)

// MaxPrimeBound caps the sieve size
const MaxPrimeBound = 50_000_000

// Builtin executes a command and returns its output line
type Builtin func(ctx context.Context, cmd *Command) (string, error)

// Builtins returns the default built-in registry
func Builtins() map[string]Builtin {
	return map[string]Builtin{
		"echo":  echo,
		"gcd":   gcd,
		"prime": prime,
		"sum":   sum,
	}
}

func echo(_ context.Context, cmd *Command) (string, error) {
	return strings.Join(cmd.Args, " "), nil
}

func gcd(_ context.Context, cmd *Command) (string, error) {
	values, err := intArgs(cmd, 2)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("GCD: %d", GCD(values[0], values[1])), nil
}

func prime(_ context.Context, cmd *Command) (string, error) {
	values, err := intArgs(cmd, 1)
	if err != nil {
		return "", err
	}
	x := values[0]
	if x > MaxPrimeBound {
		return "", fmt.Errorf("%w: %v: %d exceeds %d", ErrInvalidArgument, cmd.Name, x, MaxPrimeBound)
	}
	return fmt.Sprintf("Number of primes <= %d: %d", x, CountPrimes(x)), nil
}

func sum(ctx context.Context, cmd *Command) (string, error) {
	values, err := intArgs(cmd, 1)
	if err != nil {
		return "", err
	}
	if values[0] < 0 {
		return "", fmt.Errorf("%w: %v: expected non-negative bound, got %d", ErrInvalidArgument, cmd.Name, values[0])
	}
	if cmd.Workers() > parallel.MaxWorkers {
		return "", fmt.Errorf("%w: %v: %d workers exceed %d", ErrInvalidArgument, cmd.Name, cmd.Workers(), parallel.MaxWorkers)
	}
	total, err := parallel.Sum(ctx, values[0], cmd.Workers())
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Sum: %d", total), nil
}

// GCD returns the greatest common divisor using the Euclidean algorithm
func GCD(x, y int64) int64 {
	if x < 0 {
		x = -x
	}
	if y < 0 {
		y = -y
	}
	for y != 0 {
		x, y = y, x%y
	}
	return x
}

// CountPrimes returns the number of primes <= x (sieve of Eratosthenes)
func CountPrimes(x int64) int {
	if x < 2 {
		return 0
	}
	composite := make([]bool, x+1)
	count := 0
	for i := int64(2); i <= x; i++ {
		if composite[i] {
			continue
		}
		count++
		for j := i * i; j <= x; j += i {
			composite[j] = true
		}
	}
	return count
}

func intArgs(cmd *Command, expected int) ([]int64, error) {
	if len(cmd.Args) != expected {
		return nil, fmt.Errorf("%w: %v: expected %d argument(s), got %d", ErrInvalidArgument, cmd.Name, expected, len(cmd.Args))
	}
	ret := make([]int64, expected)
	for i, arg := range cmd.Args {
		value, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v: %q is not an integer", ErrInvalidArgument, cmd.Name, arg)
		}
		ret[i] = value
	}
	return ret, nil
}
