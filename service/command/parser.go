package command

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/viant/cpusim/service/parallel"
	"github.com/viant/parsly"
)

const maxDurationSeconds = int64(math.MaxInt64 / time.Second)

// Parse parses a command line. Malformed sub-commands are left out of the
// returned line and reported together in the returned error.
func Parse(text string) (*Line, error) {
	cursor := parsly.NewCursor("", []byte(text), 0)
	line := &Line{}
	segment := &Segment{}
	var words []string
	var errs []error

	flushCommand := func() {
		if len(words) == 0 {
			return
		}
		cmd, err := parseCommand(words)
		words = nil
		if err != nil {
			errs = append(errs, err)
			return
		}
		segment.Commands = append(segment.Commands, cmd)
	}

	for cursor.Pos < cursor.InputSize {
		matched := cursor.MatchAfterOptional(whitespaceToken, wordToken, semicolonToken, ampersandToken)
		switch matched.Code {
		case wordCode:
			words = append(words, matched.Text(cursor))
			continue
		case semicolonCode:
			flushCommand()
			continue
		case ampersandCode:
			flushCommand()
			line.Segments = append(line.Segments, segment)
			segment = &Segment{}
			continue
		}
		if strings.TrimSpace(string(cursor.Input[cursor.Pos:])) == "" {
			break
		}
		return nil, fmt.Errorf("%w: %v", ErrSyntax, cursor.NewError(wordToken))
	}
	flushCommand()
	line.Segments = append(line.Segments, segment)
	return line, errors.Join(errs...)
}

func parseCommand(words []string) (*Command, error) {
	cmd := &Command{Text: strings.Join(words, " ")}
	i := 0
	for ; i < len(words) && isFlag(words[i]); i++ {
		flag := words[i]
		if i+1 >= len(words) {
			return nil, fmt.Errorf("%w: %q: flag %v requires a value", ErrSyntax, cmd.Text, flag)
		}
		i++
		value, err := strconv.Atoi(words[i])
		if err != nil || value < 0 {
			return nil, fmt.Errorf("%w: %q: flag %v expects a non-negative integer, got %q", ErrInvalidArgument, cmd.Text, flag, words[i])
		}
		switch flag {
		case "-n":
			cmd.Repeat = value
			cmd.RepeatSet = true
		case "-d":
			if int64(value) > maxDurationSeconds {
				return nil, fmt.Errorf("%w: %q: flag -d exceeds %d seconds", ErrInvalidArgument, cmd.Text, maxDurationSeconds)
			}
			cmd.Duration = time.Duration(value) * time.Second
		case "-p":
			if value > parallel.MaxWorkers {
				return nil, fmt.Errorf("%w: %q: flag -p exceeds %d workers", ErrInvalidArgument, cmd.Text, parallel.MaxWorkers)
			}
			cmd.Parallel = value
		case "-m":
			cmd.Multiplier = value
		default:
			return nil, fmt.Errorf("%w: %q: unknown flag %v", ErrSyntax, cmd.Text, flag)
		}
	}
	if i >= len(words) {
		return nil, fmt.Errorf("%w: %q: missing command name", ErrSyntax, cmd.Text)
	}
	cmd.Name = words[i]
	if rest := words[i+1:]; len(rest) > 0 {
		cmd.Args = rest
	}
	return cmd, nil
}

// isFlag reports whether word looks like an option; "-5" is a number, not a flag
func isFlag(word string) bool {
	if len(word) < 2 || word[0] != '-' {
		return false
	}
	_, err := strconv.Atoi(word)
	return err != nil
}
