package source

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
)

// ErrNotFound is returned when the command file does not exist
var ErrNotFound = errors.New("command file not found")

// Service loads command files
type Service struct {
	fs afs.Service
}

// Load returns the non-blank, non-comment lines of the file at URL in order.
// Surrounding whitespace is trimmed; lines starting with '#' are skipped.
func (s *Service) Load(ctx context.Context, URL string) ([]string, error) {
	if URL == "" {
		return nil, fmt.Errorf("command file URL was empty")
	}
	exists, err := s.fs.Exists(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to check command file %v: %w", URL, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, URL)
	}
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read command file %v: %w", URL, err)
	}
	lines, err := Lines(data)
	if err != nil {
		return nil, fmt.Errorf("failed to read command file %v: %w", URL, err)
	}
	return lines, nil
}

// Save writes lines to URL, one per line
func (s *Service) Save(ctx context.Context, URL string, lines []string) error {
	var buf bytes.Buffer
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	if err := s.fs.Upload(ctx, URL, file.DefaultFileOsMode, &buf); err != nil {
		return fmt.Errorf("failed to write command file %v: %w", URL, err)
	}
	return nil
}

// MaxLineSize is the longest accepted command line in bytes
const MaxLineSize = 1024 * 1024

// Lines splits data into command lines; a line longer than MaxLineSize fails
// the whole input.
func Lines(data []byte) ([]string, error) {
	var ret []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	number := 0
	for scanner.Scan() {
		number++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ret = append(ret, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", number+1, err)
	}
	return ret, nil
}

// New creates a command file service, fs defaults to afs.New()
func New(fs afs.Service) *Service {
	if fs == nil {
		fs = afs.New()
	}
	return &Service{fs: fs}
}
