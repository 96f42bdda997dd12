// Package dataset provides the record sources a lookup reads from. A source
// produces the full dataset as a sequence of lines on every call; nothing is
// cached between calls.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	// ErrUnavailable is returned when the backing store cannot be read.
	ErrUnavailable = errors.New("dataset unavailable")

	// ErrUnknownSource is returned for an unsupported source kind.
	ErrUnknownSource = errors.New("unknown dataset source")
)

// Source produces the record dataset.
type Source interface {
	// Name identifies the source in logs and metrics.
	Name() string
	// Lines loads the whole dataset. Errors wrap ErrUnavailable.
	Lines(ctx context.Context) ([]string, error)
}

// SplitLines splits raw dataset content on "\n" exactly as stored. Carriage
// returns are kept, empty content yields one empty line and a trailing
// newline yields a trailing empty line.
func SplitLines(data []byte) []string {
	return strings.Split(string(data), "\n")
}

// Close releases the resources held by src, if any.
func Close(src Source) error {
	if c, ok := src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrUnavailable, op, err)
}
