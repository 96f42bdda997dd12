package dataset

import "context"

// StaticSource serves a fixed in-memory table.
type StaticSource struct {
	lines []string
}

// NewStaticSource creates a source over a copy of lines.
func NewStaticSource(lines ...string) *StaticSource {
	return &StaticSource{lines: append([]string(nil), lines...)}
}

// Name returns "static".
func (s *StaticSource) Name() string {
	return "static"
}

// Lines returns a copy of the table so callers cannot mutate it.
func (s *StaticSource) Lines(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, unavailable("static", err)
	}
	return append([]string(nil), s.lines...), nil
}
