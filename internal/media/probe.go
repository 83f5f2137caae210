package media

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Duration asks ffprobe for the container duration in seconds
func (t *implToolkit) Duration(ctx context.Context, path string) (time.Duration, error) {
	args := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	}

	out, err := t.executor.Execute(ctx, t.cfg.ProbeBinary, args...)
	if err != nil {
		return 0, fmt.Errorf("ffprobe %s: %w", path, err)
	}
	return parseSeconds(out)
}

func parseSeconds(out string) (time.Duration, error) {
	value := strings.TrimSpace(out)
	seconds, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", value, err)
	}
	return time.Duration(seconds * float64(time.Second)).Round(time.Millisecond), nil
}
