package media

import (
	"context"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// concatArgs uses the concat demuxer; -safe 0 allows absolute paths in the list,
// -c copy joins without re-encoding.
func (t *implToolkit) concatArgs(manifestPath, outPath string) []string {
	return ffmpeg.Input(manifestPath, ffmpeg.KwArgs{"f": "concat", "safe": 0}).
		Output(outPath, ffmpeg.KwArgs{"c": "copy"}).
		OverWriteOutput().
		GetArgs()
}

func (t *implToolkit) Concatenate(ctx context.Context, manifestPath, outPath string) error {
	t.logger.Info(ctx, "Combining clips from %s into %s", manifestPath, outPath)

	if _, err := t.executor.Execute(ctx, t.cfg.Binary, t.concatArgs(manifestPath, outPath)...); err != nil {
		return &ConcatenationError{Output: outPath, Err: err}
	}
	return nil
}
