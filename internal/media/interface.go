// Package media drives ffmpeg: still image + narration into a clip, clips into one video.
package media

import (
	"context"
	"time"
)

// Encoder renders a looping still image over an audio track; the clip lasts as long as the audio
type Encoder interface {
	Encode(ctx context.Context, imagePath, audioPath, outPath string) error
}

// Concatenator joins the clips listed in a manifest by stream copy
type Concatenator interface {
	Concatenate(ctx context.Context, manifestPath, outPath string) error
}

// Prober reads the duration of a media file
type Prober interface {
	Duration(ctx context.Context, path string) (time.Duration, error)
}

// Toolkit bundles the ffmpeg operations the pipeline needs
type Toolkit interface {
	Encoder
	Concatenator
	Prober
}
