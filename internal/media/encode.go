package media

import (
	"context"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// encodeArgs builds the ffmpeg arguments for one slide clip:
// -loop 1: repeat the single image forever
// -c:v/-tune: H.264 tuned for still pictures
// -c:a/-b:a: AAC narration
// -pix_fmt yuv420p: playable everywhere
// -shortest: stop when the audio ends
// -y: overwrite an existing clip
func (t *implToolkit) encodeArgs(imagePath, audioPath, outPath string) []string {
	image := ffmpeg.Input(imagePath, ffmpeg.KwArgs{"loop": 1})
	audio := ffmpeg.Input(audioPath)

	return ffmpeg.Output([]*ffmpeg.Stream{image, audio}, outPath, ffmpeg.KwArgs{
		"c:v":      t.cfg.VideoCodec,
		"tune":     t.cfg.Tune,
		"c:a":      t.cfg.AudioCodec,
		"b:a":      t.cfg.AudioBitrate,
		"pix_fmt":  t.cfg.PixelFormat,
		"shortest": "",
	}).OverWriteOutput().GetArgs()
}

func (t *implToolkit) Encode(ctx context.Context, imagePath, audioPath, outPath string) error {
	t.logger.Debug(ctx, "Encoding clip: %s + %s -> %s", imagePath, audioPath, outPath)

	if _, err := t.executor.Execute(ctx, t.cfg.Binary, t.encodeArgs(imagePath, audioPath, outPath)...); err != nil {
		return &EncodingError{Output: outPath, Err: err}
	}
	return nil
}
