package pipeline

import "context"

// Driver converts one presentation into one narrated video
type Driver interface {
	Convert(ctx context.Context, inputPath, outputPath string) error
}
