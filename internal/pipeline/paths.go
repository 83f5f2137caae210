package pipeline

import (
	"fmt"
	"path/filepath"
	"strings"
)

const manifestName = "list.txt"

// slideArtifacts are the per-slide files; the shared base name is the only join key between stages
type slideArtifacts struct {
	image string
	audio string
	clip  string
}

func artifactsFor(workDir, base string, index int) slideArtifacts {
	stem := filepath.Join(workDir, fmt.Sprintf("%s_%d", base, index))
	return slideArtifacts{
		image: stem + ".png",
		audio: stem + ".mp3",
		clip:  stem + ".mp4",
	}
}

func (a slideArtifacts) all() []string {
	return []string{a.image, a.audio, a.clip}
}

// baseName is the presentation file name without directory or extension
func baseName(inputPath string) string {
	name := filepath.Base(inputPath)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
