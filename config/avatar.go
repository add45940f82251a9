package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/laiba2005shahzad/BuildWAI/domain"
)

// AvatarConfig locates the external talking-head tool and the per-run
// artifact roots. All paths are resolved to absolute form once, at load time,
// so no component ever depends on the process working directory.
type AvatarConfig struct {
	ToolRoot   string
	PythonBin  string
	OutputRoot string
	TempRoot   string
	Images     map[domain.Channel]string
}

// EntryScript is the tool's batch entry point inside ToolRoot.
func (c *AvatarConfig) EntryScript() string {
	return filepath.Join(c.ToolRoot, "inference.py")
}

// ImageFor returns the absolute path of the channel's anchor image.
func (c *AvatarConfig) ImageFor(channel domain.Channel) string {
	return c.Images[channel]
}

func GetAvatarConfig() (*AvatarConfig, error) {
	toolRoot, err := absEnv("SADTALKER_PATH", "SadTalker")
	if err != nil {
		return nil, err
	}
	outputRoot, err := absEnv("VIDEO_OUTPUT_PATH", filepath.Join("static", "videos"))
	if err != nil {
		return nil, err
	}
	tempRoot, err := absEnv("TEMP_DIR", "temp")
	if err != nil {
		return nil, err
	}
	imageEn, err := absEnv("AVATAR_IMAGE_EN", filepath.Join("resources", "english_anchor.jpg"))
	if err != nil {
		return nil, err
	}
	imageUr, err := absEnv("AVATAR_IMAGE_UR", filepath.Join("resources", "urdu_anchor.jpg"))
	if err != nil {
		return nil, err
	}

	pythonBin := os.Getenv("SADTALKER_PYTHON")
	if pythonBin == "" {
		pythonBin = "python3"
	}

	for _, dir := range []string{outputRoot, tempRoot} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create %s: %w", dir, err)
		}
	}

	return &AvatarConfig{
		ToolRoot:   toolRoot,
		PythonBin:  pythonBin,
		OutputRoot: outputRoot,
		TempRoot:   tempRoot,
		Images: map[domain.Channel]string{
			domain.ChannelEnglish: imageEn,
			domain.ChannelUrdu:    imageUr,
		},
	}, nil
}

func absEnv(key, fallback string) (string, error) {
	val := os.Getenv(key)
	if val == "" {
		val = fallback
	}
	abs, err := filepath.Abs(val)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", key, err)
	}
	return abs, nil
}
