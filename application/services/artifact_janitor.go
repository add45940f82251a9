package services

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/laiba2005shahzad/BuildWAI/application/ports/outbound"
	"github.com/laiba2005shahzad/BuildWAI/config"
)

type artifactJanitor struct {
	logger       outbound.LoggerPort
	avatarConfig *config.AvatarConfig
	retention    time.Duration
}

// NewArtifactJanitor evicts per-run artifacts once they outlive the
// configured retention: run directories under the video root and the
// audio/text scratch files under the temp root. Without it, every run leaks
// a directory forever.
func NewArtifactJanitor(logger outbound.LoggerPort, avatarConfig *config.AvatarConfig, retention time.Duration) *artifactJanitor {
	return &artifactJanitor{
		logger:       logger,
		avatarConfig: avatarConfig,
		retention:    retention,
	}
}

// Start blocks until ctx is done; run it on the worker pool.
func (j *artifactJanitor) Start(ctx context.Context) {
	ticker := time.NewTicker(j.retention / 4)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.Sweep(time.Now())
		}
	}
}

// Sweep removes everything older than the retention cutoff. Failures are
// logged and skipped; the next sweep retries them.
func (j *artifactJanitor) Sweep(now time.Time) {
	cutoff := now.Add(-j.retention)

	j.sweepDir(j.avatarConfig.OutputRoot, cutoff, func(name string, isDir bool) bool {
		return isDir
	})
	j.sweepDir(j.avatarConfig.TempRoot, cutoff, func(name string, isDir bool) bool {
		return !isDir && (strings.HasPrefix(name, "audio_") || strings.HasPrefix(name, "text_"))
	})
}

func (j *artifactJanitor) sweepDir(root string, cutoff time.Time, eligible func(name string, isDir bool) bool) {
	entries, err := os.ReadDir(root)
	if err != nil {
		j.logger.ErrorWithFields(err, "Janitor cannot read artifact root", map[string]interface{}{"root": root})
		return
	}

	for _, entry := range entries {
		if !eligible(entry.Name(), entry.IsDir()) {
			continue
		}
		info, err := entry.Info()
		if err != nil || !info.ModTime().Before(cutoff) {
			continue
		}
		path := filepath.Join(root, entry.Name())
		if err := os.RemoveAll(path); err != nil {
			j.logger.ErrorWithFields(err, "Janitor failed to remove artifact", map[string]interface{}{"path": path})
			continue
		}
		j.logger.DebugWithFields("Evicted expired artifact", map[string]interface{}{"path": path})
	}
}
