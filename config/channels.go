package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/laiba2005shahzad/BuildWAI/domain"
)

const sourcesConfigPathEnv = "NEWS_SOURCES_CONFIG"

// ChannelsConfig describes where each channel's articles come from and the
// bounds the ingestion adapter applies to them.
type ChannelsConfig struct {
	ArticlesPerSource int                 `yaml:"articlesPerSource"`
	FetchDelay        time.Duration       `yaml:"fetchDelay"`
	MinContentRunes   int                 `yaml:"minContentRunes"`
	MaxContentRunes   int                 `yaml:"maxContentRunes"`
	Sources           map[string][]string `yaml:"sources"`
}

// SourcesFor returns the configured endpoints for a channel.
func (c *ChannelsConfig) SourcesFor(channel domain.Channel) []string {
	return c.Sources[string(channel)]
}

// GetChannelsConfig loads the YAML sources file named by NEWS_SOURCES_CONFIG,
// falling back to the built-in defaults when the variable is unset.
func GetChannelsConfig() (*ChannelsConfig, error) {
	cfg := defaultChannelsConfig()

	path := os.Getenv(sourcesConfigPathEnv)
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sources config %s: %w", path, err)
	}

	var fileCfg ChannelsConfig
	if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
		return nil, fmt.Errorf("parse sources config %s: %w", path, err)
	}

	if fileCfg.ArticlesPerSource > 0 {
		cfg.ArticlesPerSource = fileCfg.ArticlesPerSource
	}
	if fileCfg.FetchDelay > 0 {
		cfg.FetchDelay = fileCfg.FetchDelay
	}
	if fileCfg.MinContentRunes > 0 {
		cfg.MinContentRunes = fileCfg.MinContentRunes
	}
	if fileCfg.MaxContentRunes > 0 {
		cfg.MaxContentRunes = fileCfg.MaxContentRunes
	}
	if len(fileCfg.Sources) > 0 {
		cfg.Sources = fileCfg.Sources
	}

	for _, channel := range domain.Channels {
		if len(cfg.Sources[string(channel)]) == 0 {
			return nil, fmt.Errorf("no sources configured for channel %s", channel)
		}
	}

	return cfg, nil
}

func defaultChannelsConfig() *ChannelsConfig {
	return &ChannelsConfig{
		ArticlesPerSource: 6,
		FetchDelay:        time.Second,
		MinContentRunes:   100,
		MaxContentRunes:   1000,
		Sources: map[string][]string{
			string(domain.ChannelEnglish): {
				"https://www.bbc.com/",
				"https://edition.cnn.com/",
			},
			string(domain.ChannelUrdu): {
				"https://www.jang.com.pk",
				"https://www.geo.tv",
			},
		},
	}
}
