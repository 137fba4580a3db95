package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateTags(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.DataDir == "" {
		return errors.New("paths.data_dir must be set")
	}
	return nil
}

func (c *Config) validateTags() error {
	if c.Tags.OverlapThreshold <= 0 || c.Tags.OverlapThreshold > 1 {
		return errors.New("tags.overlap_threshold must be within (0, 1]")
	}
	if c.Tags.PromptTagLimit < 1 {
		return errors.New("tags.prompt_tag_limit must be at least 1")
	}
	if c.Tags.MaxSynonyms < 0 {
		return errors.New("tags.max_synonyms must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
