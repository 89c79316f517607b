package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePoll(); err != nil {
		return err
	}
	if err := c.validateParagraph(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePoll() error {
	if c.Poll.CandidateColumn < 0 {
		return fmt.Errorf("poll.candidate_column must be zero or positive, got %d", c.Poll.CandidateColumn)
	}
	if strings.ContainsAny(c.Poll.FilePattern, `/\`) {
		return fmt.Errorf("poll.file_pattern must not contain path separators: %q", c.Poll.FilePattern)
	}
	if _, err := filepath.Match(c.Poll.FilePattern, ""); err != nil {
		return fmt.Errorf("poll.file_pattern %q: %w", c.Poll.FilePattern, err)
	}
	return nil
}

func (c *Config) validateParagraph() error {
	if strings.TrimSpace(c.Paragraph.SentenceDelimiter) == "" {
		return errors.New("paragraph.sentence_delimiter must contain a non-space character")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
}
