package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizePoll()
	c.normalizeParagraph()
	c.normalizeHistory()
	return c.normalizeLogging()
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir()
	}
	if c.Paths.DataDir, err = ExpandPath(strings.TrimSpace(c.Paths.DataDir)); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizePoll() {
	// The results file stays relative so it lands in the working directory of
	// each run rather than the directory the config was loaded from.
	c.Poll.ResultsFile = strings.TrimSpace(c.Poll.ResultsFile)
	if c.Poll.ResultsFile == "" {
		c.Poll.ResultsFile = defaultResultsFile
	}
	c.Poll.FilePattern = strings.TrimSpace(c.Poll.FilePattern)
	if c.Poll.FilePattern == "" {
		c.Poll.FilePattern = defaultFilePattern
	}
}

func (c *Config) normalizeParagraph() {
	if c.Paragraph.SentenceDelimiter == "" {
		c.Paragraph.SentenceDelimiter = defaultSentenceDelimiter
	}
}

func (c *Config) normalizeHistory() {
	if c.History.ListLimit <= 0 {
		c.History.ListLimit = defaultHistoryListLimit
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	if value, ok := os.LookupEnv("STATBOOK_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}

	outputs := make([]string, 0, len(c.Logging.Output))
	for _, target := range c.Logging.Output {
		target = strings.TrimSpace(target)
		switch target {
		case "":
			continue
		case "stderr", "stdout":
		default:
			expanded, err := ExpandPath(target)
			if err != nil {
				return fmt.Errorf("logging.output: %w", err)
			}
			target = expanded
		}
		outputs = append(outputs, target)
	}
	if len(outputs) == 0 {
		outputs = []string{defaultLogOutput}
	}
	c.Logging.Output = outputs
	return nil
}
