package cli

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"statbook/internal/config"
	"statbook/internal/logging"
)

const skipConfigAnnotation = "skipConfigLoad"

// Context carries lazily loaded configuration and logging for a command tree.
type Context struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

// NewContext returns a Context reading the config path from configFlag.
func NewContext(configFlag *string) *Context {
	return &Context{configFlag: configFlag}
}

// Config loads the configuration once and returns the cached result.
func (c *Context) Config() (*config.Config, error) {
	c.configOnce.Do(func() {
		c.config, _, _, c.configErr = config.Load(c.configPath())
	})
	return c.config, c.configErr
}

// configPath is the trimmed --config value; empty means search defaults.
func (c *Context) configPath() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

// Logger returns the logger built from the loaded configuration. It falls
// back to the default console logger when configuration cannot be loaded.
func (c *Context) Logger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, _ := c.Config()
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			logger = logging.NewNop()
		}
		c.logger = logger
	})
	return c.logger
}

// NewRootCommand builds a root command carrying the --config flag and the
// config subcommands. Configuration is loaded before any command runs unless
// the command opts out with the skipConfigLoad annotation.
func NewRootCommand(use, short string) (*cobra.Command, *Context) {
	var configFlag string
	ctx := NewContext(&configFlag)

	root := &cobra.Command{
		Use:           use,
		Short:         short,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if skipsConfig(cmd) {
				return nil
			}
			_, err := ctx.Config()
			return err
		},
	}
	root.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	root.AddCommand(newConfigCommand(ctx))
	return root, ctx
}

func skipsConfig(cmd *cobra.Command) bool {
	for ; cmd != nil; cmd = cmd.Parent() {
		if cmd.Annotations[skipConfigAnnotation] == "true" {
			return true
		}
	}
	return false
}
