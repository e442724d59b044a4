package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"wordmask/internal/config"
	"wordmask/internal/logging"
	"wordmask/internal/session"
	"wordmask/internal/store"
)

type commandContext struct {
	configFlag    *string
	logLevelFlag  *string
	ephemeralFlag *bool

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error

	sessionID string
	logger    *slog.Logger
}

func newCommandContext(configFlag, logLevelFlag *string, ephemeralFlag *bool) *commandContext {
	return &commandContext{
		configFlag:    configFlag,
		logLevelFlag:  logLevelFlag,
		ephemeralFlag: ephemeralFlag,
		sessionID:     logging.NewSessionID(),
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, exists, err := config.Load(c.flagValue(c.configFlag))
		if err != nil {
			c.configErr = err
			return
		}
		if c.ephemeralFlag != nil && *c.ephemeralFlag {
			cfg.Store = config.Store{Backend: config.BackendMemory}
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg, c.sessionID, c.flagValue(c.logLevelFlag))
		if err != nil {
			c.configErr = fmt.Errorf("init logging: %w", err)
			return
		}
		c.config = cfg
		c.configPath = path
		c.configExists = exists
		c.logger = logger
	})
	return c.config, c.configErr
}

func (c *commandContext) flagValue(flag *string) string {
	if flag == nil {
		return ""
	}
	return strings.TrimSpace(*flag)
}

func (c *commandContext) loggerValue() *slog.Logger {
	if c.logger == nil {
		return logging.NewNop()
	}
	return c.logger
}

// openSession opens the configured store and loads a session from it. The
// returned func closes the store.
func (c *commandContext) openSession(ctx context.Context) (*session.Session, func(), error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	logger := c.loggerValue()
	kv, err := store.Open(ctx, cfg.Store, logger)
	if err != nil {
		return nil, nil, err
	}
	adapter := store.NewAdapter(kv, logger)
	closeFn := func() {
		if err := adapter.Close(); err != nil {
			logging.WarnWithContext(logger, "store close failed", "store_close_failed",
				logging.Error(err),
				logging.String(logging.FieldBackend, cfg.Store.Backend))
		}
	}
	return session.Load(ctx, adapter, logger), closeFn, nil
}

func (c *commandContext) withSession(cmd *cobra.Command, fn func(context.Context, *session.Session) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	sess, closeFn, err := c.openSession(ctx)
	if err != nil {
		return err
	}
	defer closeFn()
	return fn(ctx, sess)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}
