package main

import (
	"context"
	"os"
	"strings"
	"sync"

	"github.com/heartmarshall/ecovoice-backend/internal/app"
	"github.com/heartmarshall/ecovoice-backend/internal/config"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) configPath() string {
	if c.configFlag != nil {
		if p := strings.TrimSpace(*c.configFlag); p != "" {
			return p
		}
	}
	return os.Getenv("CONFIG_PATH")
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		c.config, c.configErr = config.LoadFrom(c.configPath())
	})
	return c.config, c.configErr
}

// openApp builds the application for one-shot commands. The caller must
// Close it.
func (c *commandContext) openApp(ctx context.Context) (*app.App, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return app.New(ctx, cfg, app.NewLogger(cfg.Log))
}
