// Package config provides configuration loading, validation, and management
// for the shop bot. It reads an optional YAML file and environment variables
// on top of compiled defaults, then validates the result.
package config

import (
	"errors"
	"time"

	"github.com/go-telegram/bot/models"
)

// ErrConfiguration marks errors that make the configuration unusable.
var ErrConfiguration = errors.New("configuration error")

// Config defines the application configuration parameters for all components.
type Config struct {
	Logger    LoggerConfig    `mapstructure:"log"`
	Telegram  TelegramConfig  `mapstructure:"telegram"`
	Content   Content         `mapstructure:"content"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
}

// LoggerConfig controls the structured logger.
type LoggerConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// TelegramConfig holds the bot credential and transport settings.
type TelegramConfig struct {
	Token            string        `mapstructure:"token"              validate:"required"`
	ServerURL        string        `mapstructure:"server_url"         validate:"omitempty,url"`
	PollTimeout      time.Duration `mapstructure:"poll_timeout"       validate:"min=1s,max=10m"`
	CheckInitTimeout time.Duration `mapstructure:"check_init_timeout" validate:"min=1s,max=1m"`
	Workers          int           `mapstructure:"workers"            validate:"min=1,max=64"`

	// BotInfo is filled at runtime from getMe.
	BotInfo *models.User `mapstructure:"-"`
}

// Content is the fixed user-facing text shown by the bot. It is built once
// during Load and must not be modified afterwards.
type Content struct {
	Description  string `mapstructure:"description"   validate:"required,max=512"`
	Welcome      string `mapstructure:"welcome"       validate:"required,max=1024"`
	AnimationURL string `mapstructure:"animation_url" validate:"required,url"`
	ShopPrompt   string `mapstructure:"shop_prompt"   validate:"required,max=4096"`
	ButtonText   string `mapstructure:"button_text"   validate:"required"`
	WebAppURL    string `mapstructure:"web_app_url"   validate:"required,url,startswith=https://"`

	StartCommand string `mapstructure:"start_command" validate:"required,max=256"`
	ShopCommand  string `mapstructure:"shop_command"  validate:"required,max=256"`
}

// SchedulerConfig lists the background tasks keyed by task name.
type SchedulerConfig struct {
	Tasks map[string]TaskConfig `mapstructure:"tasks" validate:"dive"`
}

// TaskConfig enables a task and sets its cron schedule (seconds field allowed).
type TaskConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule" validate:"required_if=Enabled true"`
}
