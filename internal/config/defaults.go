package config

import "time"

// Default values for configuration
const (
	DefaultConfigPath = "./config.yaml"

	// Log defaults
	DefaultLogLevel = "info"
	DefaultLogJSON  = false

	// Telegram defaults
	DefaultTelegramPollTimeout      = time.Minute
	DefaultTelegramCheckInitTimeout = 5 * time.Second
	DefaultTelegramWorkers          = 1

	// Scheduler defaults
	DefaultSessionCheckSchedule = "0 */15 * * * *"
)

// DefaultContent is the text the store bot ships with.
var DefaultContent = Content{
	Description: `Ласкаво просимо до нашого магазину, де ви знайдете тільки найкращу техніку Apple — нову та б/у за вигідними цінами! 😊

Відчуйте якість Apple з нашим асортиментом нових та сертифікованих пристроїв! 🍏

Шукаєте надійну техніку Apple? У нас є нові моделі та перевірені пристрої, що задовольнять навіть найвибагливих покупців! 📱

Обирайте нові та сертифіковані продукти Apple — якість і інновації за доступною ціною тільки в нашому магазині! 💻`,
	Welcome: `🎉 Ласкаво просимо до нашого магазину!

🌟 Вітаємо вас у нашому магазині — місці, де зручність і вигода завжди поруч!

🛍️ **Щоб відкрити магазин**, просто натисніть кнопку "Магазин" нижче.`,
	AnimationURL: "https://i.gifer.com/3P0Ho.gif",
	ShopPrompt:   "🛍️ Натисніть кнопку нижче, щоб відкрити магазин:",
	ButtonText:   "🛍️ Відкрити магазин",
	WebAppURL:    "https://itconcerent.github.io/markesell/",

	StartCommand: "Запустити бота",
	ShopCommand:  "Відкрити магазин",
}

// setDefaults registers default values for every configuration key.
// Keys must be known to viper for environment overrides to unmarshal.
func setDefaults(v viperSetter) {
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.json", DefaultLogJSON)

	v.SetDefault("telegram.token", "")
	v.SetDefault("telegram.server_url", "")
	v.SetDefault("telegram.poll_timeout", DefaultTelegramPollTimeout)
	v.SetDefault("telegram.check_init_timeout", DefaultTelegramCheckInitTimeout)
	v.SetDefault("telegram.workers", DefaultTelegramWorkers)

	v.SetDefault("content.description", DefaultContent.Description)
	v.SetDefault("content.welcome", DefaultContent.Welcome)
	v.SetDefault("content.animation_url", DefaultContent.AnimationURL)
	v.SetDefault("content.shop_prompt", DefaultContent.ShopPrompt)
	v.SetDefault("content.button_text", DefaultContent.ButtonText)
	v.SetDefault("content.web_app_url", DefaultContent.WebAppURL)
	v.SetDefault("content.start_command", DefaultContent.StartCommand)
	v.SetDefault("content.shop_command", DefaultContent.ShopCommand)

	v.SetDefault("scheduler.tasks", map[string]any{
		"session_check": map[string]any{
			"enabled":  true,
			"schedule": DefaultSessionCheckSchedule,
		},
	})
}

type viperSetter interface {
	SetDefault(key string, value any)
}
