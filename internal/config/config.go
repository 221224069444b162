package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds every value the process reads from its environment. Partner
// base URLs carry the affiliate IDs; they are opaque to the link builder.
type Config struct {
	AppPort    string `mapstructure:"PORT"`
	Env        string `mapstructure:"ENV"`
	WebhookURL string `mapstructure:"WEBHOOK_URL"`

	TelegramToken string `mapstructure:"TELEGRAM_BOT_TOKEN"`

	OpenRouterAPIKey  string `mapstructure:"OPENROUTER_API_KEY"`
	OpenRouterBaseURL string `mapstructure:"OPENROUTER_BASE_URL"`
	OpenRouterReferer string `mapstructure:"OPENROUTER_REFERER"`
	GeminiAPIKey      string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel       string `mapstructure:"GEMINI_MODEL"`

	BookingAID        string `mapstructure:"BOOKING_AID"`
	BookingLabel      string `mapstructure:"BOOKING_LABEL"`
	AiraloLink        string `mapstructure:"AIRALO_LINK"`
	TicketNetworkLink string `mapstructure:"TICKETNETWORK_LINK"`
	TiqetsLink        string `mapstructure:"TIQETS_LINK"`
	LocalrentLink     string `mapstructure:"LOCALRENT_LINK"`
	AirhelpLink       string `mapstructure:"AIRHELP_LINK"`
	CompensairLink    string `mapstructure:"COMPENSAIR_LINK"`
	EktaInsuranceLink string `mapstructure:"EKTA_INSURANCE_LINK"`
	YesimLink         string `mapstructure:"YESIM_LINK"`
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads .env (when present), then the environment, applying defaults.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables only")
	}

	viper.AutomaticEnv()

	viper.SetDefault("PORT", "3000")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1")
	viper.SetDefault("OPENROUTER_REFERER", "https://voyago-bot.com")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	viper.SetDefault("BOOKING_AID", "304142")
	viper.SetDefault("BOOKING_LABEL", "voyago-bot")
	viper.SetDefault("AIRALO_LINK", "https://airalo.tp.st/voyago")
	viper.SetDefault("TICKETNETWORK_LINK", "https://ticketnetwork.tp.st/voyago")
	viper.SetDefault("TIQETS_LINK", "https://tiqets.tp.st/voyago")
	viper.SetDefault("LOCALRENT_LINK", "https://localrent.tp.st/voyago")
	viper.SetDefault("AIRHELP_LINK", "https://airhelp.tp.st/voyago")
	viper.SetDefault("COMPENSAIR_LINK", "https://compensair.tp.st/voyago")
	viper.SetDefault("EKTA_INSURANCE_LINK", "https://ektatraveling.tp.st/voyago")
	viper.SetDefault("YESIM_LINK", "https://yesim.tp.st/voyago")

	// Bind the keys we unmarshal so AutomaticEnv picks them up even without
	// a config file.
	for _, key := range []string{
		"PORT", "ENV", "WEBHOOK_URL", "TELEGRAM_BOT_TOKEN",
		"OPENROUTER_API_KEY", "OPENROUTER_BASE_URL", "OPENROUTER_REFERER",
		"GEMINI_API_KEY", "GEMINI_MODEL",
		"BOOKING_AID", "BOOKING_LABEL",
		"AIRALO_LINK", "TICKETNETWORK_LINK", "TIQETS_LINK", "LOCALRENT_LINK",
		"AIRHELP_LINK", "COMPENSAIR_LINK", "EKTA_INSURANCE_LINK", "YESIM_LINK",
	} {
		_ = viper.BindEnv(key)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
