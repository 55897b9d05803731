package configs

import (
	"github.com/spf13/viper"
)

type Config struct {
	Port              string            `json:"port" mapstructure:"port"`
	ENV               string            `json:"env" mapstructure:"env"`
	MaxPoolSize       int               `json:"max_pool_size" mapstructure:"max_pool_size"`
	MongoURI          string            `json:"mongo_uri" mapstructure:"mongo_uri"`
	DBName            string            `json:"db_name" mapstructure:"db_name"`
	QueueUri          string            `json:"queue_uri" mapstructure:"queue_uri"`
	Redis             RedisConfig       `json:"redis" mapstructure:"redis"`
	KafkaConfig       Kafka             `json:"kafka_config" mapstructure:"kafka_config"`
	Gateway           Gateway           `json:"gateway" mapstructure:"gateway"`
	Store             Store             `json:"store" mapstructure:"store"`
	TelegramBotToken  string            `json:"telegram_bot_token" mapstructure:"telegram_bot_token"`
	TelegramChannelId TelegramChannelId `json:"telegram_channel_id" mapstructure:"telegram_channel_id"`
}

// Gateway holds the payment processor account settings.
type Gateway struct {
	BaseURL          string `json:"base_url" mapstructure:"base_url"`
	Environment      string `json:"environment" mapstructure:"environment"` // staging | production
	CompanyId        string `json:"company_id" mapstructure:"company_id"`
	AppId            string `json:"app_id" mapstructure:"app_id"`
	AppKey           string `json:"app_key" mapstructure:"app_key"`
	PaymentReference string `json:"payment_reference" mapstructure:"payment_reference"`
	Challenge3DS     bool   `json:"challenge_3ds" mapstructure:"challenge_3ds"`
	Tokenization     bool   `json:"tokenization" mapstructure:"tokenization"`
	WalletRefund     bool   `json:"wallet_refund" mapstructure:"wallet_refund"`
}

// Store holds the storefront URLs the redirect endpoints send browsers back to.
type Store struct {
	CheckoutURL          string `json:"checkout_url" mapstructure:"checkout_url"`
	OrderConfirmationURL string `json:"order_confirmation_url" mapstructure:"order_confirmation_url"`
	PaymentMethodsURL    string `json:"payment_methods_url" mapstructure:"payment_methods_url"`
}

type TelegramChannelId struct {
	Refund  int64 `json:"refund" mapstructure:"refund"`
	Capture int64 `json:"capture" mapstructure:"capture"`
	Cancel  int64 `json:"cancel" mapstructure:"cancel"`
}

type Kafka struct {
	Brokers        string `json:"brokers" mapstructure:"brokers"`
	PaymentTopic   string `json:"payment_topic" mapstructure:"payment_topic"`
	ReturnDuration int    `json:"return_duration" mapstructure:"return_duration"`
}

type RedisConfig struct {
	Address  string `json:"address" mapstructure:"address"`
	Password string `json:"password" mapstructure:"password"`
	DB       int    `json:"db" mapstructure:"db"`
}

func LoadConfig() (*Config, error) {
	viper.AddConfigPath("./")
	viper.SetConfigType("json")
	viper.SetConfigName("config.json")
	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}
	result := &Config{}
	err = viper.Unmarshal(result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// LoadTestConfig load config for running tests
func LoadTestConfig(configPath string) (*Config, error) {
	viper.AddConfigPath(configPath)
	viper.SetConfigType("json")
	viper.SetConfigName("config_test.json")
	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}
	result := &Config{}
	err = viper.Unmarshal(result)
	if err != nil {
		return nil, err
	}
	return result, nil
}
