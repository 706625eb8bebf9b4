package internal

import (
	"flag"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	RunAddress      string        `env:"RUN_ADDRESS"`
	Port            string        `env:"PORT" env-default:"3000"`
	DatabaseURI     string        `env:"DATABASE_URI"`
	SQLiteFile      string        `env:"SQLITE_FILE" env-default:"./data/demo.db"`
	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT" env-default:"10s"`

	Stripe   StripeConfig
	DocuSign DocuSignConfig
	Algolia  AlgoliaConfig
	Monday   MondayConfig
	Fanout   FanoutConfig
}

type StripeConfig struct {
	SecretKey     string `env:"STRIPE_SECRET_KEY" env-default:"sk_test_placeholder"`
	WebhookSecret string `env:"STRIPE_WEBHOOK_SECRET"`
	Currency      string `env:"PAYMENT_CURRENCY" env-default:"usd"`
	APIURL        string `env:"STRIPE_API_URL"`
}

type DocuSignConfig struct {
	BasePath    string `env:"DOCUSIGN_BASE_PATH" env-default:"https://demo.docusign.net/restapi"`
	AccountID   string `env:"DOCUSIGN_ACCOUNT_ID"`
	AccessToken string `env:"DOCUSIGN_ACCESS_TOKEN"`
	TemplateID  string `env:"DOCUSIGN_TEMPLATE_ID"`
	RoleName    string `env:"DOCUSIGN_ROLE_NAME" env-default:"Signer"`

	// JWT grant, used instead of AccessToken when all three are set.
	IntegrationKey string `env:"DOCUSIGN_INTEGRATION_KEY"`
	UserID         string `env:"DOCUSIGN_USER_ID"`
	PrivateKeyPath string `env:"DOCUSIGN_PRIVATE_KEY_PATH"`
	AuthServer     string `env:"DOCUSIGN_AUTH_SERVER" env-default:"account-d.docusign.com"`
}

func (c DocuSignConfig) JWTGrant() bool {
	return c.IntegrationKey != "" && c.UserID != "" && c.PrivateKeyPath != ""
}

func (c DocuSignConfig) Enabled() bool {
	return c.AccountID != "" && c.TemplateID != "" && (c.AccessToken != "" || c.JWTGrant())
}

type AlgoliaConfig struct {
	AppID     string `env:"ALGOLIA_APP_ID"`
	AdminKey  string `env:"ALGOLIA_ADMIN_KEY"`
	IndexName string `env:"ALGOLIA_INDEX_NAME" env-default:"onboard_demo"`
}

func (c AlgoliaConfig) Enabled() bool {
	return c.AppID != "" && c.AdminKey != ""
}

type MondayConfig struct {
	APIKey  string `env:"MONDAY_API_KEY"`
	BoardID string `env:"MONDAY_BOARD_ID"`
	APIURL  string `env:"MONDAY_API_URL" env-default:"https://api.monday.com/v2"`
}

func (c MondayConfig) Enabled() bool {
	return c.APIKey != "" && c.BoardID != ""
}

type FanoutConfig struct {
	WebhookURL   string `env:"ZAPIER_WEBHOOK_URL"`
	KafkaBrokers string `env:"KAFKA_BROKERS"`
	KafkaTopic   string `env:"KAFKA_TOPIC" env-default:"orders.processed"`
}

func (c FanoutConfig) Brokers() []string {
	var res []string
	for _, b := range strings.Split(c.KafkaBrokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			res = append(res, b)
		}
	}
	return res
}

func (c FanoutConfig) Enabled() bool {
	return c.WebhookURL != "" || len(c.Brokers()) > 0
}

// NewConfig reads the environment once. Command line flags win over
// environment values.
func NewConfig() (*Config, error) {
	c, err := ReadConfig()
	if err != nil {
		return nil, err
	}

	flag.StringVar(&c.RunAddress, "a", c.RunAddress, "host to listen on")
	flag.StringVar(&c.DatabaseURI, "d", c.DatabaseURI, "postgres connection string, sqlite file is used when empty")
	flag.StringVar(&c.SQLiteFile, "s", c.SQLiteFile, "sqlite database file")
	flag.Parse()

	return c, nil
}

func ReadConfig() (*Config, error) {
	c := new(Config)
	if err := cleanenv.ReadEnv(c); err != nil {
		return nil, err
	}

	if c.RunAddress == "" {
		c.RunAddress = ":" + c.Port
	}
	return c, nil
}
