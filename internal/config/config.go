package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// DefaultTokenSecretName é o nome do segredo consultado no vault quando a variável de ambiente não existe
const DefaultTokenSecretName = "META_SYSTEM_USER_ACCESS_TOKEN"

type Config struct {
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	Database Database `mapstructure:",squash"`
	Meta     Meta     `mapstructure:",squash"`
	Insights Insights `mapstructure:",squash"`
	Supabase Supabase `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Enabled indica se o vault via SQL deve ser usado
func (d Database) Enabled() bool {
	return d.URL != ""
}

type Meta struct {
	BaseURL           string        `mapstructure:"meta_base_url"`
	URL               string        `mapstructure:"-"`
	Version           string        `mapstructure:"meta_version"`
	AccessToken       string        `mapstructure:"meta_system_user_access_token"`
	BusinessID        string        `mapstructure:"meta_business_id"`
	AppSecret         string        `mapstructure:"meta_app_secret"`
	TokenSecretName   string        `mapstructure:"meta_token_secret_name"`
	PageLimit         int           `mapstructure:"meta_page_limit"`
	MaxPages          int           `mapstructure:"meta_pagination_max_pages"`
	PaginationTimeout time.Duration `mapstructure:"meta_pagination_timeout"`
	RequestTimeout    time.Duration `mapstructure:"meta_request_timeout"`
}

// Insights controla o fan-out de métricas por recurso
type Insights struct {
	Delay        time.Duration `mapstructure:"meta_insights_delay"`
	MaxResources int           `mapstructure:"meta_insights_max_resources"`
	DefaultDays  int           `mapstructure:"meta_insights_default_days"`
}

type Supabase struct {
	URL            string `mapstructure:"supabase_url"`
	ServiceRoleKey string `mapstructure:"supabase_service_role_key"`
	JWTSecret      string `mapstructure:"supabase_jwt_secret"`
}

// VaultEnabled indica se o RPC de segredos do Supabase pode ser usado
func (s Supabase) VaultEnabled() bool {
	return s.URL != "" && s.ServiceRoleKey != ""
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v24.0")
	viper.SetDefault("META_SYSTEM_USER_ACCESS_TOKEN", "")
	viper.SetDefault("META_BUSINESS_ID", "")
	viper.SetDefault("META_APP_SECRET", "")
	viper.SetDefault("META_TOKEN_SECRET_NAME", DefaultTokenSecretName)

	// Paginação
	viper.SetDefault("META_PAGE_LIMIT", 500)
	viper.SetDefault("META_PAGINATION_MAX_PAGES", 1000)
	viper.SetDefault("META_PAGINATION_TIMEOUT", "2m")
	viper.SetDefault("META_REQUEST_TIMEOUT", "0s") // sem timeout, igual ao cliente HTTP padrão

	// Fan-out de insights por recurso
	viper.SetDefault("META_INSIGHTS_DELAY", "500ms")
	viper.SetDefault("META_INSIGHTS_MAX_RESOURCES", 20)
	viper.SetDefault("META_INSIGHTS_DEFAULT_DAYS", 30)

	viper.SetDefault("SUPABASE_URL", "")
	viper.SetDefault("SUPABASE_SERVICE_ROLE_KEY", "")
	viper.SetDefault("SUPABASE_JWT_SECRET", "")

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("APP_ENV", "development")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Normalize()

	return config, nil
}

// Normalize preenche os campos derivados e corrige valores fora da faixa
func (c *Config) Normalize() {
	c.Meta.BaseURL = strings.TrimRight(c.Meta.BaseURL, "/")
	c.Meta.URL = fmt.Sprintf("%s/%s", c.Meta.BaseURL, c.Meta.Version)

	if c.Meta.TokenSecretName == "" {
		c.Meta.TokenSecretName = DefaultTokenSecretName
	}
	if c.Meta.PageLimit <= 0 {
		c.Meta.PageLimit = 500
	}
	if c.Meta.MaxPages <= 0 {
		c.Meta.MaxPages = 1000
	}
	if c.Insights.MaxResources <= 0 {
		c.Insights.MaxResources = 20
	}
	if c.Insights.DefaultDays <= 0 {
		c.Insights.DefaultDays = 30
	}
	if c.Insights.Delay < 0 {
		c.Insights.Delay = 0
	}

	c.Supabase.URL = strings.TrimRight(c.Supabase.URL, "/")

	if c.Database.Enabled() {
		c.Database.DSN = fmt.Sprintf(
			"%s://%s:%s@%s",
			c.Database.Driver,
			c.Database.User,
			c.Database.Password,
			c.Database.URL,
		)
	}
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
