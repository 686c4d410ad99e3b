package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/gfvieira/metrics-dashboard-api/internal/domain"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Cache       Cache       `mapstructure:",squash"`
	Analytics   Analytics   `mapstructure:",squash"`
	ULink       ULinkDB     `mapstructure:",squash"`
	Somara      SomaraDB    `mapstructure:",squash"`
	PushFire    PushFireDB  `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
	CacheWarmer CacheWarmer `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
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

// Cache define o backend do cache de métricas e o TTL das entradas
type Cache struct {
	Backend       string        `mapstructure:"cache_backend"` // postgres | redis
	TTL           time.Duration `mapstructure:"-"`
	TTLMinutes    int           `mapstructure:"cache_ttl_minutes"`
	RedisAddr     string        `mapstructure:"cache_redis_addr"`
	RedisPassword string        `mapstructure:"cache_redis_password"`
	RedisDB       int           `mapstructure:"cache_redis_db"`
}

// Analytics configura o provedor de relatórios de tráfego web
type Analytics struct {
	BaseURL            string `mapstructure:"analytics_base_url"`
	AccessToken        string `mapstructure:"analytics_access_token"`
	PropertyIDSomara   string `mapstructure:"analytics_property_id_somara"`
	PropertyIDULink    string `mapstructure:"analytics_property_id_ulink"`
	PropertyIDPushFire string `mapstructure:"analytics_property_id_pushfire"`
}

// ULinkDB configura o acesso remoto ao banco do ULink (API PostgREST)
type ULinkDB struct {
	URL        string `mapstructure:"ulink_db_url"`
	ServiceKey string `mapstructure:"ulink_db_service_key"`
}

// SomaraDB configura o acesso remoto ao banco do Somara
type SomaraDB struct {
	URL        string `mapstructure:"somara_db_url"`
	ServiceKey string `mapstructure:"somara_db_service_key"`
}

// PushFireDB configura o acesso remoto ao banco do PushFire
type PushFireDB struct {
	URL        string `mapstructure:"pushfire_db_url"`
	ServiceKey string `mapstructure:"pushfire_db_service_key"`
}

type Auth struct {
	SessionSecret string `mapstructure:"auth_session_secret"`
}

type CacheWarmer struct {
	CronSchedule string `mapstructure:"cache_warmer_cron"`
	Enabled      bool   `mapstructure:"cache_warmer_enabled"`
	RangeStart   string `mapstructure:"cache_warmer_range_start"`
	RangeEnd     string `mapstructure:"cache_warmer_range_end"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/metrics")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("CACHE_BACKEND", "postgres")
	viper.SetDefault("CACHE_TTL_MINUTES", 15)
	viper.SetDefault("CACHE_REDIS_ADDR", "localhost:6379")
	viper.SetDefault("CACHE_REDIS_PASSWORD", "")
	viper.SetDefault("CACHE_REDIS_DB", 0)

	viper.SetDefault("ANALYTICS_BASE_URL", "https://analyticsdata.googleapis.com/v1beta")
	viper.SetDefault("ANALYTICS_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("ANALYTICS_PROPERTY_ID_SOMARA", "")
	viper.SetDefault("ANALYTICS_PROPERTY_ID_ULINK", "")
	viper.SetDefault("ANALYTICS_PROPERTY_ID_PUSHFIRE", "")

	viper.SetDefault("ULINK_DB_URL", "")
	viper.SetDefault("ULINK_DB_SERVICE_KEY", "")
	viper.SetDefault("SOMARA_DB_URL", "")
	viper.SetDefault("SOMARA_DB_SERVICE_KEY", "")
	viper.SetDefault("PUSHFIRE_DB_URL", "")
	viper.SetDefault("PUSHFIRE_DB_SERVICE_KEY", "")

	viper.SetDefault("AUTH_SESSION_SECRET", "your_session_secret")

	// Defaults do aquecedor de cache
	viper.SetDefault("CACHE_WARMER_CRON", "*/10 * * * *") // A cada 10 minutos
	viper.SetDefault("CACHE_WARMER_ENABLED", false)
	viper.SetDefault("CACHE_WARMER_RANGE_START", "30daysAgo")
	viper.SetDefault("CACHE_WARMER_RANGE_END", "today")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	config.Cache.TTL = time.Duration(config.Cache.TTLMinutes) * time.Minute

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Products monta o registro de produtos do dashboard a partir da configuração
func (c *Config) Products() []domain.Product {
	return []domain.Product{
		{
			Slug:              domain.ProductSomara,
			Name:              "Somara",
			AnalyticsProperty: c.Analytics.PropertyIDSomara,
			HasSomaraMetrics:  true,
		},
		{
			Slug:               domain.ProductULink,
			Name:               "ULink",
			AnalyticsProperty:  c.Analytics.PropertyIDULink,
			HasBusinessMetrics: true,
		},
		{
			Slug:               domain.ProductPushFire,
			Name:               "PushFire",
			AnalyticsProperty:  c.Analytics.PropertyIDPushFire,
			HasPushFireMetrics: true,
		},
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
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
