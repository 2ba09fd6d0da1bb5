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
)

type Config struct {
	App               App               `mapstructure:",squash"`
	Server            Server            `mapstructure:",squash"`
	Database          Database          `mapstructure:",squash"`
	Auth              Auth              `mapstructure:",squash"`
	Generator         Generator         `mapstructure:",squash"`
	MonthlyReportSync MonthlyReportSync `mapstructure:",squash"`
	Metrics           Metrics           `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`

	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type Auth struct {
	SecretKey string        `mapstructure:"secret_key"`
	TokenTTL  time.Duration `mapstructure:"auth_token_ttl"`
}

// Generator define as faixas usadas para simular visualizações
type Generator struct {
	WeekViewsMin   int `mapstructure:"generator_week_views_min"`
	WeekViewsMax   int `mapstructure:"generator_week_views_max"`
	ReportViewsMin int `mapstructure:"generator_report_views_min"`
	ReportViewsMax int `mapstructure:"generator_report_views_max"`
}

type MonthlyReportSync struct {
	CronSchedule        string `mapstructure:"monthly_report_sync_cron"`
	RequestDelaySeconds int    `mapstructure:"monthly_report_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"monthly_report_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"monthly_report_sync_enabled"`
}

type Metrics struct {
	Enabled   bool   `mapstructure:"metrics_enabled"`
	Namespace string `mapstructure:"metrics_namespace"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/copilot?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("GENERATOR_WEEK_VIEWS_MIN", 500)
	viper.SetDefault("GENERATOR_WEEK_VIEWS_MAX", 1500)
	viper.SetDefault("GENERATOR_REPORT_VIEWS_MIN", 200)
	viper.SetDefault("GENERATOR_REPORT_VIEWS_MAX", 1000)

	viper.SetDefault("MONTHLY_REPORT_SYNC_CRON", "0 5 1 * *")        // No primeiro dia de cada mês às 5h da manhã
	viper.SetDefault("MONTHLY_REPORT_SYNC_REQUEST_DELAY_SECONDS", 1) // 1 segundo entre usuários
	viper.SetDefault("MONTHLY_REPORT_SYNC_MAX_CONCURRENT_JOBS", 3)   // 3 jobs concorrentes
	viper.SetDefault("MONTHLY_REPORT_SYNC_ENABLED", false)

	viper.SetDefault("METRICS_ENABLED", true)
	viper.SetDefault("METRICS_NAMESPACE", "business_copilot")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	return load()
}

// load decodifica o estado atual do viper e deriva os campos calculados
func load() (*Config, error) {
	config := &Config{}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.Generator.WeekViewsMax <= config.Generator.WeekViewsMin {
		return nil, fmt.Errorf("faixa de visualizações semanais inválida: %d-%d", config.Generator.WeekViewsMin, config.Generator.WeekViewsMax)
	}

	if config.Generator.ReportViewsMax <= config.Generator.ReportViewsMin {
		return nil, fmt.Errorf("faixa de visualizações mensais inválida: %d-%d", config.Generator.ReportViewsMin, config.Generator.ReportViewsMax)
	}

	if config.MonthlyReportSync.MaxConcurrentJobs < 1 {
		config.MonthlyReportSync.MaxConcurrentJobs = 1
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
