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
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Bot            Bot            `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	Reports        Reports        `mapstructure:",squash"`
	ReportJanitor  ReportJanitor  `mapstructure:",squash"`
	AllowedOrigins []string       `mapstructure:"allowed_origins"`
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
	SSLMode  string `mapstructure:"database_sslmode"`

	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Bot reúne as configurações do front end no Telegram
type Bot struct {
	Token       string        `mapstructure:"bot_token"`
	APIURL      string        `mapstructure:"api_url"`
	WebAppURL   string        `mapstructure:"webapp_url"`
	HTTPTimeout time.Duration `mapstructure:"bot_http_timeout"`
}

// Auth guarda o segredo compartilhado entre o bot e a API.
// Com o segredo vazio a API não exige token.
type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Reports struct {
	SpoolDir string `mapstructure:"report_spool_dir"`
	FontPath string `mapstructure:"report_font_path"`
}

type ReportJanitor struct {
	CronSchedule string        `mapstructure:"report_janitor_cron"`
	MaxAge       time.Duration `mapstructure:"report_janitor_max_age"`
	Enabled      bool          `mapstructure:"report_janitor_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("BOT_TOKEN", "")
	viper.SetDefault("API_URL", "http://localhost:8000")
	viper.SetDefault("WEBAPP_URL", "https://localhost:3000")
	viper.SetDefault("BOT_HTTP_TIMEOUT", "30s")

	viper.SetDefault("AUTH_SECRET", "")

	viper.SetDefault("REPORT_SPOOL_DIR", os.TempDir())
	viper.SetDefault("REPORT_FONT_PATH", "")

	viper.SetDefault("REPORT_JANITOR_CRON", "*/30 * * * *") // A cada 30 minutos
	viper.SetDefault("REPORT_JANITOR_MAX_AGE", "1h")
	viper.SetDefault("REPORT_JANITOR_ENABLED", true)

	viper.SetDefault("ALLOWED_ORIGINS", "*")

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

	config.Database.DSN = BuildDSN(config.Database)

	return config, nil
}

// BuildDSN monta a string de conexão do PostgreSQL
func BuildDSN(db Database) string {
	dsn := fmt.Sprintf(
		"%s://%s:%s@%s",
		db.Driver,
		db.User,
		db.Password,
		db.URL,
	)

	if db.SSLMode != "" {
		dsn = fmt.Sprintf("%s?sslmode=%s", dsn, db.SSLMode)
	}

	return dsn
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
