package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	Database Database `mapstructure:",squash"`
	Vendora  Vendora  `mapstructure:",squash"`
	Auth     Auth     `mapstructure:",squash"`
	Warmup   Warmup   `mapstructure:",squash"`
	Winner   Winner   `mapstructure:",squash"`
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

// Vendora concentra a configuração da API da plataforma de commerce
type Vendora struct {
	BaseURL  string `mapstructure:"vendora_base_url"`
	Version  string `mapstructure:"vendora_version"`
	URL      string `mapstructure:"-"`
	APIKey   string `mapstructure:"vendora_api_key"`
	PageSize int    `mapstructure:"vendora_page_size"`
	MaxPages int    `mapstructure:"vendora_max_pages"`
}

type Auth struct {
	// Secret usado para decodificar o token de sessão do iframe
	Secret string `mapstructure:"auth_secret"`
}

// Warmup configura o agendador de pré-cálculo de leaderboards
type Warmup struct {
	CronSchedule string `mapstructure:"warmup_cron"`
	Enabled      bool   `mapstructure:"warmup_enabled"`
	TTLMinutes   int    `mapstructure:"warmup_ttl_minutes"`
}

type Winner struct {
	// PoolCap limita o tamanho do pool de candidatos do sorteio
	PoolCap int `mapstructure:"winner_pool_cap"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/leaderboard")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("VENDORA_BASE_URL", "https://api.vendora.com")
	viper.SetDefault("VENDORA_VERSION", "v2")
	viper.SetDefault("VENDORA_API_KEY", "your_api_key") // ONLY LOCAL
	viper.SetDefault("VENDORA_PAGE_SIZE", 50)
	viper.SetDefault("VENDORA_MAX_PAGES", 40) // Limite duro de paginação por recurso

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("WARMUP_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("WARMUP_ENABLED", false)       // Habilitar pré-cálculo de leaderboards
	viper.SetDefault("WARMUP_TTL_MINUTES", 15)

	viper.SetDefault("WINNER_POOL_CAP", 200)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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

	config.Vendora.URL = fmt.Sprintf("%s/%s", config.Vendora.BaseURL, config.Vendora.Version)

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
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
