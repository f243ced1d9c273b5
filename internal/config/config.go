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
	Redis             Redis             `mapstructure:",squash"`
	Auth              Auth              `mapstructure:",squash"`
	Valuation         Valuation         `mapstructure:",squash"`
	ValuationSnapshot ValuationSnapshot `mapstructure:",squash"`
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

	MaxOpenConns int `mapstructure:"database_max_open_conns"`
	MaxIdleConns int `mapstructure:"database_max_idle_conns"`
}

type Redis struct {
	Enabled  bool          `mapstructure:"redis_enabled"`
	Addr     string        `mapstructure:"redis_addr"`
	Password string        `mapstructure:"redis_password"`
	DB       int           `mapstructure:"redis_db"`
	CacheTTL time.Duration `mapstructure:"redis_cache_ttl"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret          string        `mapstructure:"auth_secret"`
	TokenExpiration time.Duration `mapstructure:"auth_token_expiration"`
}

// Valuation reúne os pontos de configuração do motor de valuation
type Valuation struct {
	DefaultDiscountRate      float64 `mapstructure:"valuation_default_discount_rate"`
	DefaultGrowthRate        float64 `mapstructure:"valuation_default_growth_rate"`
	DefaultProjectionYears   int     `mapstructure:"valuation_default_projection_years"`
	EstimatedUnitsPerProduct float64 `mapstructure:"valuation_estimated_units_per_product"`
	TerminalPolicy           string  `mapstructure:"valuation_terminal_policy"`
	TerminalClampSpread      float64 `mapstructure:"valuation_terminal_clamp_spread"`
	CompoundCosts            bool    `mapstructure:"valuation_projection_compound_costs"`
	HonorPreferredMethod     bool    `mapstructure:"valuation_honor_preferred_method"`
	WeightDCF                float64 `mapstructure:"valuation_weight_dcf"`
	WeightEbitda             float64 `mapstructure:"valuation_weight_ebitda"`
	WeightReceita            float64 `mapstructure:"valuation_weight_receita"`
}

type ValuationSnapshot struct {
	CronSchedule      string `mapstructure:"valuation_snapshot_cron"`
	MaxConcurrentJobs int    `mapstructure:"valuation_snapshot_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"valuation_snapshot_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/valuation?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)

	viper.SetDefault("REDIS_ENABLED", false)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_CACHE_TTL", "10m")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_EXPIRATION", "24h")

	// Defaults do motor de valuation
	viper.SetDefault("VALUATION_DEFAULT_DISCOUNT_RATE", 0.12)      // 12% ao ano
	viper.SetDefault("VALUATION_DEFAULT_GROWTH_RATE", 0.05)        // 5% ao ano
	viper.SetDefault("VALUATION_DEFAULT_PROJECTION_YEARS", 5)      // 5 anos de projeção
	viper.SetDefault("VALUATION_ESTIMATED_UNITS_PER_PRODUCT", 10)  // receita estimada = soma dos preços * 10
	viper.SetDefault("VALUATION_TERMINAL_POLICY", "omit")          // omit | clamp
	viper.SetDefault("VALUATION_TERMINAL_CLAMP_SPREAD", 0.01)      // usado apenas com clamp
	viper.SetDefault("VALUATION_PROJECTION_COMPOUND_COSTS", false) // custos constantes na projeção
	viper.SetDefault("VALUATION_HONOR_PREFERRED_METHOD", true)     // usa o método preferido da empresa quando houver
	viper.SetDefault("VALUATION_WEIGHT_DCF", 1)
	viper.SetDefault("VALUATION_WEIGHT_EBITDA", 1)
	viper.SetDefault("VALUATION_WEIGHT_RECEITA", 1)

	// Defaults para o histórico de valuation
	viper.SetDefault("VALUATION_SNAPSHOT_CRON", "0 5 1 * *")      // No primeiro dia de cada mês às 5h da manhã
	viper.SetDefault("VALUATION_SNAPSHOT_MAX_CONCURRENT_JOBS", 3) // 3 empresas processadas em paralelo
	viper.SetDefault("VALUATION_SNAPSHOT_ENABLED", false)         // Habilitar histórico automático

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
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
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
