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
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	Auth      Auth      `mapstructure:",squash"`
	LLM       LLM       `mapstructure:",squash"`
	Gemini    Gemini    `mapstructure:",squash"`
	OpenAI    OpenAI    `mapstructure:",squash"`
	Azure     Azure     `mapstructure:",squash"`
	Briefing  Briefing  `mapstructure:",squash"`
	Retention Retention `mapstructure:",squash"`
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

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// LLM define qual provedor atende as chamadas de extração e geração.
// A seleção é um valor de configuração; nenhum call site ramifica por
// nome de provedor.
type LLM struct {
	Provider string `mapstructure:"llm_provider"`
}

type Gemini struct {
	BaseURL string `mapstructure:"gemini_base_url"`
	APIKey  string `mapstructure:"gemini_api_key"`
	Model   string `mapstructure:"gemini_model"`
}

type OpenAI struct {
	APIKey string `mapstructure:"openai_api_key"`
	Model  string `mapstructure:"openai_model"`
}

type Azure struct {
	APIKey     string `mapstructure:"azure_openai_api_key"`
	Endpoint   string `mapstructure:"azure_openai_endpoint"`
	APIVersion string `mapstructure:"azure_openai_api_version"`
	Deployment string `mapstructure:"azure_openai_deployment"`
}

type Briefing struct {
	SystemInstruction string `mapstructure:"briefing_system_instruction"`
}

type Retention struct {
	CronSchedule string `mapstructure:"retention_cron"`
	MaxAgeWeeks  int    `mapstructure:"retention_max_age_weeks"`
	Enabled      bool   `mapstructure:"retention_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/briefs")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("LLM_PROVIDER", "gemini")

	viper.SetDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")

	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o")

	viper.SetDefault("AZURE_OPENAI_API_KEY", "")
	viper.SetDefault("AZURE_OPENAI_ENDPOINT", "")
	viper.SetDefault("AZURE_OPENAI_API_VERSION", "2024-06-01")
	viper.SetDefault("AZURE_OPENAI_DEPLOYMENT", "")

	viper.SetDefault("BRIEFING_SYSTEM_INSTRUCTION", "You are an Executive Assistant. Be precise, professional, and data-driven.")

	// Defaults para o job de retenção de métricas semanais
	viper.SetDefault("RETENTION_CRON", "0 2 * * 0")  // Todos os domingos às 2h da manhã
	viper.SetDefault("RETENTION_MAX_AGE_WEEKS", 104) // 2 anos de histórico
	viper.SetDefault("RETENTION_ENABLED", false)     // Desabilitado: semanas gravadas permanecem intactas

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
	viper.AutomaticEnv()

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
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
