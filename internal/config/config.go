package config

import (
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
	Storage   Storage   `mapstructure:",squash"`
	Gemini    Gemini    `mapstructure:",squash"`
	SheetSync SheetSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Storage struct {
	DataDir string `mapstructure:"data_dir"`
}

type Gemini struct {
	Endpoint string `mapstructure:"gemini_endpoint"`
	Model    string `mapstructure:"gemini_model"`
	APIKey   string `mapstructure:"gemini_api_key"`
}

type SheetSync struct {
	CronSchedule string `mapstructure:"sheet_sync_cron"`
	SheetURL     string `mapstructure:"sheet_sync_url"`
	Enabled      bool   `mapstructure:"sheet_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATA_DIR", "./data")

	viper.SetDefault("GEMINI_ENDPOINT", "https://generativelanguage.googleapis.com/v1beta/models")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	viper.SetDefault("GEMINI_API_KEY", "")

	// Defaults para a sincronização periódica da planilha publicada
	viper.SetDefault("SHEET_SYNC_CRON", "0 * * * *") // A cada hora cheia
	viper.SetDefault("SHEET_SYNC_URL", "")
	viper.SetDefault("SHEET_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

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

	return config, nil
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
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}
}
