package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// DefaultSecretKey é o valor padrão de SECRET_KEY. Serve ao processamento em lote,
// mas a API recusa iniciar com ele.
const DefaultSecretKey = "your_secret_key"

var ErrDefaultSecretKey = errors.New("SECRET_KEY não configurada: defina uma chave própria para a API")

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Pipeline     Pipeline     `mapstructure:",squash"`
	Report       Report       `mapstructure:",squash"`
	Export       Export       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	PipelineSync PipelineSync `mapstructure:",squash"`
	SecretKey    string       `mapstructure:"secret_key" validate:"required"`
}

type App struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format" validate:"omitempty,oneof=text json"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port" validate:"required"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// Pipeline define os caminhos de entrada e saída do processamento
type Pipeline struct {
	InputPath string `mapstructure:"input_path" validate:"required"`
	CleanPath string `mapstructure:"clean_path" validate:"required"`
	OutputDir string `mapstructure:"output_dir" validate:"required"`
}

// Report define os parâmetros dos gráficos
type Report struct {
	ScatterSampleSize int   `mapstructure:"scatter_sample_size" validate:"gt=0"`
	ScatterSampleSeed int64 `mapstructure:"scatter_sample_seed"`
}

type Export struct {
	WorkbookEnabled bool   `mapstructure:"workbook_export_enabled"`
	WorkbookPath    string `mapstructure:"workbook_path" validate:"required_if=WorkbookEnabled true"`
	SummaryEnabled  bool   `mapstructure:"summary_export_enabled"`
	SummaryPath     string `mapstructure:"summary_path" validate:"required_if=SummaryEnabled true"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Enabled  bool   `mapstructure:"database_export_enabled"`
	Driver   string `mapstructure:"database_driver" validate:"oneof=sqlite postgres"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url" validate:"required"`
	User     string `mapstructure:"database_user"`
}

type PipelineSync struct {
	CronSchedule string `mapstructure:"pipeline_sync_cron"`
	Enabled      bool   `mapstructure:"pipeline_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", "8000")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("INPUT_PATH", filepath.Join("data", "raw", "electronics_sales.csv"))
	viper.SetDefault("CLEAN_PATH", filepath.Join("data", "processed", "electronics_sales_cleaned.csv"))
	viper.SetDefault("OUTPUT_DIR", "outputs")

	viper.SetDefault("SCATTER_SAMPLE_SIZE", 1000)
	viper.SetDefault("SCATTER_SAMPLE_SEED", 1)

	viper.SetDefault("WORKBOOK_EXPORT_ENABLED", true)
	viper.SetDefault("WORKBOOK_PATH", filepath.Join("outputs", "sales_report.xlsx"))
	viper.SetDefault("SUMMARY_EXPORT_ENABLED", true)
	viper.SetDefault("SUMMARY_PATH", filepath.Join("outputs", "summary.json"))

	viper.SetDefault("DATABASE_EXPORT_ENABLED", true)
	viper.SetDefault("DATABASE_DRIVER", DriverSQLite)
	viper.SetDefault("DATABASE_URL", filepath.Join("data", "processed", "electronics_sales.sqlite"))
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("PIPELINE_SYNC_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("PIPELINE_SYNC_ENABLED", false)

	viper.SetDefault("SECRET_KEY", DefaultSecretKey)

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")
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
		logrus.Debug("Usando variáveis de ambiente e valores padrão (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = BuildDSN(config.Database)

	if err := Validate(config); err != nil {
		return nil, err
	}

	return config, nil
}

// BuildDSN monta a string de conexão de acordo com o driver configurado
func BuildDSN(db Database) string {
	if db.Driver == DriverPostgres {
		return fmt.Sprintf(
			"%s://%s:%s@%s",
			db.Driver,
			db.User,
			db.Password,
			db.URL,
		)
	}

	return db.URL
}

// Validate verifica as regras declaradas nas tags `validate` da configuração
func Validate(config *Config) error {
	if err := validator.New().Struct(config); err != nil {
		return fmt.Errorf("configuração inválida: %w", err)
	}
	return nil
}

// ValidateAPI verifica os requisitos adicionais da API de relatórios
func ValidateAPI(config *Config) error {
	if config.SecretKey == "" || config.SecretKey == DefaultSecretKey {
		return ErrDefaultSecretKey
	}
	return nil
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
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
