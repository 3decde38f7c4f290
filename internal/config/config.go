// Package config gerencia as configurações do aplicativo
// carregando variáveis de ambiente do arquivo .env
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config armazena todas as configurações da aplicação
type Config struct {
	// Servidor
	Port     string
	Env      string
	LogLevel string

	// Consultas externas (CEP e CNPJ)
	Lookup LookupConfig

	// Tabelas da folha
	Payroll PayrollConfig

	// PIX
	Pix PixConfig
}

// LookupConfig armazena os endereços das APIs públicas de consulta
type LookupConfig struct {
	ViaCEPURL    string
	BrasilAPIURL string
	Timeout      time.Duration
}

// PayrollConfig armazena a origem das tabelas de IRPF, INSS e FGTS
type PayrollConfig struct {
	TablesPath string // Vazio usa as tabelas embutidas
}

// PixConfig armazena opções de geração do QR Code
type PixConfig struct {
	QRSize int // Lado da imagem em pixels
}

// Load carrega as configurações do arquivo .env e variáveis de ambiente
// O arquivo .env é opcional - variáveis de ambiente têm prioridade
func Load() (*Config, error) {
	// Tenta carregar .env (ignora erro se não existir)
	_ = godotenv.Load()

	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Lookup: LookupConfig{
			ViaCEPURL:    getEnv("VIACEP_URL", "https://viacep.com.br"),
			BrasilAPIURL: getEnv("BRASILAPI_URL", "https://brasilapi.com.br"),
			Timeout:      getEnvDuration("LOOKUP_TIMEOUT", 10*time.Second),
		},
		Payroll: PayrollConfig{
			TablesPath: getEnv("PAYROLL_TABLES_PATH", ""),
		},
		Pix: PixConfig{
			QRSize: getEnvInt("PIX_QR_SIZE", 256),
		},
	}

	// Validação básica
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate verifica se as configurações estão dentro dos limites aceitos
func (c *Config) validate() error {
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("PORT deve ser numérica: %q", c.Port)
	}
	if c.Lookup.Timeout <= 0 {
		return fmt.Errorf("LOOKUP_TIMEOUT deve ser positivo")
	}
	if c.Pix.QRSize < 64 || c.Pix.QRSize > 1024 {
		return fmt.Errorf("PIX_QR_SIZE deve estar entre 64 e 1024, recebido %d", c.Pix.QRSize)
	}
	return nil
}

// IsDevelopment retorna true se estiver em ambiente de desenvolvimento
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction retorna true se estiver em ambiente de produção
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// getEnv obtém uma variável de ambiente ou retorna o valor padrão
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt obtém uma variável de ambiente como int
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvDuration obtém uma variável de ambiente como duração ("10s", "1m")
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
