package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa a configuração da aplicação (leitura via Viper de env e opcionalmente arquivo).
type Config struct {
	App      AppConfig
	Log      LogConfig
	Migrator MigratorConfig
}

// AppConfig configuração geral da aplicação.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig nível de log (trace, debug, info, warn, error).
type LogConfig struct {
	Level string
}

// MigratorConfig parâmetros do pipeline de migração de dados legados.
type MigratorConfig struct {
	Input  string // caminho do dump legado (JSON)
	Output string // caminho do arquivo de saída ("" ou "-" = stdout)
	Format string // raw | relational | auto
}

// Load lê a configuração de variáveis de ambiente (e opcionalmente de arquivo .env).
// As env vars têm prioridade. Nomes esperados: APP_ENV, LOG_LEVEL, MIGRATOR_INPUT, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: arquivo de configuração (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos erro se não existir

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "labstock"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		Migrator: MigratorConfig{
			Input:  getString(v, "MIGRATOR_INPUT", ""),
			Output: getString(v, "MIGRATOR_OUTPUT", "-"),
			Format: getString(v, "MIGRATOR_FORMAT", "auto"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}
