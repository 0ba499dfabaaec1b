package infra

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config — корневая структура конфигурации плагина.
type Config struct {
	Orchestrator OrchestratorConfig `mapstructure:"orchestrator"`
	Plugin       PluginConfig       `mapstructure:"plugin"`
	Ops          OpsConfig          `mapstructure:"ops"`
	Persistence  PersistenceConfig  `mapstructure:"persistence"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Redis        RedisConfig        `mapstructure:"redis"`
	Engine       EngineConfig       `mapstructure:"engine"`
	Logger       LoggerConfig       `mapstructure:"logger"`
}

// OrchestratorConfig — куда регистрироваться и с какой настойчивостью.
type OrchestratorConfig struct {
	Host          string        `mapstructure:"host"`
	Port          int           `mapstructure:"port"`
	RetryCount    uint          `mapstructure:"retry_count"`
	RetryInterval time.Duration `mapstructure:"retry_interval"`
}

// Addr — адрес оркестратора в форме host:port.
func (c OrchestratorConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// PluginConfig — паспорт плагина и адрес обратного вызова,
// который заявляется при регистрации.
type PluginConfig struct {
	Name           string            `mapstructure:"name"`
	Version        string            `mapstructure:"version"`
	Type           string            `mapstructure:"type"`
	Description    string            `mapstructure:"description"`
	HostAddress    string            `mapstructure:"host_address"`
	AdvertisedPort int32             `mapstructure:"advertised_port"`
	Extra          map[string]string `mapstructure:"extra"`
}

// OpsConfig описывает настройки диагностического HTTP-сервера.
type OpsConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// PersistenceConfig выбирает бэкенд зеркала: memory, file, postgres, redis.
type PersistenceConfig struct {
	Backend string `mapstructure:"backend"`
	BaseDir string `mapstructure:"base_dir"` // для file
}

// DatabaseConfig описывает подключение к PostgreSQL.
type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

// RedisConfig описывает подключение к Redis.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// EngineConfig — специфичные настройки движка ключей.
type EngineConfig struct {
	// token bucket командного слоя
	RateLimit float64 `mapstructure:"rate_limit"`
	RateBurst int     `mapstructure:"rate_burst"`
}

// LoggerConfig настраивает поведение zap логгера.
type LoggerConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, console
}

// LoadConfig инициализирует конфигурацию, объединяя значения из файла и ENV.
func LoadConfig() (*Config, error) {
	v := viper.New()

	// 1. Настройка поиска файла
	v.SetConfigName("config")    // имя файла без расширения
	v.SetConfigType("yaml")      // формат
	v.AddConfigPath(".")         // ищем в корне
	v.AddConfigPath("./configs") // и в папке с конфигами

	// 2. Настройка переменных окружения (ENV)
	// Позволяет перекрывать конфиг: ORCHESTRATOR_PORT=50051 перекроет orchestrator.port
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 3. Установка дефолтных значений
	setDefaults(v)

	// 4. Чтение файла
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Если файла нет — работаем на ENV и дефолтах
	}

	// 5. Маппинг в структуру
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("orchestrator.host", "127.0.0.1")
	v.SetDefault("orchestrator.port", 50051)
	v.SetDefault("orchestrator.retry_count", 5)
	v.SetDefault("orchestrator.retry_interval", 3*time.Second)

	v.SetDefault("plugin.name", "key-management-plugin")
	v.SetDefault("plugin.version", "1.0.0")
	v.SetDefault("plugin.type", "key_management")
	v.SetDefault("plugin.description", "Cryptographic key lifecycle management plugin")
	v.SetDefault("plugin.host_address", "127.0.0.1")
	v.SetDefault("plugin.advertised_port", 50052)

	v.SetDefault("ops.host", "127.0.0.1")
	v.SetDefault("ops.port", 8080)
	v.SetDefault("ops.read_timeout", 5*time.Second)
	v.SetDefault("ops.write_timeout", 10*time.Second)

	v.SetDefault("persistence.backend", "file")
	v.SetDefault("persistence.base_dir", "./data")

	v.SetDefault("engine.rate_limit", 100)
	v.SetDefault("engine.rate_burst", 20)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
}
