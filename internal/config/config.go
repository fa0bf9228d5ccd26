package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
// Секреты (API-ключи) подставляются из переменных окружения,
// сами переменные загружаются из .env в main через godotenv
type Config struct {
	Server      ServerConfig      `toml:"server"`
	Database    DatabaseConfig    `toml:"database"`
	Logs        LogsConfig        `toml:"logs"`
	Metrics     MetricsConfig     `toml:"metrics"`
	TableStore  TableStoreConfig  `toml:"tablestore"`
	PushChannel PushChannelConfig `toml:"pushchannel"`
	Cache       CacheConfig       `toml:"cache"`
	Booking     BookingConfig     `toml:"booking"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// DatabaseConfig настройки подключения к Postgres
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения к Postgres
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// TableStoreConfig настройки клиента внешнего табличного хранилища
type TableStoreConfig struct {
	URL           string `toml:"url"`
	APIKeyEnv     string `toml:"api_key_env"` // имя переменной окружения с ключом
	Timeout       int    `toml:"timeout"`     // секунды
	ServicesTable string `toml:"services_table"`
	StaffTable    string `toml:"staff_table"`
	ClientsTable  string `toml:"clients_table"`
	MessagesTable string `toml:"messages_table"`
	RevenueTable  string `toml:"revenue_table"`
}

// APIKey возвращает API-ключ из переменной окружения
func (c TableStoreConfig) APIKey() string {
	return os.Getenv(c.APIKeyEnv)
}

// PushChannelConfig настройки клиента push-канала сообщений
type PushChannelConfig struct {
	URL       string `toml:"url"`
	APIKeyEnv string `toml:"api_key_env"`
	Timeout   int    `toml:"timeout"` // секунды
}

// APIKey возвращает API-ключ из переменной окружения
func (c PushChannelConfig) APIKey() string {
	return os.Getenv(c.APIKeyEnv)
}

// CacheConfig настройки Redis-кэша для каталога услуг и справочника сотрудников
type CacheConfig struct {
	Enabled    bool   `toml:"enabled"`
	Addr       string `toml:"addr"`
	Password   string `toml:"password"`
	DB         int    `toml:"db"`
	TTLSeconds int    `toml:"ttl_seconds"`
}

// BookingConfig настройки расчёта доступности
type BookingConfig struct {
	// AlternativeWindowDays количество дней до и после запрошенной даты
	// при поиске альтернативной доступности (0 = значение по умолчанию)
	AlternativeWindowDays int `toml:"alternative_window_days"`
}

// Load читает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if c.TableStore.URL == "" {
		return fmt.Errorf("config: tablestore.url is required")
	}
	if c.Logs.File == "" {
		return fmt.Errorf("config: logs.file is required")
	}
	return nil
}
