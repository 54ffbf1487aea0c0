package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Storage StorageConfig
	JWT     JWTConfig
	Stock   StockConfig
	Redis   RedisConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Drivers de almacenamiento soportados.
const (
	DriverSQLite = "sqlite"
	DriverFile   = "file"
)

// StorageConfig selecciona el backend de persistencia una sola vez, en el arranque.
// sqlite: base embebida (un archivo .db); file: colecciones JSON bajo DataDir.
type StorageConfig struct {
	Driver     string // sqlite | file
	SQLitePath string // ruta del archivo .db (driver sqlite)
	DataDir    string // directorio de colecciones JSON (driver file)
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// StockConfig parámetros del rastreador de stock.
type StockConfig struct {
	HistorySize       int // capacidad del buffer circular de auditoría
	LowStockThreshold int // umbral global si el producto no define ReorderLevel
}

// RedisConfig configuración del publicador de eventos en Redis (opcional, multi-instancia).
type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo .env).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, STORAGE_DRIVER, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "pyme-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Storage: StorageConfig{
			Driver:     getString(v, "STORAGE_DRIVER", DriverFile),
			SQLitePath: getString(v, "SQLITE_PATH", "./data/pyme.db"),
			DataDir:    getString(v, "DATA_DIR", "./data"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "pyme-api"),
		},
		Stock: StockConfig{
			HistorySize:       getInt(v, "STOCK_HISTORY_SIZE", 1000),
			LowStockThreshold: getInt(v, "LOW_STOCK_THRESHOLD", 5),
		},
		Redis: RedisConfig{
			Enabled:  getBool(v, "REDIS_EVENTS_ENABLED", false),
			Addr:     getString(v, "REDIS_ADDR", "localhost:6379"),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
		},
	}

	if cfg.Storage.Driver != DriverSQLite && cfg.Storage.Driver != DriverFile {
		return nil, fmt.Errorf("STORAGE_DRIVER inválido: %q (use %s o %s)", cfg.Storage.Driver, DriverSQLite, DriverFile)
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
