package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración del servicio (Viper: variables de entorno y,
// opcionalmente, archivo .env / config.env).
type Config struct {
	App  AppConfig
	HTTP HTTPConfig
	DOI  DOIConfig
}

// AppConfig configuración general.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
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

// DOIConfig parámetros de validación de documentos de identidad.
type DOIConfig struct {
	StrictDefault bool // modo por defecto cuando la petición no indica "strict"
	BatchMaxItems int  // máximo de ítems por lote de validación
}

// Load lee la configuración. Las variables de entorno tienen prioridad sobre el archivo.
// Nombres esperados: APP_ENV, APP_NAME, LOG_LEVEL, HTTP_HOST, HTTP_PORT,
// DOI_STRICT_DEFAULT, DOI_BATCH_MAX_ITEMS.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // opcional

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // opcional

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	batchMax, err := getInt(v, "DOI_BATCH_MAX_ITEMS", 500)
	if err != nil {
		return nil, err
	}
	if batchMax <= 0 {
		return nil, fmt.Errorf("config: DOI_BATCH_MAX_ITEMS debe ser positivo, se recibió %d", batchMax)
	}
	port, err := getInt(v, "HTTP_PORT", 8080)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "validador-doi"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: port,
		},
		DOI: DOIConfig{
			StrictDefault: getBool(v, "DOI_STRICT_DEFAULT", false),
			BatchMaxItems: batchMax,
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

func getInt(v *viper.Viper, key string, def int) (int, error) {
	if !v.IsSet(key) {
		return def, nil
	}
	switch v.Get(key).(type) {
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return 0, fmt.Errorf("config: %s debe ser un entero: %w", key, err)
		}
		return n, nil
	default:
		return v.GetInt(key), nil
	}
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
