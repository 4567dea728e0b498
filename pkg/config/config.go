package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente .env).
type Config struct {
	App     AppConfig
	Mongo   MongoConfig
	JWT     JWTConfig
	HTTP    HTTPConfig
	Payslip PayslipConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// MongoConfig conexión al almacén de documentos.
type MongoConfig struct {
	URI               string
	Database          string
	UsersCollection   string
	PayrollCollection string // nombre legacy: "payrolls"
	Timeout           time.Duration
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host        string
	Port        int
	CORSOrigins string // lista separada por comas, "*" por defecto
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// PayslipConfig textos de cabecera del PDF del desprendible.
type PayslipConfig struct {
	OrgName string
	OrgUnit string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde .env).
// Las env vars del proceso tienen prioridad sobre el archivo.
func Load() (*Config, error) {
	// godotenv no sobreescribe variables ya definidas en el entorno.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "payslip-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		Mongo: MongoConfig{
			URI:               getString(v, "MONGO_URI", ""),
			Database:          getString(v, "MONGO_DATABASE", "payslip"),
			UsersCollection:   getString(v, "MONGO_USERS_COLLECTION", "users"),
			PayrollCollection: getString(v, "MONGO_PAYROLL_COLLECTION", "payrolls"),
			Timeout:           time.Duration(getInt(v, "MONGO_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 24*60),
			Issuer:     getString(v, "JWT_ISSUER", "payslip-api"),
		},
		HTTP: HTTPConfig{
			Host:        getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:        getInt(v, "HTTP_PORT", 5000),
			CORSOrigins: getString(v, "CORS_ALLOWED_ORIGINS", "*"),
		},
		Payslip: PayslipConfig{
			OrgName: getString(v, "PAYSLIP_ORG_NAME", "FEDERAL GOVERNMENT OF NIGERIA"),
			OrgUnit: getString(v, "PAYSLIP_ORG_UNIT", "NIGERIA IMMIGRATION SERVICE"),
		},
	}

	return cfg, nil
}

// Validate exige los valores sin los que el servidor no puede arrancar.
func (c *Config) Validate() error {
	var errs []error
	if c.Mongo.URI == "" {
		errs = append(errs, errors.New("MONGO_URI es requerido"))
	}
	if c.JWT.Secret == "" {
		errs = append(errs, errors.New("JWT_SECRET es requerido"))
	}
	if c.JWT.Expiration <= 0 {
		errs = append(errs, errors.New("JWT_EXPIRATION_MINUTES debe ser positivo"))
	}
	return errors.Join(errs...)
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		if s := strings.TrimSpace(v.GetString(key)); s != "" {
			return s
		}
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
