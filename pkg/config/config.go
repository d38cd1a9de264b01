package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Password     PasswordConfig
	Checkout     CheckoutConfig
	Invoice      InvoiceConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"TT_APP_ENV" required:"true"`
	Port         string `envconfig:"TT_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"TT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"TT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"TT_DB_DSN"`
	Driver string `envconfig:"TT_DB_DRIVER" default:"postgres"`

	Host     string `envconfig:"TT_DB_HOST"`
	Port     int    `envconfig:"TT_DB_PORT" default:"5432"`
	User     string `envconfig:"TT_DB_USER"`
	Password string `envconfig:"TT_DB_PASSWORD"`
	Name     string `envconfig:"TT_DB_NAME"`
	SSLMode  string `envconfig:"TT_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"TT_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"TT_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"TT_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"TT_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"TT_REDIS_URL" required:"true"`
	Address      string        `envconfig:"TT_REDIS_ADDR"`
	Password     string        `envconfig:"TT_REDIS_PASSWORD"`
	DB           int           `envconfig:"TT_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"TT_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"TT_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"TT_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"TT_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"TT_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"TT_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"TT_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"TT_JWT_EXPIRATION_MINUTES" required:"true"`
	RefreshTokenTTLMinutes int    `envconfig:"TT_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"TT_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"TT_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"TT_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"TT_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"TT_ARGON_KEY_LEN" default:"32"`
}

// CheckoutConfig holds the order placement knobs. The tax rate and the
// state/district table ship with compiled-in defaults so a bare environment
// still behaves like the storefront.
type CheckoutConfig struct {
	TaxRate       string `envconfig:"TT_CHECKOUT_TAX_RATE" default:"0.18"`
	DistrictsFile string `envconfig:"TT_CHECKOUT_DISTRICTS_FILE"`
}

type InvoiceConfig struct {
	BrandName     string        `envconfig:"TT_INVOICE_BRAND_NAME" default:"TIRUPUR THREADS"`
	BrandTagline  string        `envconfig:"TT_INVOICE_BRAND_TAGLINE" default:"Premium Apparel · Cash on Delivery"`
	RenderTimeout time.Duration `envconfig:"TT_INVOICE_RENDER_TIMEOUT" default:"30s"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"TT_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	values := map[string]string{
		EnvDBHost: db.Host,
		EnvDBUser: db.User,
		EnvDBName: db.Name,
	}
	for _, env := range requiredDBEnvVars {
		if values[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.User)
	if db.Password != "" {
		userInfo = url.UserPassword(db.User, db.Password)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   db.Name,
	}

	if db.SSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.SSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
