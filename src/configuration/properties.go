package configuration

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	AssetProviderCloudinary = "cloudinary"
	AssetProviderMinio      = "minio"
	AssetProviderNone       = "none"

	AuthModeOIDC = "oidc"
	AuthModeJWT  = "jwt"

	DatabaseDriverPostgres = "postgres"
	DatabaseDriverSQLite   = "sqlite"
)

type (
	Properties struct {
		LogLevel string `env:"LOG_LEVEL" envDefault:"DEBUG"`

		Auth       AuthProperties       `envPrefix:"AUTH_"`
		Database   DatabaseProperties   `envPrefix:"DB_"`
		Asset      AssetProperties      `envPrefix:"ASSET_"`
		S3         S3Properties         `envPrefix:"S3_"`
		Cloudinary CloudinaryProperties `envPrefix:"CLOUDINARY_"`
		Server     HttpServerProperties `envPrefix:"HTTP_"`
	}

	AuthProperties struct {
		Mode                   string `env:"MODE" envDefault:"jwt"`
		Host                   string `env:"HOST" envDefault:"https://accounts.example.com"`
		ID                     string `env:"ID"`
		Secret                 string `env:"SECRET"`
		Redirect               string `env:"REDIRECT_URL" envDefault:"http://localhost:8088/callback"`
		SigningKey             string `env:"SIGNING_KEY"`
		AccessTokenCookieName  string `env:"ACCESS_COOKIE" envDefault:"sa_access_token"`
		RefreshTokenCookieName string `env:"REFRESH_COOKIE" envDefault:"sa_refresh_token"`
		IDTokenCookieName      string `env:"ID_COOKIE" envDefault:"sa_id_token"`
		StateCookieName        string `env:"STATE_COOKIE" envDefault:"sa_oauth_state"`
	}

	DatabaseProperties struct {
		Driver string `env:"DRIVER" envDefault:"sqlite"`
		URL    string `env:"URL" envDefault:":memory:"`
	}

	AssetProperties struct {
		Provider string        `env:"PROVIDER" envDefault:"cloudinary"`
		Timeout  time.Duration `env:"TIMEOUT" envDefault:"10s"`
	}

	HttpServerProperties struct {
		Name         string        `env:"NAME" envDefault:"localhost"`
		Port         string        `env:"PORT" envDefault:"8088"`
		ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
		AllowOrigins []string      `env:"ALLOW_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
		Pprof        bool          `env:"PPROF" envDefault:"false"`
		Release      bool          `env:"RELEASE" envDefault:"false"`
	}

	S3Properties struct {
		Host      string `env:"HOST" envDefault:"localhost:9000"`
		AccessKey string `env:"ACCESS_KEY"`
		SecretKey string `env:"SECRET_KEY"`
		Bucket    string `env:"BUCKET" envDefault:"storeadmin"`
		Folder    string `env:"FOLDER"`
		UseSSL    bool   `env:"USE_SSL" envDefault:"true"`
	}

	// CloudinaryProperties accepts either a full cloudinary:// URL or the
	// three separate credentials.
	CloudinaryProperties struct {
		URL       string `env:"URL"`
		CloudName string `env:"CLOUD_NAME"`
		APIKey    string `env:"API_KEY"`
		APISecret string `env:"API_SECRET"`
	}
)

// ParseProperties reads the environment into a Properties value.
func ParseProperties() (*Properties, error) {
	config := &Properties{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("read config error: %w", err)
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// ReadProperties loads an optional .env file and then the environment.
// It panics on invalid configuration.
func ReadProperties() *Properties {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded, using process environment")
	}
	config, err := ParseProperties()
	if err != nil {
		panic(err)
	}
	return config
}

func (p *Properties) validate() error {
	switch p.Auth.Mode {
	case AuthModeOIDC:
	case AuthModeJWT:
		if p.Auth.SigningKey == "" {
			return fmt.Errorf("read config error: AUTH_SIGNING_KEY is required in %s mode", AuthModeJWT)
		}
	default:
		return fmt.Errorf("read config error: unknown AUTH_MODE %q", p.Auth.Mode)
	}
	switch p.Database.Driver {
	case DatabaseDriverPostgres, DatabaseDriverSQLite:
	default:
		return fmt.Errorf("read config error: unknown DB_DRIVER %q", p.Database.Driver)
	}
	switch p.Asset.Provider {
	case AssetProviderCloudinary, AssetProviderMinio, AssetProviderNone:
	default:
		return fmt.Errorf("read config error: unknown ASSET_PROVIDER %q", p.Asset.Provider)
	}
	return nil
}
