package config

import (
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/cristianadrielbraun/qrstyle/internal/logger"
)

// EnvPrefix namespaces environment overrides: QRCODE_SERVER_ADDRESS etc.
const EnvPrefix = "QRCODE"

type Config struct {
	Server Server        `mapstructure:"server"`
	CORS   CORS          `mapstructure:"cors"`
	Logo   Logo          `mapstructure:"logo"`
	Log    logger.Config `mapstructure:"log"`
}

type Server struct {
	Address           string        `mapstructure:"address"`
	Mode              string        `mapstructure:"mode"`
	MaxBodyBytes      int64         `mapstructure:"max_body_bytes"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
}

type CORS struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Logo struct {
	MaxBytes  int `mapstructure:"max_bytes"`
	MaxPixels int `mapstructure:"max_pixels"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.max_body_bytes", 8<<20)
	v.SetDefault("server.read_header_timeout", 5*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("logo.max_bytes", 5<<20)
	v.SetDefault("logo.max_pixels", 16_000_000)
	v.SetDefault("log.debug", false)
	v.SetDefault("log.to_file", false)
	v.SetDefault("log.dir", "logs")
	v.SetDefault("log.name", "qrstyle")
}

// Load reads config.yaml from dir when present, then applies QRCODE_*
// environment overrides. A missing file is not an error; a broken one is.
func Load(dir string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "read config")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}

	// Hosting platforms hand out the port through PORT.
	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Address = ":" + port
	}
	switch cfg.Server.Mode {
	case "debug", "release", "test":
	default:
		return nil, errors.Errorf("server.mode %q: want debug, release or test", cfg.Server.Mode)
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = []string{"*"}
	}
	return &cfg, nil
}
