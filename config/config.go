package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "TECHTROVE_CONFIG_FILE"

type catalog struct {
	URL         string        `mapstructure:"url"`
	Timeout     time.Duration `mapstructure:"timeout"`
	MaxAttempts int           `mapstructure:"max_attempts"`
}

type price struct {
	Delay          time.Duration `mapstructure:"delay"`
	DiscountCookie string        `mapstructure:"discount_cookie"`
}

type Config struct {
	LogLevel       slog.Level `mapstructure:"-"`
	RawLogLevel    string     `mapstructure:"log_level"`
	HTTPServerAddr string     `mapstructure:"http_server_addr"`
	Catalog        catalog    `mapstructure:"catalog"`
	Price          price      `mapstructure:"price"`
}

func Load() Config {
	cfg, err := LoadFile(getConfigFilepath())
	if err != nil {
		die(err)
	}
	return cfg
}

// LoadFile reads the YAML config at path over the defaults.
// An empty path loads the defaults only.
func LoadFile(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.UnmarshalExact(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(cfg.RawLogLevel)); err != nil {
		return Config{}, err
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("http_server_addr", ":8080")
	v.SetDefault("catalog.url", "https://fakestoreapi.com/products")
	v.SetDefault("catalog.timeout", 10*time.Second)
	v.SetDefault("catalog.max_attempts", 1)
	v.SetDefault("price.delay", 2*time.Second)
	v.SetDefault("price.discount_cookie", "discount")
}

func (c Config) validate() error {
	var errs []error
	if c.HTTPServerAddr == "" {
		errs = append(errs, errors.New("http_server_addr: required"))
	}
	if c.Catalog.URL == "" {
		errs = append(errs, errors.New("catalog.url: required"))
	}
	if c.Catalog.MaxAttempts < 1 {
		errs = append(errs, errors.New("catalog.max_attempts: must be positive"))
	}
	if c.Price.Delay < 0 {
		errs = append(errs, errors.New("price.delay: must not be negative"))
	}
	if c.Price.DiscountCookie == "" {
		errs = append(errs, errors.New("price.discount_cookie: required"))
	}
	return errors.Join(errs...)
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	cmdLine.ParseErrorsWhitelist.UnknownFlags = true
	arg := cmdLine.String("config", "", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	tamplate := `
	General:
	LogLevel=%q
	HTTPServerAddr=%q

	Catalog:
	URL=%q
	Timeout=%q
	MaxAttempts=%d

	Price:
	Delay=%q
	DiscountCookie=%q

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(tamplate, "\n"),
		c.LogLevel,
		c.HTTPServerAddr,
		c.Catalog.URL,
		c.Catalog.Timeout,
		c.Catalog.MaxAttempts,
		c.Price.Delay,
		c.Price.DiscountCookie,
	)
}
