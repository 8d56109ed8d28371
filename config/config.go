package config

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"goflare.io/ember"
	emberConfig "goflare.io/ember/config"
	"goflare.io/ignite"
	"goflare.io/storefront/apiclient"
	"goflare.io/storefront/catalog"
	"goflare.io/storefront/driver"
)

const (
	ServerStartPort = ":3000"
)

type Config struct {
	Platform PlatformConfig
	Redis    RedisConfig
}

// PlatformConfig locates the remote payments platform API.
type PlatformConfig struct {
	BaseURL   string `mapstructure:"base_url"`
	TokenPath string `mapstructure:"token_path"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
}

func ProvideApplicationConfig() (*Config, error) {

	viper.SetConfigFile("./config.yaml")
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func ProvideTokenStore(appConfig *Config) apiclient.TokenStore {
	if appConfig.Platform.TokenPath == "" {
		return apiclient.NewMemoryTokenStore()
	}
	return apiclient.NewFileTokenStore(appConfig.Platform.TokenPath)
}

func ProvideAPIClient(appConfig *Config, store apiclient.TokenStore, logger *zap.Logger) *apiclient.Client {
	return apiclient.NewClient(appConfig.Platform.BaseURL, store, logger)
}

func ProvideEmber(appConfig *Config) (*ember.MultiCache, error) {

	conn, err := driver.ConnectRedis(appConfig.Redis.Addr, appConfig.Redis.Password, 0)
	if err != nil {
		return nil, err
	}

	config := emberConfig.NewConfig()
	cache, err := ember.NewMultiCache(context.Background(), &config, conn)
	if err != nil {
		log.Println(fmt.Errorf("failed to create cache: %w", err))
		return nil, err
	}

	return cache, nil
}

// emberCache adapts ember's MultiCache to the narrow interface the catalog
// consumes.
type emberCache struct {
	cache *ember.MultiCache
}

func (e *emberCache) Get(ctx context.Context, key string, value any) (bool, error) {
	return e.cache.Get(ctx, key, value)
}

func (e *emberCache) Set(ctx context.Context, key string, value any) error {
	return e.cache.Set(ctx, key, value)
}

func (e *emberCache) Delete(ctx context.Context, key string) error {
	return e.cache.Delete(ctx, key)
}

func ProvideCatalogCache(cache *ember.MultiCache) catalog.Cache {
	return &emberCache{cache: cache}
}

func ProvideIgnite() ignite.Manager {
	return ignite.NewManager()
}

func NewLogger() *zap.Logger {

	logger, _ := zap.NewProduction()
	return logger
}
