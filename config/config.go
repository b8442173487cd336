package config

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config for the whole application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	MySQL     MySQLConfig     `mapstructure:"mysql"`
	Memcache  MemcacheConfig  `mapstructure:"memcache"`
	Jaeger    JaegerConfig    `mapstructure:"jaeger"`
	Cache     CacheConfig     `mapstructure:"cache"`
	ViewCount ViewCountConfig `mapstructure:"view_count"`
}

// ServerListen ...
type ServerListen struct {
	Host string `mapstructure:"host"`
	Port uint16 `mapstructure:"port"`
}

// ServerConfig ...
type ServerConfig struct {
	GRPC ServerListen `mapstructure:"grpc"`
	HTTP ServerListen `mapstructure:"http"`
}

// ListenString for net.Listen, binds all interfaces
func (s ServerListen) ListenString() string {
	return fmt.Sprintf(":%d", s.Port)
}

// String for dialing
func (s ServerListen) String() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// JaegerConfig ...
type JaegerConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	URL     string `mapstructure:"url"`
}

// CacheConfig for the promotion record cache
type CacheConfig struct {
	LocalSizeMB        int    `mapstructure:"local_size_mb"`
	LocalTTLSeconds    int    `mapstructure:"local_ttl_seconds"`
	RemoteTTLSeconds   uint32 `mapstructure:"remote_ttl_seconds"`
	WaitLeaseMillis    []int  `mapstructure:"wait_lease_millis"`
	FailedOnWaitFinish bool   `mapstructure:"failed_on_wait_finish"`
}

// ViewCountConfig for the fire-and-forget view counter
type ViewCountConfig struct {
	QueueSize   int `mapstructure:"queue_size"`
	NumWorkers  int `mapstructure:"num_workers"`
	FlushMillis int `mapstructure:"flush_millis"`
}

// WaitLeaseDurations ...
func (c CacheConfig) WaitLeaseDurations() []time.Duration {
	result := make([]time.Duration, 0, len(c.WaitLeaseMillis))
	for _, ms := range c.WaitLeaseMillis {
		result = append(result, time.Duration(ms)*time.Millisecond)
	}
	return result
}

// FlushInterval ...
func (c ViewCountConfig) FlushInterval() time.Duration {
	return time.Duration(c.FlushMillis) * time.Millisecond
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.grpc.host", "localhost")
	v.SetDefault("server.grpc.port", 10080)
	v.SetDefault("server.http.host", "localhost")
	v.SetDefault("server.http.port", 10088)

	v.SetDefault("log.mode", "production")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file.enabled", false)
	v.SetDefault("log.file.filename", "logs/countdown.log")
	v.SetDefault("log.file.max_size_mb", 100)
	v.SetDefault("log.file.max_backups", 7)
	v.SetDefault("log.file.max_age_days", 30)
	v.SetDefault("log.file.compress", true)

	v.SetDefault("mysql.host", "localhost")
	v.SetDefault("mysql.port", 3306)
	v.SetDefault("mysql.database", "countdown")
	v.SetDefault("mysql.username", "root")
	v.SetDefault("mysql.password", "1")
	v.SetDefault("mysql.max_open_conns", 20)
	v.SetDefault("mysql.max_idle_conns", 5)
	v.SetDefault("mysql.options", []map[string]string{
		{"key": "parseTime", "value": "true"},
		{"key": "loc", "value": "UTC"},
	})

	v.SetDefault("memcache.host", "localhost")
	v.SetDefault("memcache.port", 11211)
	v.SetDefault("memcache.num_conns", 4)

	v.SetDefault("jaeger.enabled", false)
	v.SetDefault("jaeger.url", "http://localhost:14268/api/traces")

	v.SetDefault("cache.local_size_mb", 32)
	v.SetDefault("cache.local_ttl_seconds", 5)
	v.SetDefault("cache.remote_ttl_seconds", 300)
	v.SetDefault("cache.wait_lease_millis", []int{10, 20, 50})
	v.SetDefault("cache.failed_on_wait_finish", false)

	v.SetDefault("view_count.queue_size", 4096)
	v.SetDefault("view_count.num_workers", 4)
	v.SetDefault("view_count.flush_millis", 1000)
}

func loadConfig(dir string, name string) Config {
	v := viper.New()
	v.SetConfigName(name)
	v.SetConfigType("yml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix("countdown")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	err := v.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			panic(err)
		}
		fmt.Println("Config file not found, using defaults:", path.Join(dir, name+".yml"))
	}

	var cfg Config
	err = v.Unmarshal(&cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load config from config.yml in the working directory
func Load() Config {
	return loadConfig(".", "config")
}

// LoadTestConfig loads config.test.yml from the root of the module
func LoadTestConfig(rootDir string) Config {
	return loadConfig(rootDir, "config.test")
}
