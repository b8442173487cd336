package config

import "fmt"

// MemcacheConfig for the shared promotion cache
type MemcacheConfig struct {
	Host     string `mapstructure:"host"`
	Port     uint16 `mapstructure:"port"`
	NumConns int    `mapstructure:"num_conns"`
}

// Addr ...
func (c MemcacheConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Conns returns the number of connections, at least one
func (c MemcacheConfig) Conns() int {
	if c.NumConns <= 0 {
		return 1
	}
	return c.NumConns
}
