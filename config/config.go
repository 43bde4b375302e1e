// config/config.go
package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Configuration stores all the configurations
type Configuration struct {
	Server        ServerConfiguration
	SQLite        SQLiteConfiguration
	Redis         RedisConfiguration
	Elasticsearch ElasticsearchConfiguration
	Sync          SyncConfiguration
	Remote        RemoteConfiguration
	Chat          ChatConfiguration
}

// ServerConfiguration stores the port and other web server settings
type ServerConfiguration struct {
	Port string
}

// SQLiteConfiguration stores the path of the local cache database
type SQLiteConfiguration struct {
	Path string
}

// RedisConfiguration stores data for Redis connection
type RedisConfiguration struct {
	Addr            string
	DefaultCacheTTL string
}

// ElasticsearchConfiguration stores data for Elasticsearch connection
type ElasticsearchConfiguration struct {
	URL string
}

// SyncConfiguration stores the TTL gate settings for remote imports
type SyncConfiguration struct {
	MenuTTL     string
	MinMenuDate string
}

// RemoteConfiguration stores the upstream feed endpoints
type RemoteConfiguration struct {
	MenuURL string
}

// ChatConfiguration stores the known public keys for chat messages
type ChatConfiguration struct {
	PublicKeys         []string
	SignatureAlgorithm string
}

var config *Configuration

func InitConfig() error {
	viper.AddConfigPath("config") // path to look for the config file in
	viper.SetConfigName("config") // name of the config file (without extension)
	viper.SetConfigType("yaml")   // REQUIRED if the config file does not have the extension in the name

	viper.AutomaticEnv() // read in environment variables that match

	// Set default configurations
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("sqlite.path", "campus.db")
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.defaultCacheTTL", "10m")
	viper.SetDefault("elasticsearch.url", "http://localhost:9200")
	viper.SetDefault("sync.menuTTL", "24h")
	viper.SetDefault("sync.minMenuDate", "2012-01-01")
	viper.SetDefault("remote.menuURL", "http://lu32kap.typo3.lrz.de/mensaapp/exportDB.php?mensa_id=all")
	viper.SetDefault("chat.publicKeys", []string{})
	viper.SetDefault("chat.signatureAlgorithm", "SHA1WithRSA")
	viper.SetDefault("log.dir", "logging")

	// Attempt to read the config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No config file found. Using default settings and environment variables.")
		} else {
			return err
		}
	}

	// Unmarshal the configuration into the Configuration struct
	err := viper.Unmarshal(&config)
	if err != nil {
		return err
	}

	return nil
}

// GetConfig returns the loaded configuration
func GetConfig() *Configuration {
	return config
}

// GetString retrieves a string value from the configuration
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt retrieves an integer value from the configuration
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool retrieves a boolean value from the configuration
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration retrieves a duration value from the configuration
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// GetStringSlice retrieves a string list from the configuration
func GetStringSlice(key string) []string {
	return viper.GetStringSlice(key)
}
