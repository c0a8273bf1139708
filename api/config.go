package api

import (
	"fmt"
	"time"

	"github.com/epilist-cli/epilist/auth"
	"github.com/epilist-cli/epilist/internal/cache"
	"github.com/epilist-cli/epilist/key"
	"github.com/epilist-cli/epilist/network"
	"github.com/epilist-cli/epilist/where"
	"github.com/spf13/viper"
)

// FromConfig builds a client from the api.* and cache.* settings.
func FromConfig() (*Client, error) {
	options := []Option{
		WithHTTPClient(network.New(time.Duration(viper.GetInt(key.APITimeout)) * time.Second)),
	}

	if viper.GetBool(key.APIUseToken) {
		token, err := auth.Token()
		if err != nil {
			return nil, fmt.Errorf("load api token: %w", err)
		}
		options = append(options, WithToken(token))
	}

	if viper.GetBool(key.CachePages) {
		lifetime := time.Duration(viper.GetInt(key.CacheLifetime)) * time.Minute
		options = append(options, WithCache(cache.New(where.Pages(), lifetime)))
	}

	return New(viper.GetString(key.APIURL), options...), nil
}
