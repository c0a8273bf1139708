// Package main is the entry point for the epilist application.
package main

import (
	"time"

	"github.com/epilist-cli/epilist/cmd"
	"github.com/epilist-cli/epilist/config"
	"github.com/epilist-cli/epilist/internal/cache"
	"github.com/epilist-cli/epilist/key"
	"github.com/epilist-cli/epilist/log"
	"github.com/epilist-cli/epilist/where"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	if viper.GetBool(key.CachePages) {
		lifetime := time.Duration(viper.GetInt(key.CacheLifetime)) * time.Minute
		go cache.New(where.Pages(), lifetime).CollectGarbage()
	}

	cmd.Execute()
}
