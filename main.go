// Package main is the entry point of nakano.
package main

import (
	"github.com/geniuskouta/nakano-yt-2000/cmd"
	"github.com/geniuskouta/nakano-yt-2000/config"
	"github.com/geniuskouta/nakano-yt-2000/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
