// Package main is the entry point for xtrex.
package main

import (
	"github.com/samber/lo"
	"github.com/xtrex-cli/xtrex/cmd"
	"github.com/xtrex-cli/xtrex/config"
	"github.com/xtrex-cli/xtrex/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
