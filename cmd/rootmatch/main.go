// SPDX-License-Identifier: MIT

// Command rootmatch converts, measures and matches root system trees stored
// as JSON node tables.
//
//	rootmatch match day1.json day2.json --db runs.db
//	rootmatch convert --to discrete tree.json tree.discrete.json
//	rootmatch measure tree.json
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
