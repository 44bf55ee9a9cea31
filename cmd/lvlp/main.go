// SPDX-License-Identifier: MIT

// Command lvlp solves a linear program stored in a YAML or JSON file.
//
// Usage:
//
//	lvlp [-v] [-max-iter N] [-eps E] [-json] [-plot out.png] problem.yaml
//
// Exit status: 0 optimal, 1 unbounded or iteration limit, 2 usage or input
// error, 3 output error, 130 interrupted.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	// Normalize cancellation exit code.
	if ctx.Err() != nil && code == exitOK {
		code = exitInterrupted
	}

	stop()
	os.Exit(code)
}
