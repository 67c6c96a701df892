// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: Entrypoint for the numconv command.

// Command numconv converts numbers between native integer types and
// doubles without loss, and validates JSON documents against schemas
// of native numeric types.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/getoutreach/safenum/internal/cmd"
	"github.com/urfave/cli/v2"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	app := cmd.New(os.Stdin, os.Stdout, os.Stderr)
	err := app.RunContext(ctx, os.Args)
	cancel()
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, err)

	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.ExitCode())
	}
	os.Exit(1)
}
