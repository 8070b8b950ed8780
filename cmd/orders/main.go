// Package main provides a CLI tool that reads ant orders from stdin and reports
// each order's destination and the order that undoes it.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/ants/internal/config"
	"github.com/cory-johannsen/ants/internal/game/aim"
	"github.com/cory-johannsen/ants/internal/game/order"
	"github.com/cory-johannsen/ants/internal/observability"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "", "path to configuration file (defaults only when empty)")
	flag.Parse()

	var (
		cfg config.Config
		err error
	)
	if *configPath == "" {
		cfg, err = config.Default()
	} else {
		cfg, err = config.Load(*configPath)
	}
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	n, err := run(cfg.Orders, logger, os.Stdin, os.Stdout)
	if err != nil {
		logger.Fatal("processing orders", zap.Error(err), zap.Int("processed", n))
	}

	logger.Info("orders processed",
		zap.Int("count", n),
		zap.Duration("elapsed", time.Since(start)),
	)
}

// run reads order lines from in and writes one report line per order to out.
// Blank lines are ignored.
//
// Postcondition: Returns the number of orders reported, and a non-nil error on
// the first malformed line, or the first unknown aim when cfg.SkipUnknown is false.
func run(cfg config.OrdersConfig, logger *zap.Logger, in io.Reader, out io.Writer) (int, error) {
	scanner := bufio.NewScanner(in)
	// One extra byte for the newline, which bufio.Scanner counts against the token size.
	scanner.Buffer(make([]byte, 0, cfg.MaxLineLength+1), cfg.MaxLineLength+1)

	count := 0
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		o, err := order.Parse(line)
		if err != nil {
			if cfg.SkipUnknown && errors.Is(err, aim.ErrUnknownSymbol) {
				logger.Warn("skipping order with unknown aim", zap.Int("line", lineNo), zap.Error(err))
				continue
			}
			return count, fmt.Errorf("line %d: %w", lineNo, err)
		}

		logger.Debug("order", zap.Object("order", o))
		row, col := o.Target()
		if _, err := fmt.Fprintf(out, "%s -> %d %d (reverse: %s)\n", o, row, col, o.Reverse()); err != nil {
			return count, fmt.Errorf("writing report: %w", err)
		}
		count++
	}
	if err := scanner.Err(); err != nil {
		return count, fmt.Errorf("reading orders: %w", err)
	}
	return count, nil
}
