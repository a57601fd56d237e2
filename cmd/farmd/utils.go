// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"os/user"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"github.com/beevik/ntp"
	"github.com/elastic/gosigar"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/fdlimit"
	"github.com/mattn/go-isatty"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/genesis"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/log"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/lvldb"
)

const maxClockOffset = 5 * time.Second

func fatal(args ...any) {
	var w io.Writer
	if runtime.GOOS == "windows" {
		// The SameFile check below doesn't work on Windows.
		w = os.Stdout
	} else {
		outf, _ := os.Stdout.Stat()
		errf, _ := os.Stderr.Stat()
		if outf != nil && errf != nil && os.SameFile(outf, errf) {
			w = os.Stderr
		} else {
			w = io.MultiWriter(os.Stdout, os.Stderr)
		}
	}
	fmt.Fprint(w, "Fatal: ")
	fmt.Fprintln(w, args...)
	os.Exit(1)
}

func initLogger(ctx *cli.Context) *slog.LevelVar {
	logLevel := new(slog.LevelVar)
	logLevel.Set(log.FromVerbosity(ctx.Int(verbosityFlag.Name)))

	var handler slog.Handler
	if ctx.Bool(jsonLogsFlag.Name) {
		handler = log.NewJSONHandler(os.Stdout, logLevel)
	} else {
		useColor := (isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())) &&
			os.Getenv("TERM") != "dumb"
		handler = log.NewTerminalHandler(os.Stderr, logLevel, useColor)
	}
	log.SetDefault(handler)
	return logLevel
}

func loadGenesis(ctx *cli.Context) (*genesis.Config, string) {
	path := ctx.String(genesisFlag.Name)
	if path == "" {
		return genesis.DevConfig(), "dev"
	}
	cfg, err := genesis.Load(path)
	if err != nil {
		fatal(fmt.Sprintf("load genesis [%v]: %v", path, err))
	}
	return cfg, path
}

func makeDataDir(ctx *cli.Context) string {
	dataDir := ctx.String(dataDirFlag.Name)
	if dataDir == "" {
		fatal(fmt.Sprintf("unable to infer default data dir, use -%s to specify", dataDirFlag.Name))
	}
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		fatal(fmt.Sprintf("create data dir [%v]: %v", dataDir, err))
	}
	return dataDir
}

func openDB(ctx *cli.Context) (*lvldb.LevelDB, string) {
	if ctx.Bool(memFlag.Name) {
		db, err := lvldb.NewMem()
		if err != nil {
			fatal(fmt.Sprintf("open ledger database: %v", err))
		}
		return db, "Memory"
	}

	cacheMB := normalizeCacheSize(ctx.Int(cacheFlag.Name), physicalMemMB())
	logger.Debug("cache size(MB)", "size", cacheMB)

	fdCache := suggestFDCache()
	logger.Debug("fd cache", "n", fdCache)

	dir := filepath.Join(makeDataDir(ctx), "ledger.db")
	db, err := lvldb.New(dir, lvldb.Options{
		CacheSize:              cacheMB,
		OpenFilesCacheCapacity: fdCache,
		Sync:                   ctx.Bool(syncWritesFlag.Name),
	})
	if err != nil {
		fatal(fmt.Sprintf("open ledger database [%v]: %v", dir, err))
	}
	return db, dir
}

// physicalMemMB returns the total physical memory, or 0 if unknown.
func physicalMemMB() uint64 {
	var mem gosigar.Mem
	if err := mem.Get(); err != nil {
		logger.Warn("failed to get total mem", "err", err)
		return 0
	}
	return mem.Total / 1024 / 1024
}

// normalizeCacheSize keeps sizeMB within [128, totalMB/2].
func normalizeCacheSize(sizeMB int, totalMB uint64) int {
	if sizeMB < 128 {
		sizeMB = 128
	}
	if totalMB > 0 {
		limitMB := int(totalMB / 2)
		if sizeMB > limitMB {
			sizeMB = limitMB
			logger.Warn("cache size(MB) limited", "limit", limitMB)
		}
	}
	return sizeMB
}

func suggestFDCache() int {
	limit, err := fdlimit.Current()
	if err != nil {
		fatal("failed to get fd limit:", err)
	}
	if limit <= 1024 {
		logger.Warn("low fd limit, increase it if possible", "limit", limit)
	}

	n := limit / 2
	if n > 5120 {
		return 5120
	}
	return n
}

// checkClockOffset warns when the local clock drifts from NTP, since stake
// and claim timestamps are taken from it.
func checkClockOffset() {
	resp, err := ntp.Query("pool.ntp.org")
	if err != nil {
		logger.Debug("failed to access NTP", "err", err)
		return
	}
	if offset := resp.ClockOffset; offset > maxClockOffset || offset < -maxClockOffset {
		logger.Warn("clock offset detected", "offset", common.PrettyDuration(offset))
	}
}

func handleExitSignal() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		exitSignalCh := make(chan os.Signal, 1)
		signal.Notify(exitSignalCh, os.Interrupt, syscall.SIGTERM)

		sig := <-exitSignalCh
		logger.Info("exit signal received", "signal", sig)
		cancel()
	}()
	return ctx
}

// copy from go-ethereum
func defaultDataDir() string {
	if home := homeDir(); home != "" {
		switch runtime.GOOS {
		case "darwin":
			return filepath.Join(home, "Library", "Application Support", "io.nft-farm")
		case "windows":
			return filepath.Join(home, "AppData", "Roaming", "io.nft-farm")
		default:
			return filepath.Join(home, ".nft-farm")
		}
	}
	return ""
}

func homeDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	if usr, err := user.Current(); err == nil {
		return usr.HomeDir
	}
	return ""
}
