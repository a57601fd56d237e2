// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/facebookgo/clock"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/api"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/api/actions"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/authority"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/cmd/farmd/httpserver"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/genesis"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/ledger"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/log"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/metrics"
)

var (
	version   string
	gitCommit string
	gitTag    string

	logger = log.WithContext("pkg", "farmd")
)

const ntpInterval = time.Hour

func fullVersion() string {
	versionMeta := "release"
	if gitTag == "" {
		versionMeta = "dev"
	}
	return fmt.Sprintf("%s-%s-%s", version, gitCommit, versionMeta)
}

func main() {
	app := cli.App{
		Version: fullVersion(),
		Name:    "farmd",
		Usage:   "NFT staking farm node",
		Flags: []cli.Flag{
			dataDirFlag,
			genesisFlag,
			memFlag,
			cacheFlag,
			syncWritesFlag,
			apiAddrFlag,
			apiCorsFlag,
			apiTimeoutFlag,
			enableAPILogsFlag,
			enableMetricsFlag,
			metricsAddrFlag,
			adminAddrFlag,
			recovererCacheFlag,
			verbosityFlag,
			jsonLogsFlag,
			skipNTPFlag,
		},
		Action: defaultAction,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func defaultAction(ctx *cli.Context) error {
	exitSignal := handleExitSignal()
	defer func() { logger.Info("exited") }()

	logLevel := initLogger(ctx)

	if ctx.Bool(enableMetricsFlag.Name) {
		metrics.InitializePrometheusMetrics()
	}

	cfg, genesisName := loadGenesis(ctx)

	db, dbPath := openDB(ctx)
	defer func() { logger.Info("closing ledger database..."); db.Close() }()

	l := ledger.New(db, clock.New())
	applied, err := genesis.Apply(l, cfg)
	if err != nil {
		return errors.Wrap(err, "apply genesis")
	}

	recoverer, err := authority.NewRecoverer(actions.Domain, ctx.Int(recovererCacheFlag.Name))
	if err != nil {
		return err
	}

	apiLogs := &atomic.Bool{}
	apiLogs.Store(ctx.Bool(enableAPILogsFlag.Name))

	handler := api.New(l, recoverer, api.Options{
		AllowedOrigins:  ctx.String(apiCorsFlag.Name),
		EnableReqLogger: apiLogs,
		EnableMetrics:   ctx.Bool(enableMetricsFlag.Name),
	})
	timeout := time.Duration(ctx.Uint64(apiTimeoutFlag.Name)) * time.Millisecond
	apiURL, stopAPI, err := httpserver.StartAPIServer(ctx.String(apiAddrFlag.Name), handler, timeout)
	if err != nil {
		return err
	}
	defer func() { logger.Info("stopping API server..."); stopAPI() }()

	metricsURL := "Disabled"
	if ctx.Bool(enableMetricsFlag.Name) {
		url, stop, err := httpserver.StartMetricsServer(ctx.String(metricsAddrFlag.Name))
		if err != nil {
			return err
		}
		defer func() { logger.Info("stopping metrics server..."); stop() }()
		metricsURL = url
	}

	adminURL := "Disabled"
	if addr := ctx.String(adminAddrFlag.Name); addr != "" {
		url, stop, err := httpserver.StartAdminServer(addr, logLevel, apiLogs, l)
		if err != nil {
			return err
		}
		defer func() { logger.Info("stopping admin server..."); stop() }()
		adminURL = url
	}

	printStartupMessage(cfg, genesisName, applied, dbPath, apiURL, metricsURL, adminURL)

	group, groupCtx := errgroup.WithContext(exitSignal)
	if !ctx.Bool(skipNTPFlag.Name) {
		group.Go(func() error {
			return watchClock(groupCtx, ntpInterval)
		})
	}
	group.Go(func() error {
		<-groupCtx.Done()
		return nil
	})
	return group.Wait()
}

func watchClock(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		checkClockOffset()
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func printStartupMessage(
	cfg *genesis.Config,
	genesisName string,
	applied bool,
	dataDir string,
	apiURL string,
	metricsURL string,
	adminURL string,
) {
	fmt.Printf(`Starting farmd %v
    Genesis      [ %v applied=%v ]
    Admin        [ %v ]
    Reward asset [ %v ]
    Data dir     [ %v ]
    API portal   [ %v ]
    Metrics      [ %v ]
    Admin portal [ %v ]
`,
		fullVersion(),
		genesisName, applied,
		cfg.Admin,
		cfg.RewardAsset,
		dataDir,
		apiURL,
		metricsURL,
		adminURL,
	)
}
