// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/genesis"
)

func newContext(t *testing.T, args ...string) *cli.Context {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	for _, f := range []cli.Flag{dataDirFlag, genesisFlag, memFlag, cacheFlag, syncWritesFlag, verbosityFlag, jsonLogsFlag} {
		f.Apply(set)
	}
	require.NoError(t, set.Parse(args))
	return cli.NewContext(nil, set, nil)
}

func TestNormalizeCacheSize(t *testing.T) {
	tests := []struct {
		name    string
		sizeMB  int
		totalMB uint64
		want    int
	}{
		{"raised to minimum", 16, 8192, 128},
		{"within limit", 512, 8192, 512},
		{"clamped to half of memory", 8192, 8192, 4096},
		{"unknown memory", 8192, 0, 8192},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeCacheSize(tt.sizeMB, tt.totalMB))
		})
	}
}

func TestLoadGenesis(t *testing.T) {
	cfg, name := loadGenesis(newContext(t))
	assert.Equal(t, "dev", name)
	assert.Equal(t, genesis.DevConfig().Admin, cfg.Admin)

	data, err := genesis.DevConfig().Encode()
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "genesis.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, name = loadGenesis(newContext(t, "--genesis", path))
	assert.Equal(t, path, name)
	assert.Equal(t, genesis.DevConfig().RewardAsset, cfg.RewardAsset)
}

func TestOpenDB(t *testing.T) {
	db, name := openDB(newContext(t, "--mem"))
	assert.Equal(t, "Memory", name)
	require.NoError(t, db.Close())

	dir := t.TempDir()
	db, name = openDB(newContext(t, "--data-dir", dir, "--cache", "128", "--sync-writes"))
	assert.Equal(t, filepath.Join(dir, "ledger.db"), name)
	require.NoError(t, db.Put([]byte("k"), []byte("v")))
	require.NoError(t, db.Close())
}

func TestInitLogger(t *testing.T) {
	level := initLogger(newContext(t, "--verbosity", "4"))
	assert.Equal(t, "DEBUG", level.Level().String())
}
