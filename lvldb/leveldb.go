// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package lvldb is the goleveldb backed kv.Store holding the ledger.
package lvldb

import (
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/filter"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/kv"
)

var _ kv.Store = (*LevelDB)(nil)

const minCacheMB = 16

// Options options for creating level db instance.
type Options struct {
	// CacheSize is the memory budget in MB, shared by the block cache and write buffers.
	CacheSize              int
	OpenFilesCacheCapacity int
	// Sync flushes every write to disk before it returns, so a committed
	// ledger transaction survives a machine crash.
	Sync bool
}

// Stats is a snapshot of the database internals.
type Stats struct {
	IORead         uint64 `json:"ioRead"`
	IOWrite        uint64 `json:"ioWrite"`
	BlockCacheSize int    `json:"blockCacheSize"`
	OpenedTables   int    `json:"openedTables"`
	WritePaused    bool   `json:"writePaused"`
	WriteDelays    int32  `json:"writeDelays"`
}

// LevelDB wraps level db impls.
type LevelDB struct {
	db       *leveldb.DB
	stg      storage.Storage
	readOpt  opt.ReadOptions
	writeOpt opt.WriteOptions
}

// New create a persistent level db instance.
// Create an empty one if not exists, or open if already there.
func New(path string, opts Options) (*LevelDB, error) {
	stg, err := storage.OpenFile(path, false)
	if err != nil {
		return nil, errors.Wrap(err, "new persistent level db")
	}
	return open(stg, opts)
}

// NewMem create a level db in memory.
func NewMem() (*LevelDB, error) {
	return open(storage.NewMemStorage(), Options{})
}

func open(stg storage.Storage, opts Options) (*LevelDB, error) {
	cacheSize := max(opts.CacheSize, minCacheMB)
	openFiles := max(opts.OpenFilesCacheCapacity, 16)

	db, err := leveldb.Open(stg, &opt.Options{
		OpenFilesCacheCapacity: openFiles,
		BlockCacheCapacity:     cacheSize / 2 * opt.MiB,
		WriteBuffer:            cacheSize / 4 * opt.MiB, // two write buffers are used internally
		Filter:                 filter.NewBloomFilter(10),
	})
	if err != nil {
		stg.Close()
		return nil, errors.Wrap(err, "open level db")
	}
	return &LevelDB{
		db:       db,
		stg:      stg,
		writeOpt: opt.WriteOptions{Sync: opts.Sync},
	}, nil
}

// IsNotFound to check if the error returned by Get indicates key not found.
func (ldb *LevelDB) IsNotFound(err error) bool {
	return errors.Is(err, leveldb.ErrNotFound)
}

// Get retrieve value for given key.
// It returns an error if key not found. The error can be checked via IsNotFound.
func (ldb *LevelDB) Get(key []byte) ([]byte, error) {
	return ldb.db.Get(key, &ldb.readOpt)
}

func (ldb *LevelDB) Has(key []byte) (bool, error) {
	return ldb.db.Has(key, &ldb.readOpt)
}

func (ldb *LevelDB) Put(key, value []byte) error {
	return ldb.db.Put(key, value, &ldb.writeOpt)
}

func (ldb *LevelDB) Delete(key []byte) error {
	return ldb.db.Delete(key, &ldb.writeOpt)
}

// Close close the level db and releases its storage, including the file
// lock of a persistent one. Later operations will all fail.
func (ldb *LevelDB) Close() error {
	if err := ldb.db.Close(); err != nil {
		return err
	}
	return ldb.stg.Close()
}

// Bulk create a batch for writing ops.
func (ldb *LevelDB) Bulk() kv.Bulk {
	return &batch{ldb: ldb, batch: new(leveldb.Batch)}
}

// Iterate create a iterator by range.
func (ldb *LevelDB) Iterate(r kv.Range) kv.Iterator {
	return ldb.db.NewIterator(&util.Range{Start: r.Start, Limit: r.Limit}, &ldb.readOpt)
}

// Stats reports io counters and compaction pressure.
func (ldb *LevelDB) Stats() (*Stats, error) {
	var s leveldb.DBStats
	if err := ldb.db.Stats(&s); err != nil {
		return nil, errors.Wrap(err, "level db stats")
	}
	return &Stats{
		IORead:         s.IORead,
		IOWrite:        s.IOWrite,
		BlockCacheSize: s.BlockCacheSize,
		OpenedTables:   s.OpenedTablesCount,
		WritePaused:    s.WritePaused,
		WriteDelays:    s.WriteDelayCount,
	}, nil
}

// batch collects the writes of one ledger commit.
type batch struct {
	ldb   *LevelDB
	batch *leveldb.Batch
}

func (b *batch) Put(key, value []byte) error {
	b.batch.Put(key, value)
	return nil
}

func (b *batch) Delete(key []byte) error {
	b.batch.Delete(key)
	return nil
}

func (b *batch) Len() int {
	return b.batch.Len()
}

// Write performs all ops in this batch atomically.
func (b *batch) Write() error {
	n := b.batch.Len()
	if err := b.ldb.db.Write(b.batch, &b.ldb.writeOpt); err != nil {
		metricBatchWrites().AddWithLabel(1, map[string]string{"result": "error"})
		return errors.Wrap(err, "write batch")
	}
	metricBatchWrites().AddWithLabel(1, map[string]string{"result": "ok"})
	metricBatchOps().Observe(int64(n))
	return nil
}
