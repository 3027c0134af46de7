// Copyright 2014 The lemochain-core Authors
// This file is part of the lemochain-core library.
//
// The lemochain-core library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The lemochain-core library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the lemochain-core library. If not, see <http://www.gnu.org/licenses/>.

package leveldb

import (
	"time"

	"github.com/LemoFoundationLtd/basex/common/log"
	"github.com/LemoFoundationLtd/basex/metrics"
	gometrics "github.com/rcrowley/go-metrics"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/filter"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
)

var OpenFileLimit = 64

type LevelDBDatabase struct {
	db *leveldb.DB // LevelDB instance

	getTimer   gometrics.Timer // 对数据库进行get操作的频率和时间分布情况
	putTimer   gometrics.Timer // 对数据库进行put操作的频率和时间分布情况
	delTimer   gometrics.Timer // 对数据库进行delete操作的频率和时间分布情况
	missMeter  gometrics.Meter // 对数据库进行get操作失败的频率
	readMeter  gometrics.Meter // 对数据库进行get操作之后返回对返回回来的value长度进行标记
	writeMeter gometrics.Meter // 对数据库进行put操作对放进去的value长度进行标记

	log log.Logger // Contextual logger tracking the database path
}

// NewLevelDBDatabase opens or creates the LevelDB database in directory file.
func NewLevelDBDatabase(file string, cache int, handles int) (*LevelDBDatabase, error) {
	logger := log.New("database", file)

	// Ensure we have some minimal caching and file guarantees
	if cache < 16 {
		cache = 16
	}
	if handles < 16 {
		handles = 16
	}
	logger.Debug("Allocated cache and file handles", "cache", cache, "handles", handles)

	// Open the db and recover any potential corruptions
	db, err := leveldb.OpenFile(file, &opt.Options{
		OpenFilesCacheCapacity: handles,
		BlockCacheCapacity:     cache / 2 * opt.MiB,
		WriteBuffer:            cache / 4 * opt.MiB, // Two of these are used internally
		Filter:                 filter.NewBloomFilter(10),
	})
	if _, corrupted := err.(*errors.ErrCorrupted); corrupted {
		logger.Warn("Database corrupted, recovering", "err", err)
		db, err = leveldb.RecoverFile(file, nil)
	}
	// (Re)check for errors and abort if opening of the db failed
	if err != nil {
		return nil, err
	}
	return &LevelDBDatabase{
		db:  db,
		log: logger,
	}, nil
}

// Put puts the given key / value to the queue
func (db *LevelDBDatabase) Put(key []byte, value []byte) error {
	// Measure the database put latency, if requested
	if db.putTimer != nil {
		defer db.putTimer.UpdateSince(time.Now())
	}
	if db.writeMeter != nil {
		db.writeMeter.Mark(int64(len(value)))
	}
	return db.db.Put(key, value, nil)
}

func (db *LevelDBDatabase) Has(key []byte) (bool, error) {
	return db.db.Has(key, nil)
}

// Get returns the given key if it's present. A missing key gives nil and no
// error.
func (db *LevelDBDatabase) Get(key []byte) ([]byte, error) {
	// Measure the database get latency, if requested
	if db.getTimer != nil {
		defer db.getTimer.UpdateSince(time.Now())
	}
	// Retrieve the key and increment the miss counter if not found
	dat, err := db.db.Get(key, nil)
	if err != nil {
		if db.missMeter != nil {
			db.missMeter.Mark(1)
		}
		if err == leveldb.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	// Otherwise update the actually retrieved amount of data
	if db.readMeter != nil {
		db.readMeter.Mark(int64(len(dat)))
	}
	return dat, nil
}

// Delete deletes the key from the queue and database
func (db *LevelDBDatabase) Delete(key []byte) error {
	// Measure the database delete latency, if requested
	if db.delTimer != nil {
		defer db.delTimer.UpdateSince(time.Now())
	}
	return db.db.Delete(key, nil)
}

// NewIteratorWithPrefix returns a iterator to iterate over subset of database content with a particular prefix.
func (db *LevelDBDatabase) NewIteratorWithPrefix(prefix []byte) iterator.Iterator {
	return db.db.NewIterator(util.BytesPrefix(prefix), nil)
}

func (db *LevelDBDatabase) Close() error {
	err := db.db.Close()
	if err == nil {
		db.log.Debug("Database closed")
	} else {
		db.log.Error("Failed to close database", "err", err)
	}
	return err
}

// Meter configures the database metrics collectors
func (db *LevelDBDatabase) Meter() {
	// Short circuit metering if the metrics system is disabled
	if !metrics.Enabled {
		return
	}
	db.getTimer = metrics.NewTimer(metrics.LevelDb_get_timerName)
	db.putTimer = metrics.NewTimer(metrics.LevelDb_put_timerName)
	db.delTimer = metrics.NewTimer(metrics.LevelDb_del_timerName)
	db.missMeter = metrics.NewMeter(metrics.LevelDb_miss_meterName)
	db.readMeter = metrics.NewMeter(metrics.LevelDb_read_meterName)
	db.writeMeter = metrics.NewMeter(metrics.LevelDb_write_meterName)
}
