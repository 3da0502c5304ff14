// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bewd-social/shardd/storage"
)

const (
	testingDirName = "testing"
)

func setup(t *testing.T) {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	err := storage.Initialise(testingDirName+"/ledger.leveldb", storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

func teardown() {
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	os.RemoveAll(testingDirName)
}

// advance the ledger n times
func advance(t *testing.T, n int) uint64 {
	s := uint64(0)
	for i := 0; i < n; i += 1 {
		var err error
		s, err = Advance()
		if nil != err {
			t.Fatalf("advance error: %s", err)
		}
	}
	return s
}
