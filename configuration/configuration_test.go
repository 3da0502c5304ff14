// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bewd-social/shardd/configuration"
	"github.com/bewd-social/shardd/fault"
)

const sample = `
local M = {}

M.data_directory = "."
M.pidfile = "shardd.pid"
M.chain = "testing"

M.database = {
    directory = "db",
}

M.ledger = {
    close_interval = 2,
    sweep_interval = 60,
    lifetime_threshold = 100,
    lifetime_bump = 200,
}

M.client_rpc = {
    maximum_connections = 25,
    listen = {
        "127.0.0.1:2130",
        "[::1]:2130",
    },
    certificate = "rpc.crt",
    private_key = "/etc/ssl/rpc.key",
    announce = {
        "203.0.113.10:2130",
    },
}

M.publishing = {
    broadcast = {
        "127.0.0.1:2135",
    },
    private_key = "publish.private",
    public_key = "publish.public",
}

M.logging = {
    size = 4096,
    count = 3,
    directory = "log",
    file = "shardd.log",
    console = false,
    levels = {
        DEFAULT = "info",
        shards = "debug",
    },
}

return M
`

func writeConfiguration(t *testing.T, text string) (string, string) {
	dir, err := ioutil.TempDir("", "configuration")
	require.Nil(t, err, "temporary directory")
	dir, err = filepath.EvalSymlinks(dir)
	require.Nil(t, err, "resolve directory")

	fileName := filepath.Join(dir, "shardd.conf")
	require.Nil(t, ioutil.WriteFile(fileName, []byte(text), 0600), "write configuration")
	return dir, fileName
}

func TestGet(t *testing.T) {
	dir, fileName := writeConfiguration(t, sample)
	defer os.RemoveAll(dir)

	c, err := configuration.Get(fileName)
	require.Nil(t, err, "Get")

	assert.Equal(t, dir, c.DataDirectory, "data directory")
	assert.Equal(t, filepath.Join(dir, "shardd.pid"), c.PidFile, "pid file")
	assert.Equal(t, configuration.Testing, c.Chain, "chain")
	assert.True(t, c.IsTesting(), "testing chain")

	assert.Equal(t, filepath.Join(dir, "db"), c.Database.Directory, "database directory")
	assert.Equal(t, filepath.Join(dir, "db", "testing.leveldb"), c.Database.Name, "chain default database")

	assert.Equal(t, 2, c.Ledger.CloseInterval, "close interval")
	assert.Equal(t, 60, c.Ledger.SweepInterval, "sweep interval")
	assert.Equal(t, uint64(100), c.Ledger.LifetimeThreshold, "lifetime threshold")
	assert.Equal(t, uint64(200), c.Ledger.LifetimeBump, "lifetime bump")

	assert.Equal(t, uint64(25), c.ClientRPC.MaximumConnections, "maximum connections")
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, c.ClientRPC.Listen, "listen")
	assert.Equal(t, filepath.Join(dir, "rpc.crt"), c.ClientRPC.Certificate, "relative certificate")
	assert.Equal(t, "/etc/ssl/rpc.key", c.ClientRPC.PrivateKey, "absolute key kept")
	assert.Equal(t, []string{"203.0.113.10:2130"}, c.ClientRPC.Announce, "announce")

	assert.Equal(t, []string{"127.0.0.1:2135"}, c.Publishing.Broadcast, "broadcast")
	assert.Equal(t, filepath.Join(dir, "publish.private"), c.Publishing.PrivateKey, "publish private key")

	assert.Equal(t, filepath.Join(dir, "log"), c.Logging.Directory, "log directory")
	assert.Equal(t, "shardd.log", c.Logging.File, "log file")
	assert.Equal(t, "debug", c.Logging.Levels["shards"], "log level")

	info, err := os.Stat(c.Database.Directory)
	if assert.Nil(t, err, "database directory created") {
		assert.True(t, info.IsDir(), "database directory")
	}
}

func TestGetDefaults(t *testing.T) {
	dir, fileName := writeConfiguration(t, `return { data_directory = "." }`)
	defer os.RemoveAll(dir)

	c, err := configuration.Get(fileName)
	require.Nil(t, err, "Get")

	assert.Equal(t, configuration.Shards, c.Chain, "default chain")
	assert.False(t, c.IsTesting(), "live chain")
	assert.Equal(t, "", c.PidFile, "no pid file")
	assert.Equal(t, filepath.Join(dir, "data", "shards.leveldb"), c.Database.Name, "default database")
	assert.Equal(t, uint64(10), c.ClientRPC.MaximumConnections, "default connections")
	assert.Equal(t, filepath.Join(dir, "rpc.key"), c.ClientRPC.PrivateKey, "default key")
	assert.Equal(t, 0, len(c.ClientRPC.Listen), "no listen")
}

func TestGetErrors(t *testing.T) {
	items := []struct {
		text string
		err  error
	}{
		{`return { data_directory = ".", chain = "bitcoin" }`, fault.InvalidChain},
		{`return 42`, fault.InvalidConfiguration},
	}

	for i, item := range items {
		dir, fileName := writeConfiguration(t, item.text)
		_, err := configuration.Get(fileName)
		assert.Equal(t, item.err, err, "%d: wrong error", i)
		os.RemoveAll(dir)
	}

	dir, fileName := writeConfiguration(t, `return { chain = "local" }`)
	_, err := configuration.Get(fileName)
	assert.NotNil(t, err, "missing data directory")
	os.RemoveAll(dir)

	dir, fileName = writeConfiguration(t, `return { data_directory = ".", database = { name = "x/y.leveldb" } }`)
	_, err = configuration.Get(fileName)
	assert.NotNil(t, err, "database name with a path")
	os.RemoveAll(dir)

	_, err = configuration.Get("/nonexistent/shardd.conf")
	assert.Equal(t, fault.ConfigurationFileNotFound, err, "missing file")
}

func TestParseConfigurationFileNeedsStruct(t *testing.T) {
	var n int
	err := configuration.ParseConfigurationFile("unused.conf", &n)
	assert.Equal(t, fault.InvalidStructPointer, err, "not a struct")

	err = configuration.ParseConfigurationFile("unused.conf", struct{}{})
	assert.Equal(t, fault.InvalidStructPointer, err, "not a pointer")
}
