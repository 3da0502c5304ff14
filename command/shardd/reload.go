// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bewd-social/shardd/configuration"
	"github.com/bewd-social/shardd/ledger"
)

type lifetimeSetter interface {
	SetLifetime(ledger.Lifetime)
}

// configWatcher - apply ledger lifetime changes when the configuration file is rewritten
type configWatcher struct {
	fileName string
	watcher  *fsnotify.Watcher
	contract lifetimeSetter
}

func newConfigWatcher(fileName string, contract lifetimeSetter) (*configWatcher, error) {
	fileName, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		return nil, err
	}

	// watch the directory so editors that replace the file are seen
	if err := watcher.Add(filepath.Dir(fileName)); nil != err {
		watcher.Close()
		return nil, err
	}

	return &configWatcher{
		fileName: fileName,
		watcher:  watcher,
		contract: contract,
	}, nil
}

func (w *configWatcher) Run(args interface{}, shutdown <-chan struct{}) {
	log := args.(*logger.L)

	log.Infof("config watcher: %q starting…", w.fileName)

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event, ok := <-w.watcher.Events:
			if !ok {
				break loop
			}
			if !w.isChange(event) {
				continue loop
			}
			log.Infof("config watcher: event: %v", event)
			w.reload(log)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				break loop
			}
			log.Errorf("config watcher: error: %s", err)
		}
	}

	w.watcher.Close()
	log.Info("config watcher: stopped")
}

func (w *configWatcher) isChange(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.fileName {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create) != 0
}

// a configuration that fails to read keeps the current settings
func (w *configWatcher) reload(log *logger.L) bool {
	config, err := configuration.Get(w.fileName)
	if nil != err {
		log.Errorf("config watcher: reload: %q  error: %s", w.fileName, err)
		return false
	}
	w.contract.SetLifetime(config.Ledger.Lifetime())
	return true
}
