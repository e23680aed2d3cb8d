// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/avltree/fault"
)

const (
	fileWatcherLoggerPrefix = "file-watcher"
)

// FileWatcher - signals writes to and removal of a single file
type FileWatcher interface {
	Start() error
	Stop()
	ChangeChannel() <-chan struct{}
	RemoveChannel() <-chan struct{}
}

type fileWatcherData struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	change   chan struct{}
	remove   chan struct{}
	done     chan struct{}
}

func newFileWatcher(targetFile string, log *logger.L) (FileWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		return nil, err
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fault.ErrNotFoundInputFile
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	return &fileWatcherData{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		change:   make(chan struct{}, 1),
		remove:   make(chan struct{}, 1),
		done:     make(chan struct{}),
	}, nil
}

// the directory is watched as some writers replace the file
func (w *fileWatcherData) Start() error {
	err := w.watcher.Add(filepath.Dir(w.filePath))
	if nil != err {
		w.log.Errorf("watcher add error: %s", err)
		return err
	}

	go w.loop()
	return nil
}

func (w *fileWatcherData) loop() {
	for {
		select {
		case <-w.done:
			return

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Errorf("watcher error: %s", err)

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.log.Debugf("file event: %v", event)

			if filepath.Clean(event.Name) != w.filePath {
				continue
			}

			if watcherEventFileRemove(event) {
				w.log.Warnf("file: %q removed", w.filePath)
				w.sendEvent(w.remove, "remove")
				return
			}

			if watcherEventFileChange(event) {
				w.sendEvent(w.change, "change")
			}
		}
	}
}

// Stop - release the watcher
func (w *fileWatcherData) Stop() {
	close(w.done)
	w.watcher.Close()
}

func (w *fileWatcherData) ChangeChannel() <-chan struct{} {
	return w.change
}

func (w *fileWatcherData) RemoveChannel() <-chan struct{} {
	return w.remove
}

// several writes collapse into one pending event
func (w *fileWatcherData) sendEvent(ch chan<- struct{}, name string) {
	select {
	case ch <- struct{}{}:
	default:
		w.log.Debugf("event channel: %s full, discard event", name)
	}
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create
}
