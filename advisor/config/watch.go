// Copyright (C) 2026 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/google/vkadvisor/core/log"
	"github.com/pkg/errors"
)

// Watch loads the settings file at path and calls onChange with the result,
// then again each time the file is written, created or renamed into place.
// A file that fails to load is reported to onChange with the error, and the
// caller decides whether to keep its previous settings.
// Watch blocks until ctx is cancelled.
func Watch(ctx context.Context, path string, onChange func(Settings, error)) error {
	ctx = log.Enter(ctx, "config.Watch")
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "Creating settings watcher")
	}
	defer w.Close()

	// Watch the directory: editors commonly replace the file rather than
	// write it in place, which drops a watch on the file itself.
	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrapf(err, "Resolving %v", path)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return errors.Wrapf(err, "Watching %v", filepath.Dir(abs))
	}

	onChange(Load(abs))
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				log.D(ctx, "Settings changed: %v", ev)
				onChange(Load(abs))
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.W(ctx, "Settings watcher error: %v", err)
		}
	}
}
