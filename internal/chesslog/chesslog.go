// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package chesslog provides the structured logger used at the core's
// one real I/O boundary: the position loader's fallible parse path.
package chesslog

import (
	"os"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("chesscore")

func init() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatter := logging.MustStringFormatter(
		`%{time:15:04:05.000} %{level:.4s} %{message}`,
	)
	logging.SetBackend(logging.NewBackendFormatter(backend, formatter))
}

// Errorf logs a rejected load, e.g. a malformed FEN field.
func Errorf(format string, args ...interface{}) {
	log.Errorf(format, args...)
}

// Debugf logs internal diagnostics, e.g. progress bar errors in the
// perft harness.
func Debugf(format string, args ...interface{}) {
	log.Debugf(format, args...)
}
