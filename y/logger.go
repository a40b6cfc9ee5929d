/*
 * Copyright 2018 Dgraph Labs, Inc. and Contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package y

import (
	"log"
	"os"
)

// Logger is implemented by any logging system that is used for standard logs.
type Logger interface {
	Errorf(string, ...interface{})
	Warningf(string, ...interface{})
	Infof(string, ...interface{})
	Debugf(string, ...interface{})
}

type defaultLog struct {
	*log.Logger
	debug bool
}

var defaultLogger = &defaultLog{Logger: log.New(os.Stderr, "forcecrc ", log.LstdFlags)}

// DefaultLogger returns the process-wide logger writing to stderr.
func DefaultLogger() Logger {
	return defaultLogger
}

// NewLogger returns a stderr logger. Debugf output is dropped unless debug is set.
func NewLogger(debug bool) Logger {
	return &defaultLog{Logger: log.New(os.Stderr, "forcecrc ", log.LstdFlags), debug: debug}
}

func (l *defaultLog) Errorf(f string, v ...interface{}) {
	l.Printf("ERROR: "+f, v...)
}

func (l *defaultLog) Warningf(f string, v ...interface{}) {
	l.Printf("WARNING: "+f, v...)
}

func (l *defaultLog) Infof(f string, v ...interface{}) {
	l.Printf("INFO: "+f, v...)
}

func (l *defaultLog) Debugf(f string, v ...interface{}) {
	if !l.debug {
		return
	}
	l.Printf("DEBUG: "+f, v...)
}
