// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"log"
	"os"

	"github.com/cpmech/gosl/utl"
)

// logFile holds a handle to the errors logger file
var logFile *os.File

// InitLogFile initialises the logger
func InitLogFile(dirout, fnamekey string) (err error) {
	logFile, err = os.Create(utl.Sf("%s/%s.log", dirout, fnamekey))
	if err != nil {
		return
	}
	log.SetOutput(logFile)
	return
}

// FlushLog saves the log (flushes to disk)
func FlushLog() {
	logFile.Close()
}

// LogErr logs an error and returns a stop flag
func LogErr(err error, msg string) (stop bool) {
	if err != nil {
		log.Printf("ERROR: " + msg + " : " + err.Error())
		return true
	}
	return false
}

// LogErrCond logs an error using a condition (==true) to stop and
// returns the stop flag
func LogErrCond(condition bool, msg string, prm ...interface{}) (stop bool) {
	if condition {
		log.Printf("ERROR: " + utl.Sf(msg, prm...))
		return true
	}
	return false
}
