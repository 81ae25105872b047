package main

import (
	"io"
	"io/ioutil"
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

type flogger interface {
	Printf(format string, v ...interface{})
	Println(v ...interface{})
}

// ThreadLogger tags each line with the name of whoever logged it
type ThreadLogger struct {
	name string
}

func (tl *ThreadLogger) Printf(format string, v ...interface{}) {
	log.Printf("["+tl.name+"] "+format, v...)
}

func (tl *ThreadLogger) Println(v ...interface{}) {
	log.Println(append([]interface{}{"[" + tl.name + "]"}, v...)...)
}

// setupLogging sends log output to the rotating log file, and to stderr
// when toStderr is set. The returned closer flushes the file.
func setupLogging(s *settings, toStderr bool) io.Closer {
	writers := []io.Writer{}
	var closer io.Closer = ioutil.NopCloser(nil)

	if path := s.GetString(sLogFile); path != "" {
		lj := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    5, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		writers = append(writers, lj)
		closer = lj
	}
	if toStderr {
		writers = append(writers, os.Stderr)
	}

	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.SetOutput(io.MultiWriter(writers...))
	return closer
}
