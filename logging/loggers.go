package logging

import (
	"io"
	"io/ioutil"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// const
const (
	PanicLevel = "panic"
	FatalLevel = "fatal"
	ErrorLevel = "error"
	WarnLevel  = "warn"
	InfoLevel  = "info"
	DebugLevel = "debug"
	TraceLevel = "trace"
)

const (
	//PANIC log level
	PANIC uint32 = iota
	//FATAL has list msg
	FATAL
	//ERROR has list msg
	ERROR
	//WARN only log
	WARN
	//INFO only log
	INFO
	//DEBUG only log
	DEBUG
	//TRACE only log
	TRACE
)

// LogFormat is to log format
type LogFormat = map[string]interface{}

var (
	mu sync.RWMutex
	// clog prints to console and file, vlog only to file
	clog *logrus.Logger
	vlog *logrus.Logger

	// console is where clog prints, stdout is reserved for command output
	console io.Writer = os.Stderr
)

func convertLevel(level string) logrus.Level {
	switch level {
	case PanicLevel:
		return logrus.PanicLevel
	case FatalLevel:
		return logrus.FatalLevel
	case ErrorLevel:
		return logrus.ErrorLevel
	case WarnLevel:
		return logrus.WarnLevel
	case InfoLevel:
		return logrus.InfoLevel
	case DebugLevel:
		return logrus.DebugLevel
	case TraceLevel:
		return logrus.TraceLevel
	default:
		return logrus.InfoLevel
	}
}

func newLogger(out io.Writer, level string, hooks ...logrus.Hook) *logrus.Logger {
	l := logrus.New()
	for _, h := range hooks {
		l.Hooks.Add(h)
	}
	l.Out = out
	l.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	l.Level = convertLevel(level)
	return l
}

// Init loggers. An empty path keeps logs off the disk.
func Init(path, filename string, level string, age uint32, disableCPrint bool) error {
	var hooks []logrus.Hook
	if path != "" {
		fileHooker, err := NewFileRotateHooker(path, filename, age, nil)
		if err != nil {
			return err
		}
		hooks = append(hooks, fileHooker)
	}

	v := newLogger(ioutil.Discard, level, hooks...)
	c := v
	if !disableCPrint {
		c = newLogger(console, level, hooks...)
	}

	mu.Lock()
	vlog, clog = v, c
	mu.Unlock()

	v.WithFields(logrus.Fields{
		"path":  path,
		"level": level,
	}).Debug("Logger Configuration.")
	return nil
}

func loggers() (c, v *logrus.Logger) {
	mu.RLock()
	c, v = clog, vlog
	mu.RUnlock()
	if c != nil {
		return c, v
	}
	Init("", "", InfoLevel, 0, false)
	return loggers()
}

// CPrint into stderr + log
func CPrint(level uint32, msg string, formats ...LogFormat) {
	c, _ := loggers()
	logAt(c, level, msg, append(formats, callerFields(1))...)
}

// VPrint into log
func VPrint(level uint32, msg string, formats ...LogFormat) {
	_, v := loggers()
	logAt(v, level, msg, append(formats, callerFields(1))...)
}

func logAt(l *logrus.Logger, level uint32, msg string, formats ...LogFormat) {
	entry := l.WithFields(mergeLogFormats(formats...))
	switch level {
	case PANIC:
		entry.Panic(msg)
	case FATAL:
		entry.Fatal(msg)
	case ERROR:
		entry.Error(msg)
	case WARN:
		entry.Warn(msg)
	case INFO:
		entry.Info(msg)
	case DEBUG:
		entry.Debug(msg)
	case TRACE:
		entry.Trace(msg)
	default:
		entry.Error(msg)
	}
}

// mergeLogFormats merges LogFormats.
// Same key would be covered by later-presented values.
func mergeLogFormats(formats ...LogFormat) LogFormat {
	format := LogFormat{}
	for _, data := range formats {
		for k, v := range data {
			format[k] = v
		}
	}
	return format
}
