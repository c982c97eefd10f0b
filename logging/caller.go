package logging

import (
	"path/filepath"
	"runtime"
	"strings"
)

// callerFields describes the function, file and line skip frames above its caller.
func callerFields(skip int) LogFormat {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return nil
	}
	fname := "unknown"
	if f := runtime.FuncForPC(pc); f != nil {
		fname = f.Name()
	}
	if index := strings.LastIndex(fname, "/"); index >= 0 {
		fname = fname[index+1:]
	}
	return LogFormat{
		"func": fname,
		"file": filepath.Base(file),
		"line": line,
	}
}
