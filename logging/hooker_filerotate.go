package logging

import (
	"os"
	"path/filepath"
	"time"

	rotatelogs "github.com/lestrrat/go-file-rotatelogs"
	"github.com/pkg/errors"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
)

// NewFileRotateHooker writes every entry into a daily rotated file under path.
// age is the number of days a rotated file is kept, 0 keeps them forever.
func NewFileRotateHooker(path, filename string, age uint32, formatter logrus.Formatter) (logrus.Hook, error) {
	if len(path) == 0 {
		return nil, errors.New("empty logger folder")
	}
	if !filepath.IsAbs(path) {
		path, _ = filepath.Abs(path)
	}
	if err := os.MkdirAll(path, 0700); err != nil {
		return nil, errors.Wrapf(err, "failed to create logger folder %s", path)
	}

	opts := []rotatelogs.Option{
		rotatelogs.WithLinkName(filepath.Join(path, filename+".log")),
		rotatelogs.WithRotationTime(24 * time.Hour),
	}
	if age > 0 {
		opts = append(opts, rotatelogs.WithMaxAge(time.Duration(age)*24*time.Hour))
	}
	writer, err := rotatelogs.New(filepath.Join(path, filename+"-%Y%m%d.log"), opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create rotate logs")
	}

	return lfshook.NewHook(lfshook.WriterMap{
		logrus.TraceLevel: writer,
		logrus.DebugLevel: writer,
		logrus.InfoLevel:  writer,
		logrus.WarnLevel:  writer,
		logrus.ErrorLevel: writer,
		logrus.FatalLevel: writer,
		logrus.PanicLevel: writer,
	}, formatter), nil
}
