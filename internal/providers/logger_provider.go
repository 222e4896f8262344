package providers

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"nli/internal/structures"
)

type TypeEnum int

const (
	TypeApp TypeEnum = iota
	TypeGet
	TypePost
)

// GetLogTypeByRequestType maps an HTTP method to a log channel. Everything
// that is not a POST goes to the read channel.
func GetLogTypeByRequestType(method string) TypeEnum {
	if method == "POST" {
		return TypePost
	}
	return TypeGet
}

type Logger interface {
	Errorf(t TypeEnum, format string, args ...interface{})
	Warnf(t TypeEnum, format string, args ...interface{})
	Infof(t TypeEnum, format string, args ...interface{})
	Debugf(t TypeEnum, format string, args ...interface{})
	Fatalf(t TypeEnum, format string, args ...interface{})
	Close()
}

type logFiles struct {
	app  *os.File
	get  *os.File
	post *os.File
}

// LogProvider writes one zerolog stream per channel: application lifecycle,
// read traffic and write traffic each get their own file.
type LogProvider struct {
	loggers map[TypeEnum]zerolog.Logger
	files   logFiles
}

func NewLogProvider(conf *structures.Config) (Logger, error) {
	level, err := zerolog.ParseLevel(conf.Logger.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", conf.Logger.Level, err)
	}

	mode := os.FileMode(conf.Logger.Mode)
	open := func(name string) (*os.File, error) {
		return os.OpenFile(filepath.Join(conf.Logger.Dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, mode)
	}

	appFile, err := open("app.log")
	if err != nil {
		return nil, err
	}
	getFile, err := open("get.log")
	if err != nil {
		appFile.Close()
		return nil, err
	}
	postFile, err := open("post.log")
	if err != nil {
		appFile.Close()
		getFile.Close()
		return nil, err
	}

	mk := func(f *os.File) zerolog.Logger {
		return zerolog.New(f).Level(level).With().Timestamp().Logger()
	}

	return &LogProvider{
		loggers: map[TypeEnum]zerolog.Logger{
			TypeApp:  mk(appFile),
			TypeGet:  mk(getFile),
			TypePost: mk(postFile),
		},
		files: logFiles{app: appFile, get: getFile, post: postFile},
	}, nil
}

func (l *LogProvider) logger(t TypeEnum) zerolog.Logger {
	if lg, ok := l.loggers[t]; ok {
		return lg
	}
	return l.loggers[TypeApp]
}

func (l *LogProvider) Errorf(t TypeEnum, format string, args ...interface{}) {
	lg := l.logger(t)
	lg.Error().Msgf(format, args...)
}

func (l *LogProvider) Warnf(t TypeEnum, format string, args ...interface{}) {
	lg := l.logger(t)
	lg.Warn().Msgf(format, args...)
}

func (l *LogProvider) Infof(t TypeEnum, format string, args ...interface{}) {
	lg := l.logger(t)
	lg.Info().Msgf(format, args...)
}

func (l *LogProvider) Debugf(t TypeEnum, format string, args ...interface{}) {
	lg := l.logger(t)
	lg.Debug().Msgf(format, args...)
}

func (l *LogProvider) Fatalf(t TypeEnum, format string, args ...interface{}) {
	lg := l.logger(t)
	lg.Fatal().Msgf(format, args...)
}

func (l *LogProvider) Close() {
	l.files.app.Close()
	l.files.get.Close()
	l.files.post.Close()
}
