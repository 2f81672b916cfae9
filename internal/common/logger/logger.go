package logger

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/abenov/authweb/internal/common/constants"
)

type Fields map[string]interface{}

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARNING
	ERROR
	CRITICAL
)

var levelNames = map[LogLevel]string{
	DEBUG:    "DEBUG",
	INFO:     "INFO",
	WARNING:  "WARNING",
	ERROR:    "ERROR",
	CRITICAL: "CRITICAL",
}

type Logger struct {
	level   LogLevel
	out     *log.Logger
	appName string
	mu      sync.RWMutex
}

func New(logDir, appName, level string) (*Logger, error) {
	l := &Logger{
		level:   parseLevel(level),
		out:     log.New(os.Stdout, "", log.LstdFlags),
		appName: appName,
	}

	if logDir != "" {
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		fileWriter := &lumberjack.Logger{
			Filename:   filepath.Join(logDir, "app.log"),
			MaxSize:    constants.LoggerMaxSize,
			MaxBackups: constants.LoggerMaxBackups,
			MaxAge:     constants.LoggerMaxAge,
			Compress:   true,
		}
		l.out = log.New(io.MultiWriter(os.Stdout, fileWriter), "", log.LstdFlags)
	}

	return l, nil
}

func (l *Logger) write(level LogLevel, ctx context.Context, msg string, fields Fields) {
	l.mu.RLock()
	currentLevel := l.level
	app := l.appName
	l.mu.RUnlock()

	if level < currentLevel {
		return
	}

	prefix := fmt.Sprintf("[%s]", levelNames[level])
	if app != "" {
		prefix = fmt.Sprintf("%s [%s]", prefix, app)
	}

	var fieldParts []string

	if ctx != nil {
		if traceID, ok := ctx.Value(constants.TraceIDKey).(string); ok && traceID != "" {
			fieldParts = append(fieldParts, fmt.Sprintf("trace_id=%s", traceID))
		}
	}

	if len(fields) > 0 {
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			fieldParts = append(fieldParts, fmt.Sprintf("%s=%v", k, fields[k]))
		}
	}

	if len(fieldParts) > 0 {
		prefix = fmt.Sprintf("%s [%s]", prefix, strings.Join(fieldParts, " "))
	}

	l.out.Output(0, fmt.Sprintf("%s %s", prefix, msg))
}

func (l *Logger) Debug(msg string) { l.write(DEBUG, nil, msg, nil) }
func (l *Logger) Info(msg string)  { l.write(INFO, nil, msg, nil) }
func (l *Logger) Warn(msg string)  { l.write(WARNING, nil, msg, nil) }
func (l *Logger) Error(msg string) { l.write(ERROR, nil, msg, nil) }

func (l *Logger) Debugf(format string, args ...any) {
	l.write(DEBUG, nil, fmt.Sprintf(format, args...), nil)
}

func (l *Logger) Infof(format string, args ...any) {
	l.write(INFO, nil, fmt.Sprintf(format, args...), nil)
}

func (l *Logger) Warnf(format string, args ...any) {
	l.write(WARNING, nil, fmt.Sprintf(format, args...), nil)
}

func (l *Logger) Errorf(format string, args ...any) {
	l.write(ERROR, nil, fmt.Sprintf(format, args...), nil)
}

func (l *Logger) Criticalf(format string, args ...any) {
	l.write(CRITICAL, nil, fmt.Sprintf(format, args...), nil)
}

func (l *Logger) Fatalf(format string, args ...any) {
	l.write(CRITICAL, nil, fmt.Sprintf(format, args...), nil)
	os.Exit(1)
}

func (l *Logger) WithFields(ctx context.Context, fields Fields) *Entry {
	return &Entry{
		logger: l,
		ctx:    ctx,
		fields: fields,
	}
}

type Entry struct {
	logger *Logger
	ctx    context.Context
	fields Fields
}

func (e *Entry) Info(msg string)  { e.logger.write(INFO, e.ctx, msg, e.fields) }
func (e *Entry) Warn(msg string)  { e.logger.write(WARNING, e.ctx, msg, e.fields) }
func (e *Entry) Error(msg string) { e.logger.write(ERROR, e.ctx, msg, e.fields) }

func (e *Entry) Warnf(format string, args ...any) {
	e.logger.write(WARNING, e.ctx, fmt.Sprintf(format, args...), e.fields)
}

func (e *Entry) Errorf(format string, args ...any) {
	e.logger.write(ERROR, e.ctx, fmt.Sprintf(format, args...), e.fields)
}

func parseLevel(value string) LogLevel {
	switch strings.TrimSpace(strings.ToUpper(value)) {
	case "DEBUG":
		return DEBUG
	case "INFO", "":
		return INFO
	case "WARNING", "WARN":
		return WARNING
	case "ERROR":
		return ERROR
	case "CRITICAL":
		return CRITICAL
	default:
		return INFO
	}
}
