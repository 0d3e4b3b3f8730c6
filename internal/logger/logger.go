package logger

import (
	"context"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type loggerContextKey struct{}

var (
	//nolint:gochecknoglobals // Global logger is shared across the application lifetime.
	globalLogger *zap.SugaredLogger

	//nolint:gochecknoglobals // Global level handle allows changing verbosity at runtime.
	globalLevel zap.AtomicLevel

	//nolint:gochecknoglobals // Guards lazy initialization of the global logger.
	initOnce sync.Once
)

// New creates a new SugaredLogger writing JSON to stderr at the given level.
// A nil level defaults to info.
func New(level zapcore.LevelEnabler, options ...zap.Option) *zap.SugaredLogger {
	if level == nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.TimeKey = "ts"

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		level,
	)

	return zap.New(core, options...).Sugar()
}

func initGlobals() {
	initOnce.Do(func() {
		globalLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		globalLogger = New(globalLevel, zap.AddCallerSkip(1))
	})
}

// Logger returns the global logger instance.
func Logger() *zap.SugaredLogger {
	initGlobals()

	return globalLogger
}

// SetLogger replaces the global logger instance.
func SetLogger(l *zap.SugaredLogger) {
	initGlobals()

	globalLogger = l
}

// SetLevel changes the level of the global logger.
func SetLevel(level zapcore.Level) {
	initGlobals()

	globalLevel.SetLevel(level)
}

// Level returns the current level of the global logger.
func Level() zapcore.Level {
	initGlobals()

	return globalLevel.Level()
}

// IsDebugLevel reports whether the global logger emits debug entries.
func IsDebugLevel() bool {
	return Level() <= zapcore.DebugLevel
}

// ParseLogLevel parses a textual log level.
// It returns the parsed level and true on success,
// or info level and false if the input is not recognized.
func ParseLogLevel(level string) (zapcore.Level, bool) {
	parsed, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zapcore.InfoLevel, false
	}

	return parsed, true
}

// ToContext returns a context carrying the provided logger.
// It is used to attach request-scoped fields (user ID, track ID) to log entries.
func ToContext(ctx context.Context, l *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, loggerContextKey{}, l)
}

// FromContext returns the logger attached to the context,
// or the global logger if the context carries none.
func FromContext(ctx context.Context) *zap.SugaredLogger {
	if l, ok := ctx.Value(loggerContextKey{}).(*zap.SugaredLogger); ok {
		return l
	}

	return Logger()
}

// WithFields returns a context whose logger carries the given key-value pairs.
func WithFields(ctx context.Context, keysAndValues ...any) context.Context {
	return ToContext(ctx, FromContext(ctx).With(keysAndValues...))
}

// Debug logs a message at debug level.
func Debug(ctx context.Context, args ...any) {
	FromContext(ctx).Debug(args...)
}

// Debugf logs a formatted message at debug level.
func Debugf(ctx context.Context, format string, args ...any) {
	FromContext(ctx).Debugf(format, args...)
}

// DebugKV logs a message at debug level with additional key-value pairs.
func DebugKV(ctx context.Context, message string, keysAndValues ...any) {
	FromContext(ctx).Debugw(message, keysAndValues...)
}

// Info logs a message at info level.
func Info(ctx context.Context, args ...any) {
	FromContext(ctx).Info(args...)
}

// Infof logs a formatted message at info level.
func Infof(ctx context.Context, format string, args ...any) {
	FromContext(ctx).Infof(format, args...)
}

// InfoKV logs a message at info level with additional key-value pairs.
func InfoKV(ctx context.Context, message string, keysAndValues ...any) {
	FromContext(ctx).Infow(message, keysAndValues...)
}

// Warn logs a message at warn level.
func Warn(ctx context.Context, args ...any) {
	FromContext(ctx).Warn(args...)
}

// Warnf logs a formatted message at warn level.
func Warnf(ctx context.Context, format string, args ...any) {
	FromContext(ctx).Warnf(format, args...)
}

// WarnKV logs a message at warn level with additional key-value pairs.
func WarnKV(ctx context.Context, message string, keysAndValues ...any) {
	FromContext(ctx).Warnw(message, keysAndValues...)
}

// Error logs a message at error level.
func Error(ctx context.Context, args ...any) {
	FromContext(ctx).Error(args...)
}

// Errorf logs a formatted message at error level.
func Errorf(ctx context.Context, format string, args ...any) {
	FromContext(ctx).Errorf(format, args...)
}

// ErrorKV logs a message at error level with additional key-value pairs.
func ErrorKV(ctx context.Context, message string, keysAndValues ...any) {
	FromContext(ctx).Errorw(message, keysAndValues...)
}

// Fatal logs a message at fatal level and exits.
func Fatal(ctx context.Context, args ...any) {
	FromContext(ctx).Fatal(args...)
}

// Fatalf logs a formatted message at fatal level and exits.
func Fatalf(ctx context.Context, format string, args ...any) {
	FromContext(ctx).Fatalf(format, args...)
}
