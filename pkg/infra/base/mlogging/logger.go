// 指示: miu200521358
// Package mlogging は log/slog を用いた ILogger 実装を提供する。
package mlogging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/miu200521358/mu_vrmik/pkg/shared/base/logging"
)

const (
	// FormatText はテキスト形式の出力を表す。
	FormatText = "text"
	// FormatJSON はJSON形式の出力を表す。
	FormatJSON = "json"

	slogLevelVerbose = slog.Level(-8)
	componentKey     = "component"
	verboseIndexKey  = "verbose"
)

// Logger は slog.Logger を包むロガーを表す。
type Logger struct {
	mu       sync.RWMutex
	level    *slog.LevelVar
	logger   *slog.Logger
	verboses map[logging.VerboseIndex]struct{}
}

// NewLogger はテキスト形式のロガーを生成する。w が nil の場合は標準エラー出力を使う。
func NewLogger(w io.Writer) *Logger {
	logger, _ := NewLoggerWithFormat(w, FormatText)
	return logger
}

// NewLoggerWithFormat は出力形式を指定してロガーを生成する。
func NewLoggerWithFormat(w io.Writer, format string) (*Logger, error) {
	writer := w
	if writer == nil {
		writer = os.Stderr
	}
	level := &slog.LevelVar{}
	level.Set(slog.LevelInfo)
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch format {
	case FormatJSON:
		handler = slog.NewJSONHandler(writer, opts)
	case FormatText, "":
		handler = slog.NewTextHandler(writer, opts)
	default:
		return nil, fmt.Errorf("ログ形式が未対応です: %s", format)
	}

	return &Logger{
		level:    level,
		logger:   slog.New(handler),
		verboses: map[logging.VerboseIndex]struct{}{},
	}, nil
}

// WithComponent はコンポーネント属性を付けた派生ロガーを返す。
func (l *Logger) WithComponent(component string) *Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	verboses := make(map[logging.VerboseIndex]struct{}, len(l.verboses))
	for index := range l.verboses {
		verboses[index] = struct{}{}
	}
	return &Logger{
		level:    l.level,
		logger:   l.logger.With(slog.String(componentKey, component)),
		verboses: verboses,
	}
}

// EnableVerbose は詳細ログ区分を有効化する。
func (l *Logger) EnableVerbose(indexes ...logging.VerboseIndex) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, index := range indexes {
		l.verboses[index] = struct{}{}
	}
}

// Debug はデバッグログを出力する。
func (l *Logger) Debug(format string, params ...any) {
	l.log(slog.LevelDebug, format, params...)
}

// Info は通常ログを出力する。
func (l *Logger) Info(format string, params ...any) {
	l.log(slog.LevelInfo, format, params...)
}

// Warn は警告ログを出力する。
func (l *Logger) Warn(format string, params ...any) {
	l.log(slog.LevelWarn, format, params...)
}

// Error はエラーログを出力する。
func (l *Logger) Error(format string, params ...any) {
	l.log(slog.LevelError, format, params...)
}

// Verbose は区分付きの詳細ログを出力する。
func (l *Logger) Verbose(index logging.VerboseIndex, format string, params ...any) {
	if !l.IsVerboseEnabled(index) {
		return
	}
	l.logger.Log(context.Background(), slogLevelVerbose, fmt.Sprintf(format, params...), slog.Int(verboseIndexKey, int(index)))
}

// IsVerboseEnabled は区分の詳細ログが有効か返す。
func (l *Logger) IsVerboseEnabled(index logging.VerboseIndex) bool {
	if l.level.Level() > slogLevelVerbose {
		return false
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, exists := l.verboses[index]
	return exists
}

// SetLevel はログレベルを設定する。
func (l *Logger) SetLevel(level logging.LogLevel) {
	l.level.Set(toSlogLevel(level))
}

// Level は現在のログレベルを返す。
func (l *Logger) Level() logging.LogLevel {
	switch current := l.level.Level(); {
	case current <= slogLevelVerbose:
		return logging.LOG_LEVEL_VERBOSE
	case current <= slog.LevelDebug:
		return logging.LOG_LEVEL_DEBUG
	case current <= slog.LevelInfo:
		return logging.LOG_LEVEL_INFO
	case current <= slog.LevelWarn:
		return logging.LOG_LEVEL_WARN
	default:
		return logging.LOG_LEVEL_ERROR
	}
}

// log は書式化したメッセージを指定レベルで出力する。
func (l *Logger) log(level slog.Level, format string, params ...any) {
	ctx := context.Background()
	if !l.logger.Enabled(ctx, level) {
		return
	}
	l.logger.Log(ctx, level, fmt.Sprintf(format, params...))
}

// toSlogLevel はログレベルを slog のレベルへ変換する。
func toSlogLevel(level logging.LogLevel) slog.Level {
	switch level {
	case logging.LOG_LEVEL_VERBOSE:
		return slogLevelVerbose
	case logging.LOG_LEVEL_DEBUG:
		return slog.LevelDebug
	case logging.LOG_LEVEL_WARN:
		return slog.LevelWarn
	case logging.LOG_LEVEL_ERROR:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
