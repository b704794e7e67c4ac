// 指示: miu200521358
// Package logging はツール共通のロガー契約と既定ロガーを提供する。
package logging

import "sync"

// LogLevel はログレベルを表す。
type LogLevel int

const (
	// LOG_LEVEL_VERBOSE は詳細ログを表す。
	LOG_LEVEL_VERBOSE LogLevel = iota
	// LOG_LEVEL_DEBUG はデバッグログを表す。
	LOG_LEVEL_DEBUG
	// LOG_LEVEL_INFO は通常ログを表す。
	LOG_LEVEL_INFO
	// LOG_LEVEL_WARN は警告ログを表す。
	LOG_LEVEL_WARN
	// LOG_LEVEL_ERROR はエラーログを表す。
	LOG_LEVEL_ERROR
)

// VerboseIndex は詳細ログの出力区分を表す。
type VerboseIndex int

const (
	// VERBOSE_INDEX_FABRIK はFABRIK反復の詳細ログ区分。
	VERBOSE_INDEX_FABRIK VerboseIndex = iota
	// VERBOSE_INDEX_SYNTHESIZE は回転合成の詳細ログ区分。
	VERBOSE_INDEX_SYNTHESIZE
	// VERBOSE_INDEX_FRAME はフレーム進行の詳細ログ区分。
	VERBOSE_INDEX_FRAME
)

// ILogger はロガー契約を表す。
type ILogger interface {
	// Debug はデバッグログを出力する。
	Debug(format string, params ...any)
	// Info は通常ログを出力する。
	Info(format string, params ...any)
	// Warn は警告ログを出力する。
	Warn(format string, params ...any)
	// Error はエラーログを出力する。
	Error(format string, params ...any)
	// Verbose は区分付きの詳細ログを出力する。
	Verbose(index VerboseIndex, format string, params ...any)
	// IsVerboseEnabled は区分の詳細ログが有効か返す。
	IsVerboseEnabled(index VerboseIndex) bool
	// SetLevel はログレベルを設定する。
	SetLevel(level LogLevel)
	// Level は現在のログレベルを返す。
	Level() LogLevel
}

var (
	defaultMu     sync.RWMutex
	defaultLogger ILogger
)

// DefaultLogger は既定ロガーを返す。未設定時は nil。
func DefaultLogger() ILogger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefaultLogger は既定ロガーを差し替える。
func SetDefaultLogger(logger ILogger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = logger
}

// ParseLogLevel は文字列からログレベルを解決する。
func ParseLogLevel(value string) (LogLevel, bool) {
	switch value {
	case "verbose":
		return LOG_LEVEL_VERBOSE, true
	case "debug":
		return LOG_LEVEL_DEBUG, true
	case "info", "":
		return LOG_LEVEL_INFO, true
	case "warn":
		return LOG_LEVEL_WARN, true
	case "error":
		return LOG_LEVEL_ERROR, true
	default:
		return LOG_LEVEL_INFO, false
	}
}
