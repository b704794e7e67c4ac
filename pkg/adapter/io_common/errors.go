// 指示: miu200521358
// Package io_common は入出力アダプタ共通のエラー生成を提供する。
package io_common

import "github.com/miu200521358/mu_vrmik/pkg/shared/base/merr"

const (
	// FileNotFoundErrorID はファイル未検出エラーID。
	FileNotFoundErrorID = "14101"
	// ExtInvalidErrorID は拡張子不正エラーID。
	ExtInvalidErrorID = "14102"
	// ParseFailedErrorID は解析失敗エラーID。
	ParseFailedErrorID = "14103"
	// FormatNotSupportedErrorID は形式未対応エラーID。
	FormatNotSupportedErrorID = "14104"
)

// NewIoFileNotFound はファイル未検出エラーを生成する。
func NewIoFileNotFound(path string, cause error) error {
	return merr.NewIdError(FileNotFoundErrorID, cause, "ファイルが見つかりません: %s", path)
}

// NewIoExtInvalid は拡張子不正エラーを生成する。
func NewIoExtInvalid(path string, cause error) error {
	return merr.NewIdError(ExtInvalidErrorID, cause, "拡張子が不正です: %s", path)
}

// NewIoParseFailed は解析失敗エラーを生成する。
func NewIoParseFailed(format string, cause error, params ...any) error {
	return merr.NewIdError(ParseFailedErrorID, cause, format, params...)
}

// NewIoFormatNotSupported は形式未対応エラーを生成する。
func NewIoFormatNotSupported(format string, cause error, params ...any) error {
	return merr.NewIdError(FormatNotSupportedErrorID, cause, format, params...)
}
