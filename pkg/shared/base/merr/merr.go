// 指示: miu200521358
// Package merr はエラーIDを持つエラー型を提供する。
package merr

import (
	"errors"
	"fmt"
)

// IdError はエラーIDと原因を保持するエラーを表す。
type IdError struct {
	id      string
	message string
	cause   error
}

// NewIdError はエラーIDと書式付きメッセージからエラーを生成する。
func NewIdError(id string, cause error, format string, params ...any) *IdError {
	return &IdError{
		id:      id,
		message: fmt.Sprintf(format, params...),
		cause:   cause,
	}
}

// ErrorID はエラーIDを返す。
func (e *IdError) ErrorID() string {
	if e == nil {
		return ""
	}
	return e.id
}

// Error はエラーメッセージを返す。
func (e *IdError) Error() string {
	if e == nil {
		return ""
	}
	if e.cause == nil {
		return fmt.Sprintf("[%s] %s", e.id, e.message)
	}
	return fmt.Sprintf("[%s] %s: %v", e.id, e.message, e.cause)
}

// Unwrap は原因エラーを返す。
func (e *IdError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// ExtractErrorID はエラーチェーンから最初に見つかったエラーIDを返す。
func ExtractErrorID(err error) string {
	var idErr *IdError
	if errors.As(err, &idErr) {
		return idErr.ErrorID()
	}
	return ""
}

// HasErrorID はエラーチェーンに指定IDが含まれるか判定する。
func HasErrorID(err error, id string) bool {
	for err != nil {
		var idErr *IdError
		if !errors.As(err, &idErr) {
			return false
		}
		if idErr.ErrorID() == id {
			return true
		}
		err = idErr.Unwrap()
	}
	return false
}
