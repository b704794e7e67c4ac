// 指示: miu200521358
package minteractor

import "github.com/miu200521358/mu_vrmik/pkg/shared/base/logging"

// logIkInfo はIK処理のINFOログを出力し、フレーム冗長ログにも転送する。
func logIkInfo(format string, params ...any) {
	logger := logging.DefaultLogger()
	if logger == nil {
		return
	}
	logger.Info(format, params...)
	if logger.IsVerboseEnabled(logging.VERBOSE_INDEX_FRAME) {
		logger.Verbose(logging.VERBOSE_INDEX_FRAME, "[INFO] "+format, params...)
	}
}

// logIkDebug はIK処理のDEBUGログを出力する。
func logIkDebug(format string, params ...any) {
	logger := logging.DefaultLogger()
	if logger == nil {
		return
	}
	logger.Debug(format, params...)
}

// logIkWarn はIK処理のWARNログを出力する。
func logIkWarn(format string, params ...any) {
	logger := logging.DefaultLogger()
	if logger == nil {
		return
	}
	logger.Warn(format, params...)
}

// logIkVerbose は区分付きの冗長ログを出力する。
func logIkVerbose(index logging.VerboseIndex, format string, params ...any) {
	logger := logging.DefaultLogger()
	if logger == nil || !logger.IsVerboseEnabled(index) {
		return
	}
	logger.Verbose(index, format, params...)
}
