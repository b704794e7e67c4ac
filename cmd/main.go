// 指示: miu200521358
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/miu200521358/mu_vrmik/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_vrmik/pkg/infra/base/mlogging"
	"github.com/miu200521358/mu_vrmik/pkg/shared/base/logging"
)

// version はビルド時に -ldflags で設定される。
var version = "dev"

// globalOptions は全コマンド共通のCLI引数を保持する。
type globalOptions struct {
	logLevel  string
	logFormat string
}

// main は腕IKのCLIを実行する。
func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run はCLI処理全体を実行する。
func run(args []string, out io.Writer, errOut io.Writer) error {
	root := newRootCommand(out, errOut)
	root.SetArgs(args)
	return root.ExecuteContext(context.Background())
}

// newRootCommand はサブコマンドを登録したルートコマンドを生成する。
func newRootCommand(out io.Writer, errOut io.Writer) *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:           "mu_vrmik",
		Short:         "VRMアバターの腕IKを解決する",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return configureLogger(errOut, opts)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetUsageTemplate(strings.Replace(root.UsageTemplate(), "Usage:", messages.HelpUsageTitle+":", 1))

	flags := root.PersistentFlags()
	flags.StringVar(&opts.logLevel, "log-level", "info", "ログレベル (verbose|debug|info|warn|error)")
	flags.StringVar(&opts.logFormat, "log-format", mlogging.FormatText, "ログ形式 (text|json)")

	root.AddCommand(newSolveCommand())
	root.AddCommand(newChainsCommand())
	return root
}

// configureLogger はCLI引数から既定ロガーを設定する。
func configureLogger(errOut io.Writer, opts *globalOptions) error {
	level, ok := logging.ParseLogLevel(opts.logLevel)
	if !ok {
		return fmt.Errorf("ログレベルが不正です: %s", opts.logLevel)
	}
	logger, err := mlogging.NewLoggerWithFormat(errOut, opts.logFormat)
	if err != nil {
		return err
	}
	logger.SetLevel(level)
	if level == logging.LOG_LEVEL_VERBOSE {
		logger.EnableVerbose(logging.VERBOSE_INDEX_FABRIK, logging.VERBOSE_INDEX_SYNTHESIZE, logging.VERBOSE_INDEX_FRAME)
	}
	logging.SetDefaultLogger(logger.WithComponent("mu_vrmik"))
	return nil
}
