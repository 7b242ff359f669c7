package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"bankaccounts/internal/config"
	"bankaccounts/internal/console"
	"bankaccounts/internal/logger"
)

// app 為各子命令共用的狀態：旗標、設定與記錄器清理函式。
type app struct {
	debug   bool
	output  string
	envFile string

	cfg     *config.Config
	cleanup func()
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd, a := newRootCmd()
	err := cmd.ExecuteContext(ctx)
	a.close()
	if err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{}

	cmd := &cobra.Command{
		Use:          "bankdemo",
		Short:        "Run bank-account scenarios against the in-memory account model",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging (JSON on stderr)")
	cmd.PersistentFlags().StringVarP(&a.output, "output", "o", "", "output format: text|json (default from BANK_OUTPUT)")
	cmd.PersistentFlags().StringVar(&a.envFile, "env-file", "", "load environment variables from this file (default .env if present)")

	cmd.AddCommand(demoCmd(a), runCmd(a), versionCmd())
	return cmd, a
}

// init 載入 .env 與設定，旗標優先於環境變數，最後安裝記錄器。
func (a *app) init(cmd *cobra.Command) error {
	if a.envFile != "" {
		if err := godotenv.Load(a.envFile); err != nil {
			return fmt.Errorf("load env file %s: %w", a.envFile, err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = strings.ToLower(strings.TrimSpace(a.output))
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = a.debug
	}
	a.cfg = cfg

	a.cleanup = logger.Setup(logger.Config{Debug: cfg.Debug, Writer: cmd.ErrOrStderr()})
	return nil
}

func (a *app) close() {
	if a.cleanup != nil {
		a.cleanup()
		a.cleanup = nil
	}
}

func (a *app) runner() *console.Runner {
	return console.NewRunner(logger.L(), a.cfg.AccountOptions()...)
}

// render 依設定輸出報告；有失敗時回傳錯誤讓程式以非零狀態結束。
func (a *app) render(w io.Writer, rep console.Report) error {
	var err error
	if a.cfg.Output == config.OutputJSON {
		err = console.WriteJSON(w, rep)
	} else {
		err = console.WriteText(w, rep)
	}
	if err != nil {
		return err
	}
	if n := rep.Failures(); n > 0 {
		return fmt.Errorf("scenario %q finished with %d failure(s)", rep.Scenario, n)
	}
	return nil
}
