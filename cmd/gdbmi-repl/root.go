package main

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/schreinerhq/gdbmi"
	"github.com/schreinerhq/gdbmi/gdbmiconf"
	"github.com/schreinerhq/gdbmi/internal/event"
)

var (
	verbose bool
	dialect string
)

var rootCmd = &cobra.Command{
	Use:   "gdbmi-repl [program]",
	Short: "drive a GDB/LLDB Machine Interface session from the terminal",
	Long: `gdbmi-repl launches the configured debugger under --interpreter=mi2,
lets you type raw MI commands at a prompt, and prints every notification
and stream record it dispatches as it arrives.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&dialect, "dialect", "", "override the configured debugger dialect (gdb|lldb)")
}

func Execute() error {
	return rootCmd.Execute()
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := gdbmiconf.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if dialect != "" {
		cfg.Dialect = dialect
	}

	log, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer log.Sync()

	debuggerCmd := exec.Command(cfg.DebuggerPath, cfg.DebuggerArgs...)
	stdin, err := debuggerCmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("opening debugger stdin: %w", err)
	}
	stdout, err := debuggerCmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("opening debugger stdout: %w", err)
	}
	debuggerCmd.Stderr = os.Stderr
	if err := debuggerCmd.Start(); err != nil {
		return fmt.Errorf("starting debugger: %w", err)
	}

	opt := gdbmi.WithDebugger(gdbmi.DebuggerGDB)
	if cfg.Dialect == "lldb" {
		opt = gdbmi.WithDebugger(gdbmi.DebuggerLLDB)
	}
	session := gdbmi.NewSession(stdout, stdin, gdbmi.WithLogger(log), opt)
	session.Subscribe(func(ev event.Event) {
		fmt.Printf("[event %s] %+v\n", ev.Kind, ev.Payload)
	})

	if len(args) == 1 {
		if err := session.SetExecutableFile(args[0]); err != nil {
			log.Error("setting executable file", zap.Error(err))
		}
	}

	fmt.Println("gdbmi-repl ready; type raw MI command bodies, or \"quit\" to exit")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "quit" {
			break
		}
		if line == "" {
			continue
		}
		class, data, err := session.RawCommand(line)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			continue
		}
		fmt.Printf("%s %+v\n", class, data)
	}

	return session.End(true)
}

func newLogger(cfg gdbmiconf.Config) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if cfg.LogLevel != "" {
		if err := zcfg.Level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
			return nil, fmt.Errorf("invalid log_level %q: %w", cfg.LogLevel, err)
		}
	}
	if verbose {
		zcfg.Level.SetLevel(zap.DebugLevel)
	}
	if cfg.LogFile != "" {
		zcfg.OutputPaths = []string{cfg.LogFile}
	}
	return zcfg.Build()
}
