package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/nsf/termbox-go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type app struct {
	configPath string
	verbose    bool
	cfg        *Config
	logger     *zap.Logger
}

func (a *app) init(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg, a.verbose)
	if err != nil {
		return err
	}
	a.cfg, a.logger = cfg, logger
	return nil
}

// evalCmd prints the result of evaluating the command's own name with args.
func (a *app) evalCmd(cmd *cobra.Command, args []string) error {
	res, err := evaluate(append([]string{cmd.Name()}, args...))
	if err != nil {
		a.logger.Debug("command failed", zap.String("cmd", cmd.Name()), zap.Error(err))
		return err
	}
	a.logger.Debug("command", zap.String("input", res.Input), zap.String("output", res.Output))
	fmt.Fprintln(cmd.OutOrStdout(), res.Output)
	return nil
}

func (a *app) runConsole(cmd *cobra.Command, args []string) error {
	ui, err := NewUI(a.cfg, a.logger)
	if err != nil {
		return err
	}
	defer ui.Close()
	go func() {
		contCh := make(chan os.Signal, 1)
		signal.Notify(contCh, syscall.SIGCONT)
		termCh := make(chan os.Signal, 1)
		signal.Notify(termCh, syscall.SIGTERM)
		for {
			select {
			case <-contCh:
				termbox.Close()
				if err := termbox.Init(); err != nil {
					log.Fatalf("Cannot reinitialize terminal: %s", err)
				}
				ui.Redraw()
			case <-termCh:
				ui.Close()
				os.Exit(0)
			}
		}
	}()
	a.logger.Info("console started")
	ui.Run()
	return nil
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "termprime",
		Short: "Prime numbers in the terminal",
		Long: `termprime answers small number theory questions: primality, the next
prime, primes in a range, factorization, powers and remainders.

Run without arguments to start the interactive console.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.init,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		Args: cobra.NoArgs,
		RunE: a.runConsole,
	}
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", ".termprime.yaml", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	var count int
	nextCmd := &cobra.Command{
		Use:   "next N",
		Short: "Print the primes following N",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.evalCmd(cmd, append(args, strconv.Itoa(count)))
		},
	}
	nextCmd.Flags().IntVarP(&count, "count", "n", 1, "how many primes to print")

	rootCmd.AddCommand(
		nextCmd,
		&cobra.Command{
			Use:   "isprime N...",
			Short: "Tell whether each N is prime",
			Args:  cobra.MinimumNArgs(1),
			RunE:  a.evalCmd,
		},
		&cobra.Command{
			Use:   "primes [LOWER] UPPER",
			Short: "Print the primes strictly between LOWER (default 1) and UPPER",
			Args:  cobra.RangeArgs(1, 2),
			RunE:  a.evalCmd,
		},
		&cobra.Command{
			Use:   "factors N",
			Short: "Print the prime factorization of N",
			Args:  cobra.ExactArgs(1),
			RunE:  a.evalCmd,
		},
		&cobra.Command{
			Use:   "pow N P",
			Short: "Print N raised to P",
			Args:  cobra.ExactArgs(2),
			RunE:  a.evalCmd,
		},
		&cobra.Command{
			Use:   "mod N M",
			Short: "Print the truncating remainder of N divided by M",
			Args:  cobra.ExactArgs(2),
			RunE:  a.evalCmd,
		},
	)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
