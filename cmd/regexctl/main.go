// Command regexctl is the interactive front-end for the regular
// expression and automaton toolkit: a line-oriented REPL over an
// object registry, or the same command stream read from a script file.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"relab/internal/cli"
)

var (
	verbose bool
	logger  = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "regexctl",
	Short: "regexctl - build and transform regular expressions and automata",
	RunE: func(cmd *cobra.Command, args []string) error {
		return replCmd.RunE(cmd, args)
	},
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "read commands from stdin until EOF",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine := cli.New(logger)
		return engine.Run(os.Stdin, os.Stdout)
	},
}

var runCmd = &cobra.Command{
	Use:   "run <script>",
	Short: "read commands from a script file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		engine := cli.New(logger)
		return engine.Run(f, os.Stdout)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every command at debug level")
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(runCmd)
}

func main() {
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	cobra.OnInitialize(func() {
		if verbose {
			logger.SetLevel(logrus.DebugLevel)
		} else {
			logger.SetLevel(logrus.WarnLevel)
		}
	})
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
