package main

import (
	"fmt"
	"io"
	"os"

	"quiz-validator/internal/adapter/quizfile"
	"quiz-validator/internal/config"
	"quiz-validator/internal/logger"
	"quiz-validator/internal/service"
	"quiz-validator/internal/validation"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	run(os.Stdout, os.Args[1:])
}

// run executes the command with args. Stray arguments and unknown flags are
// ignored; any other command-line error is printed like a validation error.
func run(out io.Writer, args []string) {
	if args == nil {
		args = []string{}
	}
	root := newRootCmd(out)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
	}
}

// newRootCmd builds the validate_quiz command. The report goes to out; the
// command never returns an error so the exit status is always zero.
func newRootCmd(out io.Writer) *cobra.Command {
	var (
		configFile string
		dataFile   string
	)

	cmd := &cobra.Command{
		Use:                "validate_quiz",
		Short:              "Check that every quiz in quiz-data.json has a progressKey",
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		SilenceUsage:       true,
		SilenceErrors:      true,
		Run: func(cmd *cobra.Command, _ []string) {
			cfg, err := config.LoadConfig(configFile)
			if err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
				return
			}
			if dataFile != "" {
				cfg.Data.Path = dataFile
			}

			if err := logger.Initialize(cfg.Logger); err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
				return
			}
			defer logger.Sync() //nolint:errcheck
			log := logger.Get()

			svc := service.NewQuizDataService(
				quizfile.NewFileLoader(log.Named("quizfile")),
				validation.NewValidator(cfg.Data.RequiredField),
				cfg.Data.Path,
				log,
			)
			outcome := svc.Run(cmd.Context(), out)
			log.Debug("Run finished", zap.String("outcome", outcome.Kind.String()))
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "path to config file")
	cmd.Flags().StringVar(&dataFile, "file", "", "quiz data file (default "+config.DefaultDataPath+")")
	cmd.SetOut(out)
	return cmd
}
