package main

import (
	"fmt"
	"os"
	"strconv"

	"predmaint/adapters/postgres"
	"predmaint/adapters/tabular"
	"predmaint/internal"
	"predmaint/internal/config"
	"predmaint/internal/preprocess"
	"predmaint/ports"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "predmaint",
		Short: "Preprocessing pipeline for the machine-failure dataset",
	}

	rootCmd.AddCommand(newRunCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRunCmd() *cobra.Command {
	var dataPath string
	var rootDir string
	var seed int64
	var testFraction float64

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the preprocessing pipeline end to end",
		Long: `Load the raw sensor/failure dataset, normalize its schema, convert
temperatures, encode categoricals, scale features, balance classes and
write the train/test artifacts.

Example: predmaint run --data data/machine_failure.csv --out artifacts --seed 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// .env is optional; real env always wins over flags below
			_ = godotenv.Load()

			if dataPath != "" {
				os.Setenv("DATA_PATH", dataPath)
			}
			if rootDir != "" {
				os.Setenv("ROOT_DIR", rootDir)
			}
			if cmd.Flags().Changed("seed") {
				os.Setenv("SPLIT_SEED", strconv.FormatInt(seed, 10))
			}
			if cmd.Flags().Changed("test-fraction") {
				os.Setenv("TEST_FRACTION", strconv.FormatFloat(testFraction, 'g', -1, 64))
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			logger := internal.NewDefaultLogger()
			reader := tabular.NewReader(cfg.Data.DataPath)

			var ledger ports.RunLedger = ports.NopLedger{}
			if cfg.Database.URL != "" {
				db, err := postgres.Connect(cfg.Database.URL)
				if err != nil {
					return err
				}
				defer db.Close()
				ledger = postgres.NewRunLedger(db)
			}

			processor := preprocess.NewProcessor(cfg, reader, ledger, logger)
			manifest, err := processor.Run(cmd.Context())
			if err != nil {
				return err
			}

			logger.Info("run %s finished in %s, artifacts in %s",
				manifest.RunID, manifest.FinishedAt.Sub(manifest.StartedAt), manifest.RootDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&dataPath, "data", "", "Path to the raw dataset (CSV or XLSX)")
	cmd.Flags().StringVar(&rootDir, "out", "", "Directory for the four output artifacts")
	cmd.Flags().Int64Var(&seed, "seed", 42, "Random seed for oversampling and the split")
	cmd.Flags().Float64Var(&testFraction, "test-fraction", 0.2, "Fraction of rows held out for the test set")

	return cmd
}
