package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/syromorph/syromorph/pkg/llm"
	"github.com/syromorph/syromorph/pkg/morphology"
	"github.com/syromorph/syromorph/pkg/observability/logging"
)

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&dataPath, "data", "d", "", "path to the input file with sentences")
	parseCmd.Flags().StringVarP(&outputPath, "output", "o", "", "path to the output file")
	parseCmd.Flags().StringVarP(&modelName, "model", "m", "free", "model alias or full model id")
	parseCmd.Flags().StringVar(&modelsPath, "models", "", "path to a YAML model registry overriding the built-in aliases")
	parseCmd.Flags().StringVar(&envFile, "env", "", "dotenv file to load before resolving API keys")
	parseCmd.Flags().StringVar(&logLevel, "log-level", "", "minimum log level (debug, info, warn, error)")

	_ = parseCmd.MarkFlagRequired("data")
	_ = parseCmd.MarkFlagRequired("output")
}

var (
	dataPath   string
	outputPath string
	modelName  string
	modelsPath string
	envFile    string
	logLevel   string
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse Syriac sentences",
	Args:  cobra.NoArgs,
	RunE:  executeParseCmd,
}

func executeParseCmd(cobraCmd *cobra.Command, args []string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	logConfig := &logging.Config{
		Encoding: "console",
		Level:    logLevel,
	}
	logger, err := logConfig.Build()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	registry := llm.BuiltinRegistry()
	if modelsPath != "" {
		registry, err = llm.ParseRegistryFile(modelsPath)
		if err != nil {
			return err
		}
	}

	spec := registry.Resolve(modelName)
	logger.Info("working with model",
		zap.String("alias", spec.Alias),
		zap.String("model", spec.Model),
	)

	backend := spec.Backend()
	if backend.APIKey == "" {
		logger.Warn("no API key found in environment", zap.String("env", spec.APIKeyEnv))
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	client := llm.NewClient(spec.Model, backend, logger)
	parser := morphology.NewParser(client, out, logger)

	return parser.ParseFile(cobraCmd.Context(), dataPath)
}
