package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/iwvelando/dpa-navigator/internal/config"
	"github.com/iwvelando/dpa-navigator/internal/logging"
	"github.com/iwvelando/dpa-navigator/internal/navigator"
	"github.com/iwvelando/dpa-navigator/internal/profile"
	"github.com/iwvelando/dpa-navigator/pkg/constants"
	"github.com/iwvelando/dpa-navigator/pkg/output"
	"github.com/iwvelando/dpa-navigator/pkg/validation"
	"go.uber.org/zap"
)

func main() {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	profileLocation := flag.String("profile", constants.DefaultProfileFile, "path to buyer profile file")
	selectFlag := flag.String("select", "", "comma-separated program ids to select as a package")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, json")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	logger, err := logging.New(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	buyer, err := profile.Load(*profileLocation)
	if err != nil {
		logger.Fatal("failed to load buyer profile",
			zap.String("op", "main"),
			zap.String("path", *profileLocation),
			zap.Error(err),
		)
	}
	if ids := strings.TrimSpace(*selectFlag); ids != "" {
		buyer = profile.Apply(buyer, profile.FromForm(map[string]string{
			profile.FieldSelectedPrograms: ids,
			profile.FieldSelectedPath:     string(profile.PathDPA),
		}))
	}

	ctx := context.Background()
	engine, err := navigator.NewFromConfig(ctx, logger, conf)
	if err != nil {
		logger.Fatal("failed to initialize recommendation engine",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	defer func() {
		_ = engine.Close()
	}()

	rec, err := engine.Recommend(ctx, buyer)
	if err != nil {
		logger.Fatal("failed to compute recommendation",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(os.Stdout, rec)
	case constants.OutputFormatCSV:
		err = output.CsvFormat(os.Stdout, rec)
	case constants.OutputFormatJSON:
		err = output.JSONFormat(os.Stdout, rec)
	}
	if err != nil {
		logger.Error("failed to write output",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
