// Command convomesh generates synthetic multi-party conversations. It has
// two subcommands: "configs" samples persona/topic pools into conversation
// input files, and "generate" runs every conversation input in a directory
// against a model backend, writing one transcript per input.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	anthropicsdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/phsym/console-slog"

	"github.com/hupe1980/convomesh/config"
	"github.com/hupe1980/convomesh/convio"
	"github.com/hupe1980/convomesh/internal/fileutil"
	"github.com/hupe1980/convomesh/logging"
	"github.com/hupe1980/convomesh/model"
	"github.com/hupe1980/convomesh/model/anthropic"
	"github.com/hupe1980/convomesh/model/openai"
	"github.com/hupe1980/convomesh/persona"
)

// transcriptTimestampFormat names output transcripts down to the second so
// consecutive runs in one batch do not collide.
const transcriptTimestampFormat = "06-01-02-15-04-05"

func main() {
	os.Exit(run())
}

func run() int {
	if len(os.Args) < 2 {
		usage()
		return 2
	}
	sub := os.Args[1]

	fs := flag.NewFlagSet(sub, flag.ExitOnError)
	configPath := fs.String("config", "config.yaml", "path to the YAML configuration file")
	if err := fs.Parse(os.Args[2:]); err != nil {
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "convomesh: %v\n", err)
		return 1
	}

	logger := newLogger(cfg.Log)
	slog.SetDefault(logger)

	switch sub {
	case "generate":
		return runGenerate(cfg, logging.NewSlogAdapter(logger))
	case "configs":
		return runConfigs(cfg)
	default:
		usage()
		return 2
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: convomesh <generate|configs> [-config config.yaml]")
}

func newLogger(cfg config.Log) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	case "text":
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	default:
		handler = console.NewHandler(os.Stderr, &console.HandlerOptions{Level: level})
	}
	return slog.New(handler)
}

// runGenerate processes every conversation input in the configured directory.
// A failing run is logged and skipped; it never aborts its sibling runs.
func runGenerate(cfg *config.Config, logger logging.Logger) int {
	if cfg.Generate == nil {
		slog.Error("config is missing the 'generate' section")
		return 1
	}
	gen := cfg.Generate

	userModel, err := buildModel(gen.Model)
	if err != nil {
		slog.Error("failed to build user model", "error", err)
		return 1
	}
	moderatorModel := userModel
	if gen.ModeratorModel != nil {
		if moderatorModel, err = buildModel(*gen.ModeratorModel); err != nil {
			slog.Error("failed to build moderator model", "error", err)
			return 1
		}
	}

	entries, err := os.ReadDir(gen.InputDir)
	if err != nil {
		slog.Error("failed to read input directory", "dir", gen.InputDir, "error", err)
		return 1
	}

	ctx := context.Background()
	processed, failed := 0, 0
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		inputPath := filepath.Join(gen.InputDir, entry.Name())
		if err := processFile(ctx, inputPath, gen, userModel, moderatorModel, logger); err != nil {
			slog.Error("conversation aborted due to error", "input", inputPath, "error", err)
			failed++
			continue
		}
		processed++
	}

	slog.Info("finished generating conversations", "processed", processed, "failed", failed)
	if processed == 0 && failed > 0 {
		return 1
	}
	return 0
}

// processFile runs one conversation input end to end and persists its
// transcript.
func processFile(
	ctx context.Context,
	inputPath string,
	gen *config.Generate,
	userModel, moderatorModel model.Model,
	logger logging.Logger,
) error {
	slog.Info("processing conversation input", "input", inputPath)

	data, err := convio.FromJSONFile(inputPath)
	if err != nil {
		return err
	}

	generator, err := convio.NewGenerator(data, userModel, func(o *convio.GeneratorOptions) {
		o.ModeratorModel = moderatorModel
		o.Logger = logger
	})
	if err != nil {
		return err
	}

	engine, err := generator.Conversation()
	if err != nil {
		return err
	}

	if err := engine.Run(ctx, gen.Verbose); err != nil {
		return err
	}

	outputPath := fileutil.DatetimeFilename(gen.OutputDir, transcriptTimestampFormat, ".json")
	if err := engine.SaveJSON(outputPath); err != nil {
		return err
	}

	slog.Info("conversation saved", "output", outputPath, "utterances", len(engine.Transcript()))
	return nil
}

// buildModel constructs the configured model backend.
func buildModel(mc config.Model) (model.Model, error) {
	switch mc.Provider {
	case "openai":
		return openai.NewModel(func(o *openai.Options) {
			if mc.Name != "" {
				o.Model = mc.Name
			}
			if mc.Temperature > 0 {
				o.Temperature = mc.Temperature
			}
			if mc.MaxTokens > 0 {
				o.MaxCompletionTokens = mc.MaxTokens
			}
		}), nil
	case "anthropic":
		return anthropic.NewModel(func(o *anthropic.Options) {
			if mc.Name != "" {
				o.Model = anthropicsdk.Model(mc.Name)
			}
			if mc.Temperature > 0 {
				o.Temperature = mc.Temperature
			}
			if mc.MaxTokens > 0 {
				o.MaxTokens = mc.MaxTokens
			}
		}), nil
	case "mock":
		name := mc.Name
		if name == "" {
			name = "mock-model"
		}
		return model.NewMockModel(name, "mock"), nil
	default:
		return nil, fmt.Errorf("unknown model provider %q, supported providers: openai, anthropic, mock", mc.Provider)
	}
}

// runConfigs samples the persona and topic pools into conversation input
// files named by fresh UUIDs.
func runConfigs(cfg *config.Config) int {
	if cfg.Configs == nil {
		slog.Error("config is missing the 'configs' section")
		return 1
	}
	cc := cfg.Configs

	personas, err := persona.LoadDirectory(cc.PersonaDir)
	if err != nil {
		slog.Error("failed to load personas", "dir", cc.PersonaDir, "error", err)
		return 1
	}
	topics, err := fileutil.ReadFilesFromDirectory(cc.TopicsDir)
	if err != nil {
		slog.Error("failed to load topics", "dir", cc.TopicsDir, "error", err)
		return 1
	}
	userInstructions, err := fileutil.ReadFile(cc.UserInstructionPath)
	if err != nil {
		slog.Error("failed to load user instructions", "error", err)
		return 1
	}
	var modInstructions string
	if cc.IncludeModerator {
		if modInstructions, err = fileutil.ReadFile(cc.ModInstructionPath); err != nil {
			slog.Error("failed to load moderator instructions", "error", err)
			return 1
		}
	}

	slog.Info("generating conversation inputs",
		"personas", len(personas), "topics", len(topics), "files", cc.NumFiles)

	for i := 0; i < cc.NumFiles; i++ {
		data, err := convio.GenerateConvData(personas, topics, userInstructions, modInstructions, convio.GenerationSettings{
			SelectorType:     cc.Conversation.SelectorType,
			SelectorConfig:   cc.Conversation.SelectorConfig,
			ConvLen:          cc.Conversation.ConvLen,
			HistoryCtxLen:    cc.Conversation.HistoryCtxLen,
			NumUsers:         cc.NumUsers,
			IncludeModerator: cc.IncludeModerator,
		})
		if err != nil {
			slog.Error("failed to generate conversation input", "error", err)
			return 1
		}
		path, err := data.SaveWithRandomName(cc.OutputDir)
		if err != nil {
			slog.Error("failed to write conversation input", "error", err)
			return 1
		}
		slog.Debug("conversation input written", "path", path)
	}

	slog.Info("conversation inputs exported", "dir", cc.OutputDir, "count", cc.NumFiles)
	return 0
}
