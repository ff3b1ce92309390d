// Package config loads the YAML runtime configuration for the convomesh
// CLI. The library packages never read configuration themselves; everything
// is parsed and validated here and passed down explicitly.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the root of the YAML configuration file. The generate and
// configs sections are optional; each subcommand requires only its own.
type Config struct {
	Log      Log       `yaml:"log"`
	Generate *Generate `yaml:"generate"`
	Configs  *Configs  `yaml:"configs"`
}

// Log configures the CLI logger.
type Log struct {
	// Level is one of debug, info, warn, error
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	// Format is one of console, json, text
	Format string `yaml:"format" validate:"omitempty,oneof=console json text"`
}

// Generate configures the conversation generation run.
type Generate struct {
	// InputDir holds the conversation input .json files
	InputDir string `yaml:"input_dir" validate:"required"`
	// OutputDir receives the generated transcripts
	OutputDir string `yaml:"output_dir" validate:"required"`
	// Model backs the regular participants
	Model Model `yaml:"model" validate:"required"`
	// ModeratorModel optionally backs the moderator; defaults to Model
	ModeratorModel *Model `yaml:"moderator_model"`
	// Verbose emits every produced utterance to the log
	Verbose bool `yaml:"verbose"`
}

// Model selects and parameterizes a model backend.
type Model struct {
	// Provider is one of openai, anthropic, mock
	Provider string `yaml:"provider" validate:"required,oneof=openai anthropic mock"`
	// Name is the provider-specific model identifier
	Name string `yaml:"name"`
	// Temperature for sampling; zero keeps the provider default
	Temperature float64 `yaml:"temperature" validate:"gte=0,lte=2"`
	// MaxTokens caps the produced completion; zero keeps the provider default
	MaxTokens int64 `yaml:"max_tokens" validate:"gte=0"`
}

// Configs configures conversation input generation.
type Configs struct {
	// OutputDir receives the generated conversation input files
	OutputDir string `yaml:"output_dir" validate:"required"`
	// PersonaDir holds the JSON persona files
	PersonaDir string `yaml:"persona_dir" validate:"required"`
	// TopicsDir holds the .txt topic files
	TopicsDir string `yaml:"topics_dir" validate:"required"`
	// UserInstructionPath is the .txt file with shared user instructions
	UserInstructionPath string `yaml:"user_instruction_path" validate:"required"`
	// ModInstructionPath is the .txt file with moderator instructions
	ModInstructionPath string `yaml:"mod_instruction_path"`
	// NumFiles is how many conversation input files will be generated
	NumFiles int `yaml:"num_files" validate:"gte=1"`
	// NumUsers is the number of participants per generated conversation
	NumUsers int `yaml:"num_users" validate:"gte=1"`
	// IncludeModerator adds a moderator to each generated conversation
	IncludeModerator bool `yaml:"include_moderator"`
	// Conversation carries the per-conversation defaults
	Conversation Conversation `yaml:"conversation" validate:"required"`
}

// Conversation carries the selector and length defaults copied into every
// generated conversation input.
type Conversation struct {
	// SelectorType is one of round_robin, random_weighted
	SelectorType string `yaml:"turn_manager_type" validate:"required"`
	// SelectorConfig maps selector settings such as respond_probability
	SelectorConfig map[string]float64 `yaml:"turn_manager_config"`
	// ConvLen is the number of generated turns per conversation
	ConvLen int `yaml:"conv_len" validate:"gte=0"`
	// HistoryCtxLen is the context window capacity
	HistoryCtxLen int `yaml:"history_ctx_len" validate:"gte=0"`
}

// Load reads, defaults and validates the YAML configuration at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var result Config
	if err := yaml.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("parse YAML config: %w", err)
	}

	result.applyDefaults()

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(&result); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &result, nil
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
	if c.Configs != nil {
		if c.Configs.NumFiles == 0 {
			c.Configs.NumFiles = 20
		}
		if c.Configs.NumUsers == 0 {
			c.Configs.NumUsers = 4
		}
	}
}
