// Package convio handles persistence of conversation inputs: the ConvData
// record describing one conversation to generate, and the Generator that
// turns a record plus model backends into a ready conversation engine.
package convio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/hupe1980/convomesh/internal/fileutil"
)

// Defaults applied to optional ConvData fields when absent from the file.
const (
	DefaultConvLen       = 4
	DefaultHistoryCtxLen = 4
)

// ConvData is the persisted input record describing one conversation. JSON
// keys follow the on-disk conversation input format; unknown extra fields
// are ignored on load while missing required fields fail loudly.
type ConvData struct {
	Context          string     `json:"context" validate:"required"`
	UserNames        []string   `json:"user_names" validate:"required,min=1"`
	UserAttributes   [][]string `json:"user_attributes" validate:"required"`
	UserInstructions string     `json:"user_instructions" validate:"required"`

	SelectorType   string             `json:"turn_manager_type" validate:"required"`
	SelectorConfig map[string]float64 `json:"turn_manager_config,omitempty"`

	ConvLen       int `json:"conv_len,omitempty"`
	HistoryCtxLen int `json:"history_ctx_len,omitempty"`

	ModeratorName         string   `json:"moderator_name,omitempty"`
	ModeratorAttributes   []string `json:"moderator_attributes,omitempty"`
	ModeratorInstructions string   `json:"moderator_instructions,omitempty"`

	SeedOpinions     []string `json:"seed_opinions,omitempty"`
	SeedOpinionUsers []string `json:"seed_opinion_users,omitempty"`
}

// Validate applies defaults to optional fields and checks the record's
// internal consistency.
func (d *ConvData) Validate() error {
	if d.ConvLen == 0 {
		d.ConvLen = DefaultConvLen
	}
	if d.HistoryCtxLen == 0 {
		d.HistoryCtxLen = DefaultHistoryCtxLen
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("validate conversation data: %w", err)
	}

	if len(d.UserNames) != len(d.UserAttributes) {
		return fmt.Errorf("number of user names (%d) and user attribute lists (%d) must be the same", len(d.UserNames), len(d.UserAttributes))
	}
	return nil
}

// FromJSONFile constructs a ConvData record from a serialized .json file.
func FromJSONFile(path string) (*ConvData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read conversation data file %s: %w", path, err)
	}

	var d ConvData
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse conversation data file %s: %w", path, err)
	}

	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &d, nil
}

// ToJSONFile serializes the record to a .json file, creating parent
// directories as needed.
func (d *ConvData) ToJSONFile(path string) error {
	if err := fileutil.EnsureParentDirs(path); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create conversation data file %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("write conversation data file %s: %w", path, err)
	}
	return nil
}

// SaveWithRandomName writes the record into dir under a fresh UUID filename
// and returns the full path. Used when emitting batches of generated
// conversation inputs.
func (d *ConvData) SaveWithRandomName(dir string) (string, error) {
	path := filepath.Join(dir, uuid.NewString()+".json")
	if err := d.ToJSONFile(path); err != nil {
		return "", err
	}
	return path, nil
}
