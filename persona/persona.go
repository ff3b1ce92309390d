// Package persona loads the JSON persona files describing the synthetic
// chat participants. A persona is glue data: the conversation core only ever
// sees the flattened attribute list.
package persona

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Persona describes one synthetic chat participant as stored on disk.
type Persona struct {
	Username                   string   `json:"username" validate:"required"`
	Age                        int      `json:"age"`
	Sex                        string   `json:"sex"`
	SexualOrientation          string   `json:"sexual_orientation"`
	DemographicGroup           string   `json:"demographic_group"`
	CurrentEmployment          string   `json:"current_employment"`
	EducationLevel             string   `json:"education_level"`
	SpecialInstructions        string   `json:"special_instructions"`
	PersonalityCharacteristics []string `json:"personality_characteristics"`
}

// FromJSONFile loads a single persona from a JSON file.
func FromJSONFile(path string) (*Persona, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read persona file %s: %w", path, err)
	}

	var p Persona
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse persona file %s: %w", path, err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(&p); err != nil {
		return nil, fmt.Errorf("validate persona file %s: %w", path, err)
	}

	return &p, nil
}

// LoadDirectory loads every *.json persona directly under dir, in lexical
// order.
func LoadDirectory(dir string) ([]*Persona, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read persona directory %s: %w", dir, err)
	}

	var personas []*Persona
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		p, err := FromJSONFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		personas = append(personas, p)
	}
	return personas, nil
}

// AttributeList flattens the persona into the short descriptive strings fed
// to a speaker's system prompt.
func (p *Persona) AttributeList() []string {
	var attrs []string
	if p.Age > 0 {
		attrs = append(attrs, fmt.Sprintf("%d years old", p.Age))
	}
	for _, v := range []string{p.Sex, p.SexualOrientation, p.DemographicGroup, p.CurrentEmployment, p.EducationLevel} {
		if s := strings.TrimSpace(v); s != "" {
			attrs = append(attrs, s)
		}
	}
	attrs = append(attrs, p.PersonalityCharacteristics...)
	if s := strings.TrimSpace(p.SpecialInstructions); s != "" {
		attrs = append(attrs, s)
	}
	return attrs
}
