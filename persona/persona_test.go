package persona

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePersonaFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFromJSONFile(t *testing.T) {
	path := writePersonaFile(t, t.TempDir(), "alice.json", `{
		"username": "alice",
		"age": 34,
		"sex": "female",
		"current_employment": "nurse",
		"personality_characteristics": ["warm", "direct"]
	}`)

	p, err := FromJSONFile(path)
	require.NoError(t, err)
	assert.Equal(t, "alice", p.Username)
	assert.Equal(t, 34, p.Age)
	assert.Equal(t, []string{"warm", "direct"}, p.PersonalityCharacteristics)
}

func TestFromJSONFileRequiresUsername(t *testing.T) {
	path := writePersonaFile(t, t.TempDir(), "anon.json", `{"age": 30}`)

	_, err := FromJSONFile(path)
	assert.Error(t, err)
}

func TestFromJSONFileMissing(t *testing.T) {
	_, err := FromJSONFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	writePersonaFile(t, dir, "b.json", `{"username": "bob"}`)
	writePersonaFile(t, dir, "a.json", `{"username": "alice"}`)
	writePersonaFile(t, dir, "notes.txt", `not a persona`)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	personas, err := LoadDirectory(dir)
	require.NoError(t, err)
	require.Len(t, personas, 2)
	assert.Equal(t, "alice", personas[0].Username)
	assert.Equal(t, "bob", personas[1].Username)
}

func TestAttributeList(t *testing.T) {
	p := &Persona{
		Username:                   "alice",
		Age:                        34,
		Sex:                        "female",
		DemographicGroup:           "  ",
		CurrentEmployment:          "nurse",
		SpecialInstructions:        "Always mention the weather.",
		PersonalityCharacteristics: []string{"warm", "direct"},
	}

	assert.Equal(t, []string{
		"34 years old",
		"female",
		"nurse",
		"warm",
		"direct",
		"Always mention the weather.",
	}, p.AttributeList())
}

func TestAttributeListMinimal(t *testing.T) {
	p := &Persona{Username: "ghost"}
	assert.Empty(t, p.AttributeList())
}
