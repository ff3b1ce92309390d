package convio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConvData() *ConvData {
	return &ConvData{
		Context:          "Talking about the weather.",
		UserNames:        []string{"alice", "bob"},
		UserAttributes:   [][]string{{"curious"}, {"terse"}},
		UserInstructions: "Stay in character.",
		SelectorType:     "round_robin",
	}
}

func TestConvDataValidateAppliesDefaults(t *testing.T) {
	data := validConvData()
	require.NoError(t, data.Validate())

	assert.Equal(t, DefaultConvLen, data.ConvLen)
	assert.Equal(t, DefaultHistoryCtxLen, data.HistoryCtxLen)
}

func TestConvDataValidateRejectsMissingContext(t *testing.T) {
	data := validConvData()
	data.Context = ""

	assert.Error(t, data.Validate())
}

func TestConvDataValidateRejectsNameAttributeMismatch(t *testing.T) {
	data := validConvData()
	data.UserAttributes = [][]string{{"curious"}}

	err := data.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be the same")
}

func TestConvDataJSONRoundTrip(t *testing.T) {
	data := validConvData()
	data.SelectorType = "random_weighted"
	data.SelectorConfig = map[string]float64{"respond_probability": 0.7}
	data.ModeratorName = "moderator"
	data.ModeratorAttributes = []string{"just"}
	data.SeedOpinions = []string{"opening line"}
	data.SeedOpinionUsers = []string{"alice"}
	require.NoError(t, data.Validate())

	path := filepath.Join(t.TempDir(), "nested", "conv.json")
	require.NoError(t, data.ToJSONFile(path))

	loaded, err := FromJSONFile(path)
	require.NoError(t, err)
	assert.Equal(t, data, loaded)
}

func TestConvDataJSONKeys(t *testing.T) {
	data := validConvData()
	require.NoError(t, data.Validate())

	path := filepath.Join(t.TempDir(), "conv.json")
	require.NoError(t, data.ToJSONFile(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(raw)
	assert.Contains(t, content, `"turn_manager_type"`)
	assert.Contains(t, content, `"user_names"`)
	assert.Contains(t, content, `"user_instructions"`)
	assert.NotContains(t, content, `"moderator_name"`)
}

func TestFromJSONFileIgnoresUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conv.json")
	content := `{
		"context": "A topic.",
		"user_names": ["alice"],
		"user_attributes": [["curious"]],
		"user_instructions": "Be brief.",
		"turn_manager_type": "round_robin",
		"some_future_field": true
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	data, err := FromJSONFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, data.UserNames)
}

func TestFromJSONFileRejectsMissingRequired(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conv.json")
	content := `{"user_names": ["alice"], "user_attributes": [["curious"]]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := FromJSONFile(path)
	assert.Error(t, err)
}

func TestSaveWithRandomName(t *testing.T) {
	dir := t.TempDir()
	data := validConvData()
	require.NoError(t, data.Validate())

	first, err := data.SaveWithRandomName(dir)
	require.NoError(t, err)
	second, err := data.SaveWithRandomName(dir)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	for _, path := range []string{first, second} {
		assert.Equal(t, dir, filepath.Dir(path))
		assert.True(t, strings.HasSuffix(path, ".json"))
		_, err := os.Stat(path)
		assert.NoError(t, err)
	}
}
