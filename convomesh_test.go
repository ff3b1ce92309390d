package convomesh

import (
	"context"
	"testing"

	"github.com/hupe1980/convomesh/convio"
	"github.com/hupe1980/convomesh/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateConversation(t *testing.T) {
	data := &convio.ConvData{
		Context:          "Talking about the weather.",
		UserNames:        []string{"alice", "bob"},
		UserAttributes:   [][]string{{"curious"}, {"terse"}},
		UserInstructions: "Stay in character.",
		SelectorType:     "round_robin",
		ConvLen:          4,
		HistoryCtxLen:    5,
		SeedOpinions:     []string{"it is definitely going to rain"},
		SeedOpinionUsers: []string{"weather_bot"},
	}
	require.NoError(t, data.Validate())

	transcript, err := GenerateConversation(context.Background(), data, model.NewMockModel("mock-model", "mock"))
	require.NoError(t, err)
	require.Len(t, transcript, 5)

	assert.Equal(t, "weather_bot", transcript[0].Name)
	assert.Nil(t, transcript[0].Model)

	wantNames := []string{"alice", "bob", "alice", "bob"}
	for i, utt := range transcript[1:] {
		assert.Equal(t, wantNames[i], utt.Name)
		assert.NotEmpty(t, utt.Text)
		require.NotNil(t, utt.Model)
		assert.Equal(t, "mock-model", *utt.Model)
	}
}

func TestGenerateConversationModeratorFallsBackToUserModel(t *testing.T) {
	data := &convio.ConvData{
		Context:          "A moderated debate.",
		UserNames:        []string{"alice", "bob"},
		UserAttributes:   [][]string{{"curious"}, {"terse"}},
		UserInstructions: "Stay in character.",
		SelectorType:     "round_robin",
		ConvLen:          3,
		ModeratorName:    "moderator",
	}
	require.NoError(t, data.Validate())

	transcript, err := GenerateConversation(context.Background(), data, model.NewMockModel("shared-model", "mock"))
	require.NoError(t, err)
	require.Len(t, transcript, 3)

	assert.Equal(t, "moderator", transcript[2].Name)
	assert.Equal(t, "shared-model", *transcript[2].Model)
}

func TestGenerateConversationRejectsNilData(t *testing.T) {
	_, err := GenerateConversation(context.Background(), nil, model.NewMockModel("mock-model", "mock"))
	assert.Error(t, err)
}
