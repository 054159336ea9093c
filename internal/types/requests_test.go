package types

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCreateCandidateRequestValidate(t *testing.T) {
	assert.NoError(t, (&CreateCandidateRequest{Text: "John Doe, Python developer"}).Validate())
	assert.Error(t, (&CreateCandidateRequest{}).Validate())
}

func TestCreateRequirementRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateRequirementRequest
		wantErr bool
	}{
		{"text only", CreateRequirementRequest{Text: "Backend Engineer wanted"}, false},
		{"url only", CreateRequirementRequest{URL: "https://example.com/jobs/42"}, false},
		{"neither", CreateRequirementRequest{}, true},
		{"both", CreateRequirementRequest{Text: "x", URL: "https://example.com"}, true},
		{"invalid url", CreateRequirementRequest{URL: "not-a-url"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMatchRequestValidate(t *testing.T) {
	valid := MatchRequest{
		CandidateID:   uuid.New(),
		RequirementID: uuid.New(),
	}
	assert.NoError(t, valid.Validate())

	missing := MatchRequest{CandidateID: uuid.New()}
	assert.Error(t, missing.Validate())
}

func TestBatchMatchRequestValidate(t *testing.T) {
	valid := BatchMatchRequest{RequirementID: uuid.New(), Limit: 50}
	assert.NoError(t, valid.Validate())

	noLimit := BatchMatchRequest{RequirementID: uuid.New()}
	assert.NoError(t, noLimit.Validate())

	tooLarge := BatchMatchRequest{RequirementID: uuid.New(), Limit: 1000}
	assert.Error(t, tooLarge.Validate())

	noID := BatchMatchRequest{Limit: 10}
	assert.Error(t, noID.Validate())
}
