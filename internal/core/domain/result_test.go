package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPipelineResult_Outcome(t *testing.T) {
	res := PipelineResult{
		Outcomes: []RuleOutcome{
			{RuleID: "non-empty", Passed: true},
			{RuleID: "min-words", Passed: false},
		},
	}

	got := res.Outcome("min-words")
	assert.NotNil(t, got)
	assert.False(t, got.Passed)

	assert.Nil(t, res.Outcome("mask-pii"))
}

func TestPipelineResult_Passed(t *testing.T) {
	res := PipelineResult{
		Outcomes: []RuleOutcome{
			{RuleID: "non-empty", Passed: true},
			{RuleID: "min-words", Passed: true},
		},
	}
	assert.True(t, res.Passed())

	res.Outcomes = append(res.Outcomes, RuleOutcome{RuleID: "mask-pii", Passed: false})
	assert.False(t, res.Passed())
}
