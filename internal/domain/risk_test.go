package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecommend_RuleOrder(t *testing.T) {
	cases := []struct {
		name        string
		label       RiskLabel
		gpa         float64
		absences    int
		recommend   string
		explanation string
	}{
		{
			name:        "critically low gpa wins over absences",
			label:       LabelAtRisk,
			gpa:         0.5,
			absences:    20,
			recommend:   RecommendProbation,
			explanation: "The primary risk factor is a critically low GPA (0.5).",
		},
		{
			name:        "high absences",
			label:       LabelAtRisk,
			gpa:         1.5,
			absences:    10,
			recommend:   RecommendOutreach,
			explanation: "Although the GPA is borderline, the high number of absences (10) is a major concern.",
		},
		{
			name:        "academic watch",
			label:       LabelAtRisk,
			gpa:         1.5,
			absences:    2,
			recommend:   RecommendWatch,
			explanation: "The student's GPA (1.5) has fallen into a range associated with a higher risk of dropout.",
		},
		{
			name:        "exactly eight absences is not high",
			label:       LabelAtRisk,
			gpa:         2.0,
			absences:    8,
			recommend:   RecommendWatch,
			explanation: "The student's GPA (2.0) has fallen into a range associated with a higher risk of dropout.",
		},
		{
			name:        "gpa of exactly one is not critical",
			label:       LabelAtRisk,
			gpa:         1.0,
			absences:    9,
			recommend:   RecommendOutreach,
			explanation: "Although the GPA is borderline, the high number of absences (9) is a major concern.",
		},
		{
			name:        "not at risk ignores gpa and absences",
			label:       LabelNotAtRisk,
			gpa:         0.2,
			absences:    30,
			recommend:   RecommendNoAction,
			explanation: "The student's GPA of 0.2 is above the risk threshold.",
		},
		{
			name:        "unknown label treated as not at risk",
			label:       RiskLabel(7),
			gpa:         3.25,
			absences:    0,
			recommend:   RecommendNoAction,
			explanation: "The student's GPA of 3.25 is above the risk threshold.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			advice := Recommend(tc.label, tc.gpa, tc.absences)
			assert.Equal(t, tc.recommend, advice.Recommendation)
			assert.Equal(t, tc.explanation, advice.Explanation)
		})
	}
}

func TestRiskLabelString(t *testing.T) {
	assert.Equal(t, "At Risk", LabelAtRisk.String())
	assert.Equal(t, "Not At Risk", LabelNotAtRisk.String())
}

func TestBucketFor(t *testing.T) {
	assert.Equal(t, Bucket0To1, BucketFor(0))
	assert.Equal(t, Bucket0To1, BucketFor(0.99))
	assert.Equal(t, Bucket1To2, BucketFor(1))
	assert.Equal(t, Bucket2To3, BucketFor(2.5))
	assert.Equal(t, Bucket3To4, BucketFor(3.999))
	assert.Equal(t, Bucket4Up, BucketFor(4))
	assert.Equal(t, Bucket4Up, BucketFor(4.3))
}
