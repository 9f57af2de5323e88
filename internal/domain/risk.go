package domain

import (
	"fmt"

	"github.com/yigit/riskwatch/internal/pkg/helpers"
)

// RiskLabel is the class value produced by the risk classifier.
// Only LabelAtRisk carries meaning for the rule table; any other value is treated as not at risk.
type RiskLabel int

const (
	LabelNotAtRisk RiskLabel = 0
	LabelAtRisk    RiskLabel = 1
)

// Rule thresholds
const (
	CriticalGPA          = 1.0
	HighAbsenceThreshold = 8
)

// Recommendation texts
const (
	RecommendProbation = "Schedule mandatory academic probation meeting and tutoring."
	RecommendOutreach  = "Initiate advisor outreach regarding high attendance issues."
	RecommendWatch     = "Place on academic watch and recommend optional tutoring."
	RecommendNoAction  = "No immediate action recommended."
	LabelTextAtRisk    = "At Risk"
	LabelTextNotAtRisk = "Not At Risk"
)

// String returns the display label
func (l RiskLabel) String() string {
	if l == LabelAtRisk {
		return LabelTextAtRisk
	}
	return LabelTextNotAtRisk
}

// Advice is the outcome of the recommendation rule table
type Advice struct {
	Recommendation string
	Explanation    string
}

// Recommend evaluates the rule table. Rules are ordered and the first match wins;
// they only apply to at-risk students.
func Recommend(label RiskLabel, gpa float64, absences int) Advice {
	gpaText := helpers.FormatDecimal(gpa)

	if label != LabelAtRisk {
		return Advice{
			Recommendation: RecommendNoAction,
			Explanation:    fmt.Sprintf("The student's GPA of %s is above the risk threshold.", gpaText),
		}
	}

	switch {
	case gpa < CriticalGPA:
		return Advice{
			Recommendation: RecommendProbation,
			Explanation:    fmt.Sprintf("The primary risk factor is a critically low GPA (%s).", gpaText),
		}
	case absences > HighAbsenceThreshold:
		return Advice{
			Recommendation: RecommendOutreach,
			Explanation:    fmt.Sprintf("Although the GPA is borderline, the high number of absences (%d) is a major concern.", absences),
		}
	default:
		return Advice{
			Recommendation: RecommendWatch,
			Explanation:    fmt.Sprintf("The student's GPA (%s) has fallen into a range associated with a higher risk of dropout.", gpaText),
		}
	}
}

// GPABucket names a half-open GPA interval used by the dashboard
type GPABucket string

const (
	Bucket0To1 GPABucket = "0-1"
	Bucket1To2 GPABucket = "1-2"
	Bucket2To3 GPABucket = "2-3"
	Bucket3To4 GPABucket = "3-4"
	Bucket4Up  GPABucket = "4+"
)

// BucketFor places gpa into [0,1), [1,2), [2,3), [3,4) or [4,∞).
// Values below zero fall into the first bucket.
func BucketFor(gpa float64) GPABucket {
	switch {
	case gpa < 1:
		return Bucket0To1
	case gpa < 2:
		return Bucket1To2
	case gpa < 3:
		return Bucket2To3
	case gpa < 4:
		return Bucket3To4
	default:
		return Bucket4Up
	}
}
