package dto

// RiskDistribution counts students per predicted label
type RiskDistribution struct {
	AtRisk    int `json:"at_risk" example:"3"`
	NotAtRisk int `json:"not_at_risk" example:"12"`
}

// GPADistribution counts students per GPA bucket
type GPADistribution struct {
	ZeroToOne    int `json:"0-1"`
	OneToTwo     int `json:"1-2"`
	TwoToThree   int `json:"2-3"`
	ThreeToFour  int `json:"3-4"`
	FourAndAbove int `json:"4+"`
}

// DashboardStatsResponse aggregates risk and GPA counts over all students
type DashboardStatsResponse struct {
	RiskDistribution RiskDistribution `json:"risk_distribution"`
	GPADistribution  GPADistribution  `json:"gpa_distribution"`
}
