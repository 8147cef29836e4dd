package domain

// Modality is the care delivery channel a participant mostly used.
type Modality string

const (
	ModalityVideo Modality = "video"
	ModalityChat  Modality = "chat"
	ModalityPhone Modality = "phone"
	ModalityMixed Modality = "mixed"
)

// Modalities lists every modality in reporting order.
var Modalities = []Modality{ModalityVideo, ModalityChat, ModalityPhone, ModalityMixed}

// ClinicalScores is one snapshot of the three instruments.
// Lower PHQ-9/GAD-7 and higher WHO-5 mean improvement.
type ClinicalScores struct {
	PHQ9 float64 `json:"phq9" validate:"min=0,max=27" example:"14"`
	GAD7 float64 `json:"gad7" validate:"min=0,max=21" example:"11"`
	WHO5 float64 `json:"who5" validate:"min=0,max=100" example:"40"`
}

// FollowUpScore is a weekly observation after enrollment.
type FollowUpScore struct {
	ClinicalScores
	Date       string `json:"date" validate:"required,datetime=2006-01-02" example:"2025-07-08"`
	WeekNumber int    `json:"weekNumber" validate:"min=1,max=12" example:"1"`
}

// ProductivityMetrics is a monthly work-loss snapshot.
type ProductivityMetrics struct {
	// Hours missed per month
	AbsenteeismHours float64 `json:"absenteeismHours" validate:"min=0" example:"12"`
	// Productivity loss while working, 0-100
	PresenteeismPercent float64 `json:"presenteeismPercent" validate:"min=0,max=100" example:"30"`
}

// EngagementData summarises how a participant used the program.
type EngagementData struct {
	Sessions int      `json:"sessions" validate:"min=0" example:"8"`
	Modality Modality `json:"modality" validate:"required,oneof=video chat phone mixed" example:"video"`
	// Days from enrollment to first session
	TimeToFirstSession float64 `json:"timeToFirstSession" validate:"min=0" example:"4"`
	Dropout            bool    `json:"dropout"`
}

// User is one enrolled employee's longitudinal record.
type User struct {
	UserID               string              `json:"userId" validate:"required" example:"user-org-techcorp-0"`
	OrgID                string              `json:"orgId" validate:"required" example:"org-techcorp"`
	EnrollmentDate       string              `json:"enrollmentDate,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2025-07-01"`
	BaselineScores       ClinicalScores      `json:"baselineScores"`
	FollowUpScores       []FollowUpScore     `json:"followUpScores" validate:"max=12,dive"`
	BaselineProductivity ProductivityMetrics `json:"baselineProductivity"`
	CurrentProductivity  ProductivityMetrics `json:"currentProductivity"`
	Engagement           EngagementData      `json:"engagement"`
}

// LatestScores returns the most recent follow-up, or the baseline when the
// user has none.
func (u User) LatestScores() ClinicalScores {
	if len(u.FollowUpScores) == 0 {
		return u.BaselineScores
	}
	return u.FollowUpScores[len(u.FollowUpScores)-1].ClinicalScores
}

// Clone returns a deep copy so callers cannot mutate a shared snapshot.
func (u User) Clone() User {
	if u.FollowUpScores != nil {
		followUps := make([]FollowUpScore, len(u.FollowUpScores))
		copy(followUps, u.FollowUpScores)
		u.FollowUpScores = followUps
	}
	return u
}
