package repository

import (
	"database/sql/driver"
	"errors"

	"github.com/blaisecz/wellness-outcomes/internal/domain"
	"github.com/goccy/go-json"
)

// OrganizationRecord is the persisted organization row.
type OrganizationRecord struct {
	OrgID             string  `gorm:"primaryKey;size:64"`
	Name              string  `gorm:"size:255;not null"`
	Industry          string  `gorm:"size:128"`
	TotalEmployees    int     `gorm:"not null"`
	EnrolledEmployees int     `gorm:"not null"`
	AvgHourlyCost     float64 `gorm:"not null"`
	ProgramCost       float64 `gorm:"not null"`
	PeriodStart       string  `gorm:"size:10;not null"`
	PeriodEnd         string  `gorm:"size:10;not null"`
	Position          int     `gorm:"not null;default:0"`
}

func (OrganizationRecord) TableName() string {
	return "organizations"
}

// UserRecord is one enrolled employee. Follow-ups are stored as JSONB.
type UserRecord struct {
	UserID         string    `gorm:"primaryKey;size:128"`
	OrgID          string    `gorm:"size:64;index;not null"`
	EnrollmentDate string    `gorm:"size:10"`
	BaselinePHQ9   float64   `gorm:"column:baseline_phq9"`
	BaselineGAD7   float64   `gorm:"column:baseline_gad7"`
	BaselineWHO5   float64   `gorm:"column:baseline_who5"`
	FollowUps      FollowUps `gorm:"type:jsonb"`

	BaselineAbsenteeismHours    float64
	BaselinePresenteeismPercent float64
	CurrentAbsenteeismHours     float64
	CurrentPresenteeismPercent  float64

	Sessions           int
	Modality           string `gorm:"size:16"`
	TimeToFirstSession float64
	Dropout            bool
}

func (UserRecord) TableName() string {
	return "cohort_users"
}

// FollowUps is a JSONB column of weekly scores.
type FollowUps []domain.FollowUpScore

func (f FollowUps) Value() (driver.Value, error) {
	if f == nil {
		return "[]", nil
	}
	b, err := json.Marshal(f)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (f *FollowUps) Scan(value interface{}) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		*f = nil
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("follow_ups: unsupported column type")
	}
	return json.Unmarshal(data, f)
}

// NewOrganizationRecord converts an organization for persistence; position
// preserves listing order.
func NewOrganizationRecord(org domain.Organization, position int) OrganizationRecord {
	return OrganizationRecord{
		OrgID:             org.OrgID,
		Name:              org.Name,
		Industry:          org.Industry,
		TotalEmployees:    org.TotalEmployees,
		EnrolledEmployees: org.EnrolledEmployees,
		AvgHourlyCost:     org.AvgHourlyCost,
		ProgramCost:       org.ProgramCost,
		PeriodStart:       org.ReportingPeriod.Start,
		PeriodEnd:         org.ReportingPeriod.End,
		Position:          position,
	}
}

func (r OrganizationRecord) toDomain() domain.Organization {
	return domain.Organization{
		OrgID:             r.OrgID,
		Name:              r.Name,
		Industry:          r.Industry,
		TotalEmployees:    r.TotalEmployees,
		EnrolledEmployees: r.EnrolledEmployees,
		AvgHourlyCost:     r.AvgHourlyCost,
		ProgramCost:       r.ProgramCost,
		ReportingPeriod:   domain.ReportingPeriod{Start: r.PeriodStart, End: r.PeriodEnd},
	}
}

// NewUserRecord converts a user for persistence.
func NewUserRecord(u domain.User) UserRecord {
	return UserRecord{
		UserID:                      u.UserID,
		OrgID:                       u.OrgID,
		EnrollmentDate:              u.EnrollmentDate,
		BaselinePHQ9:                u.BaselineScores.PHQ9,
		BaselineGAD7:                u.BaselineScores.GAD7,
		BaselineWHO5:                u.BaselineScores.WHO5,
		FollowUps:                   FollowUps(u.FollowUpScores),
		BaselineAbsenteeismHours:    u.BaselineProductivity.AbsenteeismHours,
		BaselinePresenteeismPercent: u.BaselineProductivity.PresenteeismPercent,
		CurrentAbsenteeismHours:     u.CurrentProductivity.AbsenteeismHours,
		CurrentPresenteeismPercent:  u.CurrentProductivity.PresenteeismPercent,
		Sessions:                    u.Engagement.Sessions,
		Modality:                    string(u.Engagement.Modality),
		TimeToFirstSession:          u.Engagement.TimeToFirstSession,
		Dropout:                     u.Engagement.Dropout,
	}
}

func (r UserRecord) toDomain() domain.User {
	return domain.User{
		UserID:         r.UserID,
		OrgID:          r.OrgID,
		EnrollmentDate: r.EnrollmentDate,
		BaselineScores: domain.ClinicalScores{PHQ9: r.BaselinePHQ9, GAD7: r.BaselineGAD7, WHO5: r.BaselineWHO5},
		FollowUpScores: []domain.FollowUpScore(r.FollowUps),
		BaselineProductivity: domain.ProductivityMetrics{
			AbsenteeismHours:    r.BaselineAbsenteeismHours,
			PresenteeismPercent: r.BaselinePresenteeismPercent,
		},
		CurrentProductivity: domain.ProductivityMetrics{
			AbsenteeismHours:    r.CurrentAbsenteeismHours,
			PresenteeismPercent: r.CurrentPresenteeismPercent,
		},
		Engagement: domain.EngagementData{
			Sessions:           r.Sessions,
			Modality:           domain.Modality(r.Modality),
			TimeToFirstSession: r.TimeToFirstSession,
			Dropout:            r.Dropout,
		},
	}
}

// Models lists the tables to migrate.
func Models() []interface{} {
	return []interface{}{&OrganizationRecord{}, &UserRecord{}}
}
