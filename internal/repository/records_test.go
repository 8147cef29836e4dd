package repository

import (
	"reflect"
	"testing"

	"github.com/blaisecz/wellness-outcomes/internal/domain"
)

func TestFollowUps_ValueScan(t *testing.T) {
	in := FollowUps{{
		ClinicalScores: domain.ClinicalScores{PHQ9: 12, GAD7: 9, WHO5: 44},
		Date:           "2025-07-08",
		WeekNumber:     1,
	}}

	v, err := in.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}

	var out FollowUps
	if err := out.Scan([]byte(v.(string))); err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Errorf("Scan(Value()) = %+v, want %+v", out, in)
	}

	if err := out.Scan(42); err == nil {
		t.Error("Scan(int) should fail")
	}
}

func TestUserRecord_PreservesUser(t *testing.T) {
	u := domain.User{
		UserID:               "user-1",
		OrgID:                "org-a",
		EnrollmentDate:       "2025-07-01",
		BaselineScores:       domain.ClinicalScores{PHQ9: 15, GAD7: 11, WHO5: 30},
		FollowUpScores:       []domain.FollowUpScore{{WeekNumber: 1, Date: "2025-07-08"}},
		BaselineProductivity: domain.ProductivityMetrics{AbsenteeismHours: 16, PresenteeismPercent: 40},
		CurrentProductivity:  domain.ProductivityMetrics{AbsenteeismHours: 8, PresenteeismPercent: 25},
		Engagement:           domain.EngagementData{Sessions: 9, Modality: domain.ModalityChat, TimeToFirstSession: 3},
	}

	if got := NewUserRecord(u).toDomain(); !reflect.DeepEqual(got, u) {
		t.Errorf("toDomain() = %+v, want %+v", got, u)
	}

	org := domain.Organization{OrgID: "org-a", Name: "A", ReportingPeriod: domain.ReportingPeriod{Start: "2025-07-01", End: "2025-09-30"}}
	if got := NewOrganizationRecord(org, 3).toDomain(); !reflect.DeepEqual(got, org) {
		t.Errorf("organization toDomain() = %+v, want %+v", got, org)
	}
}
