package seed

import (
	"fmt"
	"math"
	"time"

	"github.com/blaisecz/wellness-outcomes/internal/domain"
)

// DefaultSeed reproduces the reference demo dataset.
const DefaultSeed int64 = 12345

const (
	followUpWeeks = 12
	enrollment    = "2025-07-01"
	periodStart   = "2025-07-01"
	periodEnd     = "2025-09-30"
)

var anchorDate = time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)

type severityProfile int

const (
	profileMild severityProfile = iota
	profileModerate
	profileSevere
)

type scoreRange struct{ min, max int }

var baselineScoreRanges = map[severityProfile][3]scoreRange{
	profileMild:     {{5, 12}, {4, 10}, {45, 65}},
	profileModerate: {{10, 18}, {8, 15}, {30, 50}},
	profileSevere:   {{15, 25}, {12, 20}, {15, 35}},
}

var baselineProductivityRanges = map[severityProfile][2]scoreRange{
	profileMild:     {{4, 12}, {10, 25}},
	profileModerate: {{8, 20}, {20, 40}},
	profileSevere:   {{16, 32}, {35, 55}},
}

// Moderate is listed twice so it is drawn half of the time.
var profileWeights = []severityProfile{profileMild, profileModerate, profileModerate, profileSevere}

// DefaultOrganizations are the demo employers. Each gets EnrolledEmployees users.
var DefaultOrganizations = []domain.Organization{
	{OrgID: "org-techcorp", Name: "TechCorp Industries", Industry: "Technology", TotalEmployees: 2500, EnrolledEmployees: 320, AvgHourlyCost: 75, ProgramCost: 180000},
	{OrgID: "org-financeplus", Name: "FinancePlus Bank", Industry: "Financial Services", TotalEmployees: 4200, EnrolledEmployees: 485, AvgHourlyCost: 85, ProgramCost: 275000},
	{OrgID: "org-healthwise", Name: "HealthWise Medical", Industry: "Healthcare", TotalEmployees: 1800, EnrolledEmployees: 210, AvgHourlyCost: 65, ProgramCost: 125000},
	{OrgID: "org-retailmax", Name: "RetailMax Group", Industry: "Retail", TotalEmployees: 8500, EnrolledEmployees: 680, AvgHourlyCost: 35, ProgramCost: 320000},
}

// lcg is the linear congruential generator behind the demo dataset. The
// multiplication is carried out in float64 and truncated to 32 bits so the
// sequence matches the one the dashboards were built against. The explicit
// conversion keeps the compiler from fusing the multiply and add.
type lcg struct {
	state int64
}

func (g *lcg) next() float64 {
	product := float64(float64(g.state)*1103515245) + 12345
	g.state = int64(uint32(int64(product)) & 0x7fffffff)
	return float64(g.state) / 0x7fffffff
}

func (g *lcg) intBetween(min, max int) int {
	return int(math.Floor(g.next()*float64(max-min+1))) + min
}

func (g *lcg) pick(n int) int {
	return int(math.Floor(g.next() * float64(n)))
}

// Generate builds the synthetic dataset. The output is a pure function of seed.
func Generate(seed int64) domain.Dataset {
	g := &lcg{state: seed}

	orgs := make([]domain.Organization, len(DefaultOrganizations))
	total := 0
	for i, org := range DefaultOrganizations {
		org.ReportingPeriod = domain.ReportingPeriod{Start: periodStart, End: periodEnd}
		orgs[i] = org
		total += org.EnrolledEmployees
	}

	users := make([]domain.User, 0, total)
	for _, org := range orgs {
		for i := 0; i < org.EnrolledEmployees; i++ {
			users = append(users, g.user(fmt.Sprintf("user-%s-%d", org.OrgID, i), org.OrgID))
		}
	}
	return domain.Dataset{Organizations: orgs, Users: users}
}

func (g *lcg) user(userID, orgID string) domain.User {
	profile := profileWeights[g.pick(len(profileWeights))]
	baseline := g.baselineScores(profile)
	engagement := g.engagement()
	followUps := g.followUps(baseline, engagement)
	baselineProductivity := g.baselineProductivity(profile)

	clinicalImprovement := baseline.PHQ9 - followUps[len(followUps)-1].PHQ9
	factor := 0.6
	switch {
	case engagement.Dropout:
		factor = 0.3
	case engagement.Sessions >= 6:
		factor = 1.0
	}

	return domain.User{
		UserID:               userID,
		OrgID:                orgID,
		EnrollmentDate:       enrollment,
		BaselineScores:       baseline,
		FollowUpScores:       followUps,
		BaselineProductivity: baselineProductivity,
		CurrentProductivity:  g.currentProductivity(baselineProductivity, clinicalImprovement, factor),
		Engagement:           engagement,
	}
}

func (g *lcg) baselineScores(p severityProfile) domain.ClinicalScores {
	r := baselineScoreRanges[p]
	return domain.ClinicalScores{
		PHQ9: float64(g.intBetween(r[0].min, r[0].max)),
		GAD7: float64(g.intBetween(r[1].min, r[1].max)),
		WHO5: float64(g.intBetween(r[2].min, r[2].max)),
	}
}

func (g *lcg) engagement() domain.EngagementData {
	dropout := g.next() < 0.18
	var sessions int
	if dropout {
		sessions = g.intBetween(1, 3)
	} else {
		sessions = g.intBetween(4, 14)
	}
	return domain.EngagementData{
		Sessions:           sessions,
		Modality:           domain.Modalities[g.pick(len(domain.Modalities))],
		TimeToFirstSession: float64(g.intBetween(1, 14)),
		Dropout:            dropout,
	}
}

// followUps simulates weekly scores: improvement scales with engagement and
// baseline severity, with diminishing returns and noise.
func (g *lcg) followUps(baseline domain.ClinicalScores, e domain.EngagementData) []domain.FollowUpScore {
	engagementFactor := 0.4
	switch {
	case e.Dropout:
		engagementFactor = 0.3
	case e.Sessions >= 8:
		engagementFactor = 1.0
	case e.Sessions >= 4:
		engagementFactor = 0.7
	}

	phq9Rate := tiered(baseline.PHQ9 > 15, baseline.PHQ9 > 10, 0.8, 0.5, 0.3) * engagementFactor
	gad7Rate := tiered(baseline.GAD7 > 12, baseline.GAD7 > 8, 0.6, 0.4, 0.2) * engagementFactor
	who5Rate := tiered(baseline.WHO5 < 40, baseline.WHO5 < 55, 2.5, 1.8, 1.0) * engagementFactor

	current := baseline
	scores := make([]domain.FollowUpScore, 0, followUpWeeks)
	for week := 1; week <= followUpWeeks; week++ {
		variance := 0.85 + g.next()*0.3
		diminishing := 1 - float64(week)/float64(followUpWeeks+5)

		current.PHQ9 = clamp(current.PHQ9-phq9Rate*diminishing*variance+(g.next()-0.6)*1.5, 0, 27)
		current.GAD7 = clamp(current.GAD7-gad7Rate*diminishing*variance+(g.next()-0.6)*1.2, 0, 21)
		current.WHO5 = clamp(current.WHO5+who5Rate*diminishing*variance+(g.next()-0.4)*3, 0, 100)

		scores = append(scores, domain.FollowUpScore{
			ClinicalScores: domain.ClinicalScores{
				PHQ9: roundHalfUp(current.PHQ9),
				GAD7: roundHalfUp(current.GAD7),
				WHO5: roundHalfUp(current.WHO5),
			},
			Date:       anchorDate.AddDate(0, 0, 7*week).Format("2006-01-02"),
			WeekNumber: week,
		})
	}
	return scores
}

func (g *lcg) baselineProductivity(p severityProfile) domain.ProductivityMetrics {
	r := baselineProductivityRanges[p]
	return domain.ProductivityMetrics{
		AbsenteeismHours:    float64(g.intBetween(r[0].min, r[0].max)),
		PresenteeismPercent: float64(g.intBetween(r[1].min, r[1].max)),
	}
}

func (g *lcg) currentProductivity(baseline domain.ProductivityMetrics, clinicalImprovement, engagementFactor float64) domain.ProductivityMetrics {
	improvement := clinicalImprovement / 10 * engagementFactor
	absenteeism := baseline.AbsenteeismHours * (1 - improvement*0.4 - g.next()*0.15)
	presenteeism := baseline.PresenteeismPercent * (1 - improvement*0.35 - g.next()*0.1)
	return domain.ProductivityMetrics{
		AbsenteeismHours:    math.Max(0, roundHalfUp(absenteeism)),
		PresenteeismPercent: math.Max(0, roundHalfUp(presenteeism)),
	}
}

func tiered(first, second bool, a, b, c float64) float64 {
	switch {
	case first:
		return a
	case second:
		return b
	default:
		return c
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
