package domain

// ReportingPeriod is the inclusive date window an organization's data covers.
type ReportingPeriod struct {
	// ISO date (YYYY-MM-DD)
	Start string `json:"start" validate:"required,datetime=2006-01-02" example:"2025-07-01"`
	// ISO date (YYYY-MM-DD)
	End string `json:"end" validate:"required,datetime=2006-01-02" example:"2025-09-30"`
}

// Organization is an employer running the wellness program.
// @Description Organization profile and program cost inputs.
type Organization struct {
	OrgID             string `json:"orgId" validate:"required,max=64" example:"org-techcorp"`
	Name              string `json:"name" validate:"required,max=255" example:"TechCorp Industries"`
	Industry          string `json:"industry" validate:"max=128" example:"Technology"`
	TotalEmployees    int    `json:"totalEmployees" validate:"min=0" example:"2500"`
	EnrolledEmployees int    `json:"enrolledEmployees" validate:"min=0,ltefield=TotalEmployees" example:"320"`
	// Average fully loaded hourly cost per employee
	AvgHourlyCost float64 `json:"avgHourlyCost" validate:"gt=0" example:"75"`
	// Total program cost for the reporting year
	ProgramCost     float64         `json:"programCost" validate:"gt=0" example:"180000"`
	ReportingPeriod ReportingPeriod `json:"reportingPeriod" validate:"required"`
}

// Dataset is a complete snapshot of organizations and their enrolled users.
type Dataset struct {
	Organizations []Organization `json:"organizations" validate:"dive"`
	Users         []User         `json:"users" validate:"dive"`
}
