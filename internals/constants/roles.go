package constants

// Role claim values carried in the JWT
const (
	RoleAdmin = "admin"
)

// Wage audit actions (minimum_wage_history.action)
const (
	ActionCreate = "CREATE"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
)

// Source keys tracked by sync jobs and staging rows
const (
	SourceLawAPI            = "law_api"
	SourceHolidayAPI        = "holiday_api"
	SourceMinWage           = "minwage"
	SourceInterpretationAPI = "interpretation_api"
	SourceMoelNotice        = "moel_notice"
)
