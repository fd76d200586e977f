package model

// DashboardStats is the summary block on the dashboard and reports screens.
type DashboardStats struct {
	TotalConverts     int    `json:"totalConverts"`
	ActiveConverts    int    `json:"activeConverts"`
	CompletedConverts int    `json:"completedConverts"`
	RetentionRate     string `json:"retentionRate"`
}

// TrendPoint is one sample of the growth trend series.
type TrendPoint struct {
	Period   string `json:"period"`
	Converts int    `json:"converts"`
}

// PendingFollowUp is a convert overdue for their next visit.
type PendingFollowUp struct {
	ConvertID   string `json:"convertId,omitempty"`
	MongoID     string `json:"_id,omitempty"`
	Name        string `json:"name"`
	VisitNumber int    `json:"visitNumber,omitempty"`
	DueDate     string `json:"dueDate,omitempty"`
}

// Notification is an item on the notifications screen.
type Notification struct {
	ID      string `json:"id,omitempty"`
	MongoID string `json:"_id,omitempty"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Read    bool   `json:"read"`
	Date    string `json:"date,omitempty"`
}

// NotificationSettings mirrors PATCH /user/notifications/settings.
type NotificationSettings struct {
	FollowUpReminders bool `json:"followUpReminders"`
	PendingActions    bool `json:"pendingActions"`
	NewConverts       bool `json:"newConverts"`
	WeeklyReports     bool `json:"weeklyReports"`
}

// Zone, Area and Parish form the church hierarchy used during signup.
type Zone struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type Area struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	ZonalID string `json:"zonalId"`
}

type Parish struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	AreaID string `json:"areaId"`
}
