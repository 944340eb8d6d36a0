package dto

type Activity struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	At    string `json:"at"`
}

type StatsResponse struct {
	TotalStudents     int64      `json:"totalStudents"`
	TotalTeachers     int64      `json:"totalTeachers"`
	TotalParents      int64      `json:"totalParents"`
	TotalFees         float64    `json:"totalFees"`
	CollectedFees     float64    `json:"collectedFees"`
	OutstandingFees   float64    `json:"outstandingFees"`
	OverdueFees       float64    `json:"overdueFees"`
	OverdueCount      int64      `json:"overdueCount"`
	FeeComplianceRate int        `json:"feeComplianceRate"`
	RecentActivity    []Activity `json:"recentActivity"`
}
