package models

import "time"

const (
	ReportTypeUser    = "user"
	ReportTypeOffer   = "offer"
	ReportTypeSession = "session"
)

const (
	ReportPending   = "pending"
	ReportResolved  = "resolved"
	ReportDismissed = "dismissed"
)

type Report struct {
	ID          string    `json:"id"`
	ReporterID  string    `json:"reporterId"`
	TargetID    string    `json:"targetId"` // user or offer id
	Type        string    `json:"type"`
	Reason      string    `json:"reason"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

func ValidReportType(t string) bool {
	switch t {
	case ReportTypeUser, ReportTypeOffer, ReportTypeSession:
		return true
	}
	return false
}
