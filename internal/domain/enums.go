package domain

type PricingType string

const (
	PricingHourly PricingType = "hourly"
	PricingFlat   PricingType = "flat"
)

type JobStatus string

const (
	JobScheduled  JobStatus = "Scheduled"
	JobInProgress JobStatus = "In Progress"
	JobCompleted  JobStatus = "Completed"
	JobPaid       JobStatus = "Paid"
)

// statusRank orders the job lifecycle. Transitions only move forward.
var statusRank = map[JobStatus]int{
	JobScheduled:  0,
	JobInProgress: 1,
	JobCompleted:  2,
	JobPaid:       3,
}

// NextStatus returns the status that follows s in the lifecycle.
// The second return is false when s is terminal or unknown.
func NextStatus(s JobStatus) (JobStatus, bool) {
	switch s {
	case JobScheduled:
		return JobInProgress, true
	case JobInProgress:
		return JobCompleted, true
	case JobCompleted:
		return JobPaid, true
	default:
		return "", false
	}
}

// StatusRank returns the position of s in the lifecycle, or -1 if unknown.
func StatusRank(s JobStatus) int {
	r, ok := statusRank[s]
	if !ok {
		return -1
	}
	return r
}

type ClientStatus string

const (
	ClientActive   ClientStatus = "Active"
	ClientInactive ClientStatus = "Inactive"
	ClientLead     ClientStatus = "Lead"
)

type CommunicationType string

const (
	CommEmail   CommunicationType = "email"
	CommPhone   CommunicationType = "phone"
	CommMeeting CommunicationType = "meeting"
	CommText    CommunicationType = "text"
)

type CommunicationDirection string

const (
	DirectionOutbound CommunicationDirection = "outbound"
	DirectionInbound  CommunicationDirection = "inbound"
)

// ServiceCategories is the fixed catalog category list, in display order.
var ServiceCategories = []string{
	"Plumbing",
	"Electrical",
	"Carpentry",
	"Painting",
	"HVAC",
	"Roofing",
	"Flooring",
	"Drywall",
	"Landscaping",
	"Appliance Repair",
	"General Repair",
}

// ValidCategory reports whether name is one of the fixed catalog categories.
func ValidCategory(name string) bool {
	for _, c := range ServiceCategories {
		if c == name {
			return true
		}
	}
	return false
}
