package domain

import "time"

// Job is a schedulable unit of work. It owns its notes and photos;
// the catalog service it came from is referenced by ID only, so a
// deleted Service leaves ServiceType as the displayable fallback.
type Job struct {
	ID          string
	ClientName  string
	Phone       string
	Address     string
	ServiceType string
	ServiceID   *string
	Description string

	ScheduledDate time.Time

	// Price is the committed price. nil means "TBD": the job was created
	// from an informational estimate and has not been priced yet.
	Price                  *float64
	EstimatedCost          float64
	EstimatedDurationHours float64

	Status      JobStatus
	CompletedAt *time.Time
	PaidAt      *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	Notes  []Note
	Photos []Photo

	// Services is the line-item manifest captured when the job was
	// converted from an estimate. Rates are a snapshot and do not follow
	// later catalog edits.
	Services []ServiceLine
}

// Note is a dated text annotation owned by a single job.
type Note struct {
	ID        string
	Text      string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// Photo is image metadata owned by a single job. URL is an opaque
// reference issued by the photo store.
type Photo struct {
	ID        string
	Name      string
	URL       string
	Size      int64
	MimeType  string
	CreatedAt time.Time
}

// ServiceLine is one line of the conversion-time snapshot manifest.
type ServiceLine struct {
	ServiceID              string
	ServiceName            string
	Quantity               int
	Rate                   float64
	PricingType            PricingType
	EstimatedDurationHours float64
}
