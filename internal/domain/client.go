package domain

import "time"

// Client is a customer record. TotalJobs and TotalSpent are
// denormalized counters maintained by explicit updates only; they are
// never recomputed from job history.
type Client struct {
	ID      string
	Name    string
	Company string
	Email   string
	Phone   string
	Address string
	Status  ClientStatus

	TotalJobs  int
	TotalSpent float64

	ClientSince time.Time
	LastContact time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Communication is one logged touchpoint with a client. Owned by the
// client; deleting the client removes its communications.
type Communication struct {
	ID        string
	ClientID  string
	Type      CommunicationType
	Direction CommunicationDirection
	Subject   string
	Message   string
	Date      time.Time
}
