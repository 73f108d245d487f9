package models

import "time"

type Registration struct {
	ID          string    `json:"id"`
	EventID     string    `json:"eventId"`
	StudentID   string    `json:"studentId"`
	StudentName string    `json:"studentName"`
	Timestamp   time.Time `json:"timestamp"`
}
