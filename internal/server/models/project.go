package models

import "time"

// Project is an installation record owned by exactly one user. Cost is kept
// as the decimal string the store returns.
type Project struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"nome"`
	Cost      string    `json:"custo"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// ProjectInput carries the caller-supplied fields of a create or update.
// On update UserID is the owner the project must belong to; it is never
// written.
type ProjectInput struct {
	UserID string
	Name   string
	Cost   string
	Status Status
}
