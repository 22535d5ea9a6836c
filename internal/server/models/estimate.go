package models

import "time"

// SavedEstimate is a budget estimate persisted for a user.
type SavedEstimate struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	ConsumptionKwh string    `json:"consumo_kwh"`
	Panels         int       `json:"placas"`
	Cost           string    `json:"custo"`
	CreatedAt      time.Time `json:"criado_em"`
}
