package models

// Position is a tracked financial holding (bank account, stock portfolio,
// property, loan...). Active only controls whether the position is offered
// when entering a new bilan; inactive positions are still aggregated.
type Position struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Category Category `json:"category"`
	Active   bool     `json:"active"`
}

// ValueRecord is one observed value of a position on a bilan date.
// Amount is in minor currency units; negative amounts are liabilities.
// Date is an ISO-8601 timestamp and records sharing the exact same Date
// string belong to the same bilan.
type ValueRecord struct {
	Date       string `json:"date"`
	PositionID string `json:"position_id"`
	Amount     int64  `json:"amount"`
}
