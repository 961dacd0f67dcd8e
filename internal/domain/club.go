package domain

// Club is a read-only snapshot of a club owned by the club service.
type Club struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Address  string  `json:"address"`
	CourtIDs []int64 `json:"courtIds"`
}
