package dto

// TaskCounts is the per-status breakdown rendered on the dashboard. Derived
// from the fetched task collection, never stored.
type TaskCounts struct {
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
	Cancelled  int `json:"cancelled"`
	Total      int `json:"total"`
}

type DashboardResponse struct {
	User       UserResponse       `json:"user"`
	Businesses []BusinessResponse `json:"businesses"`
	Selected   *BusinessResponse  `json:"selected,omitempty"`
	Tasks      []TaskResponse     `json:"tasks"`
	Tips       []TipResponse      `json:"tips"`
	Counts     TaskCounts         `json:"counts"`
}
