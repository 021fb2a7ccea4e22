package domain

// WorkerRequest is the single JSON document written to a worker's stdin.
type WorkerRequest struct {
	ID       string         `json:"id"`
	CSS      string         `json:"css"`
	Settings map[string]any `json:"settings,omitzero"`
}

// WorkerResponse is the single JSON document a worker writes to stdout on success.
type WorkerResponse struct {
	ID      string `json:"id"`
	CSS     string `json:"css"`
	Warning string `json:"maybeWarning,omitzero"`
}

// Result converts the response into a dispatch result.
func (r WorkerResponse) Result() Result {
	return Result{CSS: r.CSS, Warning: r.Warning}
}
