package server

// Result shapes are fixed per endpoint family. Handlers never let a raw
// error cross the boundary: failures become {success:false, error} and
// list reads degrade to an empty data set alongside the error message.

// opResult reports a write operation, carrying the generated id when
// the operation creates a row.
type opResult struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
	Error   string `json:"error,omitempty"`
}

// listResult carries a read result. Data is always present on success,
// even when empty.
type listResult struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// probeResult reports whether a folder already holds bookkeeping data.
type probeResult struct {
	HasData    bool   `json:"hasData"`
	TableCount int    `json:"tableCount,omitempty"`
	Error      string `json:"error,omitempty"`
}

func okResult() opResult {
	return opResult{Success: true}
}

func idResult(id string) opResult {
	return opResult{Success: true, ID: id}
}

func failResult(err error) opResult {
	return opResult{Success: false, Error: err.Error()}
}

func dataResult(data any) listResult {
	return listResult{Success: true, Data: data}
}

func listFail(err error) listResult {
	return listResult{Success: false, Error: err.Error()}
}
