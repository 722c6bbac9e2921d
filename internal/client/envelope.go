package client

import "tushare/internal/dataset"

// Request is the JSON envelope posted to the API.
type Request struct {
	APIName string         `json:"api_name"`
	Token   string         `json:"token"`
	Params  map[string]any `json:"params"`
	Fields  string         `json:"fields,omitempty"`
}

// Reply is the JSON envelope returned by the API.
type Reply struct {
	RequestID string         `json:"request_id"`
	Code      int            `json:"code"`
	Msg       string         `json:"msg"`
	Data      *dataset.Block `json:"data"`
}

// Success reports whether the API accepted the call.
func (r *Reply) Success() bool {
	return r.Code == 0
}

// Rows reconstructs the reply data as rows. A reply without data has none.
func (r *Reply) Rows() []dataset.Row {
	return dataset.ToRows(r.Data)
}
