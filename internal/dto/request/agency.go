package request

// ListAgenciesRequest carries the agency endpoint's query parameters.
type ListAgenciesRequest struct {
	Page     int    `json:"page" validate:"min=1"`
	PageSize int    `json:"pageSize" validate:"min=1,max=100"`
	Query    string `json:"q"`
	Status   string `json:"status"`
	SortKey  string `json:"sortKey"`
	SortDir  string `json:"sortDir" validate:"omitempty,oneof=asc desc"`
}

func (r ListAgenciesRequest) Limit() int {
	if r.PageSize < 1 {
		return 10
	}
	if r.PageSize > 100 {
		return 100
	}
	return r.PageSize
}

func (r ListAgenciesRequest) Offset() int {
	if r.Page < 1 {
		return 0
	}
	return (r.Page - 1) * r.Limit()
}
