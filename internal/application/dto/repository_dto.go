package dto

// RepositoryResponse represents repository data in API responses
type RepositoryResponse struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	URL         string   `json:"url"`
	Description *string  `json:"description"`
	Language    *string  `json:"language"`
	Homepage    *string  `json:"homepage,omitempty"`
	Stars       int      `json:"stars"`
	Forks       int      `json:"forks"`
	Topics      []string `json:"topics"`
	UpdatedAt   string   `json:"updated_at"`
}

// BrowseQuery is the user-controlled browser state carried in a request
type BrowseQuery struct {
	Search   string `form:"search"`
	Language string `form:"language"`
	Page     int    `form:"page"`
}

// BrowserPageResponse is one rendered page of the project browser
type BrowserPageResponse struct {
	State        string                `json:"state"`
	Error        string                `json:"error,omitempty"`
	Repositories []*RepositoryResponse `json:"repositories"`
	Languages    []string              `json:"languages"`
	Language     string                `json:"language"`
	Search       string                `json:"search"`
	Pagination   PaginationResponse    `json:"pagination"`
	Showing      ShowingRange          `json:"showing"`
	Total        int                   `json:"total"`
}

// PaginationResponse represents pagination metadata
type PaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int   `json:"total"`
	TotalPages int   `json:"total_pages"`
	Window     []int `json:"window"`
	HasPrev    bool  `json:"has_prev"`
	HasNext    bool  `json:"has_next"`
}

// ShowingRange is the 1-based span of filtered items on the page; zero when empty
type ShowingRange struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Filtered reports whether a search term or language narrows the list
func (p *BrowserPageResponse) Filtered() bool {
	return p.Search != "" || (p.Language != "" && p.Language != "All")
}
