package dto

type CustomerFilters struct {
	SearchQuery string // Matches name or phone
	HasContact  *bool
	Page        int
	PageSize    int
}
