package dto

type ProductFilters struct {
	ActiveOnly  bool
	SearchQuery string // Case-insensitive match on name
}
