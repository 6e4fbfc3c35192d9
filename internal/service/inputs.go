package service

// CategoryInput carries the writable fields of a category. A nil Order
// means the field was absent and defaults to 0.
type CategoryInput struct {
	Name  string
	Order *int
}

// LinkInput carries the writable fields of a link.
type LinkInput struct {
	Name       string
	URL        string
	CategoryID int64
	Order      *int
	// IsActive is the raw decoded JSON value; only boolean true activates.
	IsActive any
	Tag      string
}
