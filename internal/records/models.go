package records

// Case is a client-identified incident record. Timestamps travel as opaque
// strings; coercing them is the store's concern, not the pipeline's.
type Case struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Priority    string  `json:"priority"`
	Description string  `json:"description"`
	Resolution  string  `json:"resolution"`
	CreatedAt   string  `json:"created_at"`
	ResolvedAt  *string `json:"resolved_at"`
}

// CaseUpdate carries the mutable fields of a case. The id and created_at are
// fixed at creation.
type CaseUpdate struct {
	Title       string
	Category    string
	Priority    string
	Description string
	Resolution  string
	ResolvedAt  *string
}

// Note is a store-identified free-form record.
type Note struct {
	ID       int64  `json:"id"`
	Category string `json:"category"`
	Content  string `json:"content"`
}
