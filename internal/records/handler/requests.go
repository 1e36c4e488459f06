package handler

// Route payloads are explicit structured types. Absent fields decode to zero
// values, matching the behavior of sanitizing an absent field to the empty
// string; the pipeline performs no further shape validation.

type createCaseRequest struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Priority    string  `json:"priority"`
	Description string  `json:"description"`
	Resolution  string  `json:"resolution"`
	CreatedAt   string  `json:"created_at"`
	ResolvedAt  *string `json:"resolved_at"`
}

type updateCaseRequest struct {
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Priority    string  `json:"priority"`
	Description string  `json:"description"`
	Resolution  string  `json:"resolution"`
	ResolvedAt  *string `json:"resolved_at"`
}

type createNoteRequest struct {
	Category string `json:"category"`
	Content  string `json:"content"`
}

type updateNoteRequest struct {
	Content string `json:"content"`
}
