package dictionary

// LookupOutput is the response wrapper for GET /api/{word}. The body is written
// verbatim so upstream entries reach the caller unchanged.
type LookupOutput struct {
	Status      int
	ContentType string `header:"Content-Type"`
	Body        []byte
}
