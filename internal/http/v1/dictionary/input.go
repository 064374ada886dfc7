package dictionary

// LookupInput defines the path parameter for a dictionary lookup.
type LookupInput struct {
	Word string `path:"word" doc:"Word to look up" example:"hello"`
}
