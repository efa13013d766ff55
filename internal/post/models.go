package post

// Post is the persistent blog post model. Ids are assigned by the service on
// creation and never change afterwards.
type Post struct {
	ID      int    `json:"id"`
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	Author  string `json:"author" validate:"required"`
	Date    string `json:"date" validate:"required,postdate"`
}

// Update carries a partial post: nil fields are left untouched by the update
// operation, non-nil fields overwrite the stored value after re-validation.
type Update struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
	Author  *string `json:"author,omitempty"`
	Date    *string `json:"date,omitempty"`
}

// Filter holds the search parameters. Empty fields do not constrain the
// result; a post matches when every non-empty field matches.
type Filter struct {
	Title   string
	Content string
	Author  string
	Date    string
}

// Empty reports whether no filter field was supplied at all.
func (f Filter) Empty() bool {
	return f.Title == "" && f.Content == "" && f.Author == "" && f.Date == ""
}
