package model

type Note struct {
	ID      int64
	Title   string
	Content string
}

// NoteSummary is the id and title pair returned by search.
type NoteSummary struct {
	ID    int64
	Title string
}
