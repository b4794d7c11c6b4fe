package model

// Topic is a single named record inside a category. IDs are opaque,
// assigned once at creation, and never reused within a process.
type Topic struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Category groups an ordered list of topics. The set of categories is
// fixed at seed time; only topics are created/renamed/deleted.
// Topics are ordered newest-first: creation prepends.
type Category struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Topics []Topic `json:"topics"`
}
