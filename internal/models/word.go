package models

// WordEntry is one catalog row: a meaning prompt and the word the
// user is expected to type back.
type WordEntry struct {
	Meaning string `json:"meaning"`
	Word    string `json:"word"`
}
