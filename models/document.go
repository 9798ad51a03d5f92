package models

import "time"

// Document is an uploaded reference file (waivers, park rules, FAQs)
// searchable by the assistant's document tool.
type Document struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	Content    string    `json:"-"`
	UploadedAt time.Time `json:"uploaded_at"`
}
