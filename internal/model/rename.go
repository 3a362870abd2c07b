package model

// Instruction is one entry of a client-supplied rename plan. Position i
// of the plan applies to uploaded file i; only New is meaningful, any
// extra fields the client sends are ignored.
type Instruction struct {
	New string `json:"new"`
}

// Plan is the ordered list of target filenames for one request.
type Plan []Instruction

// UploadedFile carries one multipart file part after buffering.
type UploadedFile struct {
	OriginalName string // transport-level name, unused beyond logging
	Data         []byte
}
