package models

// InterviewQASet holds parallel question and answer sequences. The model is
// asked for 10 of each; equal length is a soft expectation, not validated.
type InterviewQASet struct {
	Questions []string `json:"questions"`
	Answers   []string `json:"answers"`
}
