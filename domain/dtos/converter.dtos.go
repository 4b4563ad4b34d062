package dtos

type ConvertRequest struct {
	Bucket string `json:"bucket"`
	Name   string `json:"name"`
}
