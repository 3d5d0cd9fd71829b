package model

type ConvertResponse struct {
	ID    string `json:"id"`
	Pitch *Pitch `json:"pitch"`
	Cache bool   `json:"cached"`
}

type MergeRequestBody struct {
	First  *Pitch `json:"first"`
	Second *Pitch `json:"second"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
