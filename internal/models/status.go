package models

type ResultState string

const (
	ResultLoading ResultState = "loading"
	ResultSuccess ResultState = "success"
	ResultError   ResultState = "error"
)
