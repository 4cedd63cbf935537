package usecase

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for the use case layer
var (
	ErrAssessmentFinalized = goerr.New("assessment is finalized and can no longer be modified")
	ErrRiskItemOutOfRange  = goerr.New("risk item index is out of range")
	ErrLLMNotConfigured    = goerr.New("LLM client is not configured")
	ErrInvalidTransition   = goerr.New("status transition is not allowed")
)
