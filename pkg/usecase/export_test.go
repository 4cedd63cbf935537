package usecase

// Export internal functions and types for testing

var BuildCompliancePrompt = buildCompliancePrompt

type CompliancePromptData = compliancePromptData
