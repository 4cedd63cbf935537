package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	License() LicenseRepository
	Policy() PolicyRepository
	RegulatoryUpdate() RegulatoryUpdateRepository
	RiskAssessment() RiskAssessmentRepository
	ComplianceReport() ComplianceReportRepository

	Close() error
}
