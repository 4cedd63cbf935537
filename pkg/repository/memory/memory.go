package memory

import (
	"github.com/regtrack/regtrack/pkg/domain/interfaces"
)

// Memory is an in-memory repository for development and tests
type Memory struct {
	license    *licenseRepository
	policy     *policyRepository
	regUpdate  *regulatoryUpdateRepository
	assessment *riskAssessmentRepository
	report     *complianceReportRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		license:    newLicenseRepository(),
		policy:     newPolicyRepository(),
		regUpdate:  newRegulatoryUpdateRepository(),
		assessment: newRiskAssessmentRepository(),
		report:     newComplianceReportRepository(),
	}
}

func (m *Memory) License() interfaces.LicenseRepository {
	return m.license
}

func (m *Memory) Policy() interfaces.PolicyRepository {
	return m.policy
}

func (m *Memory) RegulatoryUpdate() interfaces.RegulatoryUpdateRepository {
	return m.regUpdate
}

func (m *Memory) RiskAssessment() interfaces.RiskAssessmentRepository {
	return m.assessment
}

func (m *Memory) ComplianceReport() interfaces.ComplianceReportRepository {
	return m.report
}

func (m *Memory) Close() error {
	return nil
}
