package services

import "dentallab/internal/core/domain/model/kernel"

// StageTemplates returns the default production stages for a service type, in order.
type StageTemplates struct{}

func NewStageTemplates() StageTemplates {
	return StageTemplates{}
}

func (StageTemplates) For(serviceType kernel.ServiceType) []string {
	switch serviceType {
	case kernel.ServiceTypeCrown, kernel.ServiceTypeFixedBridge, kernel.ServiceTypeZirconia:
		return []string{"Reception", "Scanning", "Planning", "Milling", "Try-in", "Finishing", "Glaze", "Delivery"}
	case kernel.ServiceTypeTemporary, kernel.ServiceTypeResin:
		return []string{"Reception", "Planning", "Fabrication", "Finishing", "Delivery"}
	case kernel.ServiceTypeFullDenture, kernel.ServiceTypePartialDenture:
		return []string{"Reception", "Impression", "Planning", "Base fabrication", "Structural try-in", "Teeth setting", "Finishing", "Delivery"}
	case kernel.ServiceTypeImplant:
		return []string{"Reception", "Scanning", "Surgical planning", "Prototyping", "Prototype try-in", "Final fabrication", "Finishing", "Delivery"}
	default:
		return []string{"Reception", "Planning", "Execution", "Delivery"}
	}
}
