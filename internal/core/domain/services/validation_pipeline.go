package services

import "oms/internal/core/domain/model/order"

// Check-specific reasons reported when a validation check fails.
const (
	ReasonInsufficientInventory = "Insufficient inventory"
	ReasonPricingInvalid        = "Pricing validation failed"
	ReasonCustomerNotEligible   = "Customer not eligible"
)

// ProcessingResult is the transient outcome of one validation pipeline run.
// It is constructed, translated into a status update, and discarded; it is
// never persisted.
type ProcessingResult struct {
	Success            bool   `json:"success"`
	CanFulfill         bool   `json:"canFulfill"`
	InventoryAvailable bool   `json:"inventoryAvailable"`
	PricingValid       bool   `json:"pricingValid"`
	CustomerEligible   bool   `json:"customerEligible"`
	ErrorMessage       string `json:"errorMessage,omitempty"`
}

// ValidationPipeline runs the commerce business checks against an order
// snapshot: inventory availability, pricing validity, and customer
// eligibility, in that strict sequence, short-circuiting on the first
// failure. Each check is a Decision Oracle call, so real business logic can
// replace the simulated one without changing the pipeline's control flow or
// result shape.
//
// The pipeline is stateless and holds no copy of the order.
type ValidationPipeline struct {
	oracle DecisionOracle
}

// NewValidationPipeline creates a pipeline consulting the given oracle.
func NewValidationPipeline(oracle DecisionOracle) ValidationPipeline {
	return ValidationPipeline{oracle: oracle}
}

// Process evaluates the three checks for the order. Success is true only when
// all checks pass; on the first failing check the pipeline stops immediately
// and reports the check-specific reason. A failed check is a business
// outcome, not an error.
func (p ValidationPipeline) Process(o *order.Order) ProcessingResult {
	result := ProcessingResult{
		Success:            true,
		CanFulfill:         true,
		InventoryAvailable: true,
		PricingValid:       true,
		CustomerEligible:   true,
	}

	if !p.oracle.InventoryAvailable(o) {
		result.InventoryAvailable = false
		result.Success = false
		result.CanFulfill = false
		result.ErrorMessage = ReasonInsufficientInventory
		return result
	}

	if !p.oracle.PricingValid(o) {
		result.PricingValid = false
		result.Success = false
		result.CanFulfill = false
		result.ErrorMessage = ReasonPricingInvalid
		return result
	}

	if !p.oracle.CustomerEligible(o) {
		result.CustomerEligible = false
		result.Success = false
		result.CanFulfill = false
		result.ErrorMessage = ReasonCustomerNotEligible
		return result
	}

	return result
}
