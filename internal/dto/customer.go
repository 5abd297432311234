package dto

import (
	"github.com/boighar/backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCustomerRequest registers a customer.
type CreateCustomerRequest struct {
	Name           string          `json:"name" binding:"required"`
	Phone          string          `json:"phone"`
	Address        string          `json:"address"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
}

// UpdateCustomerRequest updates contact details. The due balance is not
// client-writable; it moves through sales, payments, returns and the
// reconciliation repair.
type UpdateCustomerRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// CustomerResponse is the representation returned to clients.
type CustomerResponse struct {
	CustomerID     string          `json:"customerID"`
	Name           string          `json:"name"`
	Phone          string          `json:"phone,omitempty"`
	Address        string          `json:"address,omitempty"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	DueBalance     decimal.Decimal `json:"dueBalance"`
}

// ToCustomerResponse converts a domain.Customer to its response DTO.
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID:     c.CustomerID,
		Name:           c.Name,
		Phone:          c.Phone,
		Address:        c.Address,
		OpeningBalance: c.OpeningBalance,
		DueBalance:     c.DueBalance,
	}
}

// ToCustomerResponses converts a slice of customers.
func ToCustomerResponses(customers []domain.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = ToCustomerResponse(&customers[i])
	}
	return responses
}
