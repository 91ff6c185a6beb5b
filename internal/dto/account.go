package dto

import (
	"time"

	"github.com/pymeledger/pymeledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RegisterAccountRequest defines the data needed to register a new account
// in the chart of accounts.
type RegisterAccountRequest struct {
	Code           string               `json:"code" validate:"required,max=10"`
	Name           string               `json:"name" validate:"required,max=100"`
	AccountType    domain.AccountType   `json:"accountType" validate:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	Nature         domain.AccountNature `json:"nature" validate:"required,oneof=DEBIT_NATURED CREDIT_NATURED"`
	OpeningBalance decimal.Decimal      `json:"openingBalance"`
	Description    string               `json:"description" validate:"max=500"`
}

// UpdateAccountRequest defines the mutable account fields. Code, type and
// nature are immutable once created. Pointers distinguish "not provided"
// from zero values.
type UpdateAccountRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	IsActive    *bool   `json:"isActive"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID   string               `json:"accountID"`
	Code        string               `json:"code"`
	Name        string               `json:"name"`
	AccountType domain.AccountType   `json:"accountType"`
	Nature      domain.AccountNature `json:"nature"`
	Description string               `json:"description"`
	IsActive    bool                 `json:"isActive"`
	Balance     decimal.Decimal      `json:"balance"`
	CreatedAt   time.Time            `json:"createdAt"`
}

// ToAccountResponse converts a domain.Account to its response DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:   acc.AccountID,
		Code:        acc.Code,
		Name:        acc.Name,
		AccountType: acc.AccountType,
		Nature:      acc.Nature,
		Description: acc.Description,
		IsActive:    acc.IsActive,
		Balance:     acc.Balance,
		CreatedAt:   acc.CreatedAt,
	}
}

// ToListAccountResponse converts a slice of accounts to response DTOs.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}
