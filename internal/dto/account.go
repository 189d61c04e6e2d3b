package dto

import (
	"github.com/budgie-app/budgie/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// ListAccountsParams holds the optional account listing filter.
type ListAccountsParams struct {
	Type string `form:"type"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID   int64  `json:"accountID"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// AccountBalanceResponse defines the data returned for a balance query.
// The sign convention is debit-positive.
type AccountBalanceResponse struct {
	AccountName string          `json:"accountName"`
	Balance     decimal.Decimal `json:"balance"`
}

// ToAccountResponse converts a domain.Account to AccountResponse.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:   acc.AccountID,
		Name:        acc.Name,
		Description: acc.Description,
		Type:        acc.Type,
	}
}

// ToListAccountResponse converts a slice of domain.Account to DTOs.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}
