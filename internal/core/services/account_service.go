package services

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pymeledger/pymeledger/internal/apperrors"
	"github.com/pymeledger/pymeledger/internal/core/domain"
	portsrepo "github.com/pymeledger/pymeledger/internal/core/ports/repositories"
	portssvc "github.com/pymeledger/pymeledger/internal/core/ports/services"
	"github.com/pymeledger/pymeledger/internal/dto"
	"github.com/pymeledger/pymeledger/internal/platform/logging"
	"github.com/pymeledger/pymeledger/internal/utils/validation"
	"github.com/shopspring/decimal"
)

// accountService implements the account registry over an AccountRepository.
type accountService struct {
	accountRepo portsrepo.AccountRepository
}

// NewAccountService creates the account registry service.
func NewAccountService(accountRepo portsrepo.AccountRepository) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// RegisterAccount adds an account to the chart. The code must be free across
// active and inactive accounts, and the nature must match the type: assets
// and expenses are debit-natured, liabilities, equity and revenue
// credit-natured.
func (s *accountService) RegisterAccount(ctx context.Context, req dto.RegisterAccountRequest) (*domain.Account, error) {
	logger := logging.FromCtx(ctx)

	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if domain.NatureFor(req.AccountType) != req.Nature {
		return nil, fmt.Errorf("%w: %s accounts must be %s", apperrors.ErrInvalidNature,
			req.AccountType, domain.NatureFor(req.AccountType))
	}

	// Code uniqueness spans inactive accounts too.
	if _, err := s.accountRepo.FindAccountByCode(ctx, req.Code); err == nil {
		return nil, fmt.Errorf("code %s: %w", req.Code, apperrors.ErrDuplicateCode)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check code %s: %w", req.Code, err)
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:      uuid.NewString(),
		Code:           req.Code,
		Name:           req.Name,
		AccountType:    req.AccountType,
		Nature:         req.Nature,
		Description:    req.Description,
		IsActive:       true,
		OpeningBalance: req.OpeningBalance,
		Balance:        req.OpeningBalance,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		logger.Error("Failed to save account", slog.String("error", err.Error()), slog.String("code", req.Code))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	logger.Info("Account registered",
		slog.String("account_id", account.AccountID),
		slog.String("code", account.Code),
		slog.String("type", string(account.AccountType)))
	return &account, nil
}

// UpdateAccount changes the mutable fields only. Code, type, nature and
// opening balance are immutable once created.
func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.Description != nil {
		account.Description = *req.Description
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}
	account.LastUpdatedAt = time.Now().UTC()

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		return nil, fmt.Errorf("failed to update account %s: %w", accountID, err)
	}
	return account, nil
}

// DeactivateAccount soft-deactivates an account. Idempotent when already
// inactive. A non-zero balance does not block deactivation: history is
// preserved and new movements against the account are rejected downstream.
func (s *accountService) DeactivateAccount(ctx context.Context, accountID string) error {
	logger := logging.FromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return err
	}
	if !account.IsActive {
		return nil
	}

	account.IsActive = false
	account.LastUpdatedAt = time.Now().UTC()
	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		logger.Error("Failed to deactivate account", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return fmt.Errorf("failed to deactivate account %s: %w", accountID, err)
	}

	logger.Info("Account deactivated", slog.String("account_id", accountID), slog.String("code", account.Code))
	return nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

func (s *accountService) GetAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByCode(ctx, code)
}

func (s *accountService) GetAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	return s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
}

// ListActiveAccounts returns the active chart ordered by code.
func (s *accountService) ListActiveAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]domain.Account, 0, len(accounts))
	for _, account := range accounts {
		if account.IsActive {
			active = append(active, account)
		}
	}
	return active, nil
}

func (s *accountService) ListAccountsByType(ctx context.Context, accountType domain.AccountType) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]domain.Account, 0, len(accounts))
	for _, account := range accounts {
		if account.IsActive && account.AccountType == accountType {
			matched = append(matched, account)
		}
	}
	return matched, nil
}

// SearchAccounts matches text case-insensitively against account codes and
// names. The sequence is backed by a snapshot taken at call time, so it is
// finite and can be ranged over more than once.
func (s *accountService) SearchAccounts(ctx context.Context, text string) (iter.Seq[domain.Account], error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(text)
	return func(yield func(domain.Account) bool) {
		for _, account := range accounts {
			if !strings.Contains(strings.ToLower(account.Code), needle) &&
				!strings.Contains(strings.ToLower(account.Name), needle) {
				continue
			}
			if !yield(account) {
				return
			}
		}
	}, nil
}

// ApplyBalanceChanges forwards posting deltas to the repository. Only the
// journal posting path calls this.
func (s *accountService) ApplyBalanceChanges(ctx context.Context, deltas map[string]decimal.Decimal) error {
	return s.accountRepo.ApplyBalanceChanges(ctx, deltas)
}
