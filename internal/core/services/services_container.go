package services

import (
	"github.com/pymeledger/pymeledger/internal/adapters/memory"
	portssvc "github.com/pymeledger/pymeledger/internal/core/ports/services"
)

// Container bundles the core services over shared in-memory repositories.
// Drivers (the CLI, tests) construct one container per working set.
type Container struct {
	Account   portssvc.AccountSvcFacade
	Journal   portssvc.JournalSvcFacade
	Ledger    portssvc.LedgerSvcFacade
	Reporting portssvc.ReportingSvcFacade
}

// NewContainer wires the services over fresh in-memory repositories.
func NewContainer() *Container {
	accountRepo := memory.NewAccountRepository()
	journalRepo := memory.NewJournalRepository()

	accountSvc := NewAccountService(accountRepo)
	ledgerSvc := NewLedgerService(accountRepo, journalRepo)
	return &Container{
		Account:   accountSvc,
		Journal:   NewJournalService(journalRepo, accountSvc),
		Ledger:    ledgerSvc,
		Reporting: NewReportingService(accountRepo, ledgerSvc),
	}
}
