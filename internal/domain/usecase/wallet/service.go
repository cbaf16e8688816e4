package wallet

import (
	coreport "github.com/vyronamart/group-ledger/internal/domain/port/core"
	"github.com/vyronamart/group-ledger/internal/domain/port/persistence"
)

// Service implements usecase.WalletUseCase on top of the Ledger Store
type Service struct {
	uow          persistence.UnitOfWork
	validator    *DeltaValidator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	metrics      coreport.Metrics
}

// NewWalletService creates a new wallet service
func NewWalletService(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	metrics coreport.Metrics,
) *Service {
	return &Service{
		uow:          uow,
		validator:    NewDeltaValidator(),
		timeProvider: timeProvider,
		logger:       logger,
		metrics:      metrics,
	}
}
