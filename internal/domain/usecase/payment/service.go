package payment

import (
	"context"
	"encoding/base64"
	"time"

	"github.com/vyronamart/group-ledger/internal/domain/entity"
	errs "github.com/vyronamart/group-ledger/internal/domain/error"
	coreport "github.com/vyronamart/group-ledger/internal/domain/port/core"
	"github.com/vyronamart/group-ledger/internal/domain/port/external"
	"github.com/vyronamart/group-ledger/internal/domain/port/persistence"
	"github.com/vyronamart/group-ledger/internal/domain/port/usecase"
)

const pngDataURIPrefix = "data:image/png;base64,"

// Options configures the payee and artifact shape
type Options struct {
	Payee  entity.UPIPayee
	TTL    time.Duration
	QRSize int
}

// Service implements usecase.PaymentUseCase. It reads group membership but
// never writes anything.
type Service struct {
	uow          persistence.UnitOfWork
	renderer     external.QRRenderer
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	metrics      coreport.Metrics
	options      Options
}

// NewPaymentService creates a new payment intent service
func NewPaymentService(
	uow persistence.UnitOfWork,
	renderer external.QRRenderer,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	metrics coreport.Metrics,
	options Options,
) *Service {
	if options.TTL <= 0 {
		options.TTL = entity.DefaultIntentTTL
	}
	if options.QRSize <= 0 {
		options.QRSize = 256
	}
	return &Service{
		uow:          uow,
		renderer:     renderer,
		timeProvider: timeProvider,
		logger:       logger,
		metrics:      metrics,
		options:      options,
	}
}

// GenerateIntent builds a UPI URI and its QR artifact for a member's contribution.
// Every call yields a new reference ID.
func (s *Service) GenerateIntent(ctx context.Context, req usecase.GenerateIntentRequest) (*entity.PaymentIntent, error) {
	intent, err := entity.NewPaymentIntent(
		req.GroupID, req.ItemID, req.UserID, req.Amount,
		s.options.Payee, s.timeProvider.Now(), s.options.TTL,
	)
	if err != nil {
		s.metrics.RecordPaymentIntent(coreport.OutcomeRejected)
		return nil, err
	}

	if err := s.checkMembership(ctx, req.GroupID, req.UserID); err != nil {
		s.metrics.RecordPaymentIntent(coreport.OutcomeRejected)
		return nil, err
	}

	png, err := s.renderer.RenderPNG(intent.URI, s.options.QRSize)
	if err != nil {
		err = errs.NewExternalServiceError("qr", "render", err)
		s.metrics.RecordPaymentIntent(coreport.OutcomeFailure)
		s.logger.Error("Failed to render payment QR", errs.Fields(err))
		return nil, err
	}
	intent.Artifact = pngDataURIPrefix + base64.StdEncoding.EncodeToString(png)

	s.metrics.RecordPaymentIntent(coreport.OutcomeSuccess)
	s.logger.Info("Payment intent generated", map[string]any{
		"reference_id": intent.ReferenceID,
		"group_id":     req.GroupID,
		"user_id":      req.UserID,
		"amount":       req.Amount,
		"expires_at":   intent.ExpiresAt,
	})
	return intent, nil
}

// checkMembership requires an active group that the payer belongs to
func (s *Service) checkMembership(ctx context.Context, groupID, userID uint64) error {
	repo := s.uow.GetGroupRepository(ctx)

	group, err := repo.GetByID(ctx, groupID)
	if err != nil {
		return err
	}
	if !group.Active {
		return errs.ErrGroupNotFound
	}

	member, err := repo.IsMember(ctx, groupID, userID)
	if err != nil {
		return err
	}
	if !member {
		return errs.ErrNotGroupMember
	}
	return nil
}
