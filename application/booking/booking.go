package booking

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/muhammadheryan/hoardspace/application/verification"
	"github.com/muhammadheryan/hoardspace/cmd/config"
	"github.com/muhammadheryan/hoardspace/constant"
	"github.com/muhammadheryan/hoardspace/model"
	accountrepo "github.com/muhammadheryan/hoardspace/repository/account"
	bookingrepo "github.com/muhammadheryan/hoardspace/repository/booking"
	hoardingrepo "github.com/muhammadheryan/hoardspace/repository/hoarding"
	txrepo "github.com/muhammadheryan/hoardspace/repository/tx"
	"github.com/muhammadheryan/hoardspace/thirdparty/rabbitmq"
	"github.com/muhammadheryan/hoardspace/thirdparty/razorpay"
	"github.com/muhammadheryan/hoardspace/utils/errors"
	"github.com/muhammadheryan/hoardspace/utils/logger"
	"go.uber.org/zap"
)

const day = 24 * time.Hour

type BookingApp interface {
	Checkout(ctx context.Context, caller *model.Caller, req *model.CheckoutRequest) (*model.CheckoutResponse, error)
	VerifyPayment(ctx context.Context, req *model.VerifyPaymentRequest) (*model.VerifyPaymentResponse, error)
	CancelExpired(ctx context.Context, bookingID uint64) error
}

// ExpirationPublisher schedules the cancellation of an unpaid checkout.
type ExpirationPublisher interface {
	PublishBookingExpiration(ctx context.Context, msg rabbitmq.BookingExpirationMessage) error
}

type bookingAppImpl struct {
	config       *config.Config
	txRepo       txrepo.TxRepository
	accountRepo  accountrepo.AccountRepository
	hoardingRepo hoardingrepo.HoardingRepository
	bookingRepo  bookingrepo.BookingRepository
	gateway      razorpay.Gateway
	publisher    ExpirationPublisher
	now          func() time.Time
}

// NewBookingApp accepts a nil publisher; expiry messages are then skipped.
func NewBookingApp(
	config *config.Config,
	txRepo txrepo.TxRepository,
	accountRepo accountrepo.AccountRepository,
	hoardingRepo hoardingrepo.HoardingRepository,
	bookingRepo bookingrepo.BookingRepository,
	gateway razorpay.Gateway,
	publisher ExpirationPublisher,
) BookingApp {
	return &bookingAppImpl{
		config:       config,
		txRepo:       txRepo,
		accountRepo:  accountRepo,
		hoardingRepo: hoardingRepo,
		bookingRepo:  bookingRepo,
		gateway:      gateway,
		publisher:    publisher,
		now:          time.Now,
	}
}

// ProRatedAmount bills whole days at a 30-day month: days = ceil(|end-start| / 24h)
// and amount = ceil(pricePerMonth * days / 30).
func ProRatedAmount(pricePerMonth float64, start, end time.Time) model.Quote {
	d := end.Sub(start)
	if d < 0 {
		d = -d
	}
	days := int64(d / day)
	if d%day != 0 {
		days++
	}

	return model.Quote{
		Days:   days,
		Amount: math.Ceil(pricePerMonth * float64(days) / constant.DaysPerBillingMonth),
	}
}

func (s *bookingAppImpl) Checkout(ctx context.Context, caller *model.Caller, req *model.CheckoutRequest) (*model.CheckoutResponse, error) {
	if caller == nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	acc, err := s.accountRepo.Get(ctx, &model.AccountFilter{ID: caller.ID})
	if err != nil {
		logger.Error("[Checkout] err accountRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if acc == nil {
		return nil, errors.SetCustomError(constant.ErrAccountNotFound)
	}
	if err := verification.CheckBookingEligibility(verification.SnapshotOf(acc)); err != nil {
		return nil, err
	}

	hoarding, err := s.hoardingRepo.Get(ctx, &model.HoardingFilter{
		ID:       req.HoardingID,
		Statuses: []constant.HoardingStatus{constant.HoardingStatusApproved},
	})
	if err != nil {
		logger.Error("[Checkout] err hoardingRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if hoarding == nil {
		return nil, errors.SetCustomError(constant.ErrHoardingNotFound)
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		return nil, errors.SetCustomErrorWithMessage(constant.ErrInvalidRequest, "Invalid start date")
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return nil, errors.SetCustomErrorWithMessage(constant.ErrInvalidRequest, "Invalid end date")
	}
	if !end.After(start) {
		return nil, errors.SetCustomErrorWithMessage(constant.ErrInvalidRequest, "End date must be after start date")
	}

	quote := ProRatedAmount(hoarding.PricePerMonth, start, end)
	if quote.Amount < hoarding.MinimumBookingAmount {
		return nil, errors.SetCustomErrorWithMessage(constant.ErrBelowMinimumBooking,
			fmt.Sprintf("Minimum booking amount is %.2f", hoarding.MinimumBookingAmount))
	}

	now := s.now()
	currency := s.currency()
	amountPaise := int64(math.Round(quote.Amount * constant.PaisePerRupee))
	order, err := s.gateway.CreateOrder(ctx, amountPaise, currency, fmt.Sprintf("receipt_%d", now.UnixMilli()))
	if err != nil {
		logger.Error("[Checkout] err gateway.CreateOrder", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrPaymentGateway)
	}

	expiresAt := now.Add(s.config.Booking.CheckoutExpiration).UTC()
	booking, err := s.bookingRepo.Create(ctx, &model.BookingEntity{
		HoardingID:  hoarding.ID,
		UserID:      acc.ID,
		StartDate:   start.UTC(),
		EndDate:     end.UTC(),
		TotalAmount: quote.Amount,
		Status:      constant.BookingStatusPending,
		OrderID:     order.ID,
		ExpiresAt:   expiresAt,
		CreatedAt:   now.UTC(),
	})
	if err != nil {
		logger.Error("[Checkout] err bookingRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if s.publisher != nil {
		msg := rabbitmq.BookingExpirationMessage{
			BookingID: booking.ID,
			UserID:    acc.ID,
			ExpiresAt: expiresAt,
		}
		if err := s.publisher.PublishBookingExpiration(ctx, msg); err != nil {
			logger.Error("[Checkout] publish booking expiration", zap.String("error", err.Error()))
		}
	}

	return &model.CheckoutResponse{
		OrderID:   order.ID,
		BookingID: booking.ID,
		Amount:    amountPaise,
		Currency:  currency,
		KeyID:     s.gateway.KeyID(),
	}, nil
}

func (s *bookingAppImpl) VerifyPayment(ctx context.Context, req *model.VerifyPaymentRequest) (*model.VerifyPaymentResponse, error) {
	if !s.gateway.VerifySignature(req.OrderID, req.PaymentID, req.Signature) {
		return nil, errors.SetCustomError(constant.ErrInvalidSignature)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[VerifyPayment] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	booking, err := s.bookingRepo.GetByOrderIDTx(ctx, tx, req.OrderID)
	if err != nil {
		logger.Error("[VerifyPayment] get booking", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if booking == nil {
		return nil, errors.SetCustomError(constant.ErrBookingNotFound)
	}

	switch {
	case booking.Status == constant.BookingStatusPending:
	case booking.Status == constant.BookingStatusConfirmed && booking.PaymentID == req.PaymentID:
		// widget retried the same payment
		return &model.VerifyPaymentResponse{Success: true, BookingID: booking.ID}, nil
	default:
		return nil, errors.SetCustomError(constant.ErrInvalidBookingStatus)
	}

	if err := s.bookingRepo.UpdateStatusTx(ctx, tx, booking.ID, constant.BookingStatusConfirmed, req.PaymentID); err != nil {
		logger.Error("[VerifyPayment] update status", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[VerifyPayment] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return &model.VerifyPaymentResponse{Success: true, BookingID: booking.ID}, nil
}

// CancelExpired cancels a checkout that is still pending. Any other status is
// reported as ErrInvalidBookingStatus so the expiry consumer can drop the message.
func (s *bookingAppImpl) CancelExpired(ctx context.Context, bookingID uint64) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CancelExpired] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	booking, err := s.bookingRepo.GetByIDTx(ctx, tx, bookingID)
	if err != nil {
		logger.Error("[CancelExpired] get booking", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if booking == nil {
		return errors.SetCustomError(constant.ErrBookingNotFound)
	}
	if booking.Status != constant.BookingStatusPending {
		return errors.SetCustomError(constant.ErrInvalidBookingStatus)
	}

	if err := s.bookingRepo.UpdateStatusTx(ctx, tx, booking.ID, constant.BookingStatusCancelled, booking.PaymentID); err != nil {
		logger.Error("[CancelExpired] update status", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CancelExpired] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return nil
}

func (s *bookingAppImpl) currency() string {
	if s.config.Booking.Currency != "" {
		return s.config.Booking.Currency
	}
	return "INR"
}

// parseDate accepts a calendar date or an RFC3339 timestamp.
func parseDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if t, err := time.Parse(time.DateOnly, v); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, v)
}
