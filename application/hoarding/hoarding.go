package hoarding

import (
	"context"

	"github.com/muhammadheryan/hoardspace/application/verification"
	"github.com/muhammadheryan/hoardspace/constant"
	"github.com/muhammadheryan/hoardspace/model"
	accountrepo "github.com/muhammadheryan/hoardspace/repository/account"
	hoardingrepo "github.com/muhammadheryan/hoardspace/repository/hoarding"
	"github.com/muhammadheryan/hoardspace/utils/errors"
	"github.com/muhammadheryan/hoardspace/utils/logger"
	"go.uber.org/zap"
)

type HoardingApp interface {
	Create(ctx context.Context, caller *model.Caller, req *model.HoardingRequest) (*model.HoardingCreateResponse, error)
	List(ctx context.Context, caller *model.Caller, city string) ([]*model.Hoarding, error)
	ListByOwner(ctx context.Context, caller *model.Caller) ([]*model.Hoarding, error)
	Get(ctx context.Context, id uint64) (*model.Hoarding, error)
}

type hoardingAppImpl struct {
	accountRepo  accountrepo.AccountRepository
	hoardingRepo hoardingrepo.HoardingRepository
}

func NewHoardingApp(accountRepo accountrepo.AccountRepository, hoardingRepo hoardingrepo.HoardingRepository) HoardingApp {
	return &hoardingAppImpl{accountRepo: accountRepo, hoardingRepo: hoardingRepo}
}

// Create persists a listing for an eligible vendor. New listings are approved
// immediately; there is no moderation step yet.
func (s *hoardingAppImpl) Create(ctx context.Context, caller *model.Caller, req *model.HoardingRequest) (*model.HoardingCreateResponse, error) {
	if caller == nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	if caller.Role != constant.RoleVendor {
		return nil, errors.SetCustomError(constant.ErrVendorOnly)
	}

	acc, err := s.accountRepo.Get(ctx, &model.AccountFilter{ID: caller.ID})
	if err != nil {
		logger.Error("[Create] err accountRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if acc == nil {
		return nil, errors.SetCustomError(constant.ErrAccountNotFound)
	}
	// role claim in the token may be stale
	if acc.Role != constant.RoleVendor {
		return nil, errors.SetCustomError(constant.ErrVendorOnly)
	}
	if err := verification.CheckBookingEligibility(verification.SnapshotOf(acc)); err != nil {
		return nil, err
	}

	entity := &model.HoardingEntity{
		Name:                 req.Name,
		Description:          req.Description,
		Address:              req.Address,
		City:                 req.City,
		Area:                 req.Area,
		State:                req.State,
		ZipCode:              req.ZipCode,
		Width:                req.Width,
		Height:               req.Height,
		Type:                 req.Type,
		LightingType:         req.LightingType,
		PricePerMonth:        req.PricePerMonth,
		MinimumBookingAmount: req.MinimumBookingAmount,
		Images:               model.StringList(req.Images),
		UniqueReach:          req.UniqueReach,
		OwnerID:              acc.ID,
		Status:               constant.HoardingStatusApproved,
	}
	if c := req.Coordinates(); c != nil {
		lat, lng := c.Lat, c.Lng
		entity.Latitude = &lat
		entity.Longitude = &lng
	}

	entity, err = s.hoardingRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[Create] err hoardingRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.HoardingCreateResponse{
		Message:  "Hoarding created successfully",
		Hoarding: model.NewHoarding(entity),
	}, nil
}

// List returns the public feed. Admin and vendor accounts get every status,
// including other vendors' unapproved listings. The role is read from the
// account, not the token; a failed lookup falls back to the public feed.
func (s *hoardingAppImpl) List(ctx context.Context, caller *model.Caller, city string) ([]*model.Hoarding, error) {
	filter := &model.HoardingFilter{
		City:     city,
		Statuses: []constant.HoardingStatus{constant.HoardingStatusApproved},
	}
	if caller != nil {
		acc, err := s.accountRepo.Get(ctx, &model.AccountFilter{ID: caller.ID})
		if err != nil {
			logger.Warn("[List] err accountRepo.Get", zap.Uint64("account_id", caller.ID), zap.String("error", err.Error()))
		}
		if acc != nil && (acc.Role == constant.RoleAdmin || acc.Role == constant.RoleVendor) {
			filter.Statuses = nil
		}
	}

	return s.list(ctx, "List", filter)
}

func (s *hoardingAppImpl) ListByOwner(ctx context.Context, caller *model.Caller) ([]*model.Hoarding, error) {
	if caller == nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	acc, err := s.accountRepo.Get(ctx, &model.AccountFilter{ID: caller.ID})
	if err != nil {
		logger.Error("[ListByOwner] err accountRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if acc == nil || acc.Role != constant.RoleVendor {
		return nil, errors.SetCustomErrorWithMessage(constant.ErrForbidden, "Access denied. Vendor role required.")
	}

	return s.list(ctx, "ListByOwner", &model.HoardingFilter{OwnerID: acc.ID})
}

func (s *hoardingAppImpl) Get(ctx context.Context, id uint64) (*model.Hoarding, error) {
	entity, err := s.hoardingRepo.Get(ctx, &model.HoardingFilter{ID: id})
	if err != nil {
		logger.Error("[Get] err hoardingRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrHoardingNotFound)
	}
	return model.NewHoarding(entity), nil
}

func (s *hoardingAppImpl) list(ctx context.Context, method string, filter *model.HoardingFilter) ([]*model.Hoarding, error) {
	entities, err := s.hoardingRepo.List(ctx, filter)
	if err != nil {
		logger.Error("["+method+"] err hoardingRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	items := make([]*model.Hoarding, 0, len(entities))
	for i := range entities {
		items = append(items, model.NewHoarding(&entities[i]))
	}
	return items, nil
}
