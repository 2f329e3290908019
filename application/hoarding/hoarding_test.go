package hoarding_test

import (
	"context"
	"errors"
	"testing"

	apphoarding "github.com/muhammadheryan/hoardspace/application/hoarding"
	"github.com/muhammadheryan/hoardspace/constant"
	accountmocks "github.com/muhammadheryan/hoardspace/mocks/repository/account"
	hoardingmocks "github.com/muhammadheryan/hoardspace/mocks/repository/hoarding"
	"github.com/muhammadheryan/hoardspace/model"
	cerr "github.com/muhammadheryan/hoardspace/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func assertErrCode(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.Type() != want {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[want])
	}
}

func validRequest() *model.HoardingRequest {
	lat, lng := 12.97, 77.6
	return &model.HoardingRequest{
		Name:                 "MG Road Gantry",
		Address:              "12 MG Road",
		City:                 "Bengaluru",
		Area:                 "Ashok Nagar",
		State:                "Karnataka",
		ZipCode:              "560001",
		Latitude:             &lat,
		Longitude:            &lng,
		Width:                40,
		Height:               20,
		Type:                 "Billboard",
		LightingType:         "Front Lit",
		PricePerMonth:        30000,
		MinimumBookingAmount: 5000,
		Images:               []string{"https://res.cloudinary.com/x/a.jpg"},
	}
}

func TestHoardingApp_Create(t *testing.T) {
	vendor := &model.Caller{ID: 4, Role: constant.RoleVendor}

	tests := []struct {
		name     string
		caller   *model.Caller
		mockCall func(accRepo *accountmocks.AccountRepository, repo *hoardingmocks.HoardingRepository)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: approved vendor",
			caller: vendor,
			mockCall: func(accRepo *accountmocks.AccountRepository, repo *hoardingmocks.HoardingRepository) {
				accRepo.On("Get", mock.Anything, &model.AccountFilter{ID: 4}).
					Return(&model.AccountEntity{ID: 4, Role: constant.RoleVendor, EmailVerified: true, KYCStatus: constant.KYCStatusApproved}, nil).Once()
				repo.On("Create", mock.Anything, mock.MatchedBy(func(e *model.HoardingEntity) bool {
					return e.OwnerID == 4 && e.City == "Bengaluru" && e.Status == constant.HoardingStatusApproved &&
						e.Latitude != nil && *e.Latitude == 12.97 && e.Width == 40
				})).Return(func(_ context.Context, e *model.HoardingEntity) *model.HoardingEntity {
					out := *e
					out.ID = 10
					return &out
				}, nil).Once()
			},
		},
		{
			name:    "error: anonymous",
			caller:  nil,
			wantErr: true,
			errCode: constant.ErrUnauthorize,
		},
		{
			name:    "error: buyer",
			caller:  &model.Caller{ID: 4, Role: constant.RoleBuyer},
			wantErr: true,
			errCode: constant.ErrVendorOnly,
		},
		{
			name:   "error: vendor without approved kyc",
			caller: vendor,
			mockCall: func(accRepo *accountmocks.AccountRepository, repo *hoardingmocks.HoardingRepository) {
				accRepo.On("Get", mock.Anything, mock.Anything).
					Return(&model.AccountEntity{ID: 4, Role: constant.RoleVendor, EmailVerified: true, KYCStatus: constant.KYCStatusNotSubmitted}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrKYCNotSubmitted,
		},
		{
			name:   "error: token role is stale",
			caller: vendor,
			mockCall: func(accRepo *accountmocks.AccountRepository, repo *hoardingmocks.HoardingRepository) {
				accRepo.On("Get", mock.Anything, mock.Anything).
					Return(&model.AccountEntity{ID: 4, Role: constant.RoleBuyer, EmailVerified: true, KYCStatus: constant.KYCStatusApproved}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrVendorOnly,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			accRepo := accountmocks.NewAccountRepository(t)
			repo := hoardingmocks.NewHoardingRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(accRepo, repo)
			}

			got, err := apphoarding.NewHoardingApp(accRepo, repo).Create(context.Background(), tt.caller, validRequest())
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Hoarding created successfully", got.Message)
			assert.Equal(t, uint64(10), got.Hoarding.ID)
			require.NotNil(t, got.Hoarding.Location.Coordinates)
			assert.Equal(t, 77.6, got.Hoarding.Location.Coordinates.Lng)
		})
	}
}

func TestHoardingApp_List(t *testing.T) {
	approvedOnly := []constant.HoardingStatus{constant.HoardingStatusApproved}

	tests := []struct {
		name         string
		caller       *model.Caller
		mockCall     func(accRepo *accountmocks.AccountRepository)
		wantStatuses []constant.HoardingStatus
	}{
		{name: "anonymous sees approved", caller: nil, wantStatuses: approvedOnly},
		{
			name:   "buyer sees approved",
			caller: &model.Caller{ID: 1, Role: constant.RoleBuyer},
			mockCall: func(accRepo *accountmocks.AccountRepository) {
				accRepo.On("Get", mock.Anything, &model.AccountFilter{ID: 1}).Return(&model.AccountEntity{ID: 1, Role: constant.RoleBuyer}, nil).Once()
			},
			wantStatuses: approvedOnly,
		},
		{
			name:   "vendor sees every status",
			caller: &model.Caller{ID: 2, Role: constant.RoleVendor},
			mockCall: func(accRepo *accountmocks.AccountRepository) {
				accRepo.On("Get", mock.Anything, &model.AccountFilter{ID: 2}).Return(&model.AccountEntity{ID: 2, Role: constant.RoleVendor}, nil).Once()
			},
			wantStatuses: nil,
		},
		{
			name:   "admin sees every status",
			caller: &model.Caller{ID: 3, Role: constant.RoleAdmin},
			mockCall: func(accRepo *accountmocks.AccountRepository) {
				accRepo.On("Get", mock.Anything, &model.AccountFilter{ID: 3}).Return(&model.AccountEntity{ID: 3, Role: constant.RoleAdmin}, nil).Once()
			},
			wantStatuses: nil,
		},
		{
			name:   "stale vendor claim on a buyer account sees approved",
			caller: &model.Caller{ID: 5, Role: constant.RoleVendor},
			mockCall: func(accRepo *accountmocks.AccountRepository) {
				accRepo.On("Get", mock.Anything, &model.AccountFilter{ID: 5}).Return(&model.AccountEntity{ID: 5, Role: constant.RoleBuyer}, nil).Once()
			},
			wantStatuses: approvedOnly,
		},
		{
			name:   "deleted account sees approved",
			caller: &model.Caller{ID: 6, Role: constant.RoleAdmin},
			mockCall: func(accRepo *accountmocks.AccountRepository) {
				accRepo.On("Get", mock.Anything, &model.AccountFilter{ID: 6}).Return(nil, nil).Once()
			},
			wantStatuses: approvedOnly,
		},
		{
			name:   "account lookup failure sees approved",
			caller: &model.Caller{ID: 7, Role: constant.RoleAdmin},
			mockCall: func(accRepo *accountmocks.AccountRepository) {
				accRepo.On("Get", mock.Anything, &model.AccountFilter{ID: 7}).Return(nil, errors.New("db down")).Once()
			},
			wantStatuses: approvedOnly,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			accRepo := accountmocks.NewAccountRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(accRepo)
			}
			repo := hoardingmocks.NewHoardingRepository(t)
			repo.On("List", mock.Anything, &model.HoardingFilter{City: "Pune", Statuses: tt.wantStatuses}).
				Return([]model.HoardingEntity{{ID: 1, City: "Pune"}, {ID: 2, City: "pune"}}, nil).Once()

			got, err := apphoarding.NewHoardingApp(accRepo, repo).List(context.Background(), tt.caller, "Pune")
			require.NoError(t, err)
			require.Len(t, got, 2)
			assert.Equal(t, uint64(2), got[1].ID)
		})
	}
}

func TestHoardingApp_ListByOwner(t *testing.T) {
	tests := []struct {
		name     string
		caller   *model.Caller
		mockCall func(accRepo *accountmocks.AccountRepository, repo *hoardingmocks.HoardingRepository)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: vendor gets own listings",
			caller: &model.Caller{ID: 2, Role: constant.RoleVendor},
			mockCall: func(accRepo *accountmocks.AccountRepository, repo *hoardingmocks.HoardingRepository) {
				accRepo.On("Get", mock.Anything, &model.AccountFilter{ID: 2}).Return(&model.AccountEntity{ID: 2, Role: constant.RoleVendor}, nil).Once()
				repo.On("List", mock.Anything, &model.HoardingFilter{OwnerID: 2}).Return([]model.HoardingEntity{}, nil).Once()
			},
		},
		{
			name:    "error: anonymous",
			caller:  nil,
			wantErr: true,
			errCode: constant.ErrUnauthorize,
		},
		{
			name:   "error: buyer",
			caller: &model.Caller{ID: 1, Role: constant.RoleBuyer},
			mockCall: func(accRepo *accountmocks.AccountRepository, repo *hoardingmocks.HoardingRepository) {
				accRepo.On("Get", mock.Anything, &model.AccountFilter{ID: 1}).Return(&model.AccountEntity{ID: 1, Role: constant.RoleBuyer}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
		{
			name:   "error: vendor claim on a buyer account",
			caller: &model.Caller{ID: 5, Role: constant.RoleVendor},
			mockCall: func(accRepo *accountmocks.AccountRepository, repo *hoardingmocks.HoardingRepository) {
				accRepo.On("Get", mock.Anything, &model.AccountFilter{ID: 5}).Return(&model.AccountEntity{ID: 5, Role: constant.RoleBuyer}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
		{
			name:   "error: account lookup",
			caller: &model.Caller{ID: 2, Role: constant.RoleVendor},
			mockCall: func(accRepo *accountmocks.AccountRepository, repo *hoardingmocks.HoardingRepository) {
				accRepo.On("Get", mock.Anything, &model.AccountFilter{ID: 2}).Return(nil, errors.New("db down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			accRepo := accountmocks.NewAccountRepository(t)
			repo := hoardingmocks.NewHoardingRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(accRepo, repo)
			}

			got, err := apphoarding.NewHoardingApp(accRepo, repo).ListByOwner(context.Background(), tt.caller)
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, got)
			assert.NotNil(t, got)
		})
	}
}

func TestHoardingApp_Create_CoordinatesNeedBothValues(t *testing.T) {
	lat := 12.97
	req := validRequest()
	req.Latitude = &lat
	req.Longitude = nil

	accRepo := accountmocks.NewAccountRepository(t)
	accRepo.On("Get", mock.Anything, &model.AccountFilter{ID: 4}).
		Return(&model.AccountEntity{ID: 4, Role: constant.RoleVendor, EmailVerified: true, KYCStatus: constant.KYCStatusApproved}, nil).Once()
	repo := hoardingmocks.NewHoardingRepository(t)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(e *model.HoardingEntity) bool {
		return e.Latitude == nil && e.Longitude == nil && e.Address == "12 MG Road" && e.Height == 20
	})).Return(func(_ context.Context, e *model.HoardingEntity) *model.HoardingEntity {
		out := *e
		out.ID = 11
		return &out
	}, nil).Once()

	got, err := apphoarding.NewHoardingApp(accRepo, repo).Create(context.Background(), &model.Caller{ID: 4, Role: constant.RoleVendor}, req)
	require.NoError(t, err)
	assert.Nil(t, got.Hoarding.Location.Coordinates)
	assert.Equal(t, "Bengaluru", got.Hoarding.Location.City)
	assert.Equal(t, 40.0, got.Hoarding.Dimensions.Width)
}

func TestHoardingApp_Get(t *testing.T) {
	repo := hoardingmocks.NewHoardingRepository(t)
	repo.On("Get", mock.Anything, &model.HoardingFilter{ID: 9}).Return(nil, nil).Once()
	repo.On("Get", mock.Anything, &model.HoardingFilter{ID: 10}).Return(&model.HoardingEntity{ID: 10, Name: "A"}, nil).Once()

	app := apphoarding.NewHoardingApp(accountmocks.NewAccountRepository(t), repo)

	_, err := app.Get(context.Background(), 9)
	assertErrCode(t, err, constant.ErrHoardingNotFound)

	got, err := app.Get(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Name)
}
