// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package connect

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/crm-gateway/internal/crm"
	"github.com/canonical/crm-gateway/internal/db"
	"github.com/canonical/crm-gateway/internal/logging"
	"github.com/canonical/crm-gateway/internal/monitoring"
	"github.com/canonical/crm-gateway/internal/storage"
	"github.com/canonical/crm-gateway/internal/tracing"
	"github.com/canonical/crm-gateway/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package connect -destination ./mock_connect.go -source=./interfaces.go

type serviceMocks struct {
	states    *MockStateStoreInterface
	directory *MockDirectoryInterface
	vault     *MockVaultInterface
	crmClient *MockCRMClientInterface
	dbClient  *db.MockDBClientInterface
}

func newTestService(ctrl *gomock.Controller) (*Service, serviceMocks) {
	mocks := serviceMocks{
		states:    NewMockStateStoreInterface(ctrl),
		directory: NewMockDirectoryInterface(ctrl),
		vault:     NewMockVaultInterface(ctrl),
		crmClient: NewMockCRMClientInterface(ctrl),
		dbClient:  db.NewMockDBClientInterface(ctrl),
	}

	service := NewService(
		mocks.states,
		mocks.directory,
		mocks.vault,
		mocks.crmClient,
		mocks.dbClient,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)

	return service, mocks
}

// passthroughTx runs the transaction body directly on the same context.
func passthroughTx(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func TestService_BeginAuthorization(t *testing.T) {
	t.Run("existing tenant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := newTestService(ctrl)

		mocks.directory.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").
			Return(&types.Tenant{ID: "tenant-1"}, nil)
		mocks.states.EXPECT().Issue("tenant-1").Return("state-token", nil)
		mocks.crmClient.EXPECT().AuthCodeURL("state-token").
			Return("https://crm.example.com/oauth/authorize?state=state-token")

		url, err := service.BeginAuthorization(context.Background(), "tenant-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if url != "https://crm.example.com/oauth/authorize?state=state-token" {
			t.Errorf("unexpected authorization URL %q", url)
		}
	})

	t.Run("first-time installation skips tenant lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := newTestService(ctrl)

		mocks.states.EXPECT().Issue("").Return("state-token", nil)
		mocks.crmClient.EXPECT().AuthCodeURL("state-token").Return("https://crm.example.com/auth")

		if _, err := service.BeginAuthorization(context.Background(), ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown tenant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := newTestService(ctrl)

		mocks.directory.EXPECT().GetTenantByID(gomock.Any(), "nope").
			Return(nil, storage.ErrNotFound)

		if _, err := service.BeginAuthorization(context.Background(), "nope"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected not found error, got %v", err)
		}
	})
}

func TestService_CompleteAuthorization_LinksExistingTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mocks := newTestService(ctrl)

	expiry := time.Now().Add(time.Hour)

	mocks.states.EXPECT().Verify("state-token").Return("tenant-1", true)
	mocks.crmClient.EXPECT().ExchangeCode(gomock.Any(), "auth-code").
		Return(&crm.TokenResult{
			AccessToken:  "at",
			RefreshToken: "rt",
			Expiry:       expiry,
			LocationID:   "loc-1",
			CompanyID:    "co-1",
		}, nil)
	mocks.vault.EXPECT().Encrypt([]byte("at")).Return([]byte("enc-at"), nil)
	mocks.vault.EXPECT().Encrypt([]byte("rt")).Return([]byte("enc-rt"), nil)
	mocks.dbClient.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(passthroughTx)
	mocks.directory.EXPECT().UpsertInstallation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inst *types.OAuthInstallation) (*types.OAuthInstallation, error) {
			if inst.CRMLocationID != "loc-1" || inst.CRMCompanyID != "co-1" {
				t.Errorf("unexpected installation identifiers: %+v", inst)
			}
			if string(inst.EncryptedAccessToken) != "enc-at" || string(inst.EncryptedRefreshToken) != "enc-rt" {
				t.Error("expected encrypted tokens to be persisted")
			}
			inst.ID = "inst-1"
			return inst, nil
		})
	mocks.directory.EXPECT().LinkOAuthInstallation(gomock.Any(), "tenant-1", "inst-1").Return(nil)

	result, err := service.CompleteAuthorization(context.Background(), "state-token", "auth-code")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.TenantID != "tenant-1" || result.InstallationID != "inst-1" {
		t.Errorf("unexpected result: %+v", result)
	}
	if result.TenantCreated {
		t.Error("expected no tenant to be created for an existing link")
	}
}

func TestService_CompleteAuthorization_CreatesProvisionalTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mocks := newTestService(ctrl)

	mocks.states.EXPECT().Verify("state-token").Return("", true)
	mocks.crmClient.EXPECT().ExchangeCode(gomock.Any(), "auth-code").
		Return(&crm.TokenResult{AccessToken: "at", RefreshToken: "rt", LocationID: "loc-1"}, nil)
	mocks.vault.EXPECT().Encrypt([]byte("at")).Return([]byte("enc-at"), nil)
	mocks.vault.EXPECT().Encrypt([]byte("rt")).Return([]byte("enc-rt"), nil)
	mocks.dbClient.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(passthroughTx)
	mocks.directory.EXPECT().UpsertInstallation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inst *types.OAuthInstallation) (*types.OAuthInstallation, error) {
			inst.ID = "inst-1"
			return inst, nil
		})
	mocks.directory.EXPECT().GetTenantByCRMLocationID(gomock.Any(), "loc-1").
		Return(nil, storage.ErrNotFound)
	mocks.directory.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tenant *types.Tenant) (*types.Tenant, error) {
			if tenant.CRMLocationID != "loc-1" || tenant.InstallationID != "inst-1" {
				t.Errorf("unexpected provisional tenant: %+v", tenant)
			}
			tenant.ID = "tenant-new"
			return tenant, nil
		})

	result, err := service.CompleteAuthorization(context.Background(), "state-token", "auth-code")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.TenantID != "tenant-new" || !result.TenantCreated {
		t.Errorf("expected a freshly created tenant, got %+v", result)
	}
}

func TestService_CompleteAuthorization_ReinstallRelinksKnownLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mocks := newTestService(ctrl)

	mocks.states.EXPECT().Verify("state-token").Return("", true)
	mocks.crmClient.EXPECT().ExchangeCode(gomock.Any(), "auth-code").
		Return(&crm.TokenResult{AccessToken: "at2", RefreshToken: "rt2", LocationID: "loc-1"}, nil)
	mocks.vault.EXPECT().Encrypt([]byte("at2")).Return([]byte("enc-at2"), nil)
	mocks.vault.EXPECT().Encrypt([]byte("rt2")).Return([]byte("enc-rt2"), nil)
	mocks.dbClient.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(passthroughTx)
	mocks.directory.EXPECT().UpsertInstallation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inst *types.OAuthInstallation) (*types.OAuthInstallation, error) {
			if string(inst.EncryptedAccessToken) != "enc-at2" {
				t.Error("expected the fresh tokens to be persisted on re-install")
			}
			inst.ID = "inst-1"
			return inst, nil
		})
	mocks.directory.EXPECT().GetTenantByCRMLocationID(gomock.Any(), "loc-1").
		Return(&types.Tenant{ID: "tenant-1", CRMLocationID: "loc-1", InstallationID: "inst-1"}, nil)
	mocks.directory.EXPECT().LinkOAuthInstallation(gomock.Any(), "tenant-1", "inst-1").Return(nil)

	result, err := service.CompleteAuthorization(context.Background(), "state-token", "auth-code")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.TenantID != "tenant-1" {
		t.Errorf("expected the existing tenant to be relinked, got %+v", result)
	}
	if result.TenantCreated {
		t.Error("expected no tenant to be created on re-install")
	}
}

func TestService_CompleteAuthorization_InvalidState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mocks := newTestService(ctrl)

	mocks.states.EXPECT().Verify("bad-state").Return("", false)

	if _, err := service.CompleteAuthorization(context.Background(), "bad-state", "auth-code"); !errors.Is(err, ErrInvalidOrExpiredState) {
		t.Errorf("expected ErrInvalidOrExpiredState, got %v", err)
	}
}

func TestService_CompleteAuthorization_ExchangeFailureConsumesState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mocks := newTestService(ctrl)

	mocks.states.EXPECT().Verify("state-token").Return("tenant-1", true)
	mocks.crmClient.EXPECT().ExchangeCode(gomock.Any(), "auth-code").
		Return(nil, errors.New("upstream unavailable"))

	if _, err := service.CompleteAuthorization(context.Background(), "state-token", "auth-code"); !errors.Is(err, ErrCodeExchangeFailed) {
		t.Errorf("expected ErrCodeExchangeFailed, got %v", err)
	}

	// the state was consumed, so retrying with the same token is invalid
	mocks.states.EXPECT().Verify("state-token").Return("", false)

	if _, err := service.CompleteAuthorization(context.Background(), "state-token", "auth-code"); !errors.Is(err, ErrInvalidOrExpiredState) {
		t.Errorf("expected ErrInvalidOrExpiredState on replay, got %v", err)
	}
}

func TestService_CompleteAuthorization_TxFailureSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mocks := newTestService(ctrl)

	txErr := errors.New("tx aborted")

	mocks.states.EXPECT().Verify("state-token").Return("tenant-1", true)
	mocks.crmClient.EXPECT().ExchangeCode(gomock.Any(), "auth-code").
		Return(&crm.TokenResult{AccessToken: "at", RefreshToken: "rt", LocationID: "loc-1"}, nil)
	mocks.vault.EXPECT().Encrypt(gomock.Any()).Return([]byte("enc"), nil).Times(2)
	mocks.dbClient.EXPECT().WithTx(gomock.Any(), gomock.Any()).Return(txErr)

	if _, err := service.CompleteAuthorization(context.Background(), "state-token", "auth-code"); !errors.Is(err, txErr) {
		t.Errorf("expected transaction error to surface, got %v", err)
	}
}
