// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/chapter-service/internal/monitoring"
	"github.com/canonical/chapter-service/internal/storage"
	"github.com/canonical/chapter-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_webhooks.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func strPtr(s string) *string {
	return &s
}

func TestService_HandleRegistration(t *testing.T) {
	tenant := &types.Tenant{ID: "tenant-123", Subdomain: "bkk"}
	existing := &types.Participant{ID: "participant-1", TenantID: tenant.ID, LineUserID: strPtr("U123")}

	testCases := []struct {
		name            string
		reg             Registration
		setupMocks      func(*MockStorageInterface, *MockLoggerInterface)
		expectedCreated bool
		expectedErr     error
		anyErr          bool
	}{
		{
			name: "new prospect",
			reg:  Registration{Subdomain: "bkk", FullName: "Somchai", LineUserID: strPtr("U999")},
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any())
				mockStorage.EXPECT().GetTenantBySubdomain(gomock.Any(), "bkk").Return(tenant, nil)
				mockStorage.EXPECT().GetParticipantByLineUserID(gomock.Any(), tenant.ID, "U999").Return(nil, storage.ErrNotFound)
				mockStorage.EXPECT().CreateParticipant(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *types.Participant) (*types.Participant, error) {
						if p.Status != types.StatusProspect || p.TenantID != tenant.ID {
							return nil, errors.New("participant should be a prospect of the tenant")
						}
						p.ID = "participant-2"
						return p, nil
					})
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expectedCreated: true,
		},
		{
			name: "known line user",
			reg:  Registration{Subdomain: "bkk", FullName: "Somchai", LineUserID: strPtr("U123")},
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any())
				mockStorage.EXPECT().GetTenantBySubdomain(gomock.Any(), "bkk").Return(tenant, nil)
				mockStorage.EXPECT().GetParticipantByLineUserID(gomock.Any(), tenant.ID, "U123").Return(existing, nil)
			},
		},
		{
			name: "concurrent signup wins the insert",
			reg:  Registration{Subdomain: "bkk", FullName: "Somchai", LineUserID: strPtr("U123")},
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any())
				mockStorage.EXPECT().GetTenantBySubdomain(gomock.Any(), "bkk").Return(tenant, nil)
				gomock.InOrder(
					mockStorage.EXPECT().GetParticipantByLineUserID(gomock.Any(), tenant.ID, "U123").Return(nil, storage.ErrNotFound),
					mockStorage.EXPECT().CreateParticipant(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey),
					mockStorage.EXPECT().GetParticipantByLineUserID(gomock.Any(), tenant.ID, "U123").Return(existing, nil),
				)
			},
		},
		{
			name: "without line user",
			reg:  Registration{Subdomain: "bkk", FullName: "Somchai"},
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any())
				mockStorage.EXPECT().GetTenantBySubdomain(gomock.Any(), "bkk").Return(tenant, nil)
				mockStorage.EXPECT().CreateParticipant(gomock.Any(), gomock.Any()).Return(&types.Participant{ID: "participant-3"}, nil)
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expectedCreated: true,
		},
		{
			name:        "invalid subdomain",
			reg:         Registration{Subdomain: "My_Tenant!", FullName: "Somchai"},
			setupMocks:  func(*MockStorageInterface, *MockLoggerInterface) {},
			expectedErr: types.ErrValidation,
		},
		{
			name: "unknown tenant",
			reg:  Registration{Subdomain: "nowhere", FullName: "Somchai"},
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any())
				mockStorage.EXPECT().GetTenantBySubdomain(gomock.Any(), "nowhere").Return(nil, storage.ErrNotFound)
			},
			expectedErr: types.ErrNotFound,
		},
		{
			name: "storage failure",
			reg:  Registration{Subdomain: "bkk", FullName: "Somchai"},
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any())
				mockStorage.EXPECT().GetTenantBySubdomain(gomock.Any(), "bkk").Return(tenant, nil)
				mockStorage.EXPECT().CreateParticipant(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
			},
			anyErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "webhooks.Service.HandleRegistration").
				DoAndReturn(func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
					return ctx, trace.SpanFromContext(ctx)
				})

			tc.setupMocks(mockStorage, mockLogger)

			s := NewService(mockStorage, mockTracer, monitoring.NewNoopMonitor("test"), mockLogger)
			p, created, err := s.HandleRegistration(context.Background(), tc.reg)

			switch {
			case tc.expectedErr != nil:
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected %v, got %v", tc.expectedErr, err)
				}
			case tc.anyErr:
				if err == nil {
					t.Fatal("expected an error")
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if p == nil {
					t.Fatal("expected a participant")
				}
				if created != tc.expectedCreated {
					t.Errorf("expected created=%v, got %v", tc.expectedCreated, created)
				}
			}
		})
	}
}
