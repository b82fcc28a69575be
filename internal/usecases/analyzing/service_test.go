package analyzing

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/creator-leaderboard-api/infrastructure/integrator/vendora/mocks"
	"github.com/vfg2006/creator-leaderboard-api/internal/config"
	"github.com/vfg2006/creator-leaderboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T, ref time.Time) (*Service, *mocks.MockVendoraIntegrator) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockVendora := mocks.NewMockVendoraIntegrator(ctrl)

	service := &Service{
		cfg:            &config.Config{},
		vendoraService: mockVendora,
		normalizer:     &Normalizer{now: func() time.Time { return ref }},
		now:            func() time.Time { return ref },
	}

	return service, mockVendora
}

func TestService_Leaderboard_Spenders(t *testing.T) {
	ref := time.Date(2024, 3, 15, 14, 30, 0, 0, time.Local)
	service, mockVendora := newTestService(t, ref)

	recent := time.Date(2024, 3, 15, 9, 0, 0, 0, time.Local).Format(time.RFC3339)

	mockVendora.EXPECT().
		ListPayments("biz_1").
		Return([]domain.RawRecord{
			{"user_id": "A", "username": "alice", "final_amount": 100.0, "created_at": recent},
			{"user_id": "B", "username": "bob", "final_amount": 50.0, "created_at": recent},
			{"user_id": "A", "username": "alice", "final_amount": 25.0, "created_at": recent},
			// Sem identidade: descartado em silêncio, o lote segue
			{"final_amount": 999.0, "created_at": recent},
		}, nil)

	response, err := service.Leaderboard("biz_1", domain.TabSpenders, domain.RangeToday, 25)

	require.NoError(t, err)
	require.NotNil(t, response)
	assert.Equal(t, domain.TabSpenders, response.Tab)
	assert.Equal(t, domain.RangeToday, response.Range)
	assert.Equal(t, ref, response.GeneratedAt)

	require.Len(t, response.Entries, 2)
	assert.Equal(t, "A", response.Entries[0].ActorID)
	assert.Equal(t, 1, response.Entries[0].Rank)
	assert.True(t, response.Entries[0].MetricTotal.Equal(decimal.NewFromInt(125)))
	assert.Equal(t, 2, response.Entries[0].SecondaryCount)
	assert.Equal(t, "B", response.Entries[1].ActorID)
	assert.Equal(t, 2, response.Entries[1].Rank)
}

func TestService_Leaderboard_Affiliates(t *testing.T) {
	ref := time.Date(2024, 3, 15, 14, 30, 0, 0, time.Local)
	service, mockVendora := newTestService(t, ref)

	recent := time.Date(2024, 3, 14, 9, 0, 0, 0, time.Local).Format(time.RFC3339)

	mockVendora.EXPECT().
		ListPayments("biz_1").
		Return([]domain.RawRecord{
			{"user_id": "u_1", "final_amount": 100.0, "created_at": recent, "affiliate": map[string]any{"id": "aff_1", "username": "carol"}},
			{"user_id": "u_2", "final_amount": 40.0, "created_at": recent},
			{"user_id": "u_3", "final_amount": 60.0, "created_at": recent, "affiliate": map[string]any{"id": "aff_1", "username": "carol"}},
		}, nil)

	response, err := service.Leaderboard("biz_1", domain.TabAffiliates, domain.Range7d, 25)

	require.NoError(t, err)
	require.Len(t, response.Entries, 1)
	assert.Equal(t, "aff_1", response.Entries[0].ActorID)
	assert.Equal(t, "carol", response.Entries[0].Name)
	assert.True(t, response.Entries[0].MetricTotal.Equal(decimal.NewFromInt(160)))
}

func TestService_Leaderboard_Active(t *testing.T) {
	ref := time.Date(2024, 3, 15, 14, 30, 0, 0, time.Local)
	service, mockVendora := newTestService(t, ref)

	recent := time.Date(2024, 3, 15, 8, 0, 0, 0, time.Local).Format(time.RFC3339)

	mockVendora.EXPECT().
		ListMemberships("biz_1").
		Return([]domain.RawRecord{
			{"user_id": "A", "username": "alice", "status": "active", "activity_count": 10, "last_activity_at": recent},
			// Inativo: não contribui, mesmo com contagem alta
			{"user_id": "B", "username": "bob", "status": "cancelled", "activity_count": 50, "last_activity_at": recent},
		}, nil)

	response, err := service.Leaderboard("biz_1", domain.TabActive, domain.RangeToday, 25)

	require.NoError(t, err)
	require.Len(t, response.Entries, 1)
	assert.Equal(t, "A", response.Entries[0].ActorID)
	assert.Equal(t, 10, response.Entries[0].SecondaryCount)
	assert.Nil(t, response.Entries[0].MetricTotal)
}

func TestService_Leaderboard_FalhaDeBuscaDegradaParaVazio(t *testing.T) {
	ref := time.Date(2024, 3, 15, 14, 30, 0, 0, time.Local)
	service, mockVendora := newTestService(t, ref)

	mockVendora.EXPECT().
		ListPayments("biz_1").
		Return(nil, errors.New("timeout na API da Vendora"))

	response, err := service.Leaderboard("biz_1", domain.TabSpenders, domain.RangeAll, 25)

	// Falha de busca nunca fabrica dados: o board sai vazio, sem erro
	require.NoError(t, err)
	require.NotNil(t, response)
	assert.Empty(t, response.Entries)
}

func TestService_Leaderboard_EmpresaObrigatoria(t *testing.T) {
	ref := time.Date(2024, 3, 15, 14, 30, 0, 0, time.Local)
	service, _ := newTestService(t, ref)

	response, err := service.Leaderboard("", domain.TabSpenders, domain.RangeAll, 25)

	assert.Error(t, err)
	assert.Nil(t, response)
}

func TestService_Leaderboard_AbaDesconhecida(t *testing.T) {
	ref := time.Date(2024, 3, 15, 14, 30, 0, 0, time.Local)
	service, _ := newTestService(t, ref)

	response, err := service.Leaderboard("biz_1", domain.Tab("unknown"), domain.RangeAll, 25)

	assert.Error(t, err)
	assert.Nil(t, response)
}
