package analyzing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/creator-leaderboard-api/internal/domain"
)

func TestFilterByRange(t *testing.T) {
	// Referência fixa: 15 de março de 2024, 14h30 local
	ref := time.Date(2024, 3, 15, 14, 30, 0, 0, time.Local)

	recordAt := func(ts string) domain.RawRecord {
		return domain.RawRecord{"user_id": "u_1", "created_at": ts}
	}

	tests := []struct {
		name    string
		records []domain.RawRecord
		rng     domain.Range
		want    int
	}{
		{
			name: "today retém o registro de hoje à meia-noite exata",
			records: []domain.RawRecord{
				recordAt(time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local).Format(time.RFC3339)),
			},
			rng:  domain.RangeToday,
			want: 1,
		},
		{
			name: "today exclui o registro de ontem às 23:59:59",
			records: []domain.RawRecord{
				recordAt(time.Date(2024, 3, 14, 23, 59, 59, 0, time.Local).Format(time.RFC3339)),
			},
			rng:  domain.RangeToday,
			want: 0,
		},
		{
			name: "7d retém registros da última semana e exclui os anteriores",
			records: []domain.RawRecord{
				recordAt(time.Date(2024, 3, 8, 0, 0, 0, 0, time.Local).Format(time.RFC3339)),
				recordAt(time.Date(2024, 3, 7, 23, 59, 59, 0, time.Local).Format(time.RFC3339)),
				recordAt(time.Date(2024, 3, 14, 10, 0, 0, 0, time.Local).Format(time.RFC3339)),
			},
			rng:  domain.Range7d,
			want: 2,
		},
		{
			name: "30d retém o registro no limite do corte",
			records: []domain.RawRecord{
				recordAt(time.Date(2024, 2, 14, 0, 0, 0, 0, time.Local).Format(time.RFC3339)),
			},
			rng:  domain.Range30d,
			want: 1,
		},
		{
			name: "all é identidade mesmo com datas irresolvíveis",
			records: []domain.RawRecord{
				recordAt("2024-03-01T00:00:00Z"),
				{"user_id": "u_2"},
				{"user_id": "u_3", "created_at": "não é data"},
			},
			rng:  domain.RangeAll,
			want: 3,
		},
		{
			name: "registro sem data resolvível é excluído em intervalos limitados",
			records: []domain.RawRecord{
				{"user_id": "u_2"},
				recordAt(time.Date(2024, 3, 15, 9, 0, 0, 0, time.Local).Format(time.RFC3339)),
			},
			rng:  domain.RangeToday,
			want: 1,
		},
		{
			name: "data cai para paid_at quando created_at falta",
			records: []domain.RawRecord{
				{"user_id": "u_1", "paid_at": time.Date(2024, 3, 15, 9, 0, 0, 0, time.Local).Format(time.RFC3339)},
			},
			rng:  domain.RangeToday,
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := FilterByRange(tt.records, tt.rng, PaymentDatePaths, ref)
			assert.Len(t, filtered, tt.want)
		})
	}
}

func TestFilterByRange_Pureza(t *testing.T) {
	// Filtrar duas vezes com a mesma referência produz o mesmo conjunto
	ref := time.Date(2024, 3, 15, 14, 30, 0, 0, time.Local)

	records := []domain.RawRecord{
		{"user_id": "u_1", "created_at": time.Date(2024, 3, 15, 9, 0, 0, 0, time.Local).Format(time.RFC3339)},
		{"user_id": "u_2", "created_at": time.Date(2024, 3, 10, 9, 0, 0, 0, time.Local).Format(time.RFC3339)},
	}

	first := FilterByRange(records, domain.RangeToday, PaymentDatePaths, ref)
	second := FilterByRange(first, domain.RangeToday, PaymentDatePaths, ref)

	assert.Equal(t, first, second)
}
