package analyzing

import (
	"time"

	"github.com/vfg2006/creator-leaderboard-api/internal/domain"
)

// FilterByRange restringe os registros ao intervalo de datas, resolvendo a
// data de cada registro pelos mesmos caminhos de fallback da normalização.
// Um registro é retido sse sua data resolvida for >= corte. Registros sem
// data resolvível são tratados como mais antigos que qualquer corte e
// excluídos, exceto para RangeAll, que é identidade.
//
// A função é pura em relação ao horário de referência: filtrar duas vezes
// com o mesmo intervalo e a mesma referência produz o mesmo conjunto.
func FilterByRange(records []domain.RawRecord, rng domain.Range, datePaths []string, ref time.Time) []domain.RawRecord {
	cutoff, ok := rng.Cutoff(ref)
	if !ok {
		return records
	}

	filtered := make([]domain.RawRecord, 0, len(records))
	for _, record := range records {
		ts, ok := lookupTime(record, datePaths)
		if !ok {
			continue
		}

		if !ts.Before(cutoff) {
			filtered = append(filtered, record)
		}
	}

	return filtered
}
