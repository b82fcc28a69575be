package analyzing

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/creator-leaderboard-api/internal/domain"
)

// lookupFirst percorre os caminhos candidatos em ordem e retorna o primeiro
// valor presente e não nulo. Caminhos com "." navegam mapas aninhados
// (ex: "user.id" resolve record["user"]["id"]).
func lookupFirst(record domain.RawRecord, paths []string) (any, bool) {
	for _, path := range paths {
		if value, ok := lookupPath(record, path); ok {
			return value, true
		}
	}
	return nil, false
}

func lookupPath(record domain.RawRecord, path string) (any, bool) {
	var current any = map[string]any(record)

	for _, key := range strings.Split(path, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}

		current, ok = node[key]
		if !ok || current == nil {
			return nil, false
		}
	}

	return current, true
}

// lookupString resolve o primeiro valor textual não vazio dos caminhos.
// Números são aceitos e convertidos, já que a API alterna ids numéricos
// e textuais entre versões.
func lookupString(record domain.RawRecord, paths []string) string {
	for _, path := range paths {
		value, ok := lookupPath(record, path)
		if !ok {
			continue
		}

		switch v := value.(type) {
		case string:
			if trimmed := strings.TrimSpace(v); trimmed != "" {
				return trimmed
			}
		case json.Number:
			return v.String()
		case float64:
			// JSON decodifica números como float64; ids inteiros não podem
			// ganhar casa decimal na conversão
			if v == float64(int64(v)) {
				return strconv.FormatInt(int64(v), 10)
			}
			return strconv.FormatFloat(v, 'f', -1, 64)
		case int:
			return strconv.Itoa(v)
		case int64:
			return strconv.FormatInt(v, 10)
		}
	}

	return ""
}

// lookupInt resolve o primeiro valor inteiro dos caminhos; ausência ou
// falha de parse degradam para zero
func lookupInt(record domain.RawRecord, paths []string) int {
	value, ok := lookupFirst(record, paths)
	if !ok {
		return 0
	}

	switch v := value.(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}

	return 0
}

// toDecimal converte um valor bruto em decimal com parse independente de
// locale. Retorna ok = false quando o valor não é numérico.
func toDecimal(value any) (decimal.Decimal, bool) {
	switch v := value.(type) {
	case float64:
		return decimal.NewFromFloat(v), true
	case int:
		return decimal.NewFromInt(int64(v)), true
	case int64:
		return decimal.NewFromInt(v), true
	case json.Number:
		if d, err := decimal.NewFromString(v.String()); err == nil {
			return d, true
		}
	case string:
		if d, err := decimal.NewFromString(strings.TrimSpace(v)); err == nil {
			return d, true
		}
	}

	return decimal.Zero, false
}

// lookupTime resolve o primeiro timestamp válido dos caminhos candidatos.
// Aceita RFC3339, data simples e epoch em segundos ou milissegundos.
func lookupTime(record domain.RawRecord, paths []string) (time.Time, bool) {
	for _, path := range paths {
		value, ok := lookupPath(record, path)
		if !ok {
			continue
		}

		if ts, ok := toTime(value); ok {
			return ts, true
		}
	}

	return time.Time{}, false
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	time.DateOnly,
}

func toTime(value any) (time.Time, bool) {
	switch v := value.(type) {
	case string:
		for _, layout := range timeLayouts {
			if ts, err := time.ParseInLocation(layout, strings.TrimSpace(v), time.Local); err == nil {
				return ts, true
			}
		}
	case float64:
		return epochToTime(int64(v))
	case int64:
		return epochToTime(v)
	case int:
		return epochToTime(int64(v))
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return epochToTime(n)
		}
	}

	return time.Time{}, false
}

// epochToTime interpreta epochs em segundos ou milissegundos.
// Valores acima de 1e12 só fazem sentido como milissegundos.
func epochToTime(epoch int64) (time.Time, bool) {
	if epoch <= 0 {
		return time.Time{}, false
	}

	if epoch > 1_000_000_000_000 {
		return time.UnixMilli(epoch), true
	}

	return time.Unix(epoch, 0), true
}

// describeRecord resume um registro para logs de descarte sem vazar o
// payload inteiro
func describeRecord(record domain.RawRecord) string {
	if record == nil {
		return "<nil>"
	}
	if id := lookupString(record, []string{"id"}); id != "" {
		return fmt.Sprintf("id=%s", id)
	}
	return fmt.Sprintf("%d campos", len(record))
}
