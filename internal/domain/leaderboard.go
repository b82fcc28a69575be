package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Tab identifica qual leaderboard o cliente está consultando
type Tab string

const (
	TabSpenders   Tab = "spenders"
	TabAffiliates Tab = "affiliates"
	TabActive     Tab = "active"
)

// ParseTab valida a aba informada pelo cliente
func ParseTab(s string) (Tab, error) {
	switch Tab(s) {
	case TabSpenders, TabAffiliates, TabActive:
		return Tab(s), nil
	}
	return "", fmt.Errorf("aba de leaderboard inválida: %q", s)
}

// Range é o intervalo de datas aplicado antes da agregação
type Range string

const (
	RangeToday Range = "today"
	Range7d    Range = "7d"
	Range30d   Range = "30d"
	RangeAll   Range = "all"
)

// ParseRange valida o intervalo informado pelo cliente.
// Intervalo vazio assume "all".
func ParseRange(s string) (Range, error) {
	if s == "" {
		return RangeAll, nil
	}
	switch Range(s) {
	case RangeToday, Range7d, Range30d, RangeAll:
		return Range(s), nil
	}
	return "", fmt.Errorf("intervalo de datas inválido: %q", s)
}

// Cutoff calcula o corte inferior do intervalo a partir do horário de
// referência. O corte é sempre a meia-noite local do dia correspondente.
// Para RangeAll retorna ok = false (sem corte).
func (r Range) Cutoff(ref time.Time) (time.Time, bool) {
	midnight := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())

	switch r {
	case RangeToday:
		return midnight, true
	case Range7d:
		return midnight.AddDate(0, 0, -7), true
	case Range30d:
		return midnight.AddDate(0, 0, -30), true
	}

	return time.Time{}, false
}

// AggregatedActor é o total acumulado de um ator para um leaderboard.
// ActorID é a chave estável de agrupamento; DisplayName é o último nome
// visto durante o processamento (registros posteriores sobrescrevem).
type AggregatedActor struct {
	ActorID        string          `json:"actor_id"`
	DisplayName    string          `json:"display_name"`
	MetricTotal    decimal.Decimal `json:"metric_total"`
	SecondaryCount int             `json:"secondary_count"`
}

// LeaderboardEntry é a projeção ranqueada de um AggregatedActor.
// MetricTotal é omitido na aba de membros ativos, que não tem métrica
// monetária.
type LeaderboardEntry struct {
	Rank           int              `json:"rank"`
	ActorID        string           `json:"actor_id"`
	Name           string           `json:"name"`
	MetricTotal    *decimal.Decimal `json:"metric_total,omitempty"`
	SecondaryCount int              `json:"secondary_count"`
}

type LeaderboardResponse struct {
	Tab         Tab                `json:"tab"`
	Range       Range              `json:"range"`
	Entries     []LeaderboardEntry `json:"entries"`
	GeneratedAt time.Time          `json:"generated_at"`
}
