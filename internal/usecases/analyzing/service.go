package analyzing

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-leaderboard-api/infrastructure/integrator/vendora"
	"github.com/vfg2006/creator-leaderboard-api/internal/config"
	"github.com/vfg2006/creator-leaderboard-api/internal/domain"
)

type Service struct {
	cfg            *config.Config
	vendoraService vendora.VendoraIntegrator
	normalizer     *Normalizer

	// Relógio injetável: referência do filtro de intervalo nos testes
	now func() time.Time
}

func NewService(cfg *config.Config, vendoraService vendora.VendoraIntegrator) Analyzer {
	return &Service{
		cfg:            cfg,
		vendoraService: vendoraService,
		normalizer:     NewNormalizer(),
		now:            time.Now,
	}
}

// Leaderboard executa o pipeline completo para uma aba:
// busca → filtro de intervalo → normalização → agregação → ranqueamento.
// Cada consulta constrói suas próprias estruturas; nada é compartilhado
// entre requisições concorrentes.
func (s *Service) Leaderboard(companyID string, tab domain.Tab, rng domain.Range, limit int) (*domain.LeaderboardResponse, error) {
	if companyID == "" {
		return nil, fmt.Errorf("company_id é obrigatório para calcular o leaderboard")
	}

	payments, memberships := s.fetchCollections(companyID, tab)

	ref := s.now()

	var entries []domain.LeaderboardEntry

	switch tab {
	case domain.TabSpenders:
		normalized := s.normalizePayments(FilterByRange(payments, rng, PaymentDatePaths, ref))
		entries = RankByTotal(AggregateSpend(normalized), limit)

	case domain.TabAffiliates:
		normalized := s.normalizePayments(FilterByRange(payments, rng, PaymentDatePaths, ref))
		entries = RankByTotal(AggregateAffiliateEarnings(normalized), limit)

	case domain.TabActive:
		normalized := s.normalizeMemberships(FilterByRange(memberships, rng, MembershipDatePaths, ref))
		entries = RankByCount(AggregateActivity(normalized), limit)

	default:
		return nil, fmt.Errorf("aba de leaderboard desconhecida: %q", tab)
	}

	return &domain.LeaderboardResponse{
		Tab:         tab,
		Range:       rng,
		Entries:     entries,
		GeneratedAt: ref,
	}, nil
}

// fetchCollections busca as coleções necessárias em paralelo. Uma falha de
// busca degrada aquela coleção para vazia (nunca dados fabricados): os
// leaderboards das coleções que funcionaram continuam saindo.
func (s *Service) fetchCollections(companyID string, tab domain.Tab) (payments, memberships []domain.RawRecord) {
	needPayments := tab == domain.TabSpenders || tab == domain.TabAffiliates
	needMemberships := tab == domain.TabActive

	var (
		wg            sync.WaitGroup
		paymentErr    error
		membershipErr error
	)

	if needPayments {
		wg.Add(1)
		go func() {
			defer wg.Done()
			payments, paymentErr = s.vendoraService.ListPayments(companyID)
		}()
	}

	if needMemberships {
		wg.Add(1)
		go func() {
			defer wg.Done()
			memberships, membershipErr = s.vendoraService.ListMemberships(companyID)
		}()
	}

	wg.Wait()

	if paymentErr != nil {
		logrus.WithFields(logrus.Fields{
			"company_id": companyID,
			"error":      paymentErr.Error(),
		}).Error("analytics: falha ao buscar pagamentos, coleção degradada para vazia")
		payments = nil
	}

	if membershipErr != nil {
		logrus.WithFields(logrus.Fields{
			"company_id": companyID,
			"error":      membershipErr.Error(),
		}).Error("analytics: falha ao buscar associações, coleção degradada para vazia")
		memberships = nil
	}

	return payments, memberships
}

// normalizePayments normaliza um lote descartando registros sem identidade
// e malformados. Um registro ruim nunca aborta o lote.
func (s *Service) normalizePayments(records []domain.RawRecord) []*domain.NormalizedPayment {
	normalized := make([]*domain.NormalizedPayment, 0, len(records))
	dropped := 0

	for _, record := range records {
		payment, err := s.normalizer.NormalizePayment(record)
		if err != nil {
			dropped++
			if !errors.Is(err, ErrNoActorIdentity) {
				logrus.WithFields(logrus.Fields{
					"record": describeRecord(record),
					"error":  err.Error(),
				}).Warn("analytics: pagamento malformado descartado")
			}
			continue
		}
		normalized = append(normalized, payment)
	}

	if dropped > 0 {
		logrus.WithField("dropped", dropped).Debug("analytics: pagamentos descartados na normalização")
	}

	return normalized
}

func (s *Service) normalizeMemberships(records []domain.RawRecord) []*domain.NormalizedMembership {
	normalized := make([]*domain.NormalizedMembership, 0, len(records))
	dropped := 0

	for _, record := range records {
		membership, err := s.normalizer.NormalizeMembership(record)
		if err != nil {
			dropped++
			if !errors.Is(err, ErrNoActorIdentity) {
				logrus.WithFields(logrus.Fields{
					"record": describeRecord(record),
					"error":  err.Error(),
				}).Warn("analytics: associação malformada descartada")
			}
			continue
		}
		normalized = append(normalized, membership)
	}

	if dropped > 0 {
		logrus.WithField("dropped", dropped).Debug("analytics: associações descartadas na normalização")
	}

	return normalized
}
