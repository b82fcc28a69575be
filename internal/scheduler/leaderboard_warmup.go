// Package scheduler contém o agendador de pré-cálculo dos leaderboards
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-leaderboard-api/infrastructure/repository"
	"github.com/vfg2006/creator-leaderboard-api/internal/config"
	"github.com/vfg2006/creator-leaderboard-api/internal/domain"
	"github.com/vfg2006/creator-leaderboard-api/internal/usecases/analyzing"
)

// warmupLimit é o corte padrão dos boards exibidos no dashboard; o
// warmup só pré-calcula o que a tela pede por padrão
const warmupLimit = 25

type LeaderboardWarmupConfig struct {
	CronSchedule string
	Enabled      bool
	TTL          time.Duration
}

type snapshotKey struct {
	CompanyID string
	Tab       domain.Tab
	Range     domain.Range
}

type snapshot struct {
	response *domain.LeaderboardResponse
	storedAt time.Time
}

// LeaderboardWarmupService pré-calcula os leaderboards das empresas
// registradas e guarda os resultados em memória com TTL. Os snapshots
// são um atalho de leitura: nada agregado vai para o banco, e snapshot
// vencido significa recalcular na requisição.
type LeaderboardWarmupService struct {
	scheduler   *gocron.Scheduler
	analyzer    analyzing.Analyzer
	companyRepo repository.CompanyRepository
	config      LeaderboardWarmupConfig

	snapshots      map[snapshotKey]snapshot
	snapshotsMutex sync.RWMutex

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time

	now func() time.Time
}

func NewLeaderboardWarmupService(
	analyzer analyzing.Analyzer,
	companyRepo repository.CompanyRepository,
	cfg *config.Config,
) *LeaderboardWarmupService {
	warmupConfig := LeaderboardWarmupConfig{
		CronSchedule: cfg.Warmup.CronSchedule,
		Enabled:      cfg.Warmup.Enabled,
		TTL:          time.Duration(cfg.Warmup.TTLMinutes) * time.Minute,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": warmupConfig.CronSchedule,
		"ttl":           warmupConfig.TTL.String(),
	}).Info("Configuração do agendador de warmup de leaderboards carregada")

	return &LeaderboardWarmupService{
		scheduler:   scheduler,
		analyzer:    analyzer,
		companyRepo: companyRepo,
		config:      warmupConfig,
		snapshots:   make(map[snapshotKey]snapshot),
		now:         time.Now,
	}
}

func (s *LeaderboardWarmupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de warmup de leaderboards desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de warmup de leaderboards")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.WarmupAll(); err != nil {
			logrus.WithError(err).Error("Erro no warmup de leaderboards")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar warmup de leaderboards: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de warmup de leaderboards")
		s.scheduler.Stop()
	}()

	return nil
}

// WarmupAll recalcula os leaderboards de todas as empresas registradas,
// para todas as combinações de aba e intervalo exibidas no dashboard
func (s *LeaderboardWarmupService) WarmupAll() error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Warmup de leaderboards já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = s.now()
	}()

	logrus.Info("Iniciando warmup de leaderboards")

	companies, err := s.companyRepo.ListCompanies()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar empresas registradas para o warmup")
		return err
	}

	if len(companies) == 0 {
		logrus.Info("Nenhuma empresa registrada para o warmup")
		return nil
	}

	tabs := []domain.Tab{domain.TabSpenders, domain.TabAffiliates, domain.TabActive}
	ranges := []domain.Range{domain.RangeToday, domain.Range7d, domain.Range30d, domain.RangeAll}

	computed := 0
	failed := 0

	for _, company := range companies {
		for _, tab := range tabs {
			for _, rng := range ranges {
				response, err := s.analyzer.Leaderboard(company.ExternalID, tab, rng, warmupLimit)
				if err != nil {
					logrus.WithFields(logrus.Fields{
						"company_id": company.ExternalID,
						"tab":        string(tab),
						"range":      string(rng),
						"error":      err.Error(),
					}).Warn("Warmup: falha ao calcular leaderboard")
					failed++
					continue
				}

				s.store(company.ExternalID, tab, rng, response)
				computed++
			}
		}
	}

	logrus.WithFields(logrus.Fields{
		"companies": len(companies),
		"computed":  computed,
		"failed":    failed,
	}).Info("Warmup de leaderboards concluído")

	return nil
}

// Snapshot devolve o leaderboard pré-calculado, se existir e ainda
// estiver dentro do TTL. O limite pedido precisa caber no snapshot.
func (s *LeaderboardWarmupService) Snapshot(companyID string, tab domain.Tab, rng domain.Range, limit int) (*domain.LeaderboardResponse, bool) {
	if limit <= 0 || limit > warmupLimit {
		return nil, false
	}

	s.snapshotsMutex.RLock()
	snap, ok := s.snapshots[snapshotKey{CompanyID: companyID, Tab: tab, Range: rng}]
	s.snapshotsMutex.RUnlock()

	if !ok {
		return nil, false
	}

	if s.now().Sub(snap.storedAt) > s.config.TTL {
		return nil, false
	}

	response := *snap.response
	if limit < len(response.Entries) {
		response.Entries = response.Entries[:limit]
	}

	return &response, true
}

func (s *LeaderboardWarmupService) store(companyID string, tab domain.Tab, rng domain.Range, response *domain.LeaderboardResponse) {
	s.snapshotsMutex.Lock()
	defer s.snapshotsMutex.Unlock()

	s.snapshots[snapshotKey{CompanyID: companyID, Tab: tab, Range: rng}] = snapshot{
		response: response,
		storedAt: s.now(),
	}
}

// TriggerManualSync dispara o warmup fora do horário agendado
func (s *LeaderboardWarmupService) TriggerManualSync() {
	go func() {
		if err := s.WarmupAll(); err != nil {
			logrus.WithError(err).Error("Erro no warmup manual de leaderboards")
		}
	}()
}

// GetStatus retorna o estado atual do agendador para o endpoint de cron
func (s *LeaderboardWarmupService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.snapshotsMutex.RLock()
	snapshotCount := len(s.snapshots)
	s.snapshotsMutex.RUnlock()

	status := map[string]any{
		"enabled":        s.config.Enabled,
		"cron_schedule":  s.config.CronSchedule,
		"ttl":            s.config.TTL.String(),
		"running":        s.syncRunning,
		"snapshot_count": snapshotCount,
	}

	if !s.lastSyncStartedAt.IsZero() {
		status["last_sync_started_at"] = s.lastSyncStartedAt.Format(time.RFC3339)
	}
	if !s.lastSyncCompletedAt.IsZero() {
		status["last_sync_completed_at"] = s.lastSyncCompletedAt.Format(time.RFC3339)
	}

	return status
}
