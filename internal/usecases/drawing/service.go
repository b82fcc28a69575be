// Package drawing implementa o sorteio de vencedor sobre o pool limitado
// de atores em destaque nos leaderboards.
package drawing

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-leaderboard-api/infrastructure/repository"
	"github.com/vfg2006/creator-leaderboard-api/internal/config"
	"github.com/vfg2006/creator-leaderboard-api/internal/domain"
	"github.com/vfg2006/creator-leaderboard-api/internal/usecases/analyzing"
	"github.com/vfg2006/creator-leaderboard-api/pkg/utils"
)

// ErrEmptyPool indica que nenhum candidato sobrou após a união dos
// leaderboards; sem candidatos não há sorteio possível
var ErrEmptyPool = errors.New("pool de candidatos vazio")

type Drawer interface {
	// DrawWinner sorteia um vencedor uniforme sobre o pool e registra o
	// sorteio no histórico da empresa
	DrawWinner(session *domain.Session, rng domain.Range) (*domain.DrawResponse, error)

	// ListDraws retorna o histórico de sorteios da empresa
	ListDraws(companyID string) ([]*domain.Draw, error)
}

type Service struct {
	cfg      *config.Config
	analyzer analyzing.Analyzer
	drawRepo repository.DrawRepository
	random   RandomSource
	now      func() time.Time
}

func NewService(
	cfg *config.Config,
	analyzer analyzing.Analyzer,
	drawRepo repository.DrawRepository,
	random RandomSource,
) Drawer {
	return &Service{
		cfg:      cfg,
		analyzer: analyzer,
		drawRepo: drawRepo,
		random:   random,
		now:      time.Now,
	}
}

func (s *Service) DrawWinner(session *domain.Session, rng domain.Range) (*domain.DrawResponse, error) {
	if session == nil || session.CompanyID == "" {
		return nil, fmt.Errorf("sessão sem empresa resolvível: sorteio não executado")
	}

	poolCap := s.cfg.Winner.PoolCap

	// O pool é a união dos leaderboards de maiores gastadores e membros
	// mais ativos, já limitados ao teto do pool
	spenders, err := s.analyzer.Leaderboard(session.CompanyID, domain.TabSpenders, rng, poolCap)
	if err != nil {
		return nil, err
	}

	active, err := s.analyzer.Leaderboard(session.CompanyID, domain.TabActive, rng, poolCap)
	if err != nil {
		return nil, err
	}

	pool := BuildPool(poolCap, spenders.Entries, active.Entries)
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}

	winner := pool[s.pickIndex(len(pool))]

	drawID, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	draw := &domain.Draw{
		ID:            drawID,
		CompanyID:     session.CompanyID,
		WinnerActorID: winner.ActorID,
		WinnerName:    winner.Name,
		PoolSize:      len(pool),
		Range:         rng,
		CreatedAt:     s.now(),
	}

	if err := s.drawRepo.SaveDraw(draw); err != nil {
		logrus.WithFields(logrus.Fields{
			"company_id": session.CompanyID,
			"draw_id":    draw.ID,
			"error":      err.Error(),
		}).Error("sorteio: falha ao registrar o sorteio no histórico")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"company_id": session.CompanyID,
		"draw_id":    draw.ID,
		"pool_size":  draw.PoolSize,
	}).Info("sorteio: vencedor registrado")

	return &domain.DrawResponse{
		Draw:   *draw,
		Winner: winner,
	}, nil
}

func (s *Service) ListDraws(companyID string) ([]*domain.Draw, error) {
	if companyID == "" {
		return nil, fmt.Errorf("company_id é obrigatório para listar sorteios")
	}

	return s.drawRepo.ListByCompanyID(companyID)
}

// pickIndex converte o próximo número da fonte de aleatoriedade em um
// índice uniforme do pool. Fontes que devolvem exatamente 1.0 não podem
// estourar o índice.
func (s *Service) pickIndex(size int) int {
	index := int(s.random.Float64() * float64(size))
	if index >= size {
		index = size - 1
	}
	return index
}
