package vendora

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-leaderboard-api/infrastructure/integrator/vendora/vendoraclient"
	"github.com/vfg2006/creator-leaderboard-api/internal/config"
	"github.com/vfg2006/creator-leaderboard-api/internal/domain"
)

// VendoraIntegrator é a fonte de dados de commerce consumida pelo pipeline
// de analytics. A atribuição de afiliados não tem recurso dedicado na API:
// ela é derivada inteiramente dos pagamentos.
type VendoraIntegrator interface {
	ListPayments(companyID string) ([]domain.RawRecord, error)
	ListMemberships(companyID string) ([]domain.RawRecord, error)
}

type VendoraService struct {
	cfg    *config.Config
	Client vendoraclient.Client
}

func New(cfg *config.Config, client vendoraclient.Client) VendoraIntegrator {
	return &VendoraService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *VendoraService) ListPayments(companyID string) ([]domain.RawRecord, error) {
	records, err := s.Client.ListPayments(companyID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"company_id": companyID,
			"error":      err.Error(),
		}).Error("vendora: falha ao listar pagamentos")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"company_id": companyID,
		"records":    len(records),
	}).Debug("vendora: pagamentos recebidos")

	return records, nil
}

func (s *VendoraService) ListMemberships(companyID string) ([]domain.RawRecord, error) {
	records, err := s.Client.ListMemberships(companyID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"company_id": companyID,
			"error":      err.Error(),
		}).Error("vendora: falha ao listar associações")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"company_id": companyID,
		"records":    len(records),
	}).Debug("vendora: associações recebidas")

	return records, nil
}
