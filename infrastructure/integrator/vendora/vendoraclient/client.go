package vendoraclient

import (
	"net/http"
	"time"

	"github.com/vfg2006/creator-leaderboard-api/internal/config"
	"github.com/vfg2006/creator-leaderboard-api/internal/domain"
)

type Client interface {
	ListPayments(companyID string) ([]domain.RawRecord, error)
	ListMemberships(companyID string) ([]domain.RawRecord, error)
}

type VendoraClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &VendoraClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}

// ListPayments busca todos os pagamentos de uma empresa, paginando até o fim
func (c *VendoraClient) ListPayments(companyID string) ([]domain.RawRecord, error) {
	return c.listRecords("/payments", companyID)
}

// ListMemberships busca todas as associações de uma empresa, paginando até o fim
func (c *VendoraClient) ListMemberships(companyID string) ([]domain.RawRecord, error) {
	return c.listRecords("/memberships", companyID)
}
