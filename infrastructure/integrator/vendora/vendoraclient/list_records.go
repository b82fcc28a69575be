package vendoraclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-leaderboard-api/internal/domain"
)

// listResponse é o envelope de paginação padrão da API da Vendora.
// Os registros em Data não têm esquema garantido e são repassados
// brutos para a camada de normalização.
type listResponse struct {
	Data       []domain.RawRecord `json:"data"`
	Pagination struct {
		CurrentPage int  `json:"current_page"`
		NextPage    *int `json:"next_page"`
		TotalCount  int  `json:"total_count"`
	} `json:"pagination"`
}

// listRecords consome um recurso paginado da Vendora até esgotar as páginas
// ou atingir o limite duro configurado em VENDORA_MAX_PAGES
func (c *VendoraClient) listRecords(resource, companyID string) ([]domain.RawRecord, error) {
	records := make([]domain.RawRecord, 0)

	page := 1
	for {
		resp, err := c.fetchPage(resource, companyID, page)
		if err != nil {
			return nil, errors.Wrapf(err, "falha ao buscar a página %d de %s", page, resource)
		}

		records = append(records, resp.Data...)

		if resp.Pagination.NextPage == nil {
			break
		}

		if page >= c.config.Vendora.MaxPages {
			logrus.WithFields(logrus.Fields{
				"resource":   resource,
				"company_id": companyID,
				"max_pages":  c.config.Vendora.MaxPages,
				"collected":  len(records),
			}).Warn("vendora: limite de paginação atingido, resultado truncado")
			break
		}

		page = *resp.Pagination.NextPage
	}

	return records, nil
}

func (c *VendoraClient) fetchPage(resource, companyID string, page int) (*listResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	// Construir a URL da requisição.
	endpoint, err := url.Parse(c.config.Vendora.URL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, resource)

	// Adicionar parâmetros de consulta.
	query := endpoint.Query()
	query.Set("company_id", companyID)
	query.Set("page", strconv.Itoa(page))
	query.Set("per", strconv.Itoa(c.config.Vendora.PageSize))
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.Vendora.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	var response listResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return &response, nil
}
