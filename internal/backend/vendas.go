package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/paroquia-digital/bingo-storefront/internal/domain"
)

type CriarVendaRequest struct {
	EventoID        string                 `json:"eventoId"`
	Nome            string                 `json:"nome"`
	Email           string                 `json:"email,omitempty"`
	Telefone        string                 `json:"telefone,omitempty"`
	CPF             string                 `json:"cpf"`
	MetodoPagamento domain.MetodoPagamento `json:"metodoPagamento"`
	Quantidade      int                    `json:"quantidade"`
	CartelaIDs      []string               `json:"cartelaIds,omitempty"`
}

type CriarVendaResponse struct {
	VendaID      string          `json:"vendaId"`
	PaymentURL   string          `json:"paymentUrl,omitempty"`
	PixQrCode    string          `json:"pixQrCode,omitempty"`
	PixCopyPaste string          `json:"pixCopyPaste,omitempty"`
	ValorTotal   domain.Centavos `json:"valorTotal"`
	ExpiresAt    time.Time       `json:"expiresAt"`
}

// pendingSaleData is how the API reports an existing unexpired venda in
// the error envelope of a create attempt.
type pendingSaleData struct {
	VendaID   string    `json:"vendaId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (c *Client) CriarVenda(ctx context.Context, req CriarVendaRequest) (CriarVendaResponse, error) {
	env, code, err := c.do(ctx, http.MethodPost, "/vendas/criar", nil, req)
	if err != nil {
		return CriarVendaResponse{}, err
	}

	if code >= 400 || env.Status == "error" {
		if len(env.Data) > 0 {
			var pending pendingSaleData
			if jsonErr := json.Unmarshal(env.Data, &pending); jsonErr == nil && pending.VendaID != "" {
				return CriarVendaResponse{}, &PendingSaleError{
					VendaID:   pending.VendaID,
					ExpiresAt: pending.ExpiresAt,
					Message:   env.Message,
				}
			}
		}
		return CriarVendaResponse{}, &APIError{StatusCode: code, Message: env.Message}
	}

	var created CriarVendaResponse
	if err := unwrap(env, code, &created); err != nil {
		return CriarVendaResponse{}, fmt.Errorf("CriarVenda -> %w", err)
	}

	return created, nil
}

func (c *Client) GetVendaByID(ctx context.Context, vendaID string) (domain.Venda, error) {
	env, code, err := c.do(ctx, http.MethodGet, "/vendas/"+url.PathEscape(vendaID), nil, nil)
	if err != nil {
		return domain.Venda{}, err
	}
	if code == http.StatusNotFound {
		return domain.Venda{}, ErrVendaNotFound
	}

	var venda domain.Venda
	if err := unwrap(env, code, &venda); err != nil {
		return domain.Venda{}, fmt.Errorf("GetVendaByID -> %w", err)
	}

	return venda, nil
}

func (c *Client) GetVendaStatus(ctx context.Context, vendaID string) (domain.StatusPagamento, error) {
	env, code, err := c.do(ctx, http.MethodGet, "/vendas/"+url.PathEscape(vendaID)+"/status", nil, nil)
	if err != nil {
		return domain.StatusPagamento{}, err
	}
	if code == http.StatusNotFound {
		return domain.StatusPagamento{}, ErrVendaNotFound
	}

	var status domain.StatusPagamento
	if err := unwrap(env, code, &status); err != nil {
		return domain.StatusPagamento{}, fmt.Errorf("GetVendaStatus -> %w", err)
	}

	return status, nil
}

func (c *Client) ReenviarEmail(ctx context.Context, vendaID string) error {
	env, code, err := c.do(ctx, http.MethodPost, "/vendas/"+url.PathEscape(vendaID)+"/reenviar-email", nil, nil)
	if err != nil {
		return err
	}
	if code == http.StatusNotFound {
		return ErrVendaNotFound
	}
	if err := unwrap(env, code, nil); err != nil {
		return fmt.Errorf("ReenviarEmail -> %w", err)
	}

	return nil
}

// DownloadURL points at the bundle PDF for a venda. The link is handed
// to the browser; it is never fetched through this client.
func (c *Client) DownloadURL(vendaID string) string {
	return c.baseURL + "/vendas/" + url.PathEscape(vendaID) + "/cartelas/download"
}

func (c *Client) CartelaDownloadURL(vendaID, cartelaID string) string {
	return c.baseURL + "/vendas/" + url.PathEscape(vendaID) + "/cartelas/" + url.PathEscape(cartelaID) + "/download"
}
