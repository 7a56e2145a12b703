package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/paroquia-digital/bingo-storefront/internal/backend"
	"github.com/paroquia-digital/bingo-storefront/internal/domain"
)

type VendasAPI interface {
	CriarVenda(ctx context.Context, req backend.CriarVendaRequest) (backend.CriarVendaResponse, error)
	GetVendaByID(ctx context.Context, vendaID string) (domain.Venda, error)
	GetVendaStatus(ctx context.Context, vendaID string) (domain.StatusPagamento, error)
	ReenviarEmail(ctx context.Context, vendaID string) error
	DownloadURL(vendaID string) string
	CartelaDownloadURL(vendaID, cartelaID string) string
}

type VendaService struct {
	api VendasAPI
}

func NewVendaService(api VendasAPI) *VendaService {
	return &VendaService{api: api}
}

// CriarVenda submits the sale. A *backend.PendingSaleError passes
// through untouched so the checkout handler can offer the
// continue-to-payment shortcut.
func (s *VendaService) CriarVenda(ctx context.Context, req backend.CriarVendaRequest) (backend.CriarVendaResponse, error) {
	created, err := s.api.CriarVenda(ctx, req)
	if err != nil {
		return backend.CriarVendaResponse{}, err
	}

	return created, nil
}

func (s *VendaService) GetVendaByID(ctx context.Context, vendaID string) (domain.Venda, error) {
	venda, err := s.api.GetVendaByID(ctx, vendaID)
	if err != nil {
		return domain.Venda{}, err
	}

	if !venda.Consistente() {
		// Server-side invariant; nothing to do client-side but flag it.
		zap.L().Warn("venda with card list diverging from quantity",
			zap.String("vendaId", venda.ID),
			zap.Int("cartelas", len(venda.Cartelas)),
			zap.Int("quantidade", venda.Quantidade))
	}

	return venda, nil
}

func (s *VendaService) GetVendaStatus(ctx context.Context, vendaID string) (domain.StatusPagamento, error) {
	status, err := s.api.GetVendaStatus(ctx, vendaID)
	if err != nil {
		return domain.StatusPagamento{}, fmt.Errorf("GetVendaStatus -> s.api.GetVendaStatus -> %w", err)
	}

	return status, nil
}

func (s *VendaService) ReenviarEmail(ctx context.Context, vendaID string) error {
	if err := s.api.ReenviarEmail(ctx, vendaID); err != nil {
		return err
	}

	return nil
}

func (s *VendaService) DownloadURL(vendaID string) string {
	return s.api.DownloadURL(vendaID)
}

func (s *VendaService) CartelaDownloadURL(vendaID, cartelaID string) string {
	return s.api.CartelaDownloadURL(vendaID, cartelaID)
}
