package domain

import (
	"encoding/json"
	"strings"
	"time"
)

type StatusVenda string

const (
	VendaPendente    StatusVenda = "pendente"
	VendaProcessando StatusVenda = "processando"
	VendaPaga        StatusVenda = "pago"
	VendaCancelada   StatusVenda = "cancelado"
	VendaExpirada    StatusVenda = "expirado"
	VendaErro        StatusVenda = "erro"
)

// ParseStatusVenda normalizes the status as reported by the sales API.
// Older API revisions report statuses in uppercase.
func ParseStatusVenda(s string) StatusVenda {
	return StatusVenda(strings.ToLower(strings.TrimSpace(s)))
}

func (s *StatusVenda) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*s = ParseStatusVenda(raw)
	return nil
}

// Terminal reports whether no further status transition can happen.
// The storefront stops polling once a terminal status is observed.
func (s StatusVenda) Terminal() bool {
	switch s {
	case VendaPaga, VendaCancelada, VendaExpirada, VendaErro:
		return true
	}
	return false
}

type MetodoPagamento string

const (
	PagamentoPIX    MetodoPagamento = "PIX"
	PagamentoCartao MetodoPagamento = "CREDIT_CARD"
)

// Venda is a buyer's order for one or more cartelas. Its status is
// owned by the sales API; the storefront only observes it.
type Venda struct {
	ID              string          `json:"_id"`
	Comprador       Comprador       `json:"comprador"`
	Evento          Evento          `json:"evento"`
	Cartelas        []Cartela       `json:"cartelas"`
	Quantidade      int             `json:"quantidade"`
	ValorUnitario   Centavos        `json:"valorUnitario"`
	ValorTotal      Centavos        `json:"valorTotal"`
	Status          StatusVenda     `json:"status"`
	MetodoPagamento MetodoPagamento `json:"metodoPagamento,omitempty"`
	Gateway         string          `json:"gateway,omitempty"`
	GatewayID       string          `json:"gatewayId,omitempty"`
	PaymentURL      string          `json:"paymentUrl,omitempty"`
	PixQrCode       string          `json:"pixQrCode,omitempty"`
	PixCopyPaste    string          `json:"pixCopyPaste,omitempty"`
	EmailEnviado    bool            `json:"emailEnviado"`
	ExpiresAt       time.Time       `json:"expiresAt"`
	PaidAt          *time.Time      `json:"paidAt,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// Consistente checks the card-list/quantity invariant. A venda fetched
// before the API populates its cartelas has an empty list, which is
// fine; a populated list must match the recorded quantity.
func (v Venda) Consistente() bool {
	return len(v.Cartelas) == 0 || len(v.Cartelas) == v.Quantidade
}

// StatusPagamento is the polling subset of a venda.
type StatusPagamento struct {
	Status       StatusVenda `json:"status"`
	PaidAt       *time.Time  `json:"paidAt,omitempty"`
	ExpiresAt    time.Time   `json:"expiresAt"`
	EmailEnviado bool        `json:"emailEnviado"`
}
