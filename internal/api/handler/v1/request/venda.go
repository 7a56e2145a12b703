package request

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/paroquia-digital/bingo-storefront/internal/checkout"
)

var (
	errQuantidadeDiverge = errors.New("a quantidade deve corresponder às cartelas selecionadas")
)

type CriarVendaRequest struct {
	Nome            string   `json:"nome"`
	Email           string   `json:"email,omitempty"`
	Telefone        string   `json:"telefone"`
	CPF             string   `json:"cpf"`
	MetodoPagamento string   `json:"metodoPagamento"`
	Quantidade      int      `json:"quantidade"`
	CartelaIDs      []string `json:"cartelaIds,omitempty"`
}

// Validate checks the buyer form. maxDisponiveis caps the quantity at
// the event's availability; maxPorCompra is the per-buyer limit, zero
// meaning no extra cap.
func (req *CriarVendaRequest) Validate(maxDisponiveis, maxPorCompra int) error {
	maximo := maxDisponiveis
	if maxPorCompra > 0 && maxPorCompra < maximo {
		maximo = maxPorCompra
	}

	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Nome, validation.Required, validation.Length(3, 120)),
		validation.Field(&req.Email, is.Email),
		validation.Field(&req.Telefone, validation.Required, validation.Match(checkout.TelefoneRegex).Error("telefone inválido, use (XX) XXXXX-XXXX")),
		validation.Field(&req.CPF, validation.Required, validation.Match(checkout.CPFRegex).Error("CPF inválido, use XXX.XXX.XXX-XX")),
		validation.Field(&req.MetodoPagamento, validation.Required, validation.In("PIX", "CREDIT_CARD")),
		validation.Field(&req.Quantidade, validation.Required, validation.Min(1), validation.Max(maximo).Error(fmt.Sprintf("máximo de %v cartelas", maximo))),
	)
	if err != nil {
		return err
	}

	// Selection-first flow: the explicit card list must agree with the
	// recorded quantity.
	if len(req.CartelaIDs) > 0 && len(req.CartelaIDs) != req.Quantidade {
		return errQuantidadeDiverge
	}

	return nil
}
