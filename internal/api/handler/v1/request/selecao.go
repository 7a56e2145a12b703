package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
)

const (
	OperacaoToggle = "toggle"
	OperacaoPagina = "pagina"
	OperacaoTodas  = "todas"
	OperacaoLimpar = "limpar"
)

var errCartelaObrigatoria = errors.New("cartelaId é obrigatório para a operação toggle")

// AtualizarSelecaoRequest mutates the working selection. Busca and
// Pagina describe the view the operation applies to, so "todas" selects
// everything matching the filter and "pagina" the visible page.
type AtualizarSelecaoRequest struct {
	Operacao  string `json:"operacao"`
	CartelaID string `json:"cartelaId,omitempty"`
	Busca     string `json:"busca,omitempty"`
	Pagina    int    `json:"pagina,omitempty"`
}

func (req *AtualizarSelecaoRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Operacao, validation.Required, validation.In(OperacaoToggle, OperacaoPagina, OperacaoTodas, OperacaoLimpar)),
		validation.Field(&req.Pagina, validation.Min(0)),
	)
	if err != nil {
		return err
	}

	if req.Operacao == OperacaoToggle && req.CartelaID == "" {
		return errCartelaObrigatoria
	}

	return nil
}
