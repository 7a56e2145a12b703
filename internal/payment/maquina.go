// Package payment tracks a venda through its payment lifecycle:
// pendente/processando until the sales API reports a terminal status,
// then a single navigation decision for the page.
package payment

import "github.com/paroquia-digital/bingo-storefront/internal/domain"

// Decisao is what the payment page does after observing a status.
type Decisao string

const (
	// DecisaoAguardar keeps polling; the venda is still open.
	DecisaoAguardar Decisao = "aguardar"
	// DecisaoSucesso navigates to the success page.
	DecisaoSucesso Decisao = "sucesso"
	// DecisaoErro navigates to the error page.
	DecisaoErro Decisao = "erro"
)

// Decidir is the single transition function for the payment page. All
// status handling routes through here so that PENDING→PAID and
// PENDING→{EXPIRED,CANCELLED,ERROR} each map to exactly one outcome.
func Decidir(status domain.StatusVenda) Decisao {
	switch status {
	case domain.VendaPaga:
		return DecisaoSucesso
	case domain.VendaExpirada, domain.VendaCancelada, domain.VendaErro:
		return DecisaoErro
	default:
		return DecisaoAguardar
	}
}

// ArtefatoPagamento names which payment artifact the page renders.
type ArtefatoPagamento string

const (
	// ArtefatoPix renders the QR code plus copy-paste code.
	ArtefatoPix ArtefatoPagamento = "pix"
	// ArtefatoCartao renders the hosted card-payment link.
	ArtefatoCartao ArtefatoPagamento = "cartao"
	// ArtefatoGerando renders the "generating payment" placeholder
	// while the gateway has produced neither.
	ArtefatoGerando ArtefatoPagamento = "gerando"
)

// Artefato picks the payment content branch for a pending venda: PIX
// payload when present, else the card redirect, else the placeholder.
func Artefato(venda domain.Venda) ArtefatoPagamento {
	switch {
	case venda.PixQrCode != "" && venda.PixCopyPaste != "":
		return ArtefatoPix
	case venda.PaymentURL != "":
		return ArtefatoCartao
	default:
		return ArtefatoGerando
	}
}
