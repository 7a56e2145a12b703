package response

import (
	"time"

	"github.com/paroquia-digital/bingo-storefront/internal/domain"
	"github.com/paroquia-digital/bingo-storefront/internal/payment"
	"github.com/paroquia-digital/bingo-storefront/internal/selection"
)

// Front-end route builders. The storefront single-page app navigates by
// these; the API returns them so navigation targets live in one place.
func RotaInicio() string                  { return "/" }
func RotaSelecao(eventoID string) string  { return "/selecionar/" + eventoID }
func RotaComprar(eventoID string) string  { return "/comprar/" + eventoID }
func RotaPagamento(vendaID string) string { return "/pagamento/" + vendaID }
func RotaSucesso(vendaID string) string   { return "/sucesso/" + vendaID }
func RotaErro(vendaID string) string      { return "/erro/" + vendaID }

// CartelaView is a card plus its membership in the current selection.
type CartelaView struct {
	domain.Cartela
	Selecionada bool `json:"selecionada"`
}

// SelecaoPage backs the card-selection screen.
type SelecaoPage struct {
	Evento                domain.Evento       `json:"evento"`
	Cartelas              []CartelaView       `json:"cartelas"`
	Paginacao             selection.Paginacao `json:"paginacao"`
	Busca                 string              `json:"busca,omitempty"`
	Selecionadas          []string            `json:"selecionadas"`
	QuantidadeSelecionada int                 `json:"quantidadeSelecionada"`
	ValorTotal            domain.Centavos     `json:"valorTotal"`
	ValorTotalFormatado   string              `json:"valorTotalFormatado"`
	// Token identifies the buyer's working selection; the browser sends
	// it back on every selection mutation and on checkout.
	Token string `json:"token"`
}

// RedirecionarResponse tells the page to navigate elsewhere, e.g. back
// to selection when checkout is reached without a valid handoff.
type RedirecionarResponse struct {
	Rota   string `json:"rota"`
	Motivo string `json:"motivo,omitempty"`
}

// ProsseguirResponse answers the proceed-to-checkout action.
type ProsseguirResponse struct {
	Rota string `json:"rota"`
}

// ComprarPage backs the buyer-details form.
type ComprarPage struct {
	Evento              domain.Evento   `json:"evento"`
	TotalDisponiveis    int             `json:"totalDisponiveis"`
	CartelaIDs          []string        `json:"cartelaIds"`
	Quantidade          int             `json:"quantidade"`
	ValorTotal          domain.Centavos `json:"valorTotal"`
	ValorTotalFormatado string          `json:"valorTotalFormatado"`
}

// VendaCriadaResponse answers a successful sale creation.
type VendaCriadaResponse struct {
	VendaID    string          `json:"vendaId"`
	ValorTotal domain.Centavos `json:"valorTotal"`
	ExpiresAt  time.Time       `json:"expiresAt"`
	Rota       string          `json:"rota"`
}

// VendaPendenteResponse surfaces the already-pending-sale conflict with
// a direct continue-to-payment shortcut instead of a blocked retry.
type VendaPendenteResponse struct {
	Message   string    `json:"message"`
	VendaID   string    `json:"vendaId"`
	ExpiresAt time.Time `json:"expiresAt"`
	Rota      string    `json:"rota"`
}

// ResumoCompra is the purchase summary shown on the payment page.
type ResumoCompra struct {
	EventoNome    string `json:"eventoNome"`
	CompradorNome string `json:"compradorNome"`
	Quantidade    int    `json:"quantidade"`
}

// PagamentoPage backs the payment screen.
type PagamentoPage struct {
	VendaID             string                    `json:"vendaId"`
	Status              domain.StatusVenda        `json:"status"`
	Decisao             payment.Decisao           `json:"decisao"`
	ProximaRota         string                    `json:"proximaRota,omitempty"`
	Artefato            payment.ArtefatoPagamento `json:"artefato"`
	PixQrCode           string                    `json:"pixQrCode,omitempty"`
	PixCopyPaste        string                    `json:"pixCopyPaste,omitempty"`
	PaymentURL          string                    `json:"paymentUrl,omitempty"`
	ValorTotal          domain.Centavos           `json:"valorTotal"`
	ValorTotalFormatado string                    `json:"valorTotalFormatado"`
	SegundosRestantes   int                       `json:"segundosRestantes"`
	Contagem            string                    `json:"contagem"`
	QuaseExpirando      bool                      `json:"quaseExpirando"`
	// PollIntervalMS tells the page how often to hit the status route
	// while the decision is "aguardar".
	PollIntervalMS int `json:"pollIntervalMs"`
	// Instrucoes is the "como pagar" step list for the rendered
	// artifact.
	Instrucoes []string     `json:"instrucoes,omitempty"`
	Resumo     ResumoCompra `json:"resumo"`
}

// StatusResponse answers the polling route.
type StatusResponse struct {
	Status            domain.StatusVenda `json:"status"`
	PaidAt            *time.Time         `json:"paidAt,omitempty"`
	ExpiresAt         time.Time          `json:"expiresAt"`
	EmailEnviado      bool               `json:"emailEnviado"`
	Decisao           payment.Decisao    `json:"decisao"`
	ProximaRota       string             `json:"proximaRota,omitempty"`
	SegundosRestantes int                `json:"segundosRestantes"`
}

// CartelaComprada is a purchased card with its PDF link.
type CartelaComprada struct {
	Codigo      string `json:"codigo"`
	DownloadURL string `json:"downloadUrl"`
}

// SucessoPage backs the confirmation screen. Pago is false while the
// venda is not yet confirmed; the page then shows RotaPagamento.
type SucessoPage struct {
	Pago                bool               `json:"pago"`
	Status              domain.StatusVenda `json:"status"`
	EventoNome          string             `json:"eventoNome,omitempty"`
	EventoData          *time.Time         `json:"eventoData,omitempty"`
	CompradorNome       string             `json:"compradorNome,omitempty"`
	CompradorEmail      string             `json:"compradorEmail,omitempty"`
	Cartelas            []CartelaComprada  `json:"cartelas,omitempty"`
	ValorTotal          domain.Centavos    `json:"valorTotal,omitempty"`
	ValorTotalFormatado string             `json:"valorTotalFormatado,omitempty"`
	DownloadTodasURL    string             `json:"downloadTodasUrl,omitempty"`
	// Recibo is the plain-text receipt offered for clipboard copy.
	Recibo        string `json:"recibo,omitempty"`
	EmailEnviado  bool   `json:"emailEnviado"`
	ContatoEmail  string `json:"contatoEmail,omitempty"`
	RotaPagamento string `json:"rotaPagamento,omitempty"`
	RotaInicio    string `json:"rotaInicio"`
}

// ErroPage backs the failure screen.
type ErroPage struct {
	Titulo       string             `json:"titulo"`
	Descricao    string             `json:"descricao"`
	PodeRetentar bool               `json:"podeRetentar"`
	Status       domain.StatusVenda `json:"status,omitempty"`
	// RotaNovaCompra links back into checkout for the same event when a
	// retry makes sense.
	RotaNovaCompra string `json:"rotaNovaCompra,omitempty"`
	RotaInicio     string `json:"rotaInicio"`
	ContatoEmail   string `json:"contatoEmail,omitempty"`
}
