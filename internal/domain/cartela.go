package domain

type StatusCartela string

const (
	CartelaDisponivel StatusCartela = "disponivel"
	CartelaReservada  StatusCartela = "reservada"
	CartelaVendida    StatusCartela = "vendida"
)

// CasaLivre marks the free center cell of the 5x5 grid.
const CasaLivre = "FREE"

type Cartela struct {
	ID         string        `json:"_id"`
	Codigo     string        `json:"codigo"`
	Numeros    []string      `json:"numeros"`
	EventoID   string        `json:"eventoId"`
	Status     StatusCartela `json:"status"`
	ArquivoURL string        `json:"arquivoUrl,omitempty"`
}
