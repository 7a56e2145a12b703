package selection

import (
	"strings"

	"github.com/paroquia-digital/bingo-storefront/internal/domain"
)

// Filtrar keeps the cartelas whose codigo or any grid cell contains the
// search term, case-insensitively. A blank term keeps everything.
func Filtrar(cartelas []domain.Cartela, termo string) []domain.Cartela {
	termo = strings.ToLower(strings.TrimSpace(termo))
	if termo == "" {
		return cartelas
	}

	var filtradas []domain.Cartela
	for _, cartela := range cartelas {
		if strings.Contains(strings.ToLower(cartela.Codigo), termo) {
			filtradas = append(filtradas, cartela)
			continue
		}
		for _, numero := range cartela.Numeros {
			if strings.Contains(strings.ToLower(numero), termo) {
				filtradas = append(filtradas, cartela)
				break
			}
		}
	}

	return filtradas
}

// Paginacao describes the slice of the filtered list a page shows.
type Paginacao struct {
	Pagina       int `json:"pagina"`
	TotalPaginas int `json:"totalPaginas"`
	Total        int `json:"total"`
	Tamanho      int `json:"tamanho"`
}

// Paginar splits cartelas into fixed-size pages and returns the
// requested one. The page number is clamped to [1, totalPaginas].
func Paginar(cartelas []domain.Cartela, pagina, tamanho int) ([]domain.Cartela, Paginacao) {
	if tamanho < 1 {
		tamanho = 1
	}

	total := len(cartelas)
	totalPaginas := (total + tamanho - 1) / tamanho
	if totalPaginas < 1 {
		totalPaginas = 1
	}

	if pagina < 1 {
		pagina = 1
	}
	if pagina > totalPaginas {
		pagina = totalPaginas
	}

	inicio := (pagina - 1) * tamanho
	fim := inicio + tamanho
	if inicio > total {
		inicio = total
	}
	if fim > total {
		fim = total
	}

	return cartelas[inicio:fim], Paginacao{
		Pagina:       pagina,
		TotalPaginas: totalPaginas,
		Total:        total,
		Tamanho:      tamanho,
	}
}
