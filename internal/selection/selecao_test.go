package selection

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paroquia-digital/bingo-storefront/internal/domain"
)

func cartelasDeTeste(n int) []domain.Cartela {
	cartelas := make([]domain.Cartela, n)
	for i := range cartelas {
		cartelas[i] = domain.Cartela{
			ID:      fmt.Sprintf("c%03d", i+1),
			Codigo:  fmt.Sprintf("A-%03d", i+1),
			Numeros: []string{"B1", "I16", "N31", "G46", "O61"},
			Status:  domain.CartelaDisponivel,
		}
	}
	return cartelas
}

func TestToggleIdempotente(t *testing.T) {
	s := NovaSelecao("c1", "c2")

	s.Toggle("c3")
	assert.True(t, s.Contem("c3"))

	s.Toggle("c3")
	assert.False(t, s.Contem("c3"))
	assert.Equal(t, []string{"c1", "c2"}, s.IDs())
}

func TestSelecionarTodasSobreviveAoFiltro(t *testing.T) {
	cartelas := cartelasDeTeste(10)
	cartelas[3].Codigo = "B-004"
	cartelas[7].Codigo = "B-008"

	s := NovaSelecao()

	filtradas := Filtrar(cartelas, "b-0")
	var ids []string
	for _, c := range filtradas {
		ids = append(ids, c.ID)
	}
	s.SelecionarTodas(ids)
	require.Equal(t, 2, s.Tamanho())

	// Clearing the search term must not shrink the selection: the set
	// selected under a filter is a superset of any later view.
	semFiltro := Filtrar(cartelas, "")
	assert.Len(t, semFiltro, 10)
	assert.Equal(t, 2, s.Tamanho())
	assert.True(t, s.Contem("c004"))
	assert.True(t, s.Contem("c008"))
}

func TestSelecionarPaginaAcumula(t *testing.T) {
	s := NovaSelecao("x1")

	s.SelecionarPagina([]string{"p1", "p2", "x1"})
	assert.Equal(t, 3, s.Tamanho())
	assert.Equal(t, []string{"x1", "p1", "p2"}, s.IDs())
}

func TestLimpar(t *testing.T) {
	s := NovaSelecao("c1", "c2", "c3")
	s.Limpar()

	assert.Equal(t, 0, s.Tamanho())
	assert.Empty(t, s.IDs())
}

func TestValorTotal(t *testing.T) {
	unit := domain.Centavos(1250)

	s := NovaSelecao()
	assert.Equal(t, domain.Centavos(0), s.ValorTotal(unit))

	s.Toggle("c1")
	assert.Equal(t, domain.Centavos(1250), s.ValorTotal(unit))

	s.SelecionarPagina([]string{"c2", "c3"})
	assert.Equal(t, domain.Centavos(3750), s.ValorTotal(unit))

	s.Toggle("c2")
	assert.Equal(t, domain.Centavos(2500), s.ValorTotal(unit))
}

func TestFiltrarPorCodigoENumero(t *testing.T) {
	cartelas := cartelasDeTeste(3)
	cartelas[1].Numeros = []string{"B7", "I22", "FREE", "G51", "O70"}

	assert.Len(t, Filtrar(cartelas, "a-002"), 1)
	assert.Len(t, Filtrar(cartelas, "A-002"), 1)

	porNumero := Filtrar(cartelas, "i22")
	require.Len(t, porNumero, 1)
	assert.Equal(t, "c002", porNumero[0].ID)

	assert.Len(t, Filtrar(cartelas, "  "), 3)
	assert.Empty(t, Filtrar(cartelas, "zzz"))
}

func TestPaginar(t *testing.T) {
	cartelas := cartelasDeTeste(250)

	pagina, info := Paginar(cartelas, 1, 100)
	assert.Len(t, pagina, 100)
	assert.Equal(t, 3, info.TotalPaginas)
	assert.Equal(t, 250, info.Total)

	ultima, info := Paginar(cartelas, 3, 100)
	assert.Len(t, ultima, 50)
	assert.Equal(t, 3, info.Pagina)
	assert.Equal(t, "c201", ultima[0].ID)
}

func TestPaginarClampa(t *testing.T) {
	cartelas := cartelasDeTeste(30)

	pagina, info := Paginar(cartelas, 99, 100)
	assert.Len(t, pagina, 30)
	assert.Equal(t, 1, info.Pagina)

	pagina, info = Paginar(cartelas, 0, 100)
	assert.Len(t, pagina, 30)
	assert.Equal(t, 1, info.Pagina)

	vazia, info := Paginar(nil, 1, 100)
	assert.Empty(t, vazia)
	assert.Equal(t, 1, info.TotalPaginas)
}
