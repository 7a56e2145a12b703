// Package selection holds the selected-card set a buyer builds on the
// selection page and hands off to checkout. The set lives in redis with
// a TTL, keyed by a signed token the browser carries, so it survives a
// reload but never outlives the funnel.
package selection

import "github.com/paroquia-digital/bingo-storefront/internal/domain"

// Selecao is an ordered set of cartela ids. Insertion order is kept so
// the checkout summary lists cards the way the buyer picked them.
type Selecao struct {
	ids     []string
	membros map[string]struct{}
}

func NovaSelecao(ids ...string) *Selecao {
	s := &Selecao{membros: make(map[string]struct{})}
	for _, id := range ids {
		s.adicionar(id)
	}
	return s
}

func (s *Selecao) adicionar(id string) {
	if _, ok := s.membros[id]; ok {
		return
	}
	s.membros[id] = struct{}{}
	s.ids = append(s.ids, id)
}

func (s *Selecao) remover(id string) {
	if _, ok := s.membros[id]; !ok {
		return
	}
	delete(s.membros, id)
	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			break
		}
	}
}

// Toggle adds the id when absent and removes it when present.
func (s *Selecao) Toggle(id string) {
	if s.Contem(id) {
		s.remover(id)
		return
	}
	s.adicionar(id)
}

// SelecionarTodas replaces the selection with every id in the current
// filtered view, mirroring the "selecionar todas" action.
func (s *Selecao) SelecionarTodas(ids []string) {
	s.ids = nil
	s.membros = make(map[string]struct{})
	for _, id := range ids {
		s.adicionar(id)
	}
}

// SelecionarPagina adds the current page's ids on top of whatever is
// already selected.
func (s *Selecao) SelecionarPagina(ids []string) {
	for _, id := range ids {
		s.adicionar(id)
	}
}

func (s *Selecao) Limpar() {
	s.ids = nil
	s.membros = make(map[string]struct{})
}

func (s *Selecao) Contem(id string) bool {
	_, ok := s.membros[id]
	return ok
}

func (s *Selecao) Tamanho() int {
	return len(s.ids)
}

// IDs returns a copy of the selected ids in insertion order.
func (s *Selecao) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// ValorTotal is the derived total: unit price times selection size.
func (s *Selecao) ValorTotal(valorCartela domain.Centavos) domain.Centavos {
	return valorCartela.Mul(len(s.ids))
}
