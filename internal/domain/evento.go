package domain

import "time"

type StatusEvento string

const (
	EventoAtivo      StatusEvento = "ativo"
	EventoFinalizado StatusEvento = "finalizado"
	EventoCancelado  StatusEvento = "cancelado"
)

// Evento is a bingo occasion buyers purchase cards for. Events are
// created and mutated by the sales API only; the storefront reads them.
type Evento struct {
	ID                  string       `json:"_id"`
	Nome                string       `json:"nome"`
	Descricao           string       `json:"descricao,omitempty"`
	Local               string       `json:"local,omitempty"`
	Data                time.Time    `json:"data"`
	ValorCartela        Centavos     `json:"valorCartela"`
	Status              StatusEvento `json:"status"`
	CartelasDisponiveis int          `json:"cartelasDisponiveis,omitempty"`
}
