package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DealStage etapa de un negocio en el pipeline. Enumeración cerrada.
type DealStage string

const (
	StageNew         DealStage = "New"
	StageDiscovery   DealStage = "Discovery"
	StageProposal    DealStage = "Proposal"
	StageNegotiation DealStage = "Negotiation"
	StageClosedWon   DealStage = "Closed Won"
	StageClosedLost  DealStage = "Closed Lost"
)

// DealStages todas las etapas válidas, en orden de presentación.
var DealStages = []DealStage{StageNew, StageDiscovery, StageProposal, StageNegotiation, StageClosedWon, StageClosedLost}

// kanbanOrder orden de avance del tablero. Closed Lost no hace parte del
// flujo de avance: un negocio perdido se marca editándolo.
var kanbanOrder = []DealStage{StageNew, StageDiscovery, StageProposal, StageNegotiation, StageClosedWon}

// ParseDealStage valida que el texto sea una de las etapas cerradas.
func ParseDealStage(s string) (DealStage, error) {
	for _, st := range DealStages {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("etapa de negocio desconocida: %q", s)
}

// Next devuelve la etapa siguiente del tablero. ok es false cuando la etapa
// es terminal (Closed Won, Closed Lost) y no se puede avanzar.
func (s DealStage) Next() (DealStage, bool) {
	for i, st := range kanbanOrder {
		if st == s && i < len(kanbanOrder)-1 {
			return kanbanOrder[i+1], true
		}
	}
	return s, false
}

// Deal representa un negocio del pipeline. Value es el valor en COP, siempre >= 0.
type Deal struct {
	Name      string
	Company   string
	Value     decimal.Decimal
	Stage     DealStage
	CloseDate time.Time
}
