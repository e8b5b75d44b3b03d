package domain

import "smartlining-api/internal/adapters/persistence/models"

// transitions maps each ticket state to the states reachable from it.
// FINALIZADO and CANCELADO are terminal.
var transitions = map[string][]string{
	models.EstadoEnEspera:   {models.EstadoEnAtencion, models.EstadoCancelado},
	models.EstadoEnAtencion: {models.EstadoFinalizado, models.EstadoCancelado},
	models.EstadoFinalizado: {},
	models.EstadoCancelado:  {},
}

// ValidEstado reports whether estado is a known ticket state.
func ValidEstado(estado string) bool {
	_, ok := transitions[estado]
	return ok
}

// CanTransition reports whether a ticket may move from one state to another.
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
