package domain

import (
	"testing"

	"smartlining-api/internal/adapters/persistence/models"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"espera to atencion", models.EstadoEnEspera, models.EstadoEnAtencion, true},
		{"espera to cancelado", models.EstadoEnEspera, models.EstadoCancelado, true},
		{"espera to finalizado", models.EstadoEnEspera, models.EstadoFinalizado, false},
		{"atencion to finalizado", models.EstadoEnAtencion, models.EstadoFinalizado, true},
		{"atencion to cancelado", models.EstadoEnAtencion, models.EstadoCancelado, true},
		{"atencion to espera", models.EstadoEnAtencion, models.EstadoEnEspera, false},
		{"finalizado is terminal", models.EstadoFinalizado, models.EstadoEnAtencion, false},
		{"finalizado to cancelado", models.EstadoFinalizado, models.EstadoCancelado, false},
		{"cancelado is terminal", models.EstadoCancelado, models.EstadoEnEspera, false},
		{"cancelado to finalizado", models.EstadoCancelado, models.EstadoFinalizado, false},
		{"unknown from", "NOPE", models.EstadoEnAtencion, false},
		{"unknown to", models.EstadoEnEspera, "NOPE", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestValidEstado(t *testing.T) {
	for _, estado := range []string{models.EstadoEnEspera, models.EstadoEnAtencion, models.EstadoFinalizado, models.EstadoCancelado} {
		if !ValidEstado(estado) {
			t.Errorf("ValidEstado(%s) = false, want true", estado)
		}
	}
	for _, estado := range []string{"", "EN ESPERA", "DONE", "en_espera"} {
		if ValidEstado(estado) {
			t.Errorf("ValidEstado(%q) = true, want false", estado)
		}
	}
}
