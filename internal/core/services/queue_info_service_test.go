package services

import (
	"testing"
	"time"

	"smartlining-api/internal/adapters/persistence/models"
)

func turnoAt(id uint, colaID uint, numero int, estado string, offsetMin int) models.Turno {
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	return models.Turno{
		ID:                id,
		ColaID:            colaID,
		NumeroTurno:       numero,
		Estado:            estado,
		FechaHoraCreacion: base.Add(time.Duration(offsetMin) * time.Minute),
	}
}

func TestComputeQueueInfoStats(t *testing.T) {
	cola := &models.Cola{ID: 1, Nombre: "Cajas", Activa: true}
	activos := []models.Turno{
		turnoAt(1, 1, 1, models.EstadoEnAtencion, 0),
		turnoAt(2, 1, 2, models.EstadoEnEspera, 1),
		turnoAt(3, 1, 3, models.EstadoEnEspera, 2),
		turnoAt(4, 1, 4, models.EstadoEnEspera, 3),
	}

	info := ComputeQueueInfo(cola, activos, nil)

	if info.Stats.TotalEnEspera != 3 {
		t.Errorf("TotalEnEspera = %d, want 3", info.Stats.TotalEnEspera)
	}
	if info.Stats.TotalEnAtencion != 1 {
		t.Errorf("TotalEnAtencion = %d, want 1", info.Stats.TotalEnAtencion)
	}
	if info.Stats.TurnoActual == nil || info.Stats.TurnoActual.Numero != 1 {
		t.Error("TurnoActual must be the ticket in service")
	}
	if info.UserInfo != nil {
		t.Error("UserInfo must be nil without a target ticket")
	}
}

func TestComputeQueueInfoPosition(t *testing.T) {
	cola := &models.Cola{ID: 1, Nombre: "Cajas", Activa: true}
	activos := []models.Turno{
		turnoAt(1, 1, 1, models.EstadoEnEspera, 0),
		turnoAt(2, 1, 2, models.EstadoEnEspera, 1),
		turnoAt(3, 1, 3, models.EstadoEnEspera, 2),
	}

	tests := []struct {
		name         string
		miTurno      models.Turno
		wantPosicion int
		wantMinutos  int
	}{
		{"first in line", activos[0], 1, 0},
		{"second in line", activos[1], 2, TiempoPromedioPorTurno},
		{"third in line", activos[2], 3, 2 * TiempoPromedioPorTurno},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := ComputeQueueInfo(cola, activos, &tt.miTurno)
			if info.UserInfo == nil {
				t.Fatal("expected UserInfo")
			}
			if info.UserInfo.MiPosicion != tt.wantPosicion {
				t.Errorf("MiPosicion = %d, want %d", info.UserInfo.MiPosicion, tt.wantPosicion)
			}
			if info.UserInfo.TiempoEstimadoMinutos != tt.wantMinutos {
				t.Errorf("TiempoEstimadoMinutos = %d, want %d", info.UserInfo.TiempoEstimadoMinutos, tt.wantMinutos)
			}
		})
	}
}

func TestComputeQueueInfoForeignTurno(t *testing.T) {
	cola := &models.Cola{ID: 1, Nombre: "Cajas", Activa: true}
	activos := []models.Turno{
		turnoAt(1, 1, 1, models.EstadoEnEspera, 0),
	}
	otro := turnoAt(99, 2, 5, models.EstadoEnEspera, 0)

	info := ComputeQueueInfo(cola, activos, &otro)

	if info.UserInfo != nil {
		t.Error("a ticket from another queue must yield nil UserInfo")
	}
	if info.Stats.TotalEnEspera != 1 {
		t.Errorf("stats must stay intact, TotalEnEspera = %d", info.Stats.TotalEnEspera)
	}
}

func TestComputeQueueInfoServedTicket(t *testing.T) {
	cola := &models.Cola{ID: 1, Nombre: "Cajas", Activa: true}
	mio := turnoAt(1, 1, 1, models.EstadoEnAtencion, 0)
	activos := []models.Turno{
		mio,
		turnoAt(2, 1, 2, models.EstadoEnEspera, 1),
	}

	info := ComputeQueueInfo(cola, activos, &mio)

	if info.UserInfo == nil {
		t.Fatal("expected UserInfo")
	}
	// Not waiting anymore: position 0, no estimate
	if info.UserInfo.MiPosicion != 0 {
		t.Errorf("MiPosicion = %d, want 0", info.UserInfo.MiPosicion)
	}
	if info.UserInfo.TiempoEstimadoMinutos != 0 {
		t.Errorf("TiempoEstimadoMinutos = %d, want 0", info.UserInfo.TiempoEstimadoMinutos)
	}
	if info.UserInfo.Estado != models.EstadoEnAtencion {
		t.Errorf("Estado = %s", info.UserInfo.Estado)
	}
}

func TestComputeQueueInfoEmptyQueue(t *testing.T) {
	cola := &models.Cola{ID: 1, Nombre: "Cajas", Activa: true}

	info := ComputeQueueInfo(cola, nil, nil)

	if info.Stats.TotalEnEspera != 0 || info.Stats.TotalEnAtencion != 0 {
		t.Error("empty queue must report zero counts")
	}
	if info.Stats.TurnoActual != nil {
		t.Error("empty queue has no turnoActual")
	}
}
