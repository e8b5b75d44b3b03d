package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"smartlining-api/internal/adapters/persistence/models"
)

func newTurnoFixture() (*TurnoService, *fakeTurnoRepo) {
	turnoRepo := newFakeTurnoRepo()
	colaRepo := newFakeColaRepo(&models.Cola{ID: 1, Nombre: "Cajas", Activa: true})
	clienteRepo := newFakeClienteRepo(&models.Cliente{ID: 1, Origen: "QR"})
	return NewTurnoService(turnoRepo, colaRepo, clienteRepo), turnoRepo
}

func TestCreateAssignsSequentialNumbers(t *testing.T) {
	svc, _ := newTurnoFixture()
	ctx := context.Background()

	for want := 1; want <= 3; want++ {
		turno, err := svc.Create(ctx, &CreateTurnoInput{ColaID: 1, ClienteID: 1})
		if err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
		if turno.NumeroTurno != want {
			t.Errorf("NumeroTurno = %d, want %d", turno.NumeroTurno, want)
		}
		if turno.Estado != models.EstadoEnEspera {
			t.Errorf("Estado = %s, want EN_ESPERA", turno.Estado)
		}
	}
}

func TestCreateUnknownCola(t *testing.T) {
	svc, _ := newTurnoFixture()

	_, err := svc.Create(context.Background(), &CreateTurnoInput{ColaID: 99, ClienteID: 1})
	if !errors.Is(err, ErrColaNotFound) {
		t.Errorf("expected ErrColaNotFound, got %v", err)
	}
}

func TestCreateUnknownCliente(t *testing.T) {
	svc, _ := newTurnoFixture()

	_, err := svc.Create(context.Background(), &CreateTurnoInput{ColaID: 1, ClienteID: 99})
	if !errors.Is(err, ErrClienteNotFound) {
		t.Errorf("expected ErrClienteNotFound, got %v", err)
	}
}

func TestUpdateTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		wantErr error
	}{
		{"call next", models.EstadoEnEspera, models.EstadoEnAtencion, nil},
		{"abandon while waiting", models.EstadoEnEspera, models.EstadoCancelado, nil},
		{"finish service", models.EstadoEnAtencion, models.EstadoFinalizado, nil},
		{"cancel during service", models.EstadoEnAtencion, models.EstadoCancelado, nil},
		{"skip service", models.EstadoEnEspera, models.EstadoFinalizado, ErrInvalidTransition},
		{"reopen finished", models.EstadoFinalizado, models.EstadoEnAtencion, ErrInvalidTransition},
		{"reopen cancelled", models.EstadoCancelado, models.EstadoEnEspera, ErrInvalidTransition},
		{"garbage estado", models.EstadoEnEspera, "PAUSADO", ErrInvalidEstado},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTurnoFixture()
			repo.turnos[10] = &models.Turno{
				ID:                10,
				ColaID:            1,
				ClienteID:         1,
				NumeroTurno:       1,
				Estado:            tt.from,
				FechaHoraCreacion: time.Now(),
			}

			turno, err := svc.Update(context.Background(), 10, &UpdateTurnoInput{Estado: tt.to})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Update returned error: %v", err)
			}
			if turno.Estado != tt.to {
				t.Errorf("Estado = %s, want %s", turno.Estado, tt.to)
			}
		})
	}
}

func TestUpdateStampsTimestamps(t *testing.T) {
	svc, repo := newTurnoFixture()
	repo.turnos[10] = &models.Turno{
		ID: 10, ColaID: 1, ClienteID: 1, NumeroTurno: 1,
		Estado: models.EstadoEnEspera, FechaHoraCreacion: time.Now(),
	}
	ctx := context.Background()

	turno, err := svc.Update(ctx, 10, &UpdateTurnoInput{Estado: models.EstadoEnAtencion})
	if err != nil {
		t.Fatal(err)
	}
	if turno.FechaHoraLlamada == nil || turno.FechaHoraInicioAtencion == nil {
		t.Error("EN_ATENCION must stamp llamada and inicio_atencion")
	}
	if turno.FechaHoraFinAtencion != nil {
		t.Error("fin_atencion must not be set yet")
	}

	turno, err = svc.Update(ctx, 10, &UpdateTurnoInput{Estado: models.EstadoFinalizado})
	if err != nil {
		t.Fatal(err)
	}
	if turno.FechaHoraFinAtencion == nil {
		t.Error("FINALIZADO must stamp fin_atencion")
	}
}

func TestUpdateUnknownTurno(t *testing.T) {
	svc, _ := newTurnoFixture()

	_, err := svc.Update(context.Background(), 404, &UpdateTurnoInput{Estado: models.EstadoEnAtencion})
	if !errors.Is(err, ErrTurnoNotFound) {
		t.Errorf("expected ErrTurnoNotFound, got %v", err)
	}
}
