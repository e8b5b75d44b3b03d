package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"smartlining-api/internal/adapters/persistence/models"
)

func newValoracionFixture() (*ValoracionService, *fakeValoracionRepo) {
	valoracionRepo := newFakeValoracionRepo()
	turnoRepo := newFakeTurnoRepo(&models.Turno{
		ID: 1, ColaID: 1, ClienteID: 1, NumeroTurno: 1,
		Estado: models.EstadoFinalizado, FechaHoraCreacion: time.Now(),
	})
	return NewValoracionService(valoracionRepo, turnoRepo), valoracionRepo
}

func TestCreateValoracion(t *testing.T) {
	svc, _ := newValoracionFixture()
	comentario := "Muy buena atención"

	valoracion, err := svc.Create(context.Background(), &CreateValoracionInput{
		TurnoID:    1,
		Puntuacion: 5,
		Comentario: &comentario,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if valoracion.Puntuacion != 5 {
		t.Errorf("Puntuacion = %d, want 5", valoracion.Puntuacion)
	}
}

func TestCreateValoracionScoreBounds(t *testing.T) {
	svc, _ := newValoracionFixture()

	for _, puntuacion := range []int{0, -1, 6, 100} {
		_, err := svc.Create(context.Background(), &CreateValoracionInput{TurnoID: 1, Puntuacion: puntuacion})
		if !errors.Is(err, ErrInvalidPuntuacion) {
			t.Errorf("puntuacion %d: expected ErrInvalidPuntuacion, got %v", puntuacion, err)
		}
	}
}

func TestCreateValoracionUnknownTurno(t *testing.T) {
	svc, _ := newValoracionFixture()

	_, err := svc.Create(context.Background(), &CreateValoracionInput{TurnoID: 404, Puntuacion: 3})
	if !errors.Is(err, ErrTurnoNotFound) {
		t.Errorf("expected ErrTurnoNotFound, got %v", err)
	}
}

func TestCreateValoracionDuplicate(t *testing.T) {
	svc, repo := newValoracionFixture()
	ctx := context.Background()

	if _, err := svc.Create(ctx, &CreateValoracionInput{TurnoID: 1, Puntuacion: 4}); err != nil {
		t.Fatal(err)
	}

	_, err := svc.Create(ctx, &CreateValoracionInput{TurnoID: 1, Puntuacion: 2})
	if !errors.Is(err, ErrDuplicateValoracion) {
		t.Errorf("expected ErrDuplicateValoracion, got %v", err)
	}
	if len(repo.valoraciones) != 1 {
		t.Errorf("expected 1 stored valoracion, got %d", len(repo.valoraciones))
	}
}

func TestUpdateValoracion(t *testing.T) {
	svc, _ := newValoracionFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, &CreateValoracionInput{TurnoID: 1, Puntuacion: 2})
	if err != nil {
		t.Fatal(err)
	}

	nueva := 4
	updated, err := svc.Update(ctx, created.ID, &UpdateValoracionInput{Puntuacion: &nueva})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Puntuacion != 4 {
		t.Errorf("Puntuacion = %d, want 4", updated.Puntuacion)
	}

	mala := 9
	if _, err := svc.Update(ctx, created.ID, &UpdateValoracionInput{Puntuacion: &mala}); !errors.Is(err, ErrInvalidPuntuacion) {
		t.Errorf("expected ErrInvalidPuntuacion, got %v", err)
	}
}
