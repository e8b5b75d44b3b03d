package services

import (
	"context"
	"time"

	"smartlining-api/internal/adapters/persistence/models"
	"smartlining-api/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// In-memory repository fakes for service tests.

type fakeUsuarioRepo struct {
	usuarios map[uint]*models.Usuario
}

func newFakeUsuarioRepo(usuarios ...*models.Usuario) *fakeUsuarioRepo {
	r := &fakeUsuarioRepo{usuarios: make(map[uint]*models.Usuario)}
	for _, u := range usuarios {
		r.usuarios[u.ID] = u
	}
	return r
}

func (r *fakeUsuarioRepo) Create(_ context.Context, usuario *models.Usuario) error {
	usuario.ID = uint(len(r.usuarios) + 1)
	r.usuarios[usuario.ID] = usuario
	return nil
}

func (r *fakeUsuarioRepo) GetByID(_ context.Context, id uint) (*models.Usuario, error) {
	if u, ok := r.usuarios[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUsuarioRepo) GetByEmail(_ context.Context, email string) (*models.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUsuarioRepo) Update(_ context.Context, usuario *models.Usuario) error {
	r.usuarios[usuario.ID] = usuario
	return nil
}

func (r *fakeUsuarioRepo) Delete(_ context.Context, id uint) error {
	delete(r.usuarios, id)
	return nil
}

func (r *fakeUsuarioRepo) List(_ context.Context, offset, limit int) ([]*models.Usuario, int64, error) {
	var out []*models.Usuario
	for _, u := range r.usuarios {
		out = append(out, u)
	}
	return out, int64(len(out)), nil
}

func (r *fakeUsuarioRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	return err == nil, nil
}

type fakeRefreshTokenRepo struct {
	tokens map[string]*models.RefreshToken
	nextID uint
}

func newFakeRefreshTokenRepo() *fakeRefreshTokenRepo {
	return &fakeRefreshTokenRepo{tokens: make(map[string]*models.RefreshToken)}
}

func (r *fakeRefreshTokenRepo) Create(_ context.Context, token *models.RefreshToken) error {
	r.nextID++
	token.ID = r.nextID
	r.tokens[token.TokenHash] = token
	return nil
}

func (r *fakeRefreshTokenRepo) GetByTokenHash(_ context.Context, tokenHash string) (*models.RefreshToken, error) {
	if t, ok := r.tokens[tokenHash]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRefreshTokenRepo) Revoke(_ context.Context, id uint) error {
	now := time.Now()
	for _, t := range r.tokens {
		if t.ID == id {
			t.RevokedAt = &now
		}
	}
	return nil
}

func (r *fakeRefreshTokenRepo) RevokeByTokenHash(_ context.Context, tokenHash string) error {
	if t, ok := r.tokens[tokenHash]; ok {
		now := time.Now()
		t.RevokedAt = &now
	}
	return nil
}

func (r *fakeRefreshTokenRepo) DeleteExpired(_ context.Context) (int64, error) {
	var n int64
	for hash, t := range r.tokens {
		if t.IsExpired() || t.IsRevoked() {
			delete(r.tokens, hash)
			n++
		}
	}
	return n, nil
}

type fakeClienteRepo struct {
	clientes map[uint]*models.Cliente
}

func newFakeClienteRepo(clientes ...*models.Cliente) *fakeClienteRepo {
	r := &fakeClienteRepo{clientes: make(map[uint]*models.Cliente)}
	for _, c := range clientes {
		r.clientes[c.ID] = c
	}
	return r
}

func (r *fakeClienteRepo) Create(_ context.Context, cliente *models.Cliente) error {
	cliente.ID = uint(len(r.clientes) + 1)
	if cliente.Origen == "" {
		cliente.Origen = "QR"
	}
	r.clientes[cliente.ID] = cliente
	return nil
}

func (r *fakeClienteRepo) GetByID(_ context.Context, id uint) (*models.Cliente, error) {
	if c, ok := r.clientes[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeColaRepo struct {
	colas map[uint]*models.Cola
}

func newFakeColaRepo(colas ...*models.Cola) *fakeColaRepo {
	r := &fakeColaRepo{colas: make(map[uint]*models.Cola)}
	for _, c := range colas {
		r.colas[c.ID] = c
	}
	return r
}

func (r *fakeColaRepo) Create(_ context.Context, cola *models.Cola) error {
	cola.ID = uint(len(r.colas) + 1)
	r.colas[cola.ID] = cola
	return nil
}

func (r *fakeColaRepo) GetByID(_ context.Context, id uint) (*models.Cola, error) {
	if c, ok := r.colas[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeColaRepo) GetByNombre(_ context.Context, nombre string) (*models.Cola, error) {
	for _, c := range r.colas {
		if c.Nombre == nombre {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeColaRepo) List(_ context.Context, offset, limit int) ([]models.Cola, int64, error) {
	var out []models.Cola
	for _, c := range r.colas {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (r *fakeColaRepo) ListActivas(_ context.Context, offset, limit int) ([]models.Cola, int64, error) {
	var out []models.Cola
	for _, c := range r.colas {
		if c.Activa {
			out = append(out, *c)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeColaRepo) Update(_ context.Context, cola *models.Cola) error {
	r.colas[cola.ID] = cola
	return nil
}

func (r *fakeColaRepo) Delete(_ context.Context, id uint) error {
	delete(r.colas, id)
	return nil
}

type fakeTurnoRepo struct {
	turnos map[uint]*models.Turno
	nextID uint
}

func newFakeTurnoRepo(turnos ...*models.Turno) *fakeTurnoRepo {
	r := &fakeTurnoRepo{turnos: make(map[uint]*models.Turno)}
	for _, t := range turnos {
		r.turnos[t.ID] = t
		if t.ID > r.nextID {
			r.nextID = t.ID
		}
	}
	return r
}

func (r *fakeTurnoRepo) CreateNext(_ context.Context, colaID, clienteID uint) (*models.Turno, error) {
	max := 0
	for _, t := range r.turnos {
		if t.ColaID == colaID && t.NumeroTurno > max {
			max = t.NumeroTurno
		}
	}
	r.nextID++
	turno := &models.Turno{
		ID:                r.nextID,
		ColaID:            colaID,
		ClienteID:         clienteID,
		NumeroTurno:       max + 1,
		Estado:            models.EstadoEnEspera,
		FechaHoraCreacion: time.Now(),
	}
	r.turnos[turno.ID] = turno
	return turno, nil
}

func (r *fakeTurnoRepo) GetByID(_ context.Context, id uint) (*models.Turno, error) {
	if t, ok := r.turnos[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeTurnoRepo) GetByIDWithDetails(ctx context.Context, id uint) (*models.Turno, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeTurnoRepo) List(_ context.Context, filter repositories.TurnoFilter, offset, limit int) ([]models.Turno, int64, error) {
	var out []models.Turno
	for _, t := range r.turnos {
		if filter.Estado != "" && t.Estado != filter.Estado {
			continue
		}
		if filter.ColaID != 0 && t.ColaID != filter.ColaID {
			continue
		}
		if filter.ClienteID != 0 && t.ClienteID != filter.ClienteID {
			continue
		}
		out = append(out, *t)
	}
	return out, int64(len(out)), nil
}

func (r *fakeTurnoRepo) ListActivos(_ context.Context, colaID uint) ([]models.Turno, error) {
	var out []models.Turno
	for _, t := range r.turnos {
		if t.ColaID == colaID && (t.Estado == models.EstadoEnEspera || t.Estado == models.EstadoEnAtencion) {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *fakeTurnoRepo) Update(_ context.Context, turno *models.Turno) error {
	r.turnos[turno.ID] = turno
	return nil
}

func (r *fakeTurnoRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.turnos[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.turnos, id)
	return nil
}

func (r *fakeTurnoRepo) CancelWaiting(_ context.Context) (int64, error) {
	var n int64
	for _, t := range r.turnos {
		if t.Estado == models.EstadoEnEspera {
			t.Estado = models.EstadoCancelado
			n++
		}
	}
	return n, nil
}

type fakeValoracionRepo struct {
	valoraciones map[uint]*models.Valoracion
	nextID       uint
}

func newFakeValoracionRepo() *fakeValoracionRepo {
	return &fakeValoracionRepo{valoraciones: make(map[uint]*models.Valoracion)}
}

func (r *fakeValoracionRepo) Create(_ context.Context, valoracion *models.Valoracion) error {
	for _, v := range r.valoraciones {
		if v.TurnoID == valoracion.TurnoID {
			return gorm.ErrDuplicatedKey
		}
	}
	r.nextID++
	valoracion.ID = r.nextID
	valoracion.FechaValoracion = time.Now()
	r.valoraciones[valoracion.ID] = valoracion
	return nil
}

func (r *fakeValoracionRepo) GetByID(_ context.Context, id uint) (*models.Valoracion, error) {
	if v, ok := r.valoraciones[id]; ok {
		return v, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeValoracionRepo) GetByTurnoID(_ context.Context, turnoID uint) (*models.Valoracion, error) {
	for _, v := range r.valoraciones {
		if v.TurnoID == turnoID {
			return v, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeValoracionRepo) Update(_ context.Context, valoracion *models.Valoracion) error {
	r.valoraciones[valoracion.ID] = valoracion
	return nil
}

func (r *fakeValoracionRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.valoraciones[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.valoraciones, id)
	return nil
}

func (r *fakeValoracionRepo) List(_ context.Context, offset, limit int) ([]models.Valoracion, int64, error) {
	var out []models.Valoracion
	for _, v := range r.valoraciones {
		out = append(out, *v)
	}
	return out, int64(len(out)), nil
}
