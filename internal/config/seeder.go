package config

import (
	"log"
	"time"

	"smartlining-api/internal/adapters/persistence/models"
	"smartlining-api/internal/pkg/password"

	"gorm.io/gorm"
)

func mustDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders. Each block is idempotent: it checks for
// existing rows before inserting.
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedUsuarios(); err != nil {
		log.Printf("⚠️ Usuario seeder skipped: %v", err)
	}
	if err := s.seedColas(); err != nil {
		log.Printf("⚠️ Cola seeder skipped: %v", err)
	}
	if err := s.seedEventos(); err != nil {
		log.Printf("⚠️ Evento seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedUsuarios seeds the default staff accounts.
// Development/testing only; production accounts come through the API.
func (s *Seeder) seedUsuarios() error {
	var count int64
	s.db.Model(&models.Usuario{}).Count(&count)
	if count > 0 {
		return nil
	}

	accounts := []struct {
		nombre, email, pass, rol string
	}{
		{"Administrador", "admin@smartlining.com", "admin123", models.RolAdministrador},
		{"Empleado Uno", "empleado1@smartlining.com", "empleado123", models.RolEmpleado},
		{"Empleado Dos", "empleado2@smartlining.com", "empleado123", models.RolEmpleado},
	}

	for _, a := range accounts {
		hash, err := password.Hash(a.pass)
		if err != nil {
			return err
		}
		usuario := &models.Usuario{
			Nombre:       a.nombre,
			Email:        a.email,
			PasswordHash: hash,
			Rol:          a.rol,
			Activo:       true,
		}
		if err := s.db.Create(usuario).Error; err != nil {
			return err
		}
		log.Printf("✅ Usuario created: %s (%s)", a.email, a.rol)
	}
	return nil
}

// seedColas seeds demo queues with a weekday schedule
func (s *Seeder) seedColas() error {
	var count int64
	s.db.Model(&models.Cola{}).Count(&count)
	if count > 0 {
		return nil
	}

	colas := []models.Cola{
		{Nombre: "Atención al Cliente", Descripcion: "Consultas generales y soporte", Activa: true},
		{Nombre: "Cajas", Descripcion: "Pagos y cobros", Activa: true},
		{Nombre: "Reclamos", Descripcion: "Gestión de reclamos y devoluciones", Activa: true},
	}

	dias := []string{"LUNES", "MARTES", "MIERCOLES", "JUEVES", "VIERNES"}

	for i := range colas {
		if err := s.db.Create(&colas[i]).Error; err != nil {
			return err
		}
		for _, dia := range dias {
			horario := &models.HorarioCola{
				ColaID:     colas[i].ID,
				DiaSemana:  dia,
				HoraInicio: "09:00",
				HoraFin:    "20:00",
			}
			if err := s.db.Create(horario).Error; err != nil {
				return err
			}
		}
		log.Printf("✅ Cola created: %s", colas[i].Nombre)
	}
	return nil
}

// seedEventos seeds a sample calendar entry tied to the first queue
func (s *Seeder) seedEventos() error {
	var count int64
	s.db.Model(&models.Evento{}).Count(&count)
	if count > 0 {
		return nil
	}

	var cola models.Cola
	if err := s.db.Order("id_cola asc").First(&cola).Error; err != nil {
		return err
	}

	evento := &models.Evento{
		Tipo:        models.TipoPromocion,
		Nombre:      "Apertura SmartLining",
		Descripcion: "Semana de lanzamiento con atención extendida",
		FechaInicio: mustDate("2025-01-13"),
		FechaFin:    mustDate("2025-01-17"),
	}
	if err := s.db.Create(evento).Error; err != nil {
		return err
	}
	join := &models.EventoCola{IDEvento: evento.ID, IDCola: cola.ID}
	if err := s.db.Create(join).Error; err != nil {
		return err
	}

	log.Printf("✅ Evento created: %s", evento.Nombre)
	return nil
}
