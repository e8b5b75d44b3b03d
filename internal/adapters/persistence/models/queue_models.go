package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Queue System Tables
// ============================================================

// Ticket states
const (
	EstadoEnEspera   = "EN_ESPERA"
	EstadoEnAtencion = "EN_ATENCION"
	EstadoFinalizado = "FINALIZADO"
	EstadoCancelado  = "CANCELADO"
)

// Attention results
const (
	ResultadoAtendido  = "ATENDIDO"
	ResultadoCancelado = "CANCELADO"
)

// Event types
const (
	TipoPromocion = "PROMOCION"
	TipoFestivo   = "FESTIVO"
	TipoEvento    = "EVENTO"
)

// Days of week for schedule entries
var DiasSemana = []string{"LUNES", "MARTES", "MIERCOLES", "JUEVES", "VIERNES", "SABADO", "DOMINGO"}

// ValidDiaSemana reports whether dia is a known day-of-week value.
func ValidDiaSemana(dia string) bool {
	for _, d := range DiasSemana {
		if d == dia {
			return true
		}
	}
	return false
}

// Cola is a named service line customers join
type Cola struct {
	ID            uint          `gorm:"column:id_cola;primaryKey" json:"id_cola"`
	Nombre        string        `gorm:"size:100;uniqueIndex;not null" json:"nombre"`
	Descripcion   string        `gorm:"type:text" json:"descripcion"`
	Activa        bool          `gorm:"default:true" json:"activa"`
	FechaCreacion time.Time     `gorm:"autoCreateTime" json:"fecha_creacion"`
	Horarios      []HorarioCola `gorm:"foreignKey:ColaID" json:"horarios,omitempty"`
}

func (Cola) TableName() string {
	return "colas"
}

// HorarioCola defines an operating window for a queue on one weekday.
// A queue has at most one window per weekday.
type HorarioCola struct {
	ID         uint   `gorm:"column:id_horario;primaryKey" json:"id_horario"`
	ColaID     uint   `gorm:"column:id_cola;not null;uniqueIndex:idx_horario_cola_dia" json:"id_cola"`
	DiaSemana  string `gorm:"column:dia_semana;size:10;not null;uniqueIndex:idx_horario_cola_dia" json:"dia_semana"`
	HoraInicio string `gorm:"column:hora_inicio;size:5;not null" json:"hora_inicio"`
	HoraFin    string `gorm:"column:hora_fin;size:5;not null" json:"hora_fin"`
	Cola       *Cola  `gorm:"foreignKey:ColaID" json:"cola,omitempty"`
}

func (HorarioCola) TableName() string {
	return "horarios_cola"
}

// Turno is one customer's place in a queue. NumeroTurno is unique per
// queue and strictly increasing with creation order; the composite
// index backstops the sequencer's row lock.
type Turno struct {
	ID                      uint        `gorm:"column:id_turno;primaryKey" json:"id_turno"`
	ColaID                  uint        `gorm:"column:id_cola;not null;uniqueIndex:idx_turno_cola_numero" json:"id_cola"`
	ClienteID               uint        `gorm:"column:id_cliente;not null;index" json:"id_cliente"`
	NumeroTurno             int         `gorm:"column:numero_turno;not null;uniqueIndex:idx_turno_cola_numero" json:"numero_turno"`
	Estado                  string      `gorm:"size:15;default:'EN_ESPERA';index" json:"estado"`
	FechaHoraCreacion       time.Time   `gorm:"column:fecha_hora_creacion;autoCreateTime;index" json:"fecha_hora_creacion"`
	FechaHoraLlamada        *time.Time  `gorm:"column:fecha_hora_llamada" json:"fecha_hora_llamada"`
	FechaHoraInicioAtencion *time.Time  `gorm:"column:fecha_hora_inicio_atencion" json:"fecha_hora_inicio_atencion"`
	FechaHoraFinAtencion    *time.Time  `gorm:"column:fecha_hora_fin_atencion" json:"fecha_hora_fin_atencion"`
	Cola                    *Cola       `gorm:"foreignKey:ColaID" json:"cola,omitempty"`
	Cliente                 *Cliente    `gorm:"foreignKey:ClienteID" json:"cliente,omitempty"`
	Atencion                *Atencion   `gorm:"foreignKey:TurnoID" json:"atencion,omitempty"`
	Valoracion              *Valoracion `gorm:"foreignKey:TurnoID" json:"valoracion,omitempty"`
}

func (Turno) TableName() string {
	return "turnos"
}

// Terminal reports whether the ticket reached a final state.
func (t *Turno) Terminal() bool {
	return t.Estado == EstadoFinalizado || t.Estado == EstadoCancelado
}

// Atencion records an employee servicing a ticket, one per ticket
type Atencion struct {
	ID               uint     `gorm:"column:id_atencion;primaryKey" json:"id_atencion"`
	TurnoID          uint     `gorm:"column:id_turno;uniqueIndex;not null" json:"id_turno"`
	EmpleadoID       uint     `gorm:"column:id_empleado;not null;index" json:"id_empleado"`
	DuracionAtencion *int     `gorm:"column:duracion_atencion" json:"duracion_atencion"`
	Resultado        string   `gorm:"size:15;not null" json:"resultado"`
	Turno            *Turno   `gorm:"foreignKey:TurnoID" json:"turno,omitempty"`
	Empleado         *Usuario `gorm:"foreignKey:EmpleadoID" json:"empleado,omitempty"`
}

func (Atencion) TableName() string {
	return "atenciones"
}

// Valoracion is a 1-5 customer satisfaction score, at most one per ticket
type Valoracion struct {
	ID              uint      `gorm:"column:id_valoracion;primaryKey" json:"id_valoracion"`
	TurnoID         uint      `gorm:"column:id_turno;uniqueIndex;not null" json:"id_turno"`
	Puntuacion      int       `gorm:"not null" json:"puntuacion"`
	Comentario      *string   `gorm:"type:text" json:"comentario"`
	FechaValoracion time.Time `gorm:"column:fecha_valoracion;autoCreateTime" json:"fecha_valoracion"`
	Turno           *Turno    `gorm:"foreignKey:TurnoID" json:"-"`
}

func (Valoracion) TableName() string {
	return "valoraciones"
}

// Evento is a promotional or holiday calendar entry associated with queues
type Evento struct {
	ID          uint      `gorm:"column:id_evento;primaryKey" json:"id_evento"`
	Tipo        string    `gorm:"size:15;not null" json:"tipo"`
	Nombre      string    `gorm:"size:100;uniqueIndex;not null" json:"nombre"`
	Descripcion string    `gorm:"type:text" json:"descripcion"`
	FechaInicio time.Time `gorm:"column:fecha_inicio;type:date;not null" json:"fecha_inicio"`
	FechaFin    time.Time `gorm:"column:fecha_fin;type:date;not null" json:"fecha_fin"`
	Colas       []Cola    `gorm:"-" json:"colas,omitempty"`
}

func (Evento) TableName() string {
	return "eventos"
}

// EventoCola is the join entity between events and queues
type EventoCola struct {
	IDEvento uint `gorm:"column:id_evento;primaryKey" json:"id_evento"`
	IDCola   uint `gorm:"column:id_cola;primaryKey" json:"id_cola"`
}

func (EventoCola) TableName() string {
	return "eventos_colas"
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Usuario{},
		&RefreshToken{},
		&Cliente{},
		&Cola{},
		&HorarioCola{},
		&Turno{},
		&Atencion{},
		&Valoracion{},
		&Evento{},
		&EventoCola{},
	)
}
