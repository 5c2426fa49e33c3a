package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientName string `gorm:"size:100;not null" json:"client_name"`

	// BarberID é derivado do serviço na criação e gravado de forma
	// redundante para consultas diretas por barbeiro.
	BarberID uint   `gorm:"index:idx_barber_active" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	// EndsAt é calculado uma única vez no agendamento (snapshot da
	// duração do serviço); nunca é recomputado depois.
	StartsAt time.Time `gorm:"index" json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`

	Status string `gorm:"size:20;default:'scheduled';index:idx_barber_active" json:"status"`

	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
