package clients

import (
	"errors"
	"strings"
	"time"
)

// MembershipType define los tipos de membresía soportados.
type MembershipType string

const (
	MembershipDay     MembershipType = "dia"
	MembershipMonthly MembershipType = "mensual"
	MembershipAnnual  MembershipType = "anual"
	MembershipVIP     MembershipType = "vip"
)

var ErrInvalidMembershipType = errors.New("tipo de membresía no válido")

// ParseMembershipType normaliza el tipo recibido (case-insensitive).
func ParseMembershipType(s string) (MembershipType, error) {
	switch MembershipType(strings.ToLower(strings.TrimSpace(s))) {
	case MembershipDay:
		return MembershipDay, nil
	case MembershipMonthly:
		return MembershipMonthly, nil
	case MembershipAnnual:
		return MembershipAnnual, nil
	case MembershipVIP:
		return MembershipVIP, nil
	default:
		return "", ErrInvalidMembershipType
	}
}

// MembershipEnd calcula la fecha de fin a partir del tipo y la fecha de inicio.
// vip no tiene vencimiento (nil). El desborde de fin de mes sigue la
// normalización de time.AddDate: 31-ene + 1 mes = 2-mar (3-mar en bisiesto),
// 29-feb + 1 año = 1-mar.
func MembershipEnd(t MembershipType, start time.Time) (*time.Time, error) {
	var end time.Time
	switch t {
	case MembershipDay:
		end = start.AddDate(0, 0, 1)
	case MembershipMonthly:
		end = start.AddDate(0, 1, 0)
	case MembershipAnnual:
		end = start.AddDate(1, 0, 0)
	case MembershipVIP:
		return nil, nil
	default:
		return nil, ErrInvalidMembershipType
	}
	return &end, nil
}
