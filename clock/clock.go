// Package clock отделяет "сегодня" от системного времени, чтобы сезонную
// логику можно было тестировать.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

// System возвращает текущее время
type System struct{}

func (System) Now() time.Time { return time.Now() }

// Fixed всегда возвращает одно и то же время
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time { return f.T }

// Today возвращает полночь текущего дня по UTC
func Today(c Clock) time.Time {
	return Day(c.Now())
}

// Day обрезает время до полуночи календарного дня по UTC
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
