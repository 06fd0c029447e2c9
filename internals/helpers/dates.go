package helper

import (
	"time"
)

const FechaLayout = "2006-01-02"

// ParseFecha interpreta una fecha "YYYY-MM-DD".
func ParseFecha(s string) (time.Time, bool) {
	t, err := time.Parse(FechaLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// RangoOMesActual devuelve [inicio, fin]; cuando alguno de los bordes falta o
// no parsea, cae al mes calendario actual completo.
func RangoOMesActual(inicio, fin string) (time.Time, time.Time) {
	i, okI := ParseFecha(inicio)
	f, okF := ParseFecha(fin)
	if okI && okF {
		return i, f
	}
	now := time.Now()
	primero := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	ultimo := primero.AddDate(0, 1, -1)
	return primero, ultimo
}

// RangoOAnioActual es igual que RangoOMesActual pero cae al año calendario.
func RangoOAnioActual(inicio, fin string) (time.Time, time.Time) {
	i, okI := ParseFecha(inicio)
	f, okF := ParseFecha(fin)
	if okI && okF {
		return i, f
	}
	now := time.Now()
	primero := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	ultimo := time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
	return primero, ultimo
}

// DiasHabiles cuenta los días de [inicio, fin] inclusive excluyendo sábados y
// domingos. Devuelve 0 si el rango está invertido.
func DiasHabiles(inicio, fin time.Time) int {
	inicio = truncarDia(inicio)
	fin = truncarDia(fin)
	if fin.Before(inicio) {
		return 0
	}
	dias := 0
	for d := inicio; !d.After(fin); d = d.AddDate(0, 0, 1) {
		wd := d.Weekday()
		if wd != time.Saturday && wd != time.Sunday {
			dias++
		}
	}
	return dias
}

// EsFechaFutura indica si f está estrictamente después de hoy (granularidad de día).
func EsFechaFutura(f time.Time) bool {
	return truncarDia(f).After(truncarDia(time.Now()))
}

func truncarDia(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
