package utils

import "time"

// Clock devolve o instante atual; permite fixar datas nos testes
type Clock func() time.Time

// SystemClock usa o relógio do sistema
func SystemClock() time.Time {
	return time.Now()
}

// FixedClock devolve sempre a mesma data
func FixedClock(date time.Time) Clock {
	return func() time.Time {
		return date
	}
}

// ParseMonth interpreta um mês no formato yyyy-mm e devolve o primeiro dia em UTC
func ParseMonth(month string) (time.Time, error) {
	return time.Parse("2006-01", month)
}

// SameOrBeforeMonth indica se date cai no mesmo mês de ref ou antes dele
func SameOrBeforeMonth(date, ref time.Time) bool {
	ref = ref.In(date.Location())
	if date.Year() != ref.Year() {
		return date.Year() < ref.Year()
	}
	return date.Month() <= ref.Month()
}
