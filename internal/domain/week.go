package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// weekIDPattern valida o formato "{ano}-W{semana}" com a semana sem
// zero à esquerda, exatamente como gravado no banco.
var weekIDPattern = regexp.MustCompile(`^(\d{4})-W([1-9]\d?)$`)

// ErrInvalidWeekID marca toda falha de validação de identificador de
// semana. Os chamadores classificam com errors.Is em vez de inspecionar
// a mensagem.
var ErrInvalidWeekID = errors.New("identificador de semana inválido")

// WeekID identifica a semana de referência de um conjunto de métricas.
type WeekID struct {
	Year int
	Week int
}

// FormatWeekID monta o identificador textual da semana. O número da
// semana não recebe zero à esquerda; o formato precisa ser preservado
// byte a byte por compatibilidade com os dados já gravados, mesmo que
// isso comprometa a ordenação lexicográfica das semanas 1-9.
func FormatWeekID(year, week int) string {
	return fmt.Sprintf("%d-W%d", year, week)
}

// CurrentWeekID retorna o identificador da semana ISO atual.
func CurrentWeekID(now time.Time) string {
	year, week := now.ISOWeek()
	return FormatWeekID(year, week)
}

// ParseWeekID valida e decompõe um identificador de semana.
func ParseWeekID(weekID string) (WeekID, error) {
	matches := weekIDPattern.FindStringSubmatch(weekID)
	if matches == nil {
		return WeekID{}, fmt.Errorf("%w: %q (esperado formato {ano}-W{semana})", ErrInvalidWeekID, weekID)
	}

	year, _ := strconv.Atoi(matches[1])
	week, _ := strconv.Atoi(matches[2])

	if week < 1 || week > 53 {
		return WeekID{}, fmt.Errorf("%w: número de semana fora do intervalo 1-53: %d", ErrInvalidWeekID, week)
	}

	return WeekID{Year: year, Week: week}, nil
}

// Before informa se w antecede other no calendário. A comparação é por
// (ano, semana): a ordem textual dos identificadores não é confiável
// porque as semanas 1-9 não têm zero à esquerda.
func (w WeekID) Before(other WeekID) bool {
	if w.Year != other.Year {
		return w.Year < other.Year
	}
	return w.Week < other.Week
}

// String devolve o identificador no formato textual padrão.
func (w WeekID) String() string {
	return FormatWeekID(w.Year, w.Week)
}
