package types

import (
	"errors"
	"time"
)

// DateFormat формат календарной даты на проводе (YYYY-MM-DD)
const DateFormat = "2006-01-02"

// ErrInvalidDateFormat возвращается при некорректном формате даты
var ErrInvalidDateFormat = errors.New("invalid date string format, expected YYYY-MM-DD")

// DateString календарная дата в формате YYYY-MM-DD без компонента времени
// Используется во всех HTTP запросах и ответах вместо time.Time,
// чтобы исключить таймзону и время суток из wire-формата
type DateString string

// NewDateString создает DateString из time.Time (время суток отбрасывается)
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(DateFormat))
}

// NewDateStringFromString создает DateString из строки с валидацией
func NewDateStringFromString(s string) (DateString, error) {
	d := DateString(s)
	if err := d.Validate(); err != nil {
		return "", err
	}
	return d, nil
}

// Validate проверяет формат даты
func (d DateString) Validate() error {
	if _, err := time.Parse(DateFormat, string(d)); err != nil {
		return ErrInvalidDateFormat
	}
	return nil
}

// IsZero проверяет, что дата не задана
func (d DateString) IsZero() bool {
	return d == ""
}

// String возвращает строковое представление даты
func (d DateString) String() string {
	return string(d)
}

// Time конвертирует дату в time.Time (полночь в указанной локации)
func (d DateString) Time(loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateFormat, string(d), loc)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// IsBefore проверяет, что дата строго раньше другой
// Обе даты должны быть валидными, иначе результат не определен
func (d DateString) IsBefore(other DateString) bool {
	return string(d) < string(other)
}

// IsAfter проверяет, что дата строго позже другой
func (d DateString) IsAfter(other DateString) bool {
	return string(d) > string(other)
}

// AddDays возвращает дату, сдвинутую на n календарных дней
func (d DateString) AddDays(n int) (DateString, error) {
	t, err := time.Parse(DateFormat, string(d))
	if err != nil {
		return "", ErrInvalidDateFormat
	}
	return NewDateString(t.AddDate(0, 0, n)), nil
}
