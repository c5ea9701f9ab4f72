package domain

import "time"

// Employee represents a hotel staff member
type Employee struct {
	ID         int64
	Name       string
	Position   string
	Department string
	Contact    string
	CreatedAt  time.Time
}

// EmployeeUpdate частичное обновление данных сотрудника
type EmployeeUpdate struct {
	Name       *string
	Position   *string
	Department *string
	Contact    *string
}

// IsEmpty проверяет, что обновление не содержит изменений
func (u EmployeeUpdate) IsEmpty() bool {
	return u.Name == nil && u.Position == nil && u.Department == nil && u.Contact == nil
}
