package models

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// Request модели

// AddEmployeeRequest запрос на добавление сотрудника
type AddEmployeeRequest struct {
	Name       string `json:"name"`
	Position   string `json:"position"`
	Department string `json:"department"`
	Contact    string `json:"contact"`
}

// UpdateEmployeeRequest частичное обновление сотрудника
type UpdateEmployeeRequest struct {
	Name       *string `json:"name,omitempty"`
	Position   *string `json:"position,omitempty"`
	Department *string `json:"department,omitempty"`
	Contact    *string `json:"contact,omitempty"`
}

// AssignTaskRequest запрос на назначение задачи уборки
type AssignTaskRequest struct {
	RoomID     int64     `json:"roomId"`
	EmployeeID int64     `json:"employeeId"`
	TaskDate   time.Time `json:"taskDate"`
	Notes      string    `json:"notes,omitempty"`
}

// ListTasksRequest фильтры задач уборки
type ListTasksRequest struct {
	Status *string    `json:"status,omitempty"`
	Date   *time.Time `json:"date,omitempty"`
}

// Response модели

// EmployeeResponse ответ с данными сотрудника
type EmployeeResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Position   string    `json:"position"`
	Department string    `json:"department"`
	Contact    string    `json:"contact"`
	CreatedAt  time.Time `json:"createdAt"`
}

// EmployeeListResponse ответ со списком сотрудников
type EmployeeListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}

// TaskResponse ответ с данными задачи уборки
type TaskResponse struct {
	ID           int64     `json:"id"`
	RoomID       int64     `json:"roomId"`
	RoomNumber   string    `json:"roomNumber"`
	EmployeeID   int64     `json:"employeeId"`
	EmployeeName string    `json:"employeeName"`
	TaskDate     string    `json:"taskDate"` // "2026-07-01"
	Notes        string    `json:"notes,omitempty"`
	Status       string    `json:"status"`
	CompletedAt  *string   `json:"completedAt,omitempty"` // ISO 8601
	CreatedAt    time.Time `json:"createdAt"`
}

// TaskListResponse ответ со списком задач уборки
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}

// Методы конвертации

// FromDomainEmployee конвертирует domain модель в DTO
func FromDomainEmployee(e *domain.Employee) *EmployeeResponse {
	if e == nil {
		return nil
	}

	return &EmployeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		Position:   e.Position,
		Department: e.Department,
		Contact:    e.Contact,
		CreatedAt:  e.CreatedAt,
	}
}

// FromDomainEmployeeList конвертирует список domain моделей в DTO
func FromDomainEmployeeList(employees []*domain.Employee) *EmployeeListResponse {
	resp := &EmployeeListResponse{
		Employees: make([]EmployeeResponse, 0, len(employees)),
	}

	for _, employee := range employees {
		if employeeResp := FromDomainEmployee(employee); employeeResp != nil {
			resp.Employees = append(resp.Employees, *employeeResp)
		}
	}

	return resp
}

// FromDomainTask конвертирует domain модель в DTO
func FromDomainTask(t *domain.HousekeepingTask) *TaskResponse {
	if t == nil {
		return nil
	}

	resp := &TaskResponse{
		ID:           t.ID,
		RoomID:       t.RoomID,
		RoomNumber:   t.RoomNumber,
		EmployeeID:   t.EmployeeID,
		EmployeeName: t.EmployeeName,
		TaskDate:     t.TaskDate.Format(domain.DateFormat),
		Notes:        t.Notes,
		Status:       string(t.Status),
		CreatedAt:    t.CreatedAt,
	}

	if t.CompletedAt != nil {
		completedStr := t.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &completedStr
	}

	return resp
}

// FromDomainTaskList конвертирует список domain моделей в DTO
func FromDomainTaskList(tasks []*domain.HousekeepingTask) *TaskListResponse {
	resp := &TaskListResponse{
		Tasks: make([]TaskResponse, 0, len(tasks)),
	}

	for _, task := range tasks {
		if taskResp := FromDomainTask(task); taskResp != nil {
			resp.Tasks = append(resp.Tasks, *taskResp)
		}
	}

	return resp
}
