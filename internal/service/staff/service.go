package staff

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	employeeRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/employee"
	housekeepingRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/housekeeping"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelService/internal/service/staff/models"
)

// Service сервис персонала и уборки
type Service struct {
	employeeRepo     EmployeeRepository
	housekeepingRepo HousekeepingRepository
	roomRepo         RoomRepository
	timeProvider     TimeProvider
	logger           Logger
}

// NewService создает новый экземпляр сервиса персонала
func NewService(
	employeeRepo EmployeeRepository,
	housekeepingRepo HousekeepingRepository,
	roomRepo RoomRepository,
	logger Logger,
) *Service {
	return &Service{
		employeeRepo:     employeeRepo,
		housekeepingRepo: housekeepingRepo,
		roomRepo:         roomRepo,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// ListEmployees получает сотрудников, опционально по отделу
func (s *Service) ListEmployees(ctx context.Context, department *string) (*models.EmployeeListResponse, error) {
	s.logger.Info("ListEmployees: department=%v", department)

	employees, err := s.employeeRepo.List(ctx, department)
	if err != nil {
		s.logger.Error("ListEmployees: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListEmployees - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainEmployeeList(employees), nil
}

// AddEmployee добавляет сотрудника
func (s *Service) AddEmployee(ctx context.Context, req *models.AddEmployeeRequest) (*models.EmployeeResponse, error) {
	s.logger.Info("AddEmployee: name=%s, position=%s, department=%s", req.Name, req.Position, req.Department)

	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.Position == "" {
		return nil, fmt.Errorf("%w: position is required", ErrInvalidInput)
	}

	employee := &domain.Employee{
		Name:       req.Name,
		Position:   req.Position,
		Department: req.Department,
		Contact:    req.Contact,
	}

	created, err := s.employeeRepo.Create(ctx, employee)
	if err != nil {
		s.logger.Error("AddEmployee: repository error: %v", err)
		return nil, fmt.Errorf("%w: AddEmployee - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddEmployee: successfully added employee id=%d", created.ID)
	return models.FromDomainEmployee(created), nil
}

// UpdateEmployee частично обновляет данные сотрудника
func (s *Service) UpdateEmployee(ctx context.Context, id int64, req *models.UpdateEmployeeRequest) (*models.EmployeeResponse, error) {
	s.logger.Info("UpdateEmployee: employee id=%d", id)

	upd := domain.EmployeeUpdate{
		Name:       req.Name,
		Position:   req.Position,
		Department: req.Department,
		Contact:    req.Contact,
	}

	if err := s.employeeRepo.Update(ctx, id, upd); err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			s.logger.Warn("UpdateEmployee: employee id=%d not found", id)
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("UpdateEmployee: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateEmployee - repository error: %v", ErrInternal, err)
	}

	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("UpdateEmployee: failed to reload employee id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateEmployee - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainEmployee(employee), nil
}

// DeleteEmployee удаляет сотрудника
// Удаление запрещено, пока за сотрудником закреплены задачи уборки
func (s *Service) DeleteEmployee(ctx context.Context, id int64) error {
	s.logger.Info("DeleteEmployee: employee id=%d", id)

	assigned, err := s.housekeepingRepo.CountByEmployee(ctx, id)
	if err != nil {
		s.logger.Error("DeleteEmployee: failed to count tasks for employee id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteEmployee - repository error: %v", ErrInternal, err)
	}
	if assigned > 0 {
		s.logger.Warn("DeleteEmployee: employee id=%d has %d assigned tasks", id, assigned)
		return ErrEmployeeAssigned
	}

	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			s.logger.Warn("DeleteEmployee: employee id=%d not found", id)
			return ErrEmployeeNotFound
		}
		s.logger.Error("DeleteEmployee: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteEmployee - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteEmployee: successfully deleted employee id=%d", id)
	return nil
}

// AssignTask назначает задачу уборки: номер и сотрудник должны существовать
func (s *Service) AssignTask(ctx context.Context, req *models.AssignTaskRequest) (*models.TaskResponse, error) {
	s.logger.Info("AssignTask: room=%d, employee=%d, date=%s",
		req.RoomID, req.EmployeeID, req.TaskDate.Format(domain.DateFormat))

	if req.TaskDate.IsZero() {
		return nil, fmt.Errorf("%w: taskDate is required", ErrInvalidInput)
	}
	if len(req.Notes) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	room, err := s.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("AssignTask: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("AssignTask: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: AssignTask - repository error: %v", ErrInternal, err)
	}

	employee, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			s.logger.Warn("AssignTask: employee id=%d not found", req.EmployeeID)
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("AssignTask: failed to get employee id=%d: %v", req.EmployeeID, err)
		return nil, fmt.Errorf("%w: AssignTask - repository error: %v", ErrInternal, err)
	}

	task := &domain.HousekeepingTask{
		RoomID:     req.RoomID,
		EmployeeID: req.EmployeeID,
		TaskDate:   req.TaskDate,
		Notes:      req.Notes,
		Status:     domain.HousekeepingStatusPending,
	}

	created, err := s.housekeepingRepo.Create(ctx, task)
	if err != nil {
		s.logger.Error("AssignTask: repository error: %v", err)
		return nil, fmt.Errorf("%w: AssignTask - repository error: %v", ErrInternal, err)
	}

	created.RoomNumber = room.RoomNumber
	created.EmployeeName = employee.Name

	s.logger.Info("AssignTask: successfully created task id=%d", created.ID)
	return models.FromDomainTask(created), nil
}

// ListTasks получает задачи уборки с опциональной фильтрацией
func (s *Service) ListTasks(ctx context.Context, req *models.ListTasksRequest) (*models.TaskListResponse, error) {
	s.logger.Info("ListTasks: status=%v, date=%v", req.Status, req.Date)

	filter := domain.HousekeepingFilter{Date: req.Date}

	if req.Status != nil {
		status := domain.HousekeepingStatus(*req.Status)
		if !domain.IsValidHousekeepingStatus(status) {
			return nil, fmt.Errorf("%w: unknown task status %q", ErrInvalidInput, *req.Status)
		}
		filter.Status = &status
	}

	tasks, err := s.housekeepingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListTasks: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListTasks - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTaskList(tasks), nil
}

// UpdateTaskStatus обновляет статус задачи уборки
// Переход в completed фиксирует момент завершения
func (s *Service) UpdateTaskStatus(ctx context.Context, id int64, status string) (*models.TaskResponse, error) {
	s.logger.Info("UpdateTaskStatus: task id=%d, status=%s", id, status)

	taskStatus := domain.HousekeepingStatus(status)
	if !domain.IsValidHousekeepingStatus(taskStatus) {
		return nil, fmt.Errorf("%w: unknown task status %q", ErrInvalidInput, status)
	}

	var completedAt *time.Time
	if taskStatus == domain.HousekeepingStatusCompleted {
		now := s.timeProvider.Now()
		completedAt = &now
	}

	if err := s.housekeepingRepo.UpdateStatus(ctx, id, taskStatus, completedAt); err != nil {
		if errors.Is(err, housekeepingRepo.ErrTaskNotFound) {
			s.logger.Warn("UpdateTaskStatus: task id=%d not found", id)
			return nil, ErrTaskNotFound
		}
		s.logger.Error("UpdateTaskStatus: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateTaskStatus - repository error: %v", ErrInternal, err)
	}

	task, err := s.housekeepingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, housekeepingRepo.ErrTaskNotFound) {
			return nil, ErrTaskNotFound
		}
		s.logger.Error("UpdateTaskStatus: failed to reload task id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateTaskStatus - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTask(task), nil
}
