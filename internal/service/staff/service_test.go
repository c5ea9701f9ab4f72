package staff

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	employeeRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/employee"
	housekeepingRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/housekeeping"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelService/internal/service/staff/models"
)

type fakeEmployeeRepo struct {
	employees map[int64]*domain.Employee
	nextID    int64
	deleted   []int64
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[int64]*domain.Employee), nextID: 1}
}

func (f *fakeEmployeeRepo) Create(_ context.Context, employee *domain.Employee) (*domain.Employee, error) {
	created := *employee
	created.ID = f.nextID
	f.nextID++
	f.employees[created.ID] = &created
	return &created, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id int64) (*domain.Employee, error) {
	employee, ok := f.employees[id]
	if !ok {
		return nil, employeeRepo.ErrEmployeeNotFound
	}
	return employee, nil
}

func (f *fakeEmployeeRepo) List(_ context.Context, department *string) ([]*domain.Employee, error) {
	var result []*domain.Employee
	for _, employee := range f.employees {
		if department != nil && employee.Department != *department {
			continue
		}
		result = append(result, employee)
	}
	return result, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, id int64, upd domain.EmployeeUpdate) error {
	employee, ok := f.employees[id]
	if !ok {
		return employeeRepo.ErrEmployeeNotFound
	}
	if upd.Name != nil {
		employee.Name = *upd.Name
	}
	if upd.Position != nil {
		employee.Position = *upd.Position
	}
	if upd.Department != nil {
		employee.Department = *upd.Department
	}
	if upd.Contact != nil {
		employee.Contact = *upd.Contact
	}
	return nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.employees[id]; !ok {
		return employeeRepo.ErrEmployeeNotFound
	}
	delete(f.employees, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeHousekeepingRepo struct {
	tasks         map[int64]*domain.HousekeepingTask
	nextID        int64
	countByWorker map[int64]int
}

func newFakeHousekeepingRepo() *fakeHousekeepingRepo {
	return &fakeHousekeepingRepo{
		tasks:         make(map[int64]*domain.HousekeepingTask),
		nextID:        1,
		countByWorker: make(map[int64]int),
	}
}

func (f *fakeHousekeepingRepo) Create(_ context.Context, task *domain.HousekeepingTask) (*domain.HousekeepingTask, error) {
	created := *task
	created.ID = f.nextID
	f.nextID++
	f.tasks[created.ID] = &created
	f.countByWorker[created.EmployeeID]++
	return &created, nil
}

func (f *fakeHousekeepingRepo) GetByID(_ context.Context, id int64) (*domain.HousekeepingTask, error) {
	task, ok := f.tasks[id]
	if !ok {
		return nil, housekeepingRepo.ErrTaskNotFound
	}
	return task, nil
}

func (f *fakeHousekeepingRepo) List(_ context.Context, filter domain.HousekeepingFilter) ([]*domain.HousekeepingTask, error) {
	var result []*domain.HousekeepingTask
	for _, task := range f.tasks {
		if filter.Status != nil && task.Status != *filter.Status {
			continue
		}
		if filter.Date != nil && !task.TaskDate.Equal(*filter.Date) {
			continue
		}
		result = append(result, task)
	}
	return result, nil
}

func (f *fakeHousekeepingRepo) UpdateStatus(_ context.Context, id int64, status domain.HousekeepingStatus, completedAt *time.Time) error {
	task, ok := f.tasks[id]
	if !ok {
		return housekeepingRepo.ErrTaskNotFound
	}
	task.Status = status
	task.CompletedAt = completedAt
	return nil
}

func (f *fakeHousekeepingRepo) CountByEmployee(_ context.Context, employeeID int64) (int, error) {
	return f.countByWorker[employeeID], nil
}

type fakeRoomRepo struct {
	rooms map[int64]*domain.Room
}

func (f *fakeRoomRepo) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	room, ok := f.rooms[id]
	if !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	return room, nil
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestService(employees *fakeEmployeeRepo, housekeeping *fakeHousekeepingRepo, rooms *fakeRoomRepo, now time.Time) *Service {
	svc := NewService(employees, housekeeping, rooms, nopLogger{})
	svc.timeProvider = &fixedClock{now: now}
	return svc
}

func TestAddEmployee(t *testing.T) {
	employees := newFakeEmployeeRepo()
	svc := newTestService(employees, newFakeHousekeepingRepo(), &fakeRoomRepo{}, day(2026, 7, 1))

	resp, err := svc.AddEmployee(context.Background(), &models.AddEmployeeRequest{
		Name:       "Anna",
		Position:   "housekeeper",
		Department: "housekeeping",
	})
	require.NoError(t, err)
	assert.Equal(t, "Anna", resp.Name)

	_, err = svc.AddEmployee(context.Background(), &models.AddEmployeeRequest{Position: "housekeeper"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.AddEmployee(context.Background(), &models.AddEmployeeRequest{Name: "Anna"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateEmployee(t *testing.T) {
	employees := newFakeEmployeeRepo()
	svc := newTestService(employees, newFakeHousekeepingRepo(), &fakeRoomRepo{}, day(2026, 7, 1))

	created, err := svc.AddEmployee(context.Background(), &models.AddEmployeeRequest{
		Name:     "Anna",
		Position: "housekeeper",
	})
	require.NoError(t, err)

	position := "supervisor"
	resp, err := svc.UpdateEmployee(context.Background(), created.ID, &models.UpdateEmployeeRequest{
		Position: &position,
	})
	require.NoError(t, err)
	assert.Equal(t, "supervisor", resp.Position)
	assert.Equal(t, "Anna", resp.Name)

	_, err = svc.UpdateEmployee(context.Background(), 99, &models.UpdateEmployeeRequest{Position: &position})
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestDeleteEmployeeBlockedByAssignedTasks(t *testing.T) {
	employees := newFakeEmployeeRepo()
	housekeeping := newFakeHousekeepingRepo()
	rooms := &fakeRoomRepo{rooms: map[int64]*domain.Room{1: {ID: 1, RoomNumber: "101"}}}
	svc := newTestService(employees, housekeeping, rooms, day(2026, 7, 1))

	created, err := svc.AddEmployee(context.Background(), &models.AddEmployeeRequest{
		Name:     "Anna",
		Position: "housekeeper",
	})
	require.NoError(t, err)

	_, err = svc.AssignTask(context.Background(), &models.AssignTaskRequest{
		RoomID:     1,
		EmployeeID: created.ID,
		TaskDate:   day(2026, 7, 2),
	})
	require.NoError(t, err)

	err = svc.DeleteEmployee(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrEmployeeAssigned)
	assert.Empty(t, employees.deleted)
}

func TestDeleteEmployee(t *testing.T) {
	employees := newFakeEmployeeRepo()
	svc := newTestService(employees, newFakeHousekeepingRepo(), &fakeRoomRepo{}, day(2026, 7, 1))

	created, err := svc.AddEmployee(context.Background(), &models.AddEmployeeRequest{
		Name:     "Anna",
		Position: "housekeeper",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEmployee(context.Background(), created.ID))
	assert.Equal(t, []int64{created.ID}, employees.deleted)

	err = svc.DeleteEmployee(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestAssignTask(t *testing.T) {
	employees := newFakeEmployeeRepo()
	housekeeping := newFakeHousekeepingRepo()
	rooms := &fakeRoomRepo{rooms: map[int64]*domain.Room{1: {ID: 1, RoomNumber: "101"}}}
	svc := newTestService(employees, housekeeping, rooms, day(2026, 7, 1))

	created, err := svc.AddEmployee(context.Background(), &models.AddEmployeeRequest{
		Name:     "Anna",
		Position: "housekeeper",
	})
	require.NoError(t, err)

	task, err := svc.AssignTask(context.Background(), &models.AssignTaskRequest{
		RoomID:     1,
		EmployeeID: created.ID,
		TaskDate:   day(2026, 7, 2),
	})
	require.NoError(t, err)

	assert.Equal(t, "101", task.RoomNumber)
	assert.Equal(t, "Anna", task.EmployeeName)
	assert.Equal(t, string(domain.HousekeepingStatusPending), task.Status)
	assert.Equal(t, "2026-07-02", task.TaskDate)
}

func TestAssignTaskUnknownRoomOrEmployee(t *testing.T) {
	employees := newFakeEmployeeRepo()
	rooms := &fakeRoomRepo{rooms: map[int64]*domain.Room{1: {ID: 1, RoomNumber: "101"}}}
	svc := newTestService(employees, newFakeHousekeepingRepo(), rooms, day(2026, 7, 1))

	_, err := svc.AssignTask(context.Background(), &models.AssignTaskRequest{
		RoomID:     99,
		EmployeeID: 1,
		TaskDate:   day(2026, 7, 2),
	})
	assert.ErrorIs(t, err, ErrRoomNotFound)

	_, err = svc.AssignTask(context.Background(), &models.AssignTaskRequest{
		RoomID:     1,
		EmployeeID: 99,
		TaskDate:   day(2026, 7, 2),
	})
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestUpdateTaskStatusCompletedStampsTime(t *testing.T) {
	employees := newFakeEmployeeRepo()
	housekeeping := newFakeHousekeepingRepo()
	rooms := &fakeRoomRepo{rooms: map[int64]*domain.Room{1: {ID: 1, RoomNumber: "101"}}}
	now := time.Date(2026, 7, 2, 14, 30, 0, 0, time.UTC)
	svc := newTestService(employees, housekeeping, rooms, now)

	created, err := svc.AddEmployee(context.Background(), &models.AddEmployeeRequest{
		Name:     "Anna",
		Position: "housekeeper",
	})
	require.NoError(t, err)

	task, err := svc.AssignTask(context.Background(), &models.AssignTaskRequest{
		RoomID:     1,
		EmployeeID: created.ID,
		TaskDate:   day(2026, 7, 2),
	})
	require.NoError(t, err)

	resp, err := svc.UpdateTaskStatus(context.Background(), task.ID, string(domain.HousekeepingStatusCompleted))
	require.NoError(t, err)

	assert.Equal(t, string(domain.HousekeepingStatusCompleted), resp.Status)
	require.NotNil(t, resp.CompletedAt)
	assert.Equal(t, now.Format(time.RFC3339), *resp.CompletedAt)

	_, err = svc.UpdateTaskStatus(context.Background(), 99, string(domain.HousekeepingStatusCompleted))
	assert.ErrorIs(t, err, ErrTaskNotFound)

	_, err = svc.UpdateTaskStatus(context.Background(), task.ID, "done")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
