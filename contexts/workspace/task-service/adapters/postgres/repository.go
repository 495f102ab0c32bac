package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domainerrors "deskflow/contexts/workspace/task-service/domain/errors"
	"deskflow/contexts/workspace/task-service/ports"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: db, logger: logger}
}

func (r *Repository) AutoMigrate() error {
	return r.db.AutoMigrate(&taskModel{})
}

type taskModel struct {
	TaskID      string `gorm:"primaryKey;column:task_id"`
	Title       string `gorm:"column:title"`
	Description string `gorm:"column:description"`
	Priority    string `gorm:"column:priority"`
	AssignedTo  string `gorm:"column:assigned_to;index"`
	DueDate     *time.Time
	Status      string `gorm:"column:status;index"`
	ActualHours float64
	CompletedAt *time.Time
	CreatedBy   string `gorm:"column:created_by"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (taskModel) TableName() string { return "tasks" }

func (r *Repository) CreateTask(ctx context.Context, task ports.Task) error {
	return r.db.WithContext(ctx).Create(toTaskModel(task)).Error
}

func (r *Repository) ListTasks(ctx context.Context, filter ports.TaskFilter) ([]ports.Task, error) {
	tx := r.db.WithContext(ctx).Model(&taskModel{})
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.AssignedTo != "" {
		tx = tx.Where("assigned_to = ?", filter.AssignedTo)
	}

	var rows []taskModel
	if err := tx.Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]ports.Task, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) GetTask(ctx context.Context, taskID string) (ports.Task, error) {
	var row taskModel
	err := r.db.WithContext(ctx).Where("task_id = ?", taskID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Task{}, domainerrors.ErrTaskNotFound
		}
		return ports.Task{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) UpdateTask(ctx context.Context, task ports.Task) error {
	// Map form: struct-form Updates skips zero values, which would drop
	// legitimate writes like blanking description or assigned_to.
	var dueDate *time.Time
	if !task.DueDate.IsZero() {
		value := task.DueDate
		dueDate = &value
	}
	result := r.db.WithContext(ctx).
		Model(&taskModel{}).
		Where("task_id = ?", task.TaskID).
		Updates(map[string]any{
			"title":        task.Title,
			"description":  task.Description,
			"priority":     task.Priority,
			"assigned_to":  task.AssignedTo,
			"due_date":     dueDate,
			"status":       task.Status,
			"actual_hours": task.ActualHours,
			"completed_at": task.CompletedAt,
			"updated_at":   task.UpdatedAt.UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrTaskNotFound
	}
	return nil
}

func (r *Repository) DeleteTask(ctx context.Context, taskID string) error {
	result := r.db.WithContext(ctx).Where("task_id = ?", taskID).Delete(&taskModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrTaskNotFound
	}
	return nil
}

func toTaskModel(task ports.Task) *taskModel {
	model := &taskModel{
		TaskID:      task.TaskID,
		Title:       task.Title,
		Description: task.Description,
		Priority:    task.Priority,
		AssignedTo:  task.AssignedTo,
		Status:      task.Status,
		ActualHours: task.ActualHours,
		CompletedAt: task.CompletedAt,
		CreatedBy:   task.CreatedBy,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
	if !task.DueDate.IsZero() {
		dueDate := task.DueDate
		model.DueDate = &dueDate
	}
	return model
}

func (m taskModel) toEntity() ports.Task {
	task := ports.Task{
		TaskID:      m.TaskID,
		Title:       m.Title,
		Description: m.Description,
		Priority:    m.Priority,
		AssignedTo:  m.AssignedTo,
		Status:      m.Status,
		ActualHours: m.ActualHours,
		CompletedAt: m.CompletedAt,
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.DueDate != nil {
		task.DueDate = *m.DueDate
	}
	return task
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string { return uuid.NewString() }
