package domain

import (
	"say-to-plan/internal/repository"
)

// TaskMapper handles conversion between domain tasks and persisted records.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToRecord converts a domain Task to a persisted record.
func (m *TaskMapper) ToRecord(task Task) repository.TaskRecord {
	return repository.TaskRecord{
		ID:          task.ID,
		Description: task.Description,
		Completed:   task.Completed,
		CreatedAt:   task.CreatedAt,
		DueDate:     copyTime(task.DueDate),
		OwnerID:     task.OwnerID,
	}
}

// FromRecord converts a persisted record to a domain Task.
func (m *TaskMapper) FromRecord(record repository.TaskRecord) Task {
	return Task{
		ID:          record.ID,
		Description: record.Description,
		Completed:   record.Completed,
		CreatedAt:   record.CreatedAt,
		DueDate:     copyTime(record.DueDate),
		OwnerID:     record.OwnerID,
	}
}

// ToRecordSlice converts a slice of domain Tasks to records, keeping order.
func (m *TaskMapper) ToRecordSlice(tasks []Task) []repository.TaskRecord {
	records := make([]repository.TaskRecord, len(tasks))
	for i, task := range tasks {
		records[i] = m.ToRecord(task)
	}
	return records
}

// FromRecordSlice converts a slice of records to domain Tasks, keeping order.
func (m *TaskMapper) FromRecordSlice(records []repository.TaskRecord) []Task {
	tasks := make([]Task, len(records))
	for i, record := range records {
		tasks[i] = m.FromRecord(record)
	}
	return tasks
}
