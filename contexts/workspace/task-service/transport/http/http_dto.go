package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type TaskDTO struct {
	TaskID      string  `json:"task_id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Priority    string  `json:"priority"`
	AssignedTo  string  `json:"assigned_to,omitempty"`
	DueDate     string  `json:"due_date,omitempty"`
	Status      string  `json:"status"`
	ActualHours float64 `json:"actual_hours,omitempty"`
	CompletedAt string  `json:"completed_at,omitempty"`
	CreatedBy   string  `json:"created_by"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority,omitempty"`
	AssignedTo  string `json:"assigned_to,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
}

type CreateTaskResponse struct {
	Status string  `json:"status"`
	Data   TaskDTO `json:"data"`
}

type ListTasksRequest struct {
	Status     string
	AssignedTo string
}

type ListTasksResponse struct {
	Status string    `json:"status"`
	Data   []TaskDTO `json:"data"`
}

type GetTaskResponse struct {
	Status string  `json:"status"`
	Data   TaskDTO `json:"data"`
}

type UpdateTaskRequest struct {
	Changes map[string]any `json:"changes"`
}

type CompleteTaskRequest struct {
	ActualHours float64 `json:"actual_hours"`
}
