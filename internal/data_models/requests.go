package dto

type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Reward      int    `json:"reward"`
	Deadline    string `json:"deadline"`
	PostedBy    string `json:"postedBy"`
}

type UpdateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Reward      int    `json:"reward"`
	Deadline    string `json:"deadline"`
}

type ApplyRequest struct {
	UserID string `json:"userId"`
	TaskID uint   `json:"taskId"`
}
