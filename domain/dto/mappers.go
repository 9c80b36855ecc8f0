package dto

import (
	"venturedesk/domain/models"
)

func UserToUserResponse(user *models.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func BusinessToBusinessResponse(business *models.Business) *BusinessResponse {
	if business == nil {
		return nil
	}
	return &BusinessResponse{
		ID:          business.ID,
		UserID:      business.UserID,
		Name:        business.Name,
		Slug:        business.Slug,
		Type:        business.Type,
		Location:    business.Location,
		Industry:    business.Industry,
		Size:        business.Size,
		Description: business.Description,
		FoundedYear: business.FoundedYear,
		Website:     business.Website,
		LogoURL:     business.LogoURL,
		CreatedAt:   business.CreatedAt,
		UpdatedAt:   business.UpdatedAt,
	}
}

func TaskToTaskResponse(task *models.Task) *TaskResponse {
	if task == nil {
		return nil
	}
	tags := []string(task.Tags)
	if tags == nil {
		tags = []string{}
	}
	return &TaskResponse{
		ID:          task.ID,
		BusinessID:  task.BusinessID,
		Title:       task.Title,
		Description: task.Description,
		Frequency:   task.Frequency,
		Priority:    task.Priority,
		Status:      task.Status,
		DueDate:     task.DueDate,
		CompletedAt: task.CompletedAt,
		Category:    task.Category,
		Tags:        tags,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

func TasksToTaskResponses(tasks []*models.Task) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = *TaskToTaskResponse(task)
	}
	return responses
}

func TipToTipResponse(tip *models.Tip) *TipResponse {
	if tip == nil {
		return nil
	}
	return &TipResponse{
		ID:         tip.ID,
		BusinessID: tip.BusinessID,
		Title:      tip.Title,
		Content:    tip.Content,
		Category:   tip.Category,
		Source:     tip.Source,
		CreatedAt:  tip.CreatedAt,
		UpdatedAt:  tip.UpdatedAt,
	}
}

func TipsToTipResponses(tips []*models.Tip) []TipResponse {
	responses := make([]TipResponse, len(tips))
	for i, tip := range tips {
		responses[i] = *TipToTipResponse(tip)
	}
	return responses
}

func BusinessesToBusinessResponses(businesses []*models.Business) []BusinessResponse {
	responses := make([]BusinessResponse, len(businesses))
	for i, business := range businesses {
		responses[i] = *BusinessToBusinessResponse(business)
	}
	return responses
}
