package converter

import (
	"github.com/avGenie/go-food-bag/internal/app/entity"
	"github.com/avGenie/go-food-bag/internal/app/model"
)

func ConvertUserToResponse(user entity.User) model.UserResponse {
	return model.UserResponse{
		ID:           user.ID.String(),
		FullName:     user.FullName,
		Phone:        user.Phone,
		Email:        user.Email,
		CreatedAt:    formatTime(user.CreatedAt),
		LastModified: formatTime(user.LastModified),
	}
}

func ConvertRegisterRequestToUser(userID entity.UserID, request model.RegisterRequest) entity.User {
	return entity.User{
		ID:       userID,
		FullName: request.FullName,
		Phone:    request.Phone,
		Email:    request.Email,
		Password: request.Password,
	}
}
