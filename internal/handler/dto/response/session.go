package response

import (
	"expo-gateway/internal/usecase/readmodel"
)

type LoginResponse struct {
	Session *readmodel.SessionRM `json:"session"`
}
