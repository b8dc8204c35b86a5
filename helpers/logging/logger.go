package logging

import (
	"go.uber.org/zap"
)

// New khởi tạo structured logger: production config khi env = "production",
// development config cho các trường hợp còn lại
func New(env string) (*zap.Logger, error) {
	var config zap.Config
	if env == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
	}

	return config.Build()
}
