package impl

import (
	"io"
	"log/slog"

	"backoffice/internal/domain/entity"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func adminSession() *entity.Session {
	return &entity.Session{
		UserID:      uuid.New(),
		Email:       "admin@example.com",
		Roles:       entity.Roles{entity.RoleAdmin},
		AccessToken: "access-token",
	}
}

func operatorSession() *entity.Session {
	return &entity.Session{
		UserID:      uuid.New(),
		Email:       "operator@example.com",
		Roles:       entity.Roles{entity.RoleOperator},
		AccessToken: "access-token",
	}
}
