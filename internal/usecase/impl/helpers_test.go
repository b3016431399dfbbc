package impl

import (
	"io"
	"log/slog"

	"harvest/internal/domain/entity"

	"github.com/google/uuid"
)

// newTestLogger returns a logger that discards everything.
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func farmerPrincipal() entity.Principal {
	return entity.Principal{UserID: uuid.New(), Roles: entity.Roles{entity.RoleFarmer}}
}

func consumerPrincipal() entity.Principal {
	return entity.Principal{UserID: uuid.New(), Roles: entity.Roles{entity.RoleConsumer}}
}

func adminPrincipal() entity.Principal {
	return entity.Principal{UserID: uuid.New(), Roles: entity.Roles{entity.RoleAdmin}}
}
