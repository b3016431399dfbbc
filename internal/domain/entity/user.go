// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique "person" or "account".
// It contains only the most fundamental identity information shared across all roles.
type User struct {
	ID              uuid.UUID        // The Global Unique Identifier (GUID) for the user.
	Email           string           // The user's primary contact email, used as a login identifier.
	Name            string           // The user's display name or real name.
	FarmerProfile   *FarmerProfile   // Nil if this person does not hold the 'farmer' role.
	ConsumerProfile *ConsumerProfile // Nil if this person does not hold the 'consumer' role.
	AdminProfile    *AdminProfile    // Nil if this person does not hold the 'admin' role. Admins are seeded, never self-registered.
	CreatedAt       time.Time        // Timestamp of when this user account was created.
	UpdatedAt       time.Time        // Timestamp of the last modification to this user's data.
}

// Roles derives the set of roles from the attached profiles.
func (u *User) Roles() Roles {
	var roles Roles
	if u.FarmerProfile != nil {
		roles = append(roles, RoleFarmer)
	}
	if u.ConsumerProfile != nil {
		roles = append(roles, RoleConsumer)
	}
	if u.AdminProfile != nil {
		roles = append(roles, RoleAdmin)
	}

	return roles
}

// FarmerProfile holds data specific to the "farmer" role.
type FarmerProfile struct {
	UserID       uuid.UUID // Foreign Key that links this profile to a core User entity.
	FarmName     string    // The farm's public display name.
	FarmLocation string    // Free-form description of where the farm operates.
	Bio          string    // A short description of the farm and its practices.
	UpdatedAt    time.Time // Timestamp of the last modification to this profile.
}

// ConsumerProfile holds data specific to the "consumer" role.
type ConsumerProfile struct {
	UserID          uuid.UUID // Foreign Key that links this profile to a core User entity.
	Phone           string    // Contact phone used as the default for order delivery details.
	DefaultAddress  string    // The consumer's default delivery address.
	UpdatedAt       time.Time // Timestamp of the last modification to this profile.
}

// AdminProfile marks an account as a moderator. It carries no extra data today.
type AdminProfile struct {
	UserID    uuid.UUID // Foreign Key that links this profile to a core User entity.
	UpdatedAt time.Time // Timestamp of the last modification to this profile.
}
