package model

import (
	"time"

	"go-pos-ledger/pkg/apperror"
)

type UserStatus string

const (
	UserActive   UserStatus = "Active"
	UserInactive UserStatus = "Inactive"
)

func (s UserStatus) Valid() bool {
	return s == UserActive || s == UserInactive
}

var ErrInvalidUserStatus = apperror.Validation("Invalid status")

// LastActiveLayout renders lastActive like a US-locale date-time string
const LastActiveLayout = "1/2/2006, 3:04:05 PM"

// User is a staff account. Password holds the stored (hashed) form.
type User struct {
	ID         int        `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Role       string     `json:"role"`
	Status     UserStatus `json:"status"`
	LastActive string     `json:"lastActive"`
	Password   string     `json:"-"`
}

// Touch stamps lastActive with t
func (u User) Touch(t time.Time) User {
	u.LastActive = t.Format(LastActiveLayout)
	return u
}

// UserResponse is used for API responses (without sensitive data)
type UserResponse struct {
	ID         int        `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Role       string     `json:"role"`
	Status     UserStatus `json:"status"`
	LastActive string     `json:"lastActive"`
}

// ToResponse converts User to UserResponse
func (u User) ToResponse() UserResponse {
	return UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		Status:     u.Status,
		LastActive: u.LastActive,
	}
}

func ToResponses(users []User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, u.ToResponse())
	}
	return out
}

// UserPatch updates profile fields; empty values mean "keep"
type UserPatch struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Role  *string `json:"role"`
}

func (p UserPatch) NewEmail() string {
	if p.Email == nil {
		return ""
	}
	return *p.Email
}

func (p UserPatch) Apply(u User) User {
	if p.Name != nil && *p.Name != "" {
		u.Name = *p.Name
	}
	if e := p.NewEmail(); e != "" {
		u.Email = e
	}
	if p.Role != nil && *p.Role != "" {
		u.Role = *p.Role
	}
	return u
}
