package domain

import (
	"context"
	"strings"
	"time"
)

type User struct {
	UUID         string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid();column:uuid" json:"id"`
	Username     string     `gorm:"type:varchar(50);not null;column:username" json:"username"`
	Normalized   string     `gorm:"type:varchar(50);unique;not null;column:normalized" json:"-"`
	Email        string     `gorm:"type:varchar(255);unique;not null;column:email" json:"email"`
	PasswordHash string     `gorm:"type:varchar(255);not null;column:password_hash" json:"-"`
	Gold         int        `gorm:"type:int;not null;column:gold" json:"gold"`
	LastTraining *time.Time `gorm:"column:last_training" json:"lastTraining"`
	CreatedAt    time.Time  `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt    time.Time  `gorm:"column:updated_at" json:"updatedAt"`
	Progress     Progress   `gorm:"-" json:"progress"`
}

type SkillLevel struct {
	ID        int    `gorm:"primary_key;auto_increment;column:id" json:"id"`
	OwnerID   string `gorm:"column:owner_id;not null;index:idx_owner_skill,unique" json:"ownerID"`
	SkillName string `gorm:"type:varchar(50);column:skill_name;not null;index:idx_owner_skill,unique" json:"skillName"`
	Level     int    `gorm:"column:level;not null;default:1" json:"level"`
	User      User   `gorm:"foreignkey:OwnerID;references:UUID" json:"-"`
}

func (SkillLevel) TableName() string {
	return "user_skills"
}

// NormalizeUsername возвращает ключ уникальности: trim + lowercase
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

type CreateUserParams struct {
	Username     string
	Email        string
	PasswordHash string
	Progress     Progress
}

type RegisterForm struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

type AvailabilityResponse struct {
	UsernameAvailable bool   `json:"usernameAvailable"`
	EmailAvailable    bool   `json:"emailAvailable"`
	UsernameValid     *bool  `json:"usernameValid,omitempty"`
	UsernameMessage   string `json:"usernameMessage,omitempty"`
}

type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*User, error)
	IsUsernameTaken(ctx context.Context, username string) (bool, error)
	IsEmailTaken(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, params CreateUserParams) (*User, error)
}

type ProgressRepository interface {
	UpdateProgress(ctx context.Context, userID string, progress Progress) (Progress, error)
}
