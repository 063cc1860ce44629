package model

import "time"

// ProfileModel is the GORM-specific struct for the 'profiles' table.
type ProfileModel struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	Email     *string
	FullName  *string
	Phone     *string
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}

// UserRoleModel is the GORM-specific struct for the 'user_roles' table.
type UserRoleModel struct {
	ID     string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID string `gorm:"type:uuid;not null;index"`
	Role   string `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserRoleModel) TableName() string {
	return "user_roles"
}

// NewsletterSubscriberModel is the GORM-specific struct for the 'newsletter_subscribers' table.
type NewsletterSubscriberModel struct {
	ID        string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email     string `gorm:"not null;uniqueIndex"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (NewsletterSubscriberModel) TableName() string {
	return "newsletter_subscribers"
}

// ContactMessageModel is the GORM-specific struct for the 'contact_messages' table.
type ContactMessageModel struct {
	ID        string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string `gorm:"not null"`
	Email     string `gorm:"not null"`
	Subject   *string
	Message   string `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ContactMessageModel) TableName() string {
	return "contact_messages"
}
