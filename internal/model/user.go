package model

import "time"

// User represents an application user record as stored in the
// `users` table. Users are provisioned out-of-band (see cmd/seed);
// this API only reads them during login. The json tags are omitted
// here because these structs are used by the repository layer;
// handlers define separate response types so that PasswordHash can
// never leak into a JSON body.
//
// Fields:
//  ID           – primary key identifier of the user.
//  UserID       – external identifier ("user_id_123" format), unique.
//  PhoneNumber  – unique phone number used as the login name.
//  PasswordHash – bcrypt hashed password, never returned to callers.
//  FullName     – display name.
//  Email        – unique email address.
//  IsActive     – whether the account is active.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
	ID           uint64    // users.id
	UserID       string    // users.user_id
	PhoneNumber  string    // users.phone_number
	PasswordHash string    // users.password_hash
	FullName     string    // users.full_name
	Email        string    // users.email
	IsActive     bool      // users.is_active
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}
