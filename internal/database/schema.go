package database

import (
	"context"
	"database/sql"
)

// Bootstrap DDL executed at startup. CREATE TABLE IF NOT EXISTS keeps this
// idempotent; there is no versioned migration tooling in this service.
//
// submitted_by / inspection_by intentionally carry no foreign key to
// users.user_id; they are loose string references.
//
// The unique keys on form_number are the final authority for duplicate
// rejection; the repositories' existence checks are only a fast path for a
// better error message (two concurrent creates can both pass the check).
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		user_id       VARCHAR(50)  NOT NULL,
		phone_number  VARCHAR(15)  NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		full_name     VARCHAR(100) NOT NULL,
		email         VARCHAR(100) NOT NULL,
		is_active     TINYINT(1)   NOT NULL DEFAULT 1,
		created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uq_users_user_id (user_id),
		UNIQUE KEY uq_users_phone_number (phone_number),
		UNIQUE KEY uq_users_email (email)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS wheel_specifications (
		id             BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		form_number    VARCHAR(50) NOT NULL,
		submitted_by   VARCHAR(50) NOT NULL,
		submitted_date VARCHAR(20) NOT NULL,
		tread_diameter_new        VARCHAR(50)  NOT NULL,
		last_shop_issue_size      VARCHAR(50)  NOT NULL,
		condemning_dia            VARCHAR(50)  NOT NULL,
		wheel_gauge               VARCHAR(50)  NOT NULL,
		variation_same_axle       VARCHAR(20)  NOT NULL,
		variation_same_bogie      VARCHAR(20)  NOT NULL,
		variation_same_coach      VARCHAR(20)  NOT NULL,
		wheel_profile             VARCHAR(100) NOT NULL,
		intermediate_wwp          VARCHAR(50)  NOT NULL,
		bearing_seat_diameter     VARCHAR(50)  NOT NULL,
		roller_bearing_outer_dia  VARCHAR(50)  NOT NULL,
		roller_bearing_bore_dia   VARCHAR(50)  NOT NULL,
		roller_bearing_width      VARCHAR(50)  NOT NULL,
		axle_box_housing_bore_dia VARCHAR(50)  NOT NULL,
		wheel_disc_width          VARCHAR(50)  NOT NULL,
		status     VARCHAR(20) NOT NULL DEFAULT 'Saved',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uq_wheel_specifications_form_number (form_number),
		KEY idx_wheel_specifications_submitted_by (submitted_by)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS bogie_checksheets (
		id              BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		form_number     VARCHAR(50) NOT NULL,
		inspection_by   VARCHAR(50) NOT NULL,
		inspection_date VARCHAR(20) NOT NULL,
		bogie_details    JSON NOT NULL,
		bogie_checksheet JSON NOT NULL,
		bmbc_checksheet  JSON NOT NULL,
		status     VARCHAR(20) NOT NULL DEFAULT 'Saved',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uq_bogie_checksheets_form_number (form_number)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema creates the three application tables if they do not exist yet.
// Called once at process startup before the server begins accepting requests.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
