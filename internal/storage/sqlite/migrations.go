package sqlite

import "database/sql"

// schema contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// Course rows keep their entry position so users load back unchanged.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    roll_number INTEGER PRIMARY KEY,
    full_name TEXT NOT NULL,
    age INTEGER NOT NULL,
    address TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS user_courses (
    roll_number INTEGER NOT NULL,
    position INTEGER NOT NULL,
    course TEXT NOT NULL,
    PRIMARY KEY (roll_number, position),
    FOREIGN KEY (roll_number) REFERENCES users(roll_number) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_user_courses_roll_number ON user_courses(roll_number);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
