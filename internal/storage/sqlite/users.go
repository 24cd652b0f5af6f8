package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/coursework/internal/models"
)

// insertUser writes one user and its courses.
func insertUser(ctx context.Context, tx *sql.Tx, user models.User) error {
	_, err := tx.ExecContext(ctx,
		"INSERT INTO users (roll_number, full_name, age, address) VALUES (?, ?, ?, ?)",
		user.RollNumber, user.FullName, user.Age, user.Address,
	)
	if err != nil {
		return fmt.Errorf("failed to insert user %d: %w", user.RollNumber, err)
	}

	for pos, course := range user.Courses {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO user_courses (roll_number, position, course) VALUES (?, ?, ?)",
			user.RollNumber, pos, course,
		)
		if err != nil {
			return fmt.Errorf("failed to insert course for user %d: %w", user.RollNumber, err)
		}
	}
	return nil
}

// getCourses returns every user's courses in entry order, keyed by roll number.
func (s *Store) getCourses(ctx context.Context) (map[int][]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT roll_number, course FROM user_courses ORDER BY roll_number, position",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get courses: %w", err)
	}
	defer rows.Close()

	courses := make(map[int][]string)
	for rows.Next() {
		var (
			roll   int
			course string
		)
		if err := rows.Scan(&roll, &course); err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses[roll] = append(courses[roll], course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate courses: %w", err)
	}
	return courses, nil
}
