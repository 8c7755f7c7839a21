package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
)

// SeedUser inserts a user row directly and returns its ID. The password
// hash is a throwaway value; tests that care about login go through the
// service layer instead.
func SeedUser(t *testing.T, db *sql.DB, username, email string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRowContext(context.Background(), `
		INSERT INTO users (username, email, password_hash)
		VALUES ($1, $2, 'x')
		RETURNING id`, username, email).Scan(&id)
	if err != nil {
		t.Fatal("seed user:", err)
	}
	return id
}

// SeedCar inserts a car owned by the given user and returns its ID.
func SeedCar(t *testing.T, db *sql.DB, userID int64, makeName, model string, year int) int64 {
	t.Helper()

	var id int64
	err := db.QueryRowContext(context.Background(), `
		INSERT INTO cars (make, model, year, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`, makeName, model, year, userID).Scan(&id)
	if err != nil {
		t.Fatal("seed car:", err)
	}
	return id
}

// SeedBuildList inserts a build list attached to the given car.
func SeedBuildList(t *testing.T, db *sql.DB, carID int64, name string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRowContext(context.Background(), `
		INSERT INTO build_lists (name, car_id)
		VALUES ($1, $2)
		RETURNING id`, name, carID).Scan(&id)
	if err != nil {
		t.Fatal("seed build list:", err)
	}
	return id
}

// SeedPart inserts a part attached to the given build list.
func SeedPart(t *testing.T, db *sql.DB, buildListID int64, name string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRowContext(context.Background(), `
		INSERT INTO parts (name, build_list_id)
		VALUES ($1, $2)
		RETURNING id`, name, buildListID).Scan(&id)
	if err != nil {
		t.Fatal("seed part:", err)
	}
	return id
}

// UniqueName appends the test name to a base so parallel tests do not
// collide on unique columns.
func UniqueName(t *testing.T, base string) string {
	t.Helper()
	return fmt.Sprintf("%s-%s", base, sanitizeTestName(t.Name()))
}

func sanitizeTestName(name string) string {
	out := make([]byte, 0, len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			out = append(out, c)
		default:
			out = append(out, '-')
		}
	}
	return string(out)
}
