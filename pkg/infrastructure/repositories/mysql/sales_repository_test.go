package mysql

import "testing"

func TestConfig_DSN(t *testing.T) {
	config := Config{
		Host:     "db.internal",
		Port:     "3306",
		User:     "planner",
		Password: "secret",
		Database: "sales",
	}

	want := "planner:secret@tcp(db.internal:3306)/sales?parseTime=true"
	if got := config.DSN(); got != want {
		t.Errorf("Expected DSN %q, got %q", want, got)
	}
}
