package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AdityaSah2030/Attendance-System/internal/config"
	"github.com/AdityaSah2030/Attendance-System/internal/logger"
	"github.com/AdityaSah2030/Attendance-System/internal/spreadsheet"
	"github.com/AdityaSah2030/Attendance-System/internal/table"
)

// seed-roster writes a sample roster workbook into the roster directory
// so the server has something to load during local development.
func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	names := []string{
		"Aarav Sharma", "Diya Patel", "Vihaan Gupta", "Ananya Singh", "Arjun Mehta",
		"Ishita Verma", "Kabir Joshi", "Myra Agarwal", "Reyansh Kumar", "Saanvi Reddy",
		"Advait Nair", "Kiara Kapoor", "Vivaan Malhotra", "Aadhya Iyer", "Shaurya Das",
		"Navya Choudhary", "Atharv Rao", "Anika Bhatt", "Dhruv Saxena", "Pari Mishra",
	}

	fmt.Printf("=== Seeding %d Students ===\n", len(names))

	rolls := make([]any, len(names))
	students := make([]any, len(names))
	for i, name := range names {
		rolls[i] = int64(101 + i)
		students[i] = name
	}

	t := &table.Table{Columns: []table.Column{
		{Name: "Roll No", Cells: rolls},
		{Name: "Student Name", Cells: students},
	}}

	if err := os.MkdirAll(cfg.RosterDir, 0o755); err != nil {
		log.Fatal().Err(err).Msg("Failed to create roster directory")
	}

	path := filepath.Join(cfg.RosterDir, "Class-10A.xlsx")
	if err := spreadsheet.Write(path, t); err != nil {
		log.Fatal().Err(err).Msg("Failed to write sample roster")
	}

	fmt.Printf("Wrote %s\n", path)
	fmt.Println("Load it with: POST /api/v1/classes {\"path\": \"" + path + "\"}")
}
