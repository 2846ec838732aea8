package exercises

import "github.com/sqltutorial/sqltutorial/internal/exercises/runner"

// Student is one row of the Students table.
type Student struct {
	StudentID int64
	FirstName string
	LastName  string
	Age       int64
	Major     string
}

const studentsTable = "Students"

const createStudentsTable = `
CREATE TABLE Students (
	StudentID INTEGER PRIMARY KEY,
	FirstName TEXT,
	LastName TEXT,
	Age INTEGER,
	Major TEXT
)`

const insertStudent = "INSERT INTO Students VALUES (?, ?, ?, ?, ?)"

// SeedStudents returns the rows inserted when the table is created.
func SeedStudents() []Student {
	return []Student{
		{StudentID: 1, FirstName: "John", LastName: "Smith", Age: 20, Major: "Computer Science"},
		{StudentID: 2, FirstName: "Jane", LastName: "Doe", Age: 22, Major: "Mathematics"},
		{StudentID: 3, FirstName: "Peter", LastName: "Jones", Age: 21, Major: "Physics"},
		{StudentID: 4, FirstName: "Mary", LastName: "Johnson", Age: 20, Major: "Computer Science"},
		{StudentID: 5, FirstName: "David", LastName: "Williams", Age: 23, Major: "Chemistry"},
	}
}

func (s Student) params() []any {
	return []any{s.StudentID, s.FirstName, s.LastName, s.Age, s.Major}
}

// Exercises returns the five queries, in the order they are run.
func Exercises() []runner.Exercise {
	return []runner.Exercise{
		{
			Description: "Exercise 1: Select all students",
			Query:       "SELECT * FROM Students;",
		},
		{
			Description: "Exercise 2: Select students by major ('Computer Science')",
			Query:       "SELECT * FROM Students WHERE Major = 'Computer Science';",
		},
		{
			Description: "Exercise 3: Select students older than 21",
			Query:       "SELECT * FROM Students WHERE Age > 21;",
		},
		{
			Description: "Exercise 4: Select only FirstName and LastName",
			Query:       "SELECT FirstName, LastName FROM Students;",
		},
		{
			Description: "Exercise 5: Select all students, ordered by Age (descending)",
			Query:       "SELECT * FROM Students ORDER BY Age DESC;",
		},
	}
}
