package main

import (
	"log"
	"os"

	"github.com/go-resty/resty/v2"
)

// Seeds a running server with demo data through the public API:
// a handful of users and courses, a few enrollments and one graded result.
// Usage: go run scripts/seed.go  (BASE_URL overrides the default target)

type registerPayload struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type coursePayload struct {
	Code        string `json:"code"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Credits     int    `json:"credits"`
	Capacity    int    `json:"capacity"`
	Active      bool   `json:"active"`
}

type enrollPayload struct {
	StudentID uint `json:"studentId"`
	CourseID  uint `json:"courseId"`
}

type resultPayload struct {
	EnrollmentID uint     `json:"enrollmentId"`
	Grade        string   `json:"grade"`
	Marks        *float64 `json:"marks"`
}

type envelope struct {
	Status  bool           `json:"status"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

func main() {
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}

	client := resty.New().SetBaseURL(baseURL)

	users := []registerPayload{
		{Email: "alice@example.edu", Username: "alice", Password: "correct-horse-1"},
		{Email: "bob@example.edu", Username: "bob", Password: "correct-horse-2"},
		{Email: "carol@example.edu", Username: "carol", Password: "correct-horse-3"},
	}
	userIDs := make([]uint, 0, len(users))
	for _, u := range users {
		var out envelope
		resp, err := client.R().SetBody(u).SetResult(&out).Post("/auth/register")
		if err != nil {
			log.Fatalf("register %s: %v", u.Username, err)
		}
		if resp.StatusCode() != 201 {
			log.Printf("register %s: %s (%s)", u.Username, resp.Status(), out.Message)
			continue
		}
		id := uint(out.Data["id"].(float64))
		userIDs = append(userIDs, id)
		log.Printf("registered %s as user %d", u.Username, id)
	}

	courses := []coursePayload{
		{Code: "CS101", Title: "Data Structures", Description: "Lists, trees, graphs.", Credits: 4, Capacity: 2, Active: true},
		{Code: "MA201", Title: "Linear Algebra", Description: "Vector spaces and matrices.", Credits: 3, Capacity: 50, Active: true},
	}
	courseIDs := make([]uint, 0, len(courses))
	for _, course := range courses {
		var out envelope
		resp, err := client.R().SetBody(course).SetResult(&out).Post("/courses")
		if err != nil {
			log.Fatalf("create course %s: %v", course.Code, err)
		}
		if resp.StatusCode() != 201 {
			log.Printf("create course %s: %s (%s)", course.Code, resp.Status(), out.Message)
			continue
		}
		id := uint(out.Data["ID"].(float64)) // gorm.Model serializes the key as "ID"
		courseIDs = append(courseIDs, id)
		log.Printf("created course %s as %d", course.Code, id)
	}

	if len(userIDs) < 2 || len(courseIDs) < 1 {
		log.Fatal("not enough seed data created, aborting")
	}

	var enrollmentID uint
	for _, studentID := range userIDs[:2] {
		var out envelope
		resp, err := client.R().
			SetBody(enrollPayload{StudentID: studentID, CourseID: courseIDs[0]}).
			SetResult(&out).
			Post("/enrollments/enroll")
		if err != nil {
			log.Fatalf("enroll user %d: %v", studentID, err)
		}
		if resp.StatusCode() != 201 {
			log.Printf("enroll user %d: %s (%s)", studentID, resp.Status(), out.Message)
			continue
		}
		enrollmentID = uint(out.Data["id"].(float64))
		log.Printf("enrolled user %d (enrollment %d)", studentID, enrollmentID)
	}

	if enrollmentID != 0 {
		marks := 95.5
		var out envelope
		resp, err := client.R().
			SetBody(resultPayload{EnrollmentID: enrollmentID, Grade: "A", Marks: &marks}).
			SetResult(&out).
			Post("/results/update")
		if err != nil {
			log.Fatalf("post result: %v", err)
		}
		log.Printf("posted result for enrollment %d: %s", enrollmentID, resp.Status())
	}

	log.Println("seeding complete")
}
