package catalog

import "time"

// EnrollmentStatus is the student's standing in a course.
type EnrollmentStatus string

const (
	Enrolled  EnrollmentStatus = "enrolled"
	Available EnrollmentStatus = "available"
	Waitlist  EnrollmentStatus = "waitlist"
	Closed    EnrollmentStatus = "closed"
)

// AssignmentStatus tracks an assignment through its lifecycle.
type AssignmentStatus string

const (
	AssignmentUpcoming  AssignmentStatus = "upcoming"
	AssignmentActive    AssignmentStatus = "active"
	AssignmentOverdue   AssignmentStatus = "overdue"
	AssignmentCompleted AssignmentStatus = "completed"
)

type Instructor struct {
	Name           string
	Email          string
	Title          string
	Department     string
	Bio            string
	OfficeHours    string
	OfficeLocation string
}

type Schedule struct {
	Days     []string
	Time     string
	Location string
}

type Material struct {
	Title       string
	Kind        string // pdf, video, link, document
	Size        string
	Description string
	Uploaded    time.Time
}

type Assignment struct {
	Title       string
	Description string
	Due         time.Time
	MaxPoints   int
	Status      AssignmentStatus
	Grade       *int
	Feedback    string
}

type Announcement struct {
	Title     string
	Content   string
	Author    string
	Published time.Time
	Priority  string
	Read      bool
}

type GradeBreakdown struct {
	Assignments   float64
	Midterm       float64
	Final         float64
	Participation float64
}

// Course is the detailed record of a subject the student can enroll in.
type Course struct {
	SubjectID     string
	Name          string
	Code          string
	Description   string
	Instructor    Instructor
	Credits       int
	Semester      string
	Year          int
	Schedule      Schedule
	Status        EnrollmentStatus
	Enrolled      int
	Capacity      int
	Prerequisites []string
	Materials     []Material
	Assignments   []Assignment
	Announcements []Announcement
	Grade         float64
	Breakdown     GradeBreakdown
	Difficulty    Difficulty
}

// Full reports whether the course has no free seats.
func (c Course) Full() bool {
	return c.Enrolled >= c.Capacity
}

// UnreadAnnouncements counts announcements not yet read.
func (c Course) UnreadAnnouncements() int {
	n := 0
	for _, a := range c.Announcements {
		if !a.Read {
			n++
		}
	}
	return n
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func points(n int) *int { return &n }

var courses = []Course{
	{
		SubjectID:   "math",
		Name:        "Advanced Calculus",
		Code:        "MATH 301",
		Description: "Advanced topics in differential and integral calculus, including multivariable calculus, vector analysis, and differential equations.",
		Instructor: Instructor{
			Name:           "Dr. Sarah Chen",
			Email:          "sarah.chen@university.edu",
			Title:          "Professor of Mathematics",
			Department:     "Mathematics Department",
			Bio:            "Specializes in advanced calculus and mathematical analysis with over 15 years of teaching experience.",
			OfficeHours:    "Mon, Wed, Fri 2:00-4:00 PM",
			OfficeLocation: "Math Building, Room 301",
		},
		Credits:  4,
		Semester: "Fall",
		Year:     2024,
		Schedule: Schedule{
			Days:     []string{"Monday", "Wednesday", "Friday"},
			Time:     "10:00 AM - 11:00 AM",
			Location: "Math Building, Room 101",
		},
		Status:        Enrolled,
		Enrolled:      28,
		Capacity:      30,
		Prerequisites: []string{"MATH 201", "MATH 202"},
		Materials: []Material{
			{Title: "Calculus: Early Transcendentals", Kind: "pdf", Size: "15.2 MB", Description: "Main textbook for the course", Uploaded: date(2024, 8, 15)},
			{Title: "Lecture 1: Limits and Continuity", Kind: "video", Description: "Introduction to advanced limit concepts", Uploaded: date(2024, 9, 1)},
		},
		Assignments: []Assignment{
			{Title: "Problem Set 1: Derivatives", Description: "Complete problems 1-20 from Chapter 3", Due: date(2024, 12, 20), MaxPoints: 100, Status: AssignmentActive, Grade: points(85), Feedback: "Good work on most problems. Review chain rule applications."},
			{Title: "Midterm Exam", Description: "Comprehensive exam covering chapters 1-5", Due: date(2024, 12, 25), MaxPoints: 200, Status: AssignmentUpcoming},
		},
		Announcements: []Announcement{
			{Title: "Office Hours Change", Content: "Office hours for this week will be moved to Thursday 2-4 PM due to conference attendance.", Author: "Dr. Sarah Chen", Published: date(2024, 12, 10), Priority: "medium"},
		},
		Grade:      87.5,
		Breakdown:  GradeBreakdown{Assignments: 85, Midterm: 90, Participation: 95},
		Difficulty: Advanced,
	},
	{
		SubjectID:   "physics",
		Name:        "Quantum Mechanics",
		Code:        "PHYS 401",
		Description: "Introduction to quantum mechanics, wave functions, Schrödinger equation, and quantum systems.",
		Instructor: Instructor{
			Name:           "Prof. Michael Rodriguez",
			Email:          "michael.rodriguez@university.edu",
			Title:          "Associate Professor of Physics",
			Department:     "Physics Department",
			Bio:            "Focuses on quantum mechanics and theoretical physics research.",
			OfficeHours:    "Tue, Thu 1:00-3:00 PM",
			OfficeLocation: "Physics Building, Room 205",
		},
		Credits:  4,
		Semester: "Fall",
		Year:     2024,
		Schedule: Schedule{
			Days:     []string{"Tuesday", "Thursday"},
			Time:     "2:00 PM - 3:30 PM",
			Location: "Physics Building, Room 201",
		},
		Status:        Enrolled,
		Enrolled:      25,
		Capacity:      25,
		Prerequisites: []string{"PHYS 301", "MATH 301"},
		Materials: []Material{
			{Title: "Introduction to Quantum Mechanics", Kind: "pdf", Size: "22.1 MB", Description: "Primary textbook by Griffiths", Uploaded: date(2024, 8, 20)},
		},
		Assignments: []Assignment{
			{Title: "Wave Function Analysis", Description: "Analyze the given wave functions and calculate probabilities", Due: date(2024, 12, 22), MaxPoints: 150, Status: AssignmentActive},
		},
		Announcements: []Announcement{
			{Title: "Lab Equipment Update", Content: "New quantum simulation software has been installed in the lab computers.", Author: "Prof. Michael Rodriguez", Published: date(2024, 12, 12), Priority: "low", Read: true},
		},
		Grade:      82.0,
		Breakdown:  GradeBreakdown{Assignments: 80, Midterm: 85, Participation: 88},
		Difficulty: Advanced,
	},
	{
		SubjectID:   "chemistry",
		Name:        "Organic Chemistry II",
		Code:        "CHEM 302",
		Description: "Advanced organic chemistry covering reaction mechanisms, synthesis, and spectroscopy.",
		Instructor: Instructor{
			Name:           "Dr. Emily Watson",
			Email:          "emily.watson@university.edu",
			Title:          "Professor of Chemistry",
			Department:     "Chemistry Department",
			Bio:            "Expert in organic chemistry and biochemical processes.",
			OfficeHours:    "Mon, Wed 10:00 AM-12:00 PM",
			OfficeLocation: "Chemistry Building, Room 150",
		},
		Credits:  3,
		Semester: "Fall",
		Year:     2024,
		Schedule: Schedule{
			Days:     []string{"Monday", "Wednesday", "Friday"},
			Time:     "9:00 AM - 10:00 AM",
			Location: "Chemistry Building, Room 120",
		},
		Status:        Enrolled,
		Enrolled:      22,
		Capacity:      24,
		Prerequisites: []string{"CHEM 301"},
		Materials: []Material{
			{Title: "Organic Chemistry Textbook", Kind: "pdf", Size: "18.7 MB", Description: "Comprehensive organic chemistry reference", Uploaded: date(2024, 8, 18)},
		},
		Assignments: []Assignment{
			{Title: "Synthesis Pathways", Description: "Design synthesis pathways for the given target molecules", Due: date(2024, 12, 21), MaxPoints: 120, Status: AssignmentActive},
		},
		Announcements: []Announcement{
			{Title: "Final Exam Schedule", Content: "The final exam will be held on December 18th at 2:00 PM in the main lecture hall.", Author: "Dr. Emily Watson", Published: date(2024, 12, 8), Priority: "high"},
		},
		Grade:      91.2,
		Breakdown:  GradeBreakdown{Assignments: 92, Midterm: 89, Participation: 95},
		Difficulty: Intermediate,
	},
}

// Courses returns every course.
func Courses() []Course {
	return append([]Course(nil), courses...)
}

// CourseByID returns the course for a subject id.
func CourseByID(subjectID string) (Course, bool) {
	for _, c := range courses {
		if c.SubjectID == subjectID {
			return c, true
		}
	}
	return Course{}, false
}

// CourseFilter selects courses by enrollment status.
type CourseFilter string

const (
	FilterAll       CourseFilter = "all"
	FilterEnrolled  CourseFilter = "enrolled"
	FilterAvailable CourseFilter = "available"
)

// FilterCourses returns the courses matching term (case-insensitive over
// name and code) and filter.
func FilterCourses(term string, filter CourseFilter) []Course {
	var out []Course
	for _, c := range courses {
		switch filter {
		case FilterEnrolled:
			if c.Status != Enrolled {
				continue
			}
		case FilterAvailable:
			if c.Status != Available {
				continue
			}
		}
		if term != "" && !containsFold(c.Name, term) && !containsFold(c.Code, term) {
			continue
		}
		out = append(out, c)
	}
	return out
}
