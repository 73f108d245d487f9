// Package identity resolves a role selection plus minimal input into a full
// user profile. There is no server-side verification: the admin identity is
// fixed, clubs come from the registry, and students are decoded from their
// university seat number.
package identity

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"eventPortal/internal/models"
)

// ErrInvalidSeatNumber is returned when a seat number does not match the
// expected PACE format (e.g. 4PA21CS001).
var ErrInvalidSeatNumber = errors.New("invalid seat number format")

var seatNumberPattern = regexp.MustCompile(`^4PA\d{2}[A-Z]{2}\d{3}$`)

var departments = map[string]string{
	"CS": "Computer Science",
	"IS": "Information Science",
	"EC": "Electronics & Comm.",
	"ME": "Mechanical",
	"CV": "Civil",
	"BT": "Biotechnology",
	"AI": "Artificial Intelligence",
}

const emailDomain = "pace.edu.in"

// ResolveAdmin returns the fixed administrator identity.
func ResolveAdmin() models.User {
	return models.User{
		ID:     "admin1",
		Name:   "PACE Administrator",
		Email:  "admin@" + emailDomain,
		Role:   models.RoleAdmin,
		Avatar: "https://ui-avatars.com/api/?name=Admin&background=0D8ABC&color=fff",
	}
}

// ResolveClub looks the club up in the registry. An unknown id falls back to
// the first registry entry, so club login never fails.
func ResolveClub(clubID string) models.User {
	club := Clubs[0]
	for _, c := range Clubs {
		if c.ID == clubID {
			club = c
			break
		}
	}

	return models.User{
		ID:     club.ID,
		Name:   club.Name,
		Email:  club.Email,
		Role:   models.RoleClub,
		Avatar: club.Avatar,
	}
}

// ResolveStudent decodes a seat number into a student identity. The seat
// number encodes the admission year (positions 3-4) and department code
// (positions 5-6); the name comes from the roster or a placeholder.
func ResolveStudent(seatNumber string) (models.User, error) {
	usn := strings.ToUpper(strings.TrimSpace(seatNumber))

	if !seatNumberPattern.MatchString(usn) {
		return models.User{}, fmt.Errorf("%w: %q", ErrInvalidSeatNumber, seatNumber)
	}

	yearStr := usn[3:5]
	deptCode := usn[5:7]

	department, ok := departments[deptCode]
	if !ok {
		department = "Engineering"
	}

	name, ok := Roster[usn]
	if !ok {
		name = "Student " + usn
	}

	return models.User{
		ID:         "student_" + usn,
		Name:       name,
		Email:      strings.ToLower(usn) + "@" + emailDomain,
		Role:       models.RoleStudent,
		Avatar:     "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=22c55e&color=fff",
		SeatNumber: usn,
		Department: department,
		Batch:      "20" + yearStr + " Batch",
	}, nil
}
