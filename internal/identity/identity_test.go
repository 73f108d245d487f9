package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventPortal/internal/models"
)

func TestResolveStudent(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		seatNumber     string
		wantErr        bool
		wantName       string
		wantDepartment string
		wantBatch      string
	}{
		{
			name:           "Known roster student",
			seatNumber:     "4PA21CS001",
			wantName:       "Aditya Rao",
			wantDepartment: "Computer Science",
			wantBatch:      "2021 Batch",
		},
		{
			name:           "Lowercase input is normalized",
			seatNumber:     "4pa21cs045",
			wantName:       "Priya Shetty",
			wantDepartment: "Computer Science",
			wantBatch:      "2021 Batch",
		},
		{
			name:           "Unknown roster entry gets placeholder name",
			seatNumber:     "4PA22EC099",
			wantName:       "Student 4PA22EC099",
			wantDepartment: "Electronics & Comm.",
			wantBatch:      "2022 Batch",
		},
		{
			name:           "Unknown department code falls back to Engineering",
			seatNumber:     "4PA21XY100",
			wantName:       "Student 4PA21XY100",
			wantDepartment: "Engineering",
			wantBatch:      "2021 Batch",
		},
		{
			name:       "Wrong college prefix",
			seatNumber: "9XX00ZZ000",
			wantErr:    true,
		},
		{
			name:       "Too short",
			seatNumber: "4PA21CS1",
			wantErr:    true,
		},
		{
			name:       "Digits in department position",
			seatNumber: "4PA2121001",
			wantErr:    true,
		},
		{
			name:       "Empty",
			seatNumber: "",
			wantErr:    true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			user, err := ResolveStudent(tc.seatNumber)

			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidSeatNumber)
				assert.Empty(t, user.ID)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, models.RoleStudent, user.Role)
			assert.Equal(t, tc.wantName, user.Name)
			assert.Equal(t, tc.wantDepartment, user.Department)
			assert.Equal(t, tc.wantBatch, user.Batch)
		})
	}
}

func TestResolveStudentSynthesizedFields(t *testing.T) {
	t.Parallel()

	user, err := ResolveStudent("4PA21IS022")
	require.NoError(t, err)

	assert.Equal(t, "student_4PA21IS022", user.ID)
	assert.Equal(t, "4pa21is022@pace.edu.in", user.Email)
	assert.Equal(t, "4PA21IS022", user.SeatNumber)
}

func TestResolveDepartmentTable(t *testing.T) {
	t.Parallel()

	for code, want := range map[string]string{
		"CS": "Computer Science",
		"IS": "Information Science",
		"EC": "Electronics & Comm.",
		"ME": "Mechanical",
		"CV": "Civil",
		"BT": "Biotechnology",
		"AI": "Artificial Intelligence",
	} {
		user, err := ResolveStudent("4PA23" + code + "777")
		require.NoError(t, err)
		assert.Equal(t, want, user.Department, "department code %s", code)
		assert.Equal(t, "2023 Batch", user.Batch)
	}
}

func TestResolveAdmin(t *testing.T) {
	t.Parallel()

	admin := ResolveAdmin()

	assert.Equal(t, "admin1", admin.ID)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.Equal(t, "admin@pace.edu.in", admin.Email)
}

func TestResolveClub(t *testing.T) {
	t.Parallel()

	t.Run("Known club", func(t *testing.T) {
		user := ResolveClub("club_glug")

		assert.Equal(t, "club_glug", user.ID)
		assert.Equal(t, "GLUG PACE", user.Name)
		assert.Equal(t, models.RoleClub, user.Role)
	})

	t.Run("Unknown club falls back to first registry entry", func(t *testing.T) {
		user := ResolveClub("club_nope")

		assert.Equal(t, Clubs[0].ID, user.ID)
		assert.Equal(t, Clubs[0].Name, user.Name)
	})
}
