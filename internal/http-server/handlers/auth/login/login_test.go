package login

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"eventPortal/internal/http-server/handlers/auth/login/mocks"
	"eventPortal/internal/lib/logger/handlers/slogdiscard"
	"eventPortal/internal/models"
)

func TestLoginHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.SessionWriter)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Admin login",
			requestBody: `{"role": "admin"}`,
			mockSetup: func(m *mocks.SessionWriter) {
				m.On("Login", mock.MatchedBy(func(u models.User) bool {
					return u.Role == models.RoleAdmin && u.ID == "admin1"
				})).Return(nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"admin1"`)
			},
		},
		{
			name:        "Club login with known club",
			requestBody: `{"role": "club", "club_id": "club_glug"}`,
			mockSetup: func(m *mocks.SessionWriter) {
				m.On("Login", mock.MatchedBy(func(u models.User) bool {
					return u.Role == models.RoleClub && u.ID == "club_glug"
				})).Return(nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "GLUG PACE")
			},
		},
		{
			name:        "Club login with unknown club falls back",
			requestBody: `{"role": "club", "club_id": "club_unknown"}`,
			mockSetup: func(m *mocks.SessionWriter) {
				m.On("Login", mock.MatchedBy(func(u models.User) bool {
					return u.Role == models.RoleClub && u.ID == "club_ieee"
				})).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "Student login with valid USN",
			requestBody: `{"role": "student", "usn": "4PA21CS001"}`,
			mockSetup: func(m *mocks.SessionWriter) {
				m.On("Login", mock.MatchedBy(func(u models.User) bool {
					return u.Role == models.RoleStudent &&
						u.Name == "Aditya Rao" &&
						u.Department == "Computer Science" &&
						u.Batch == "2021 Batch"
				})).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Student login with invalid USN",
			requestBody:    `{"role": "student", "usn": "9XX00ZZ000"}`,
			mockSetup:      func(m *mocks.SessionWriter) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Invalid USN format")
			},
		},
		{
			name:           "Missing role",
			requestBody:    `{}`,
			mockSetup:      func(m *mocks.SessionWriter) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Role")
			},
		},
		{
			name:           "Unknown role",
			requestBody:    `{"role": "superuser"}`,
			mockSetup:      func(m *mocks.SessionWriter) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `not json`,
			mockSetup:      func(m *mocks.SessionWriter) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockSessions := mocks.NewSessionWriter(t)
			tc.mockSetup(mockSessions)

			handler := New(logger, mockSessions)

			req, err := http.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}

func TestLoginResponseShape(t *testing.T) {
	t.Parallel()

	mockSessions := mocks.NewSessionWriter(t)
	mockSessions.On("Login", mock.Anything).Return(nil)

	handler := New(slogdiscard.NewDiscardLogger(), mockSessions)

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		bytes.NewBufferString(`{"role": "student", "usn": "4pa21is022"}`))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	assert.Equal(t, "OK", resp.Status)
	assert.Equal(t, "student_4PA21IS022", resp.User.ID)
	assert.Equal(t, "4pa21is022@pace.edu.in", resp.User.Email)
	assert.Equal(t, "Information Science", resp.User.Department)
}
