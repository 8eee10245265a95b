package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dasdy/datanav/model"
	"github.com/dasdy/datanav/settings"
	"github.com/stretchr/testify/assert"
)

func TestNavigateHandle(t *testing.T) {
	diagonal := model.Objects{settings.ObjectName: {settings.PropertyDiagonal: true}}

	tests := []struct {
		name           string
		method         string
		command        string
		objects        model.Objects
		expectedStatus int
		expectedCursor int
		expectedKeys   []string
	}{
		{
			name:           "down moves within the group",
			method:         http.MethodPost,
			command:        "down",
			expectedStatus: http.StatusSeeOther,
			expectedCursor: 1,
			expectedKeys:   []string{"sales/Product/1"},
		},
		{
			name:           "right jumps to the next group",
			method:         http.MethodPost,
			command:        "right",
			expectedStatus: http.StatusSeeOther,
			expectedCursor: 2,
			expectedKeys:   []string{"sales/Region/2"},
		},
		{
			name:           "rejected move stays put",
			method:         http.MethodPost,
			command:        "up",
			expectedStatus: http.StatusSeeOther,
			expectedCursor: 0,
		},
		{
			name:           "diagonal disabled by default",
			method:         http.MethodPost,
			command:        "diag-se",
			expectedStatus: http.StatusSeeOther,
			expectedCursor: 0,
		},
		{
			name:           "diagonal enabled",
			method:         http.MethodPost,
			command:        "diag-se",
			objects:        diagonal,
			expectedStatus: http.StatusSeeOther,
			expectedCursor: 3,
			expectedKeys:   []string{"sales/Product/1", "sales/Region/3"},
		},
		{
			name:           "unknown command",
			method:         http.MethodPost,
			command:        "sideways",
			expectedStatus: http.StatusBadRequest,
			expectedCursor: 0,
		},
		{
			name:           "wrong method",
			method:         http.MethodGet,
			command:        "down",
			expectedStatus: http.StatusMethodNotAllowed,
			expectedCursor: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler, storage := setupServerHandler(t, tc.objects)

			req := httptest.NewRequest(tc.method, "/navigate?command="+tc.command, nil)
			w := httptest.NewRecorder()

			handler.NavigateHandle(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Equal(t, tc.expectedCursor, handler.Navigator.Cursor())
			assert.Equal(t, tc.expectedKeys, storage.Recorded)

			if tc.expectedStatus == http.StatusSeeOther {
				assert.Equal(t, "/", w.Header().Get("Location"))
			}
		})
	}
}
