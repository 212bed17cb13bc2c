package note_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	otelMocks "frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/note/model/dto"
	"frontdesk/internal/domains/note/service/mocks"
	"frontdesk/internal/handlers/note"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandler_PutNote(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		setupMock func(svc *mocks.MockNote)
		wantCode  int
	}{
		{
			name: "saved",
			path: "/notes/2024-01-10",
			setupMock: func(svc *mocks.MockNote) {
				svc.EXPECT().Put(gomock.Any(), dto.PutNoteRequest{Content: "late checkout 204"}, "2024-01-10").
					Return(dto.NoteResponse{Date: "2024-01-10", Content: "late checkout 204"}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "not a date",
			path:      "/notes/today",
			setupMock: func(_ *mocks.MockNote) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := mocks.NewMockNote(ctrl)
			tt.setupMock(svc)

			handler := note.New(svc, otelMocks.NewOtel())
			router := chi.NewRouter()
			handler.Router(router)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, tt.path, strings.NewReader(`{"content":"late checkout 204"}`)))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
