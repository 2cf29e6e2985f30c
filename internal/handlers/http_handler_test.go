package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/diegoclair/prep-rotation/internal/domain/entity"
	"github.com/diegoclair/prep-rotation/internal/domain/schedule"
	"github.com/diegoclair/prep-rotation/internal/handlers/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var thursday = entity.Suggestion{Week: 2, DayShort: "thu", DayLabel: "Thursday"}

func TestAPIHandler(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		buildMocks func(m test.ServiceMocks)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "Should report health",
			method:     http.MethodGet,
			target:     "/health",
			wantStatus: http.StatusOK,
			wantBody:   "OK",
		},
		{
			name:   "Should return the suggestion",
			method: http.MethodGet,
			target: "/api/suggestion",
			buildMocks: func(m test.ServiceMocks) {
				m.PrepServiceMock.EXPECT().Suggest().Return(thursday).Times(1)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"week":2,"dayShort":"thu","dayLabel":"Thursday"}`,
		},
		{
			name:   "Should render the suggestion as text",
			method: http.MethodGet,
			target: "/api/suggestion.txt",
			buildMocks: func(m test.ServiceMocks) {
				m.PrepServiceMock.EXPECT().Suggest().Return(thursday).Times(1)
			},
			wantStatus: http.StatusOK,
			wantBody:   "Week 2 · Thursday",
		},
		{
			name:   "Should list all options without q",
			method: http.MethodGet,
			target: "/api/weekday-options",
			buildMocks: func(m test.ServiceMocks) {
				m.PrepServiceMock.EXPECT().WeekdayOptions().Return(schedule.WeekdayOptions()[:1]).Times(1)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[{"week":1,"day":"mon","dayLabel":"Monday","label":"Week 1 · Monday"}]`,
		},
		{
			name:   "Should filter options with an empty q",
			method: http.MethodGet,
			target: "/api/weekday-options?q=",
			buildMocks: func(m test.ServiceMocks) {
				m.PrepServiceMock.EXPECT().FilterWeekdayOptions("").Return([]entity.WeekdayOption{}).Times(1)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:   "Should resolve a selection against today",
			method: http.MethodGet,
			target: "/api/selection?text=tues",
			buildMocks: func(m test.ServiceMocks) {
				m.PrepServiceMock.EXPECT().
					ResolveSelection("tues", nil).
					Return(&entity.Selection{Week: 2, Day: "tue"}, true).Times(1)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"override":true,"selection":{"week":2,"day":"tue"},"label":"Week 2 · Tuesday"}`,
		},
		{
			name:   "Should resolve a selection against the current week and day",
			method: http.MethodGet,
			target: "/api/selection?text=banana&week=1&day=wed",
			buildMocks: func(m test.ServiceMocks) {
				m.PrepServiceMock.EXPECT().Suggest().Return(thursday).Times(1)
				m.PrepServiceMock.EXPECT().
					ResolveSelection("banana", &entity.Selection{Week: 1, Day: "wed"}).
					Return(&entity.Selection{Week: 1, Day: "wed"}, false).Times(1)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"override":false,"selection":{"week":1,"day":"wed"},"label":"Week 1 · Wednesday"}`,
		},
		{
			name:   "Should reject a non numeric week",
			method: http.MethodGet,
			target: "/api/selection?text=fri&week=two",
			buildMocks: func(m test.ServiceMocks) {
				m.PrepServiceMock.EXPECT().Suggest().Return(thursday).Times(1)
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"week must be a number"}`,
		},
		{
			name:   "Should list locations",
			method: http.MethodGet,
			target: "/api/locations",
			buildMocks: func(m test.ServiceMocks) {
				m.PrepServiceMock.EXPECT().Locations().Return([]string{"Kitchen"}, nil).Times(1)
			},
			wantStatus: http.StatusOK,
			wantBody:   `["Kitchen"]`,
		},
		{
			name:   "Should fail when locations cannot be loaded",
			method: http.MethodGet,
			target: "/api/locations",
			buildMocks: func(m test.ServiceMocks) {
				m.PrepServiceMock.EXPECT().Locations().Return(nil, errors.New("db down")).Times(1)
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"failed to load locations"}`,
		},
		{
			name:   "Should filter items by every location param",
			method: http.MethodGet,
			target: "/api/items?location=Kitchen&location=Room+A",
			buildMocks: func(m test.ServiceMocks) {
				m.PrepServiceMock.EXPECT().
					FilterItems([]string{"Kitchen", "Room A"}).
					Return([]entity.Item{{"name": "Soup", "location": "Kitchen"}}, nil).Times(1)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[{"location":"Kitchen","name":"Soup"}]`,
		},
		{
			name:   "Should not filter items without location params",
			method: http.MethodGet,
			target: "/api/items",
			buildMocks: func(m test.ServiceMocks) {
				m.PrepServiceMock.EXPECT().
					FilterItems(gomock.Nil()).
					Return([]entity.Item{}, nil).Times(1)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:   "Should sync items",
			method: http.MethodPost,
			target: "/api/items/sync",
			buildMocks: func(m test.ServiceMocks) {
				m.PrepServiceMock.EXPECT().SyncItems(gomock.Any()).Return(3, nil).Times(1)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"count":3}`,
		},
		{
			name:   "Should surface sync failures",
			method: http.MethodPost,
			target: "/api/items/sync",
			buildMocks: func(m test.ServiceMocks) {
				m.PrepServiceMock.EXPECT().
					SyncItems(gomock.Any()).
					Return(0, errors.New("failed to load /items.json: status 404")).Times(1)
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   `{"error":"failed to load /items.json: status 404"}`,
		},
		{
			name:       "Should reject the wrong method",
			method:     http.MethodGet,
			target:     "/api/items/sync",
			wantStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, mux, ctrl := test.GetAPIServerTest(t)
			defer ctrl.Finish()

			if tt.buildMocks != nil {
				tt.buildMocks(m)
			}

			req := httptest.NewRequest(tt.method, tt.target, nil)
			resp := test.CreateTestRecorder()

			mux.ServeHTTP(resp, req)

			require.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantBody == "" {
				return
			}
			if json.Valid([]byte(tt.wantBody)) {
				assert.JSONEq(t, tt.wantBody, resp.Body.String())
				return
			}
			assert.Equal(t, tt.wantBody, resp.Body.String())
		})
	}
}
