package bardelivery

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"

	"github.com/go-petr/barstore/pkg/errorspkg"
	"github.com/go-petr/barstore/pkg/web"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func decode(t *testing.T, recorder *httptest.ResponseRecorder) (web.Response, *data) {
	t.Helper()

	got := &data{}
	res := web.Response{Data: got}

	if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
		t.Fatalf("Decoding response body error: %v", err)
	}

	return res, got
}

func TestDelete(t *testing.T) {
	testCases := []struct {
		name           string
		url            string
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantRows       int64
		wantError      string
	}{
		{
			name: "OK",
			url:  "/bars/5",
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Delete(gomock.Any(), gomock.Eq(int64(5)), gomock.Eq("")).
					Times(1).
					Return(int64(1), nil)
			},
			wantStatusCode: http.StatusOK,
			wantRows:       1,
		},
		{
			name: "WithName",
			url:  "/bars/5?name=b",
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Delete(gomock.Any(), gomock.Eq(int64(5)), gomock.Eq("b")).
					Times(1).
					Return(int64(0), nil)
			},
			wantStatusCode: http.StatusOK,
			wantRows:       0,
		},
		{
			name: "NegativeID",
			url:  "/bars/-1",
			buildStubs: func(service *MockService) {
				service.EXPECT().Delete(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "ID must be at least 1",
		},
		{
			name: "ZeroID",
			url:  "/bars/0",
			buildStubs: func(service *MockService) {
				service.EXPECT().Delete(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "ID field is required",
		},
		{
			name: "InternalServerError",
			url:  "/bars/5",
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Delete(gomock.Any(), gomock.Eq(int64(5)), gomock.Eq("")).
					Times(1).
					Return(int64(0), errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusInternalServerError,
			wantError:      errorspkg.ErrInternal.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// Initialize mocks
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			service := NewMockService(ctrl)
			handler := NewHandler(service)

			server := gin.New()
			server.DELETE("/bars/:id", handler.Delete)

			tc.buildStubs(service)

			// Send request
			req, err := http.NewRequest(http.MethodDelete, tc.url, nil)
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			// Test response
			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res, got := decode(t, recorder)

			if tc.wantStatusCode != http.StatusOK {
				if res.Error != tc.wantError {
					t.Errorf(`resp.Error=%q, want %q`, res.Error, tc.wantError)
				}
				return
			}

			if got.RowsAffected != tc.wantRows {
				t.Errorf("rows_affected=%d, want %d", got.RowsAffected, tc.wantRows)
			}
		})
	}
}

func TestDeleteMany(t *testing.T) {
	testCases := []struct {
		name           string
		body           string
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantRows       int64
		wantError      string
	}{
		{
			name: "OK",
			body: `{"ids":[1,2]}`,
			buildStubs: func(service *MockService) {
				service.EXPECT().
					DeleteMany(gomock.Any(), gomock.Eq([]int64{1, 2})).
					Times(1).
					Return(int64(3), nil)
			},
			wantStatusCode: http.StatusOK,
			wantRows:       3,
		},
		{
			name: "MissingIDs",
			body: `{}`,
			buildStubs: func(service *MockService) {
				service.EXPECT().DeleteMany(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "IDs field is required",
		},
		{
			name: "EmptyIDs",
			body: `{"ids":[]}`,
			buildStubs: func(service *MockService) {
				service.EXPECT().DeleteMany(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "IDs must be at least 1",
		},
		{
			name: "InvalidID",
			body: `{"ids":[1,0]}`,
			buildStubs: func(service *MockService) {
				service.EXPECT().DeleteMany(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "IDs[1] must be at least 1",
		},
		{
			name: "InternalServerError",
			body: `{"ids":[1]}`,
			buildStubs: func(service *MockService) {
				service.EXPECT().
					DeleteMany(gomock.Any(), gomock.Eq([]int64{1})).
					Times(1).
					Return(int64(0), errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusInternalServerError,
			wantError:      errorspkg.ErrInternal.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			service := NewMockService(ctrl)
			handler := NewHandler(service)

			server := gin.New()
			server.POST("/bars/delete", handler.DeleteMany)

			tc.buildStubs(service)

			req, err := http.NewRequest(http.MethodPost, "/bars/delete", bytes.NewBufferString(tc.body))
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res, got := decode(t, recorder)

			if tc.wantStatusCode != http.StatusOK {
				if res.Error != tc.wantError {
					t.Errorf(`resp.Error=%q, want %q`, res.Error, tc.wantError)
				}
				return
			}

			if got.RowsAffected != tc.wantRows {
				t.Errorf("rows_affected=%d, want %d", got.RowsAffected, tc.wantRows)
			}
		})
	}
}
