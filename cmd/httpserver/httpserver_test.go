package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/barstore/internal/barquery"
	"github.com/go-petr/barstore/internal/domain"
	"github.com/go-petr/barstore/internal/test"
	"github.com/go-petr/barstore/pkg/configpkg"
	"github.com/go-petr/barstore/pkg/web"
)

type rowsData struct {
	RowsAffected int64 `json:"rows_affected"`
}

func send(t *testing.T, server *Server, method, url, body string) (int, rowsData) {
	t.Helper()

	req, err := http.NewRequest(method, url, bytes.NewBufferString(body))
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)

	got := rowsData{}
	res := web.Response{Data: &got}
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&res))

	return recorder.Code, got
}

func TestServer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db := test.OpenStore(t)
	test.SeedBar(t, db, 1, "a")
	keep := test.SeedBar(t, db, 2, "b")

	pool := barquery.NewMockPgxConn(ctrl)
	pool.EXPECT().
		Exec(gomock.Any(), gomock.Any(), gomock.Eq(int64(7))).
		Times(1).
		Return(pgconn.NewCommandTag("DELETE 2"), nil)
	pool.EXPECT().
		Exec(gomock.Any(), gomock.Any(), gomock.Eq(int64(8))).
		Times(1).
		Return(pgconn.NewCommandTag("DELETE 1"), nil)

	server := New(db, pool, zerolog.Nop(), configpkg.Config{})

	code, got := send(t, server, http.MethodDelete, "/bars/1", "")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, int64(1), got.RowsAffected)

	code, got = send(t, server, http.MethodDelete, "/bars/2?name=x", "")
	require.Equal(t, http.StatusOK, code)
	require.Zero(t, got.RowsAffected)

	require.Equal(t, []domain.Bar{keep}, test.ListBars(t, db))

	code, got = send(t, server, http.MethodPost, "/bars/delete", `{"ids":[7,8]}`)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, int64(3), got.RowsAffected)
}
