package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"templo/database/dbtest"
	"templo/logger"
	"templo/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

type testEnv struct {
	router     *gin.Engine
	inventory  *service.InventoryService
	membership *service.MembershipService
	ledger     *service.LedgerService
}

func setupRouter(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	RegisterValidators()

	db := dbtest.SQLite(t)
	log := logger.Nop()
	clock := func() time.Time { return testNow }
	env := &testEnv{
		router:     gin.New(),
		inventory:  service.NewInventoryService(db, log, clock),
		membership: service.NewMembershipService(db, log, clock),
		ledger:     service.NewLedgerService(db, log, clock),
	}

	RegisterRoutes(env.router.Group("/api"), Handlers{
		Materials:    NewMaterialHandler(env.inventory, log),
		Members:      NewMemberHandler(env.membership, service.NewReminderService(env.membership, nil, false, log), log),
		Payments:     NewPaymentHandler(env.membership, log),
		Transactions: NewTransactionHandler(env.ledger, log),
		Reports:      NewReportHandler(service.NewReportService(env.inventory, env.ledger, env.membership), log),
		Taxonomy:     NewTaxonomyHandler(),
	})
	return env
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (e *testEnv) do(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf *bytes.Buffer
	if body != "" {
		buf = bytes.NewBufferString(body)
	} else {
		buf = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var resp envelope
	if w.Header().Get("Content-Type") != xlsxContentType {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	}
	return w, resp
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}
