package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *testEnv) createMember(t *testing.T, body string) int {
	t.Helper()
	w, resp := e.do(t, "POST", "/api/membros", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return int(decode[map[string]interface{}](t, resp.Data)["id"].(float64))
}

func TestMemberHandler_CRUD(t *testing.T) {
	env := setupRouter(t)

	w, resp := env.do(t, "POST", "/api/membros", `{"nome":"Maria","valor_mensalidade":50,"data_nascimento":"1985-04-12"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[map[string]interface{}](t, resp.Data)
	assert.Equal(t, "2024-03-15", created["data_ingresso"])
	assert.Equal(t, "1985-04-12", created["data_nascimento"])
	assert.Equal(t, true, created["ativo"])
	id := int(created["id"].(float64))
	path := fmt.Sprintf("/api/membros/%d", id)

	w, _ = env.do(t, "POST", "/api/membros", `{"valor_mensalidade":50}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w, _ = env.do(t, "POST", "/api/membros", `{"nome":"João","email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w, _ = env.do(t, "POST", "/api/membros", `{"nome":"João","valor_mensalidade":-1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, resp = env.do(t, "PUT", path, `{"telefone":"(11) 90000-0000","valor_mensalidade":60}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[map[string]interface{}](t, resp.Data)
	assert.Equal(t, "(11) 90000-0000", updated["telefone"])
	assert.Equal(t, 60.0, updated["valor_mensalidade"])
	assert.Equal(t, "Maria", updated["nome"])

	w, resp = env.do(t, "DELETE", path, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, resp.Data)

	w, resp = env.do(t, "GET", "/api/membros", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, string(resp.Data))

	w, resp = env.do(t, "GET", path, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decode[map[string]interface{}](t, resp.Data)["ativo"])

	w, _ = env.do(t, "GET", "/api/membros/42", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	w, _ = env.do(t, "DELETE", "/api/membros/42", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPaymentHandler_Create(t *testing.T) {
	env := setupRouter(t)
	id := env.createMember(t, `{"nome":"Maria","valor_mensalidade":50}`)

	body := fmt.Sprintf(`{"membro_id":%d,"mes_referencia":"2024-03","valor_pago":50,"data_pagamento":"2024-03-05"}`, id)
	w, resp := env.do(t, "POST", "/api/pagamentos-mensalidade", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	payment := decode[map[string]interface{}](t, resp.Data)
	assert.Equal(t, "Maria", payment["membro_nome"])
	assert.Equal(t, "2024-03-05", payment["data_pagamento"])
	paymentID := int(payment["id"].(float64))

	w, resp = env.do(t, "POST", "/api/pagamentos-mensalidade", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Já existe pagamento para este membro neste mês", resp.Message)

	for _, bad := range []string{
		fmt.Sprintf(`{"membro_id":%d,"mes_referencia":"2024-13","valor_pago":50}`, id),
		fmt.Sprintf(`{"membro_id":%d,"mes_referencia":"03/2024","valor_pago":50}`, id),
		fmt.Sprintf(`{"membro_id":%d,"mes_referencia":"2024-04"}`, id),
		fmt.Sprintf(`{"membro_id":%d,"mes_referencia":"2024-04","valor_pago":-5}`, id),
		`{"mes_referencia":"2024-04","valor_pago":50}`,
	} {
		w, _ = env.do(t, "POST", "/api/pagamentos-mensalidade", bad)
		assert.Equal(t, http.StatusBadRequest, w.Code, bad)
	}

	w, _ = env.do(t, "POST", "/api/pagamentos-mensalidade", `{"membro_id":999,"mes_referencia":"2024-04","valor_pago":50}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// without data_pagamento the payment is dated today
	w, resp = env.do(t, "POST", "/api/pagamentos-mensalidade", fmt.Sprintf(`{"membro_id":%d,"mes_referencia":"2024-02","valor_pago":0}`, id))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "2024-03-15", decode[map[string]interface{}](t, resp.Data)["data_pagamento"])

	w, resp = env.do(t, "GET", fmt.Sprintf("/api/membros/%d/pagamentos", id), "")
	require.Equal(t, http.StatusOK, w.Code)
	history := decode[[]map[string]interface{}](t, resp.Data)
	require.Len(t, history, 2)
	assert.Equal(t, "2024-03", history[0]["mes_referencia"])
	assert.Equal(t, "2024-02", history[1]["mes_referencia"])

	w, resp = env.do(t, "DELETE", fmt.Sprintf("/api/pagamentos-mensalidade/%d", paymentID), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, resp.Data)
	w, _ = env.do(t, "DELETE", fmt.Sprintf("/api/pagamentos-mensalidade/%d", paymentID), "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, resp = env.do(t, "GET", "/api/pagamentos-mensalidade", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]interface{}](t, resp.Data), 1)
}

func TestMemberHandler_DelinquentsAndSummary(t *testing.T) {
	env := setupRouter(t)
	maria := env.createMember(t, `{"nome":"Maria","valor_mensalidade":50}`)
	env.createMember(t, `{"nome":"João","valor_mensalidade":30}`)
	env.createMember(t, `{"nome":"Ana","valor_mensalidade":0}`)

	w, _ := env.do(t, "POST", "/api/pagamentos-mensalidade",
		fmt.Sprintf(`{"membro_id":%d,"mes_referencia":"2024-03","valor_pago":50}`, maria))
	require.Equal(t, http.StatusCreated, w.Code)

	w, resp := env.do(t, "GET", "/api/membros/inadimplentes", "")
	require.Equal(t, http.StatusOK, w.Code)
	delinquents := decode[[]map[string]interface{}](t, resp.Data)
	require.Len(t, delinquents, 1)
	assert.Equal(t, "João", delinquents[0]["nome"])

	w, resp = env.do(t, "GET", "/api/membros/inadimplentes?mes=2024-02", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]interface{}](t, resp.Data), 2)

	w, _ = env.do(t, "GET", "/api/membros/inadimplentes?mes=2024-3", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, resp = env.do(t, "GET", "/api/resumo-membros", "")
	require.Equal(t, http.StatusOK, w.Code)
	summary := decode[map[string]interface{}](t, resp.Data)
	assert.Equal(t, "2024-03", summary["mes_referencia"])
	assert.Equal(t, 3.0, summary["total_membros"])
	assert.Equal(t, 80.0, summary["receita_esperada_mensal"])
	assert.Equal(t, 50.0, summary["receita_mes_atual"])
	assert.Equal(t, 1.0, summary["membros_inadimplentes"])
	assert.InDelta(t, 66.67, summary["percentual_adimplencia"], 0.01)

	// e-mail is off in this router
	w, _ = env.do(t, "POST", "/api/membros/inadimplentes/notificar", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
