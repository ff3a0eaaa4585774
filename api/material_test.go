package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialHandler_CreateAndList(t *testing.T) {
	env := setupRouter(t)

	w, resp := env.do(t, "POST", "/api/materiais", `{"nome":"Vela branca","categoria":"Velas","preco_unitario":2.5,"quantidade_atual":10}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[map[string]interface{}](t, resp.Data)
	assert.Equal(t, "Vela branca", created["nome"])
	assert.Equal(t, "unidade", created["unidade_medida"])
	assert.Equal(t, 25.0, created["valor_total"])
	assert.Equal(t, false, created["estoque_baixo"])
	id := int(created["id"].(float64))

	w, resp = env.do(t, "GET", "/api/materiais", "")
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]map[string]interface{}](t, resp.Data)
	require.Len(t, list, 1)

	w, resp = env.do(t, "GET", fmt.Sprintf("/api/materiais/%d/movimentacoes", id), "")
	require.Equal(t, http.StatusOK, w.Code)
	movements := decode[[]map[string]interface{}](t, resp.Data)
	require.Len(t, movements, 1)
	assert.Equal(t, "entrada", movements[0]["tipo_movimentacao"])
	assert.Equal(t, "Estoque inicial", movements[0]["motivo"])
	assert.Equal(t, "Vela branca", movements[0]["material_nome"])
}

func TestMaterialHandler_CreateValidation(t *testing.T) {
	env := setupRouter(t)

	for _, body := range []string{
		`{"categoria":"Velas","preco_unitario":1}`,
		`{"nome":"Vela","preco_unitario":1}`,
		`{"nome":"Vela","categoria":"Velas"}`,
		`{"nome":"Vela","categoria":"Velas","preco_unitario":-1}`,
		`{"nome":"Vela","categoria":"Velas","preco_unitario":1,"quantidade_atual":-3}`,
		`not json`,
	} {
		w, resp := env.do(t, "POST", "/api/materiais", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	}

	// zero price is a valid price
	w, _ := env.do(t, "POST", "/api/materiais", `{"nome":"Folha","categoria":"Ervas","preco_unitario":0}`)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestMaterialHandler_Move(t *testing.T) {
	env := setupRouter(t)
	_, resp := env.do(t, "POST", "/api/materiais", `{"nome":"Vela","categoria":"Velas","preco_unitario":1,"quantidade_atual":4}`)
	id := int(decode[map[string]interface{}](t, resp.Data)["id"].(float64))
	path := fmt.Sprintf("/api/materiais/%d/movimentar", id)

	w, resp := env.do(t, "POST", path, `{"tipo_movimentacao":"saida","quantidade":3,"motivo":"Gira"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 1.0, decode[map[string]interface{}](t, resp.Data)["quantidade_atual"])

	w, resp = env.do(t, "POST", path, `{"tipo_movimentacao":"saida","quantidade":2,"motivo":"Gira"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Quantidade insuficiente em estoque", resp.Message)

	w, _ = env.do(t, "POST", path, `{"tipo_movimentacao":"doacao","quantidade":2,"motivo":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = env.do(t, "POST", path, `{"tipo_movimentacao":"entrada","quantidade":2}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// quantity zero is accepted
	w, resp = env.do(t, "POST", path, `{"tipo_movimentacao":"ajuste","quantidade":0,"motivo":"Contagem"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 0.0, decode[map[string]interface{}](t, resp.Data)["quantidade_atual"])

	w, _ = env.do(t, "POST", "/api/materiais/999/movimentar", `{"tipo_movimentacao":"entrada","quantidade":1,"motivo":"x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, resp = env.do(t, "GET", fmt.Sprintf("/api/materiais/%d/conferencia", id), "")
	require.Equal(t, http.StatusOK, w.Code)
	rec := decode[map[string]interface{}](t, resp.Data)
	assert.Equal(t, true, rec["consistente"])
	assert.Equal(t, 3.0, rec["movimentacoes"])
}

func TestMaterialHandler_UpdateDeleteAndNotFound(t *testing.T) {
	env := setupRouter(t)
	_, resp := env.do(t, "POST", "/api/materiais", `{"nome":"Vela","categoria":"Velas","preco_unitario":1,"quantidade_atual":8}`)
	id := int(decode[map[string]interface{}](t, resp.Data)["id"].(float64))
	path := fmt.Sprintf("/api/materiais/%d", id)

	// quantidade_atual in an update is ignored
	w, resp := env.do(t, "PUT", path, `{"fornecedor":"Casa das Velas","quantidade_atual":100}`)
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode[map[string]interface{}](t, resp.Data)
	assert.Equal(t, "Casa das Velas", updated["fornecedor"])
	assert.Equal(t, 8.0, updated["quantidade_atual"])
	assert.Equal(t, "Vela", updated["nome"])

	w, resp = env.do(t, "DELETE", path, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, resp.Data)

	w, resp = env.do(t, "GET", "/api/materiais", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, string(resp.Data))

	// still reachable by id
	w, resp = env.do(t, "GET", path, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decode[map[string]interface{}](t, resp.Data)["ativo"])

	w, _ = env.do(t, "GET", "/api/materiais/999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	w, _ = env.do(t, "PUT", "/api/materiais/999", `{"nome":"x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w, _ = env.do(t, "DELETE", "/api/materiais/999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	w, _ = env.do(t, "GET", "/api/materiais/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMaterialHandler_SummaryAndTaxonomy(t *testing.T) {
	env := setupRouter(t)
	env.do(t, "POST", "/api/materiais", `{"nome":"Vela","categoria":"Velas","preco_unitario":2,"quantidade_atual":10}`)
	env.do(t, "POST", "/api/materiais", `{"nome":"Arruda","categoria":"Ervas","preco_unitario":1,"quantidade_atual":2}`)

	w, resp := env.do(t, "GET", "/api/resumo-estoque", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"total_materiais": 2,
		"materiais_baixo_estoque": 1,
		"valor_total_estoque": 22,
		"materiais_por_categoria": [{"categoria":"Ervas","quantidade":1},{"categoria":"Velas","quantidade":1}]
	}`, string(resp.Data))

	w, resp = env.do(t, "GET", "/api/materiais/baixo-estoque", "")
	require.Equal(t, http.StatusOK, w.Code)
	lows := decode[[]map[string]interface{}](t, resp.Data)
	require.Len(t, lows, 1)
	assert.Equal(t, "Arruda", lows[0]["nome"])

	w, resp = env.do(t, "GET", "/api/movimentacoes", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]interface{}](t, resp.Data), 2)

	w, resp = env.do(t, "GET", "/api/categorias-materiais", "")
	require.Equal(t, http.StatusOK, w.Code)
	taxonomy := decode[MaterialTaxonomy](t, resp.Data)
	assert.Contains(t, taxonomy.Categories, "Velas")
	assert.Contains(t, taxonomy.Subcategories["Velas"], "Branca")
}
