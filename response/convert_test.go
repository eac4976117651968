package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name string `json:"name"`
	Code int    `json:"code"`
}

func serve(t *testing.T, target string, data any) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", func(c *gin.Context) {
		Success(c, data)
	})
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRenderDefaultsToJSON(t *testing.T) {
	w := serve(t, "/x", sample{Name: "Spain", Code: 724})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	assert.JSONEq(t, `{"name":"Spain","code":724}`, w.Body.String())
}

func TestRenderXMLSortsKeysAndWrapsItems(t *testing.T) {
	w := serve(t, "/x?format=xml", []sample{{Name: "Spain", Code: 724}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/xml")
	// 键按字典序，列表元素统一包成item
	assert.Contains(t, w.Body.String(), "<root><item><code>724</code><name>Spain</name></item></root>")
}

func TestRenderXMLEscapesText(t *testing.T) {
	w := serve(t, "/x?format=xml", sample{Name: "a<b&c", Code: 1})
	assert.Contains(t, w.Body.String(), "a&lt;b&amp;c")
}

func TestRenderCSVUsesSemicolonAndSortedHeader(t *testing.T) {
	w := serve(t, "/x?format=csv", []sample{{Name: "Spain", Code: 724}, {Name: "France", Code: 250}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Equal(t, "code;name\n724;Spain\n250;France\n", w.Body.String())
}

func TestRenderCSVNilFieldIsEmpty(t *testing.T) {
	w := serve(t, "/x?format=csv", []map[string]any{{"a": nil, "b": "x"}})
	assert.Equal(t, "a;b\n;x\n", w.Body.String())
}

func TestRenderJSONPWrapsCallback(t *testing.T) {
	w := serve(t, "/x?format=jsonp&jsonp=handle", sample{Name: "Spain", Code: 724})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/javascript")
	assert.Equal(t, `handle({"name":"Spain","code":724});`, w.Body.String())
}

func TestRenderJSONPDefaultCallback(t *testing.T) {
	w := serve(t, "/x?format=jsonp", sample{Name: "Spain", Code: 724})
	assert.Equal(t, `callback({"name":"Spain","code":724});`, w.Body.String())
}

func TestCreatedBodyCarriesURI(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/x", func(c *gin.Context) {
		Created(c, "/api/countries/ESP")
	})
	req := httptest.NewRequest(http.MethodPost, "/x", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"URI":"/api/countries/ESP"}`, w.Body.String())
}
