package stdlib_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lumen-lang/lumen/internal/evaluator"
	"github.com/lumen-lang/lumen/internal/stdlib"
)

func TestHTTPGetReturnsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hello from server"))
	}))
	defer srv.Close()

	m := stdlib.HTTP()
	result := callBuiltin(t, m, "get", evaluator.String{Value: srv.URL})
	body := requireOk(t, result)
	require.Equal(t, evaluator.String{Value: "hello from server"}, body)
}

func TestHTTPGetNotFoundReturnsErr(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	m := stdlib.HTTP()
	result := callBuiltin(t, m, "get", evaluator.String{Value: srv.URL})
	requireErr(t, result)
}

func TestHTTPPostSendsBodyAndReturnsResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		w.Write([]byte("echo:" + string(b)))
	}))
	defer srv.Close()

	m := stdlib.HTTP()
	result := callBuiltin(t, m, "post", evaluator.String{Value: srv.URL}, evaluator.String{Value: "payload"})
	body := requireOk(t, result)
	require.Equal(t, evaluator.String{Value: "echo:payload"}, body)
}

func TestHTTPGetUnreachableHostReturnsErr(t *testing.T) {
	m := stdlib.HTTP()
	result := callBuiltin(t, m, "get", evaluator.String{Value: "http://127.0.0.1:0"})
	requireErr(t, result)
}
