package stdlib

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/lumen-lang/lumen/internal/evaluator"
	"github.com/lumen-lang/lumen/internal/types"
)

// HTTP builds the `net.http` native module: a minimal get/post client.
// Grounded on the teacher's internal/evaluator/builtins_http.go and
// internal/modules/virtual_packages_web.go.
func HTTP() Module {
	strResult := resultOf(types.String{}, types.String{})

	getT, getV := fn("get", []types.Type{types.String{}}, strResult, httpGet)
	postT, postV := fn("post", []types.Type{types.String{}, types.String{}}, strResult, httpPost)

	return Module{
		Name: "net.http",
		Types: map[string]types.Type{
			"get":  getT,
			"post": postT,
		},
		Values: map[string]evaluator.Value{
			"get":  getV,
			"post": postV,
		},
	}
}

var httpClient = &http.Client{Timeout: 30 * time.Second}

func httpGet(ev *evaluator.Evaluator, args []evaluator.Value) evaluator.Value {
	url, ok := args[0].(evaluator.String)
	if !ok {
		return errResult("get requires a String url")
	}
	resp, err := httpClient.Get(url.Value)
	if err != nil {
		return errResult(err.Error())
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errResult(err.Error())
	}
	if resp.StatusCode >= 400 {
		return errResult(resp.Status)
	}
	return okResult(evaluator.String{Value: string(body)})
}

func httpPost(ev *evaluator.Evaluator, args []evaluator.Value) evaluator.Value {
	url, ok := args[0].(evaluator.String)
	if !ok {
		return errResult("post requires a String url")
	}
	body, ok := args[1].(evaluator.String)
	if !ok {
		return errResult("post requires a String body")
	}
	resp, err := httpClient.Post(url.Value, "application/octet-stream", strings.NewReader(body.Value))
	if err != nil {
		return errResult(err.Error())
	}
	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errResult(err.Error())
	}
	if resp.StatusCode >= 400 {
		return errResult(resp.Status)
	}
	return okResult(evaluator.String{Value: string(respBody)})
}
