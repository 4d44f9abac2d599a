// Package httpapi is the optional HTTP embedding: a single POST /run
// endpoint that executes a program against a fresh root
// context/canvas/log sink per request and reports the result as a
// three-field JSON response (log, canvas, error). It uses
// github.com/tidwall/gjson/sjson for ad hoc request/response JSON
// instead of declaring request/response structs.
package httpapi

import (
	"io"
	"net/http"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/cwbudde/logoscript/internal/builtins"
	"github.com/cwbudde/logoscript/internal/canvas"
	"github.com/cwbudde/logoscript/internal/diag"
	"github.com/cwbudde/logoscript/internal/eval"
	"github.com/cwbudde/logoscript/internal/lexer"
	"github.com/cwbudde/logoscript/internal/logging"
	"github.com/cwbudde/logoscript/internal/parser"
	"github.com/cwbudde/logoscript/internal/reader"
	"github.com/cwbudde/logoscript/internal/runtime"
)

// Handler serves POST /run. CORS headers are set here, not by the core.
func Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/run", handleRun)
	return mux
}

func handleRun(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return
	}

	code := gjson.GetBytes(body, "code").String()
	resp, err := run(code)
	if err != nil {
		http.Error(w, "failed to build response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(resp))
}

// run executes code against a fresh root context/canvas/log sink and
// returns the response JSON.
func run(code string) (string, error) {
	sink := logging.NewBufferSink()
	resp := "{}"
	var err error

	prog, perr := parser.ParseProgram(lexer.New(reader.NewString(code)))
	if perr != nil {
		return buildErrorResponse(sink.String(), perr.(diag.PositionedError))
	}

	root := runtime.NewRoot()
	cv := canvas.New()
	builtins.Populate(root, cv, sink)

	if eerr := eval.Execute(prog, root); eerr != nil {
		return buildErrorResponse(sink.String(), eerr.(diag.PositionedError))
	}

	canvasJSON, err := cv.Encode()
	if err != nil {
		return "", err
	}
	if resp, err = sjson.Set(resp, "log", sink.String()); err != nil {
		return "", err
	}
	if resp, err = sjson.SetRaw(resp, "canvas", canvasJSON); err != nil {
		return "", err
	}
	if resp, err = sjson.Set(resp, "error", nil); err != nil {
		return "", err
	}
	return resp, nil
}

func buildErrorResponse(log string, perr diag.PositionedError) (string, error) {
	resp := "{}"
	var err error
	if resp, err = sjson.Set(resp, "log", log); err != nil {
		return "", err
	}
	if resp, err = sjson.Set(resp, "canvas", nil); err != nil {
		return "", err
	}
	if resp, err = sjson.Set(resp, "error", diag.Message(perr)); err != nil {
		return "", err
	}
	return resp, nil
}
