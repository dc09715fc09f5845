package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"blogapi/internal/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

// newMockApp routes every resource of a Server backed by the given services.
func newMockApp(t *testing.T, posts PostAPI, comments CommentAPI) *fiber.App {
	t.Helper()
	t.Setenv("APP_ENV", "test")

	s := &Server{posts: posts, comments: comments, validate: newValidator()}
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	s.registerResources(app)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeResult[T any](t *testing.T, resp *http.Response) dto.Result[T] {
	t.Helper()
	var out dto.Result[T]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(raw)
}
