package question

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/saulo-duarte/interview-coach/internal/aigateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, gw *stubGateway, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	router := Routes(NewHandler(NewService(gw, nil)))
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Generate(t *testing.T) {
	rec := serve(t, &stubGateway{responses: []string{fiveQuestions}}, http.MethodPost, "/generate",
		`{"topic":"React","difficulty":"Medium","numberOfQuestions":5}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"topic":"React"`)
	assert.Contains(t, rec.Body.String(), `"difficulty":"Medium"`)
	assert.Contains(t, rec.Body.String(), `{"question":"Q5?","id":5}`)
}

func TestHandler_Errors(t *testing.T) {
	gwDown := &stubGateway{err: &aigateway.Error{Provider: "stub", Model: "stub", Err: errors.New("down")}}

	tests := []struct {
		name   string
		gw     *stubGateway
		path   string
		body   string
		status int
		msg    string
	}{
		{"bad json", &stubGateway{}, "/generate", `{`, http.StatusBadRequest, "invalid request body"},
		{"missing topic", &stubGateway{}, "/generate", `{"difficulty":"Easy"}`, http.StatusBadRequest, "topic is required"},
		{"generate gateway failure", gwDown, "/generate", `{"topic":"Go","difficulty":"Easy"}`, http.StatusInternalServerError, "Error generating questions"},
		{"generate parse failure", &stubGateway{responses: []string{"nope"}}, "/generate", `{"topic":"Go","difficulty":"Easy"}`, http.StatusInternalServerError, "Failed to parse questions from AI"},
		{"missing answer", &stubGateway{}, "/evaluate", `{"question":"Q?"}`, http.StatusBadRequest, "answer is required"},
		{"evaluate gateway failure", gwDown, "/evaluate", `{"question":"Q?","answer":"A"}`, http.StatusInternalServerError, "Error evaluating answer"},
		{"evaluate parse failure", &stubGateway{responses: []string{`{"score":"high"}`}}, "/evaluate", `{"question":"Q?","answer":"A"}`, http.StatusInternalServerError, "Failed to parse evaluation from AI"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, tt.gw, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, `{"message":"`+tt.msg+`"}`, rec.Body.String())
		})
	}
}

func TestHandler_Evaluate(t *testing.T) {
	rec := serve(t, &stubGateway{responses: []string{`{"score":7,"feedback":"ok"}`}}, http.MethodPost, "/evaluate",
		`{"question":"Q?","answer":"A","topic":"Go","difficulty":"Easy"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"score":7,"feedback":"ok"}`, rec.Body.String())
}

func TestHandler_Topics(t *testing.T) {
	rec := serve(t, &stubGateway{}, http.MethodGet, "/topics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"topics":[],"difficulties":["Easy","Medium","Hard"],"strict":false}`, rec.Body.String())
}
