package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avc-dev/random-string/internal/clipboard"
	"github.com/avc-dev/random-string/internal/mocks"
	"github.com/avc-dev/random-string/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testResponse() model.Response {
	return model.Response{
		Printable:    model.RandomString{Length: 3, String: "Ab3"},
		Alphanumeric: model.RandomString{Length: 6, String: "xyz789"},
	}
}

func newTestCopier(t *testing.T, writeErr error, expectedText string) *clipboard.Copier {
	strategy := mocks.NewMockStrategy(t)
	strategy.EXPECT().Name().Return("test").Maybe()
	strategy.EXPECT().Supported().Return(true).Maybe()
	if expectedText != "" {
		strategy.EXPECT().Write(mock.Anything, expectedText).Return(writeErr).Once()
	}
	return clipboard.NewCopier(zap.NewNop(), []clipboard.Strategy{strategy}, clipboard.WithRevertDelay(time.Hour))
}

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    Options
		wantErr error
	}{
		{
			name: "defaults",
			want: Options{Server: "http://localhost:8080", Printable: DefaultLength, Alphanumeric: DefaultLength},
		},
		{
			name: "all flags",
			args: []string{"-server", "https://example.com/", "-grpc", "localhost:9090", "-p", "5", "-a", "7", "-copy", "alphanumeric", "-json"},
			want: Options{
				Server:       "https://example.com",
				GRPCAddress:  "localhost:9090",
				Printable:    5,
				Alphanumeric: 7,
				Copy:         CopyAlphanumeric,
				JSON:         true,
			},
		},
		{
			name:    "unknown copy target",
			args:    []string{"-copy", "both"},
			wantErr: ErrInvalidCopyTarget,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOptions(tt.args, io.Discard)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("invalid server", func(t *testing.T) {
		_, err := ParseOptions([]string{"-server", "example.com"}, io.Discard)
		assert.Error(t, err)
	})
}

func TestRunner_Execute_ClampsLengths(t *testing.T) {
	// Arrange
	var gotP, gotA int
	fetch := func(_ context.Context, p, a int) (model.Response, error) {
		gotP, gotA = p, a
		return testResponse(), nil
	}
	var out bytes.Buffer
	runner := NewRunner(fetch, newTestCopier(t, nil, ""), &out)

	// Act
	err := runner.Execute(context.Background(), Options{Printable: 150, Alphanumeric: 0})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 99, gotP)
	assert.Equal(t, 1, gotA)
	assert.Equal(t, "Printable:    Ab3\nAlphanumeric: xyz789\n", out.String())
}

func TestRunner_Execute_JSON(t *testing.T) {
	fetch := func(context.Context, int, int) (model.Response, error) {
		return testResponse(), nil
	}
	var out bytes.Buffer

	err := NewRunner(fetch, newTestCopier(t, nil, ""), &out).Execute(context.Background(), Options{Printable: 3, Alphanumeric: 6, JSON: true})

	require.NoError(t, err)
	assert.JSONEq(t, `{"printable":{"length":3,"string":"Ab3"},"alphanumeric":{"length":6,"string":"xyz789"}}`, out.String())
}

func TestRunner_Execute_Copy(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		text      string
		writeErr  error
		wantLabel string
		wantErr   error
	}{
		{name: "printable copied", target: CopyPrintable, text: "Ab3", wantLabel: clipboard.SuccessLabel},
		{name: "alphanumeric copied", target: CopyAlphanumeric, text: "xyz789", wantLabel: clipboard.SuccessLabel},
		{name: "clipboard rejects", target: CopyPrintable, text: "Ab3", writeErr: errors.New("no display"), wantLabel: clipboard.FailureLabel, wantErr: ErrCopyFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetch := func(context.Context, int, int) (model.Response, error) {
				return testResponse(), nil
			}
			var out bytes.Buffer

			err := NewRunner(fetch, newTestCopier(t, tt.writeErr, tt.text), &out).
				Execute(context.Background(), Options{Printable: 3, Alphanumeric: 6, Copy: tt.target})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Contains(t, out.String(), tt.wantLabel+"\n")
		})
	}
}

func TestRunner_Execute_FetchError(t *testing.T) {
	fetchErr := errors.New("connection refused")
	fetch := func(context.Context, int, int) (model.Response, error) {
		return model.Response{}, fetchErr
	}
	var out bytes.Buffer

	err := NewRunner(fetch, newTestCopier(t, nil, ""), &out).Execute(context.Background(), Options{Printable: 3, Alphanumeric: 6})

	assert.ErrorIs(t, err, fetchErr)
	assert.Empty(t, out.String())
}

func TestRun_HTTP(t *testing.T) {
	// Arrange
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"printable":{"length":3,"string":"Ab3"},"alphanumeric":{"length":6,"string":"xyz789"}}`))
	}))
	defer srv.Close()

	var stdout, stderr bytes.Buffer

	// Act
	err := Run(context.Background(), []string{"-server", srv.URL, "-p", "-5", "-a", "120"}, &stdout, &stderr, zap.NewNop())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "p=1&a=99", gotQuery)
	assert.Contains(t, stdout.String(), "Ab3")
	assert.Contains(t, stdout.String(), "xyz789")
}
