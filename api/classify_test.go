package api

import (
	"net/http"
	"testing"

	"github.com/elliot-anderson-afk/kite-api-wrapper/kiteerrors"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		res      *transportResult
		wantData string
		wantText string
		wantKind kiteerrors.Kind
		wantCode int
		wantErr  bool
	}{
		"json success returns the data payload": {
			res: &transportResult{
				status:      http.StatusOK,
				contentType: "application/json; charset=utf-8",
				body:        []byte(`{"status":"success","data":{"order_id":"151220000000000"}}`),
			},
			wantData: `{"order_id":"151220000000000"}`,
		},
		"recognized error_type maps to its kind": {
			res: &transportResult{
				status:      http.StatusForbidden,
				contentType: "application/json",
				body:        []byte(`{"status":"error","message":"denied","error_type":"PermissionException"}`),
			},
			wantErr:  true,
			wantKind: kiteerrors.Permission,
			wantCode: http.StatusForbidden,
		},
		"unrecognized error_type degrades to general": {
			res: &transportResult{
				status:      http.StatusBadRequest,
				contentType: "application/json",
				body:        []byte(`{"status":"error","message":"what","error_type":"MarginException"}`),
			},
			wantErr:  true,
			wantKind: kiteerrors.General,
			wantCode: http.StatusBadRequest,
		},
		"error body without error_type yields a generic error": {
			res: &transportResult{
				status:      http.StatusInternalServerError,
				contentType: "application/json",
				body:        []byte(`{"status":"error"}`),
			},
			wantErr:  true,
			wantKind: kiteerrors.General,
			wantCode: http.StatusInternalServerError,
		},
		"unparseable json is a data error": {
			res: &transportResult{
				status:      http.StatusOK,
				contentType: "application/json",
				body:        []byte("<html>"),
			},
			wantErr:  true,
			wantKind: kiteerrors.Data,
		},
		"non-json success passes the text through untouched": {
			res: &transportResult{
				status:      http.StatusOK,
				contentType: "text/csv",
				// error-looking text is not sniffed; the status decides
				body: []byte("error,this,is,still,a,payload"),
			},
			wantText: "error,this,is,still,a,payload",
		},
		"non-json failure carries the status and the raw text": {
			res: &transportResult{
				status:      http.StatusNotFound,
				contentType: "text/html",
				body:        []byte("gone"),
			},
			wantErr:  true,
			wantKind: kiteerrors.General,
			wantCode: http.StatusNotFound,
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			data, text, err := classify(tt.res)
			if (err != nil) != tt.wantErr {
				t.Fatalf("classify() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				kerr, ok := err.(*kiteerrors.Error)
				if !ok {
					t.Fatalf("error type = %T, want *kiteerrors.Error", err)
				}
				if kerr.Kind != tt.wantKind {
					t.Errorf("Kind = %v, want %v", kerr.Kind, tt.wantKind)
				}
				if kerr.Code != tt.wantCode {
					t.Errorf("Code = %d, want %d", kerr.Code, tt.wantCode)
				}
				return
			}
			if string(data) != tt.wantData {
				t.Errorf("data = %s, want %s", data, tt.wantData)
			}
			if text != tt.wantText {
				t.Errorf("text = %q, want %q", text, tt.wantText)
			}
		})
	}
}

// The envelope message is surfaced verbatim; an empty one falls back to a
// fixed placeholder.
func TestClassify_ErrorMessageFallback(t *testing.T) {
	t.Parallel()

	_, _, err := classify(&transportResult{
		status:      http.StatusBadRequest,
		contentType: "application/json",
		body:        []byte(`{"status":"error","error_type":"InputException"}`),
	})
	if err == nil {
		t.Fatal("classify() error = nil, want input classification")
	}
	if err.Error() != "Unknown error" {
		t.Errorf("Message = %q, want %q", err.Error(), "Unknown error")
	}
}
