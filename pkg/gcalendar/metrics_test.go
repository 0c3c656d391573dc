package gcalendar

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"google.golang.org/api/googleapi"
)

func TestResultLabel(t *testing.T) {
	tcs := map[string]struct {
		err  error
		want string
	}{
		"success":      {err: nil, want: "success"},
		"google error": {err: &RemoteError{Op: OpDeleteEvent, Err: &googleapi.Error{Code: 404}}, want: "404"},
		"wrapped":      {err: fmt.Errorf("uc: %w", &RemoteError{Op: OpDeleteEvent, Err: &googleapi.Error{Code: 410}}), want: "410"},
		"no response":  {err: &RemoteError{Op: OpListEvents, Err: errors.New("dial tcp: refused")}, want: "error"},
		"other":        {err: errors.New("boom"), want: "error"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			if got := resultLabel(tc.err); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestObserveCountsByResult(t *testing.T) {
	before := testutil.ToFloat64(requestsTotal.WithLabelValues(OpInsertEvent, "success"))

	observe(OpInsertEvent, time.Now(), nil)

	after := testutil.ToFloat64(requestsTotal.WithLabelValues(OpInsertEvent, "success"))
	if after != before+1 {
		t.Errorf("expected counter to increase by 1, got %v -> %v", before, after)
	}
}
